package session

// KeyKind classifies an input event.
type KeyKind int

const (
	KeyAppend KeyKind = iota
	KeyBackspace
	KeyBoundary
	KeyCancel
)

// Key is one logical key press. Rune is set only for KeyAppend.
type Key struct {
	Kind KeyKind
	Rune rune
}

// Append types r into the current word.
func Append(r rune) Key { return Key{Kind: KeyAppend, Rune: r} }

// Backspace removes the last rune of the current word.
func Backspace() Key { return Key{Kind: KeyBackspace} }

// Boundary seals the current word.
func Boundary() Key { return Key{Kind: KeyBoundary} }

// Cancel abandons the session.
func Cancel() Key { return Key{Kind: KeyCancel} }

// Type expands text into key events, mapping spaces to Boundary.
func Type(text string) []Key {
	keys := make([]Key, 0, len(text))
	for _, r := range text {
		if r == ' ' {
			keys = append(keys, Boundary())
			continue
		}
		keys = append(keys, Append(r))
	}
	return keys
}

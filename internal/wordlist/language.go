package wordlist

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed data/english_1k.txt
var english1k string

// Language selects one of the built-in vocabularies.
type Language int

const (
	// English1k is the thousand most common English words.
	English1k Language = iota
)

var languageCodes = map[Language]string{
	English1k: "english_1k",
}

// Languages lists the built-in vocabularies in display order.
func Languages() []Language {
	return []Language{English1k}
}

func (l Language) String() string {
	if code, ok := languageCodes[l]; ok {
		return code
	}
	return fmt.Sprintf("Language(%d)", int(l))
}

// ParseLanguage resolves a language code from flags or config.
func ParseLanguage(code string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "", "en", "english", "english_1k":
		return English1k, nil
	default:
		return 0, fmt.Errorf("unknown language %q", code)
	}
}

// Load returns the embedded vocabulary for a language.
func Load(lang Language) (*Vocabulary, error) {
	switch lang {
	case English1k:
		return Parse(lang.String(), english1k)
	default:
		return nil, &LoadError{Source: lang.String(), Err: fmt.Errorf("no embedded word list")}
	}
}

// Package diff classifies typed text against a target word, one codepoint at a time.
package diff

import "fmt"

// Class labels a single character position.
type Class int

const (
	Correct Class = iota
	Incorrect
	Extra
	Missing
)

func (c Class) String() string {
	switch c {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Extra:
		return "extra"
	case Missing:
		return "missing"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Role is where a word sits relative to the typing position.
type Role int

const (
	// Sealed words were submitted with a boundary key and never change again.
	Sealed Role = iota
	// Active is the word currently being typed.
	Active
	// Pending words have not been reached yet.
	Pending
)

func (r Role) String() string {
	switch r {
	case Sealed:
		return "sealed"
	case Active:
		return "active"
	case Pending:
		return "pending"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Cell is one classified codepoint. Rune is the character to display:
// the typed rune for surplus input, the target rune everywhere else.
type Cell struct {
	Rune  rune
	Class Class
}

// Run is a maximal stretch of cells sharing a class. Start and End are
// rune offsets into the classified word.
type Run struct {
	Class Class
	Text  string
	Start int
	End   int
}

// Classify compares observed against target under the given role.
//
// A sealed word whose target is longer than what was typed gets its tail
// marked Extra, not Missing: the word was submitted and the tail will never
// be typed. The same shortfall on the active word is Missing.
func Classify(target, observed string, role Role) []Cell {
	t := []rune(target)
	if role == Pending {
		cells := make([]Cell, len(t))
		for i, r := range t {
			cells[i] = Cell{Rune: r, Class: Missing}
		}
		return cells
	}

	o := []rune(observed)
	m := min(len(t), len(o))
	cells := make([]Cell, 0, max(len(t), len(o)))
	for i := 0; i < m; i++ {
		class := Incorrect
		if t[i] == o[i] {
			class = Correct
		}
		cells = append(cells, Cell{Rune: t[i], Class: class})
	}
	for _, r := range o[m:] {
		cells = append(cells, Cell{Rune: r, Class: Extra})
	}
	shortfall := Missing
	if role == Sealed {
		shortfall = Extra
	}
	for _, r := range t[m:] {
		cells = append(cells, Cell{Rune: r, Class: shortfall})
	}
	return cells
}

// Runs merges adjacent cells of the same class.
func Runs(cells []Cell) []Run {
	if len(cells) == 0 {
		return nil
	}
	var runs []Run
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && cells[i].Class == cells[start].Class {
			continue
		}
		text := make([]rune, 0, i-start)
		for _, c := range cells[start:i] {
			text = append(text, c.Rune)
		}
		runs = append(runs, Run{
			Class: cells[start].Class,
			Text:  string(text),
			Start: start,
			End:   i,
		})
		start = i
	}
	return runs
}

// ClassifyRuns is Runs(Classify(target, observed, role)).
func ClassifyRuns(target, observed string, role Role) []Run {
	return Runs(Classify(target, observed, role))
}

// Count tallies cells per class.
func Count(cells []Cell) map[Class]int {
	counts := make(map[Class]int, 4)
	for _, c := range cells {
		counts[c.Class]++
	}
	return counts
}

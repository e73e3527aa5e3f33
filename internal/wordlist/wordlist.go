// Package wordlist loads word lists into read-only vocabularies.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
)

// ErrEmptyWordList is returned when a source holds no usable words.
var ErrEmptyWordList = errors.New("word list is empty")

// LoadError reports a word list that could not be turned into a Vocabulary.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load word list %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Vocabulary is an immutable, non-empty list of words.
type Vocabulary struct {
	name  string
	words []string
}

// Name identifies where the vocabulary came from.
func (v *Vocabulary) Name() string {
	return v.name
}

// Len returns the number of words.
func (v *Vocabulary) Len() int {
	return len(v.words)
}

// Words returns a copy of the word list.
func (v *Vocabulary) Words() []string {
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}

// Sample returns a uniformly random word.
func (v *Vocabulary) Sample(rnd *rand.Rand) string {
	return v.words[rnd.Intn(len(v.words))]
}

// Parse builds a vocabulary from a newline-separated blob.
func Parse(name, blob string) (*Vocabulary, error) {
	return read(name, strings.NewReader(blob), nil)
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string, filter FilterFunc) (*Vocabulary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return read(path, file, filter)
}

func read(name string, r io.Reader, filter FilterFunc) (*Vocabulary, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.ContainsAny(line, " \t") {
			continue
		}
		if filter != nil && !filter(line) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	if len(words) == 0 {
		return nil, &LoadError{Source: name, Err: ErrEmptyWordList}
	}
	return &Vocabulary{name: name, words: words}, nil
}

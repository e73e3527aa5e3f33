// Package generator builds target word sequences for a typing test.
package generator

import (
	"math/rand"
	"time"
	"unicode"

	"github.com/verte-zerg/wpmtest/internal/wordlist"
)

// Options controls optional decoration of sampled words.
type Options struct {
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
}

// Generator produces randomized target sequences.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator whose output is fully determined by seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate samples length words uniformly, with replacement.
func (g *Generator) Generate(vocab *wordlist.Vocabulary, length int) []string {
	return g.GenerateWith(vocab, length, Options{})
}

// GenerateWith samples like Generate and applies caps/punctuation rules.
func (g *Generator) GenerateWith(vocab *wordlist.Vocabulary, length int, opts Options) []string {
	if length < 0 {
		length = 0
	}
	result := make([]string, 0, length)
	for i := 0; i < length; i++ {
		word := vocab.Sample(g.rnd)
		word = applyCaps(g.rnd, word, opts.CapsPct)
		word = applyPunct(g.rnd, word, opts.PunctPct, opts.PunctSet)
		result = append(result, word)
	}
	return result
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	return word + string(punctSet[rnd.Intn(len(punctSet))])
}

// Package generator builds practice text from a word list.
package generator

import (
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// Options shapes generated text.
type Options struct {
	Count     int
	LineWords int
	CapsPct   float64
	PunctPct  float64
	PunctSet  []rune
}

// Generator produces randomized practice text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Words selects opts.Count words uniformly and applies caps/punctuation rules.
func (g *Generator) Words(words []string, opts Options) []string {
	if len(words) == 0 || opts.Count <= 0 {
		return nil
	}
	result := make([]string, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		word := words[g.rnd.Intn(len(words))]
		word = applyCaps(g.rnd, word, opts.CapsPct)
		word = applyPunct(g.rnd, word, opts.PunctPct, opts.PunctSet)
		result = append(result, word)
	}
	return result
}

// Text joins generated words with spaces, breaking the line after every
// opts.LineWords words. LineWords <= 0 keeps everything on one line.
func (g *Generator) Text(words []string, opts Options) string {
	return Join(g.Words(words, opts), opts.LineWords)
}

// Join lays words out with a line feed after every lineWords words.
func Join(words []string, lineWords int) string {
	var b strings.Builder
	for i, word := range words {
		if i > 0 {
			if lineWords > 0 && i%lineWords == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(word)
	}
	return b.String()
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
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}

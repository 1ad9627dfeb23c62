// Package casing rewrites the casing of a single corpus line.
//
// A line is lowercased, optionally sentence-cased, and then configured title-case
// words and acronyms are restored, in that order. Each step consumes the output of
// the previous one, so rule order is observable in the result.
package casing

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eslsoft/casenorm/internal/entity"
)

// LineNormalizer transforms one line of text.
type LineNormalizer interface {
	Normalize(line string) string
}

// Normalizer applies a NormalizationConfig to individual lines.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	sentence *sentenceCaser
	rules    []wordRule
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithSentenceTerminators replaces the characters that re-arm sentence capitalization.
// It has no effect when sentence casing is disabled.
func WithSentenceTerminators(terminators string) Option {
	return func(n *Normalizer) {
		if n.sentence != nil && terminators != "" {
			n.sentence.terminators = terminators
		}
	}
}

// NewNormalizer compiles cfg into an ordered list of rewrite rules.
func NewNormalizer(cfg entity.NormalizationConfig, opts ...Option) *Normalizer {
	n := &Normalizer{}
	if cfg.SentenceCase() {
		n.sentence = newSentenceCaser()
	}

	// Title-case rules run before acronym rules so an acronym wins over a title word
	// spelled with the same letters.
	for _, word := range cfg.TitlecaseWords() {
		if rule, ok := newWordRule(word, titleSpelling(word)); ok {
			n.rules = append(n.rules, rule)
		}
	}
	for _, acronym := range cfg.Acronyms() {
		if rule, ok := newWordRule(acronym, upperText(acronym)); ok {
			n.rules = append(n.rules, rule)
		}
	}

	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize returns the normalized form of line. It never fails.
func (n *Normalizer) Normalize(line string) string {
	if line == "" {
		return ""
	}
	out := lowerText(line)
	if n.sentence != nil {
		out = n.sentence.apply(out)
	}
	for _, rule := range n.rules {
		out = rule.apply(out)
	}
	return out
}

func lowerText(s string) string {
	return cases.Lower(language.Und).String(s)
}

func upperText(s string) string {
	return cases.Upper(language.Und).String(s)
}

// titleSpelling uppercases the first rune of word and lowercases the rest.
func titleSpelling(word string) string {
	if word == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(word)
	return upperText(word[:size]) + lowerText(word[size:])
}

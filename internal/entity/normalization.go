package entity

import (
	"strings"

	"github.com/samber/lo"
)

// NormalizationConfig holds the casing rules applied to every corpus line.
// Word lists keep the caller's spelling and first-seen order; matching against text
// is case-insensitive.
type NormalizationConfig struct {
	acronyms       []string
	titlecaseWords []string
	sentenceCase   bool
}

// NewNormalizationConfig trims the raw word lists, drops blank entries and removes
// duplicates while keeping the first occurrence of each word in place.
func NewNormalizationConfig(acronyms, titlecaseWords []string, sentenceCase bool) NormalizationConfig {
	return NormalizationConfig{
		acronyms:       normalizeWordList(acronyms),
		titlecaseWords: normalizeWordList(titlecaseWords),
		sentenceCase:   sentenceCase,
	}
}

// Acronyms returns the acronyms in application order.
func (c NormalizationConfig) Acronyms() []string {
	return append([]string(nil), c.acronyms...)
}

// TitlecaseWords returns the title-case words in application order.
func (c NormalizationConfig) TitlecaseWords() []string {
	return append([]string(nil), c.titlecaseWords...)
}

// SentenceCase reports whether sentence casing runs after lowercasing.
func (c NormalizationConfig) SentenceCase() bool {
	return c.sentenceCase
}

// IsNoop reports whether normalization reduces to plain lowercasing.
func (c NormalizationConfig) IsNoop() bool {
	return !c.sentenceCase && len(c.acronyms) == 0 && len(c.titlecaseWords) == 0
}

func normalizeWordList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	trimmed := lo.Map(values, func(value string, _ int) string {
		return strings.TrimSpace(value)
	})
	kept := lo.Filter(trimmed, func(value string, _ int) bool {
		return value != ""
	})
	if len(kept) == 0 {
		return nil
	}
	return lo.Uniq(kept)
}

package casing

import (
	"strings"
	"unicode"
)

const defaultSentenceTerminators = ".!?"

type sentenceState int

const (
	awaitingCapital sentenceState = iota
	normal
)

// sentenceCaser capitalizes the first letter of a line and the first letter after
// every terminator. A terminator re-arms capitalization on its own, with no
// whitespace required, so "e.g. x" and "3.5 apples" capitalize the following letter.
type sentenceCaser struct {
	terminators string
}

func newSentenceCaser() *sentenceCaser {
	return &sentenceCaser{terminators: defaultSentenceTerminators}
}

func (s *sentenceCaser) apply(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	state := awaitingCapital
	for _, r := range text {
		switch {
		case state == awaitingCapital && unicode.IsLetter(r):
			b.WriteString(upperText(string(r)))
			state = normal
		case strings.ContainsRune(s.terminators, r):
			b.WriteRune(r)
			state = awaitingCapital
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// wordRule replaces every whole-word, case-insensitive occurrence of pattern.
//
// RE2's \b only understands ASCII word characters, so boundaries are checked by hand:
// a match must be preceded by the start of the text or a non-word rune, and followed
// by the end of the text or a non-word rune.
type wordRule struct {
	pattern     []rune
	replacement string
}

func newWordRule(word, replacement string) (wordRule, bool) {
	word = strings.TrimSpace(word)
	if word == "" {
		return wordRule{}, false
	}
	return wordRule{
		pattern:     []rune(lowerText(word)),
		replacement: replacement,
	}, true
}

func (w wordRule) apply(text string) string {
	var (
		b          strings.Builder
		copied     int
		replaced   bool
		prevIsWord bool
	)

	for i := 0; i < len(text); {
		if !prevIsWord {
			if end, ok := w.matchAt(text, i); ok {
				if !replaced {
					b.Grow(len(text))
					replaced = true
				}
				b.WriteString(text[copied:i])
				b.WriteString(w.replacement)
				copied = end
				last, _ := utf8.DecodeLastRuneInString(text[i:end])
				prevIsWord = isWordRune(last)
				i = end
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		prevIsWord = isWordRune(r)
		i += size
	}

	if !replaced {
		return text
	}
	b.WriteString(text[copied:])
	return b.String()
}

// matchAt reports whether the pattern matches text at byte offset start and is
// followed by a word boundary. It returns the byte offset just past the match.
func (w wordRule) matchAt(text string, start int) (int, bool) {
	pos := start
	for _, want := range w.pattern {
		if pos >= len(text) {
			return 0, false
		}
		got, size := utf8.DecodeRuneInString(text[pos:])
		if !equalFoldRune(got, want) {
			return 0, false
		}
		pos += size
	}
	if pos < len(text) {
		next, _ := utf8.DecodeRuneInString(text[pos:])
		if isWordRune(next) {
			return 0, false
		}
	}
	return pos, true
}

// isWordRune treats letters, numbers, combining marks and the underscore as word characters.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}

package quiz

import "strings"

// CorrectMarker is the glyph some generators embed in the text of the correct option
// instead of filling a structured field.
const CorrectMarker = "✓"

// ResolvedBy names the rule that produced a question's answer key.
type ResolvedBy string

const (
	ByIndex  ResolvedBy = "index"
	ByLetter ResolvedBy = "letter"
	ByMarker ResolvedBy = "marker"
	ByNone   ResolvedBy = "none"
)

// ResolveCorrectIndex derives the 0-based index of the correct option of a
// multiple-choice question. The boolean is false when the key is undetermined;
// that is a normal outcome, not an error.
func ResolveCorrectIndex(q Question) (int, bool) {
	idx, by := Resolution(q)
	return idx, by != ByNone
}

// Resolution is ResolveCorrectIndex plus the rule that matched. Rules are tried
// strictly in order: structured index, letter answer, inline marker.
func Resolution(q Question) (int, ResolvedBy) {
	if i := q.CorrectAnswerIndex; i != nil && *i >= 0 && *i < len(q.Options) {
		return *i, ByIndex
	}

	if q.Answer != nil && len(q.Options) == 4 {
		if i, ok := letterIndex(*q.Answer); ok {
			return i, ByLetter
		}
	}

	for i, opt := range q.Options {
		if strings.Contains(opt, CorrectMarker) {
			return i, ByMarker
		}
	}

	return -1, ByNone
}

// letterIndex maps exactly one letter A-D (either case) to 0-3.
func letterIndex(s string) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	if c >= 'a' && c <= 'd' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'D' {
		return 0, false
	}
	return int(c - 'A'), true
}

package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func fourOptions() []string { return []string{"red", "green", "blue", "yellow"} }

func TestResolveCorrectIndex(t *testing.T) {
	tests := []struct {
		name   string
		q      Question
		want   int
		wantOK bool
		wantBy ResolvedBy
	}{
		{
			name:   "index wins over letter and marker",
			q:      Question{Options: []string{"a", "b ✓", "c", "d"}, Answer: ptr("D"), CorrectAnswerIndex: ptr(2)},
			want:   2,
			wantOK: true,
			wantBy: ByIndex,
		},
		{
			name:   "index zero is valid",
			q:      Question{Options: fourOptions(), CorrectAnswerIndex: ptr(0)},
			want:   0,
			wantOK: true,
			wantBy: ByIndex,
		},
		{
			name:   "index out of bounds falls through to letter",
			q:      Question{Options: fourOptions(), Answer: ptr("c"), CorrectAnswerIndex: ptr(4)},
			want:   2,
			wantOK: true,
			wantBy: ByLetter,
		},
		{
			name:   "negative index falls through",
			q:      Question{Options: fourOptions(), Answer: ptr("B"), CorrectAnswerIndex: ptr(-1)},
			want:   1,
			wantOK: true,
			wantBy: ByLetter,
		},
		{
			name:   "lowercase letter",
			q:      Question{Options: fourOptions(), Answer: ptr("d")},
			want:   3,
			wantOK: true,
			wantBy: ByLetter,
		},
		{
			name:   "letter ignored with three options",
			q:      Question{Options: []string{"x", "y", "z"}, Answer: ptr("A")},
			want:   -1,
			wantOK: false,
			wantBy: ByNone,
		},
		{
			name:   "letter ignored with five options falls to marker",
			q:      Question{Options: []string{"x", "y", "z ✓", "w", "v"}, Answer: ptr("A")},
			want:   2,
			wantOK: true,
			wantBy: ByMarker,
		},
		{
			name:   "letter beyond D is not a letter answer",
			q:      Question{Options: fourOptions(), Answer: ptr("E")},
			want:   -1,
			wantOK: false,
			wantBy: ByNone,
		},
		{
			name:   "padded letter is not a letter answer",
			q:      Question{Options: fourOptions(), Answer: ptr(" A")},
			want:   -1,
			wantOK: false,
			wantBy: ByNone,
		},
		{
			name:   "first marker wins",
			q:      Question{Options: []string{"a", "✓ b", "c ✓", "d"}},
			want:   1,
			wantOK: true,
			wantBy: ByMarker,
		},
		{
			name:   "marker inside text counts",
			q:      Question{Options: []string{"a", "b", "check✓mark", "d"}},
			want:   2,
			wantOK: true,
			wantBy: ByMarker,
		},
		{
			name:   "no signals",
			q:      Question{Options: fourOptions(), Answer: ptr("green")},
			want:   -1,
			wantOK: false,
			wantBy: ByNone,
		},
		{
			name:   "no options at all",
			q:      Question{QuestionText: "Define osmosis", CorrectAnswerIndex: ptr(0)},
			want:   -1,
			wantOK: false,
			wantBy: ByNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveCorrectIndex(tt.q)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
				assert.GreaterOrEqual(t, got, 0)
				assert.Less(t, got, len(tt.q.Options))
			}
			_, by := Resolution(tt.q)
			assert.Equal(t, tt.wantBy, by)
		})
	}
}

func TestResolveCorrectIndex_LetterMapping(t *testing.T) {
	for i, letter := range []string{"A", "B", "C", "D", "a", "b", "c", "d"} {
		q := Question{Options: fourOptions(), Answer: ptr(letter)}
		got, ok := ResolveCorrectIndex(q)
		assert.True(t, ok, letter)
		assert.Equal(t, i%4, got, letter)
	}
}

func TestResolveCorrectIndex_Deterministic(t *testing.T) {
	q := Question{Options: []string{"a ✓", "b", "c ✓", "d"}, Answer: ptr("z")}
	first, ok1 := ResolveCorrectIndex(q)
	second, ok2 := ResolveCorrectIndex(q)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

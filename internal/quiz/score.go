package quiz

// Score grades a multiple-choice set against the user's selections.
// Questions without a resolvable key are left out of ScorableQuestions
// rather than counted wrong; TotalQuestions is always the full set length.
func Score(set QuestionSet, answers SelectedAnswers) ScoreResult {
	res := ScoreResult{TotalQuestions: len(set.Questions)}
	for i, q := range set.Questions {
		correct, ok := ResolveCorrectIndex(q)
		if !ok {
			continue
		}
		res.ScorableQuestions++
		if chosen, answered := answers[i]; answered && chosen == correct {
			res.UserScore++
		}
	}
	return res
}

// QuestionReview is the graded view of one question after submit.
type QuestionReview struct {
	Position     int        `json:"position"`
	CorrectIndex *int       `json:"correctIndex,omitempty"`
	ResolvedBy   ResolvedBy `json:"resolvedBy"`
	Selected     *int       `json:"selected,omitempty"`
	Scorable     bool       `json:"scorable"`
	Correct      bool       `json:"correct"`
}

// Review returns one QuestionReview per question, in set order.
func Review(set QuestionSet, answers SelectedAnswers) []QuestionReview {
	out := make([]QuestionReview, len(set.Questions))
	for i, q := range set.Questions {
		r := QuestionReview{Position: i}
		idx, by := Resolution(q)
		r.ResolvedBy = by
		if by != ByNone {
			r.Scorable = true
			r.CorrectIndex = &idx
		}
		if chosen, ok := answers[i]; ok {
			c := chosen
			r.Selected = &c
			r.Correct = r.Scorable && chosen == idx
		}
		out[i] = r
	}
	return out
}

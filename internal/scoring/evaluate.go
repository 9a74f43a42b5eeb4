package scoring

import (
	"strings"
	"unicode/utf8"
)

// Evaluate decides binary correctness for a submitted answer. Multiple
// choice compares the first character of the submission against the stored
// option letter, both uppercased; the stored answer is guaranteed to be a
// single letter by import-time validation (ValidateProblem). Everything
// else compares normalized text.
func Evaluate(q Question, submitted string) bool {
	if q.AnswerType == AnswerTypeMultipleChoice {
		sub := strings.ToUpper(strings.TrimSpace(submitted))
		want := strings.ToUpper(strings.TrimSpace(q.CorrectAnswer))
		if sub == "" || want == "" {
			return false
		}
		subFirst, _ := utf8.DecodeRuneInString(sub)
		wantFirst, _ := utf8.DecodeRuneInString(want)
		return subFirst == wantFirst
	}
	return Normalize(submitted) == Normalize(q.CorrectAnswer)
}

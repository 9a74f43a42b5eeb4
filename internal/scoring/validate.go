package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOptionsRequired  = errors.New("multiple_choice requires at least 2 options")
	ErrAnswerNotALetter = errors.New("correct answer must be a single option letter")
)

// ValidateProblem enforces the import-time contract for a question. Only
// multiple choice has structural requirements: at least two options, and
// the correct answer's trimmed uppercase form must be the leading letter of
// one of them ("B" matches option "B: No"; the full text "B: No" is
// rejected). Historical rows that predate this check are handled by
// IsAnswerable instead of failing here.
func ValidateProblem(answerType string, optionsRaw []byte, correctAnswer string) error {
	if answerType != AnswerTypeMultipleChoice {
		return nil
	}
	var opts []string
	if err := json.Unmarshal(optionsRaw, &opts); err != nil {
		return fmt.Errorf("options: %w", err)
	}
	if len(opts) < 2 {
		return ErrOptionsRequired
	}
	letter := strings.ToUpper(strings.TrimSpace(correctAnswer))
	if len(letter) != 1 {
		return ErrAnswerNotALetter
	}
	for _, opt := range opts {
		o := strings.ToUpper(strings.TrimSpace(opt))
		if o != "" && o[:1] == letter {
			return nil
		}
	}
	return ErrAnswerNotALetter
}

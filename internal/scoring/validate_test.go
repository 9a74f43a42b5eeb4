package scoring

import (
	"errors"
	"testing"
)

func TestValidateProblemMultipleChoice(t *testing.T) {
	opts := []byte(`["A: Yes","B: No"]`)

	if err := ValidateProblem(AnswerTypeMultipleChoice, opts, "B"); err != nil {
		t.Fatalf("letter answer should validate: %v", err)
	}
	if err := ValidateProblem(AnswerTypeMultipleChoice, opts, " b "); err != nil {
		t.Fatalf("case/space insensitive: %v", err)
	}

	// Full option text instead of the letter is rejected.
	if err := ValidateProblem(AnswerTypeMultipleChoice, opts, "B: No"); !errors.Is(err, ErrAnswerNotALetter) {
		t.Fatalf("full text answer: got %v, want ErrAnswerNotALetter", err)
	}
	// Letter not present in any option.
	if err := ValidateProblem(AnswerTypeMultipleChoice, opts, "C"); !errors.Is(err, ErrAnswerNotALetter) {
		t.Fatalf("unknown letter: got %v, want ErrAnswerNotALetter", err)
	}
	if err := ValidateProblem(AnswerTypeMultipleChoice, []byte(`["A: Yes"]`), "A"); !errors.Is(err, ErrOptionsRequired) {
		t.Fatalf("single option: got %v, want ErrOptionsRequired", err)
	}
	if err := ValidateProblem(AnswerTypeMultipleChoice, []byte(`not json`), "A"); err == nil {
		t.Fatal("malformed options must be rejected at import")
	}
}

func TestValidateProblemOtherTypes(t *testing.T) {
	if err := ValidateProblem(AnswerTypeNumber, nil, "42"); err != nil {
		t.Fatalf("number needs no structure: %v", err)
	}
	if err := ValidateProblem(AnswerTypeText, nil, "whale"); err != nil {
		t.Fatalf("text needs no structure: %v", err)
	}
}

package scoring

import "testing"

func TestIsCompleteIgnoresCorruptedQuestions(t *testing.T) {
	qs := []Question{
		{ID: 1, AnswerType: AnswerTypeNumber, CorrectAnswer: "2"},
		{ID: 2, AnswerType: AnswerTypeNumber, CorrectAnswer: "4"},
		{ID: 3, AnswerType: AnswerTypeMultipleChoice, Options: []byte(`["A"]`)}, // corrupted
	}

	if IsComplete(qs, map[uint]bool{1: true}) {
		t.Fatal("one of two answerable questions answered, should be incomplete")
	}
	if !IsComplete(qs, map[uint]bool{1: true, 2: true}) {
		t.Fatal("both answerable questions answered, corrupted one must not block")
	}
	// Answering the corrupted question never counts toward completion.
	if IsComplete(qs, map[uint]bool{1: true, 3: true}) {
		t.Fatal("corrupted answer must not count as progress")
	}
}

func TestIsCompleteEmptySet(t *testing.T) {
	if !IsComplete(nil, nil) {
		t.Fatal("empty question set is vacuously complete")
	}
	// All questions corrupted: nothing required, nothing blocks.
	qs := []Question{{ID: 1, AnswerType: AnswerTypeMultipleChoice}}
	if !IsComplete(qs, nil) {
		t.Fatal("all-corrupted set should be complete")
	}
}

package scoring

import "testing"

func TestEvaluateFreeText(t *testing.T) {
	q := Question{AnswerType: AnswerTypeNumber, CorrectAnswer: "5.6"}
	for _, sub := range []string{"5.6", "5,6", "(5, 6)", " 5.6 "} {
		if !Evaluate(q, sub) {
			t.Fatalf("expected %q to be correct", sub)
		}
	}
	if Evaluate(q, "5.7") {
		t.Fatal("5.7 should be wrong")
	}

	pct := Question{AnswerType: AnswerTypeNumber, CorrectAnswer: "50"}
	if !Evaluate(pct, "50%") {
		t.Fatal("percent sign should be ignored")
	}
}

func TestEvaluateMultipleChoice(t *testing.T) {
	q := Question{
		AnswerType:    AnswerTypeMultipleChoice,
		Options:       []byte(`["A: Yes","B: No"]`),
		CorrectAnswer: "B",
	}
	cases := []struct {
		sub  string
		want bool
	}{
		{"B", true},
		{"b", true},
		{" b ", true},
		{"B: No", true}, // first letter wins
		{"A", false},
		{"", false},
	}
	for _, c := range cases {
		if got := Evaluate(q, c.sub); got != c.want {
			t.Fatalf("Evaluate(%q)=%v, want %v", c.sub, got, c.want)
		}
	}
}

func TestEvaluateMultipleChoiceMultibyteLetter(t *testing.T) {
	q := Question{
		AnswerType:    AnswerTypeMultipleChoice,
		Options:       []byte(`["А: Да","Б: Нет"]`),
		CorrectAnswer: "Б",
	}
	cases := []struct {
		sub  string
		want bool
	}{
		{"Б", true},
		{"б", true},
		{"Б: Нет", true},
		{"А", false},
	}
	for _, c := range cases {
		if got := Evaluate(q, c.sub); got != c.want {
			t.Fatalf("Evaluate(%q)=%v, want %v", c.sub, got, c.want)
		}
	}
}

func TestEvaluateEmptyCorrectAnswerMC(t *testing.T) {
	q := Question{AnswerType: AnswerTypeMultipleChoice, CorrectAnswer: ""}
	if Evaluate(q, "A") {
		t.Fatal("missing correct answer can never match")
	}
}

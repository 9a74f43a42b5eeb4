package scoring

import "testing"

func TestIsAnswerable(t *testing.T) {
	cases := []struct {
		name       string
		answerType string
		options    string
		want       bool
	}{
		{"mc nil options", AnswerTypeMultipleChoice, "", false},
		{"mc empty array", AnswerTypeMultipleChoice, "[]", false},
		{"mc single option", AnswerTypeMultipleChoice, `["A"]`, false},
		{"mc two options", AnswerTypeMultipleChoice, `["A","B"]`, true},
		{"mc malformed json", AnswerTypeMultipleChoice, `["A",`, false},
		{"mc not an array", AnswerTypeMultipleChoice, `"A,B"`, false},
		{"number nil", AnswerTypeNumber, "", true},
		{"text nil", AnswerTypeText, "", true},
		{"empty type defaults answerable", "", "", true},
	}
	for _, c := range cases {
		var raw []byte
		if c.options != "" {
			raw = []byte(c.options)
		}
		if got := IsAnswerable(c.answerType, raw); got != c.want {
			t.Fatalf("%s: IsAnswerable=%v, want %v", c.name, got, c.want)
		}
	}
}

func TestAnswerableFilter(t *testing.T) {
	qs := []Question{
		{ID: 1, AnswerType: AnswerTypeNumber},
		{ID: 2, AnswerType: AnswerTypeMultipleChoice, Options: []byte(`["A"]`)},
		{ID: 3, AnswerType: AnswerTypeMultipleChoice, Options: []byte(`["A","B"]`)},
	}
	got := Answerable(qs)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("Answerable kept wrong subset: %+v", got)
	}
}

package scoring

import "encoding/json"

// IsAnswerable reports whether a question is well-formed enough to require
// an answer. Imported and generated content occasionally produces
// multiple-choice rows with a missing, malformed or single-option list;
// those must never block assignment completion, so they are classified as
// unanswerable instead of raising an error. Every other answer type
// (including the empty default, treated as number) is always answerable.
func IsAnswerable(answerType string, optionsRaw []byte) bool {
	if answerType != AnswerTypeMultipleChoice {
		return true
	}
	if len(optionsRaw) == 0 {
		return false
	}
	var opts []string
	if err := json.Unmarshal(optionsRaw, &opts); err != nil {
		return false
	}
	return len(opts) >= 2
}

// Answerable filters questions down to the answerable subset.
func Answerable(questions []Question) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if IsAnswerable(q.AnswerType, q.Options) {
			out = append(out, q)
		}
	}
	return out
}

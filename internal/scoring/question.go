// Package scoring implements the answer evaluation, completion and reward
// rules for assignments. It is pure: no storage access, no gin types. The
// three physical question shapes (package problems and the two legacy
// embedded tables) are adapted into one Question value before any rule
// runs, so the rest of the package never sees the legacy schemas.
package scoring

import (
	"encoding/json"

	"kidslearn_backend/internal/model"
)

type Source string

const (
	SourcePackage       Source = "package"
	SourceLegacyMath    Source = "legacy_math"
	SourceLegacyReading Source = "legacy_reading"
)

const (
	AnswerTypeNumber         = "number"
	AnswerTypeText           = "text"
	AnswerTypeMultipleChoice = "multiple_choice"
)

// Question is the unified view of a single question regardless of where its
// row lives.
type Question struct {
	ID            uint
	Source        Source
	AnswerType    string
	Options       json.RawMessage
	CorrectAnswer string
	Hint          string
}

func FromPackageProblem(p *model.PackageProblem) Question {
	return Question{
		ID:            p.ID,
		Source:        SourcePackage,
		AnswerType:    p.AnswerType,
		Options:       p.Options,
		CorrectAnswer: p.CorrectAnswer,
		Hint:          p.Hint,
	}
}

func FromMathProblem(p *model.MathProblem) Question {
	return Question{
		ID:            p.ID,
		Source:        SourceLegacyMath,
		AnswerType:    p.AnswerType,
		Options:       p.Options,
		CorrectAnswer: p.CorrectAnswer,
		Hint:          p.Hint,
	}
}

func FromReadingQuestion(q *model.ReadingQuestion) Question {
	return Question{
		ID:            q.ID,
		Source:        SourceLegacyReading,
		AnswerType:    q.AnswerType,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Hint:          q.Hint,
	}
}

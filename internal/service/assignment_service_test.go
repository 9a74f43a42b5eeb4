package service

import (
	"testing"

	"kidslearn_backend/internal/model"
)

func TestCreateLegacyRejectsSubjectsWithoutEmbeddedTables(t *testing.T) {
	s := &AssignmentService{}
	parent := &model.User{Role: model.Parent}
	parent.ID = 1

	req := CreateAssignmentRequest{
		ChildID: 2,
		Subject: model.SubjectEnglish,
		Title:   "Sight words",
		Questions: []LegacyQuestionRequest{
			{Prompt: "Spell 'cat'", AnswerType: "text", CorrectAnswer: "cat"},
		},
	}

	if _, err := s.CreateLegacy(parent, req); err == nil {
		t.Fatal("expected english legacy assignment to be rejected")
	}

	// The gate fires before any storage access, so stats scans over the
	// two legacy tables can never see another subject's answers.
	for _, subject := range []model.Subject{"science", "history", ""} {
		req.Subject = subject
		if _, err := s.CreateLegacy(parent, req); err == nil {
			t.Fatalf("expected subject %q to be rejected", subject)
		}
	}
}

package scoring

import (
	"testing"

	"kidslearn_backend/internal/model"
)

// Full walk-through of a three-problem package: two right, one wrong.
// Coins: 15 (streak 1) + 20 (streak 2) + 0 (wrong, streak reset) + 50
// completion bonus = 85.
func TestApplyThreeProblemScenario(t *testing.T) {
	st := State{
		Questions: []Question{
			{ID: 1, AnswerType: AnswerTypeNumber, CorrectAnswer: "2"},
			{ID: 2, AnswerType: AnswerTypeNumber, CorrectAnswer: "4"},
			{ID: 3, AnswerType: AnswerTypeNumber, CorrectAnswer: "12"},
		},
		Answered: map[uint]bool{},
		Status:   model.StatusPending,
		Streak:   0,
	}

	total := 0

	out, err := Apply(st, 1, "2")
	if err != nil {
		t.Fatal(err)
	}
	if !out.Correct || out.Coins != 15 || out.NewStreak != 1 {
		t.Fatalf("first submission: %+v", out)
	}
	if out.NewStatus != model.StatusInProgress {
		t.Fatalf("first submission must move pending->in_progress, got %s", out.NewStatus)
	}
	total += out.TotalCoins
	st.Answered[1] = true
	st.Status = out.NewStatus
	st.Streak = out.NewStreak

	out, err = Apply(st, 2, "4")
	if err != nil {
		t.Fatal(err)
	}
	if !out.Correct || out.Coins != 20 || out.NewStreak != 2 || out.Completed {
		t.Fatalf("second submission: %+v", out)
	}
	total += out.TotalCoins
	st.Answered[2] = true
	st.Status = out.NewStatus
	st.Streak = out.NewStreak

	out, err = Apply(st, 3, "18")
	if err != nil {
		t.Fatal(err)
	}
	if out.Correct || out.Coins != 0 || out.NewStreak != 0 {
		t.Fatalf("third submission: %+v", out)
	}
	if !out.Completed || out.NewStatus != model.StatusCompleted {
		t.Fatalf("third submission must complete the assignment: %+v", out)
	}
	if out.TotalCoins != CompletionBonus {
		t.Fatalf("wrong final answer still earns the completion bonus only, got %d", out.TotalCoins)
	}
	total += out.TotalCoins

	if total != 85 {
		t.Fatalf("total coins = %d, want 85", total)
	}
}

func TestApplyPendingMovesOnWrongAnswer(t *testing.T) {
	st := State{
		Questions: []Question{
			{ID: 1, AnswerType: AnswerTypeNumber, CorrectAnswer: "2"},
			{ID: 2, AnswerType: AnswerTypeNumber, CorrectAnswer: "4"},
		},
		Answered: map[uint]bool{},
		Status:   model.StatusPending,
	}
	out, err := Apply(st, 1, "99")
	if err != nil {
		t.Fatal(err)
	}
	if out.Correct || out.NewStatus != model.StatusInProgress {
		t.Fatalf("pending->in_progress is unconditional on first submission: %+v", out)
	}
}

func TestApplyCompletionBonusOnlyOnce(t *testing.T) {
	st := State{
		Questions: []Question{{ID: 1, AnswerType: AnswerTypeNumber, CorrectAnswer: "2"}},
		Answered:  map[uint]bool{1: true},
		Status:    model.StatusCompleted,
		Streak:    3,
	}
	// Re-submitting into a completed assignment re-applies the per-answer
	// reward (observed upsert behavior) but never the completion bonus.
	out, err := Apply(st, 1, "2")
	if err != nil {
		t.Fatal(err)
	}
	if out.Completed {
		t.Fatal("completed is terminal, transition must not fire again")
	}
	if out.TotalCoins != out.Coins {
		t.Fatalf("completion bonus re-granted: %+v", out)
	}
}

func TestApplyUnknownQuestion(t *testing.T) {
	st := State{Questions: []Question{{ID: 1}}, Answered: map[uint]bool{}}
	if _, err := Apply(st, 99, "x"); err != ErrQuestionNotFound {
		t.Fatalf("got %v, want ErrQuestionNotFound", err)
	}
}

func TestApplyCorruptedQuestionNeverBlocks(t *testing.T) {
	st := State{
		Questions: []Question{
			{ID: 1, AnswerType: AnswerTypeNumber, CorrectAnswer: "2"},
			{ID: 2, AnswerType: AnswerTypeMultipleChoice, Options: []byte(`["A"]`)},
		},
		Answered: map[uint]bool{},
		Status:   model.StatusPending,
	}
	out, err := Apply(st, 1, "2")
	if err != nil {
		t.Fatal(err)
	}
	if !out.Completed {
		t.Fatalf("corrupted MC question must not block completion: %+v", out)
	}
}

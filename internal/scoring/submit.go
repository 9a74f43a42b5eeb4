package scoring

import (
	"errors"

	"kidslearn_backend/internal/model"
)

var ErrQuestionNotFound = errors.New("question not in assignment")

// State is the loaded-in-memory view of an assignment at submission time:
// its full question set, which questions already have an answer, its
// status, and the child's current streak.
type State struct {
	Questions []Question
	Answered  map[uint]bool
	Status    model.AssignmentStatus
	Streak    int
}

// Outcome is everything the storage layer must persist for one submission.
type Outcome struct {
	Correct     bool
	Coins       int
	NewStreak   int
	NewStatus   model.AssignmentStatus
	Completed   bool // true only at the in_progress -> completed transition
	TotalCoins  int  // Coins plus the completion bonus when Completed
	CorrectText string
}

// Apply runs one submission through the full rule set: evaluate, reward,
// mark answered, advance the status machine. Status moves pending ->
// in_progress on any first submission regardless of correctness, and ->
// completed the first time every answerable question has an answer. The
// completion bonus is granted only on that transition, never again.
func Apply(st State, questionID uint, submitted string) (Outcome, error) {
	var q *Question
	for i := range st.Questions {
		if st.Questions[i].ID == questionID {
			q = &st.Questions[i]
			break
		}
	}
	if q == nil {
		return Outcome{}, ErrQuestionNotFound
	}

	out := Outcome{CorrectText: q.CorrectAnswer}
	out.Correct = Evaluate(*q, submitted)
	out.Coins, out.NewStreak = Reward(out.Correct, st.Streak)
	out.TotalCoins = out.Coins

	answered := make(map[uint]bool, len(st.Answered)+1)
	for id, ok := range st.Answered {
		answered[id] = ok
	}
	answered[questionID] = true

	out.NewStatus = st.Status
	if st.Status == model.StatusPending {
		out.NewStatus = model.StatusInProgress
	}
	if out.NewStatus != model.StatusCompleted && IsComplete(st.Questions, answered) {
		out.NewStatus = model.StatusCompleted
		out.Completed = true
		out.TotalCoins += CompletionBonus
	}
	return out, nil
}

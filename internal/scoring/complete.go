package scoring

// IsComplete reports whether an assignment is done: every answerable
// question has a submitted answer. Unanswerable (corrupted) questions are
// excluded from both the denominator and the numerator, so they can never
// block completion and are never counted as answered. answered maps
// question ID to "has a non-null submitted answer".
//
// The caller re-evaluates this after every single submission; the
// in_progress -> completed transition is applied exactly once, the first
// time the predicate turns true.
func IsComplete(questions []Question, answered map[uint]bool) bool {
	required := 0
	done := 0
	for _, q := range questions {
		if !IsAnswerable(q.AnswerType, q.Options) {
			continue
		}
		required++
		if answered[q.ID] {
			done++
		}
	}
	return done >= required
}

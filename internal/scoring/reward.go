package scoring

const (
	baseCoins  = 10
	streakStep = 5
	streakCap  = 25

	// CompletionBonus is the flat one-time award applied at the
	// in_progress -> completed transition, in the same transaction as the
	// triggering answer.
	CompletionBonus = 50
)

// Reward computes the coins for one submission and the child's new streak.
// A correct answer extends the streak and earns 10 plus a streak bonus of
// 5 per consecutive correct answer, capped at 25 (35 coins max). A wrong
// answer earns nothing and resets the streak.
func Reward(correct bool, currentStreak int) (coinsEarned, newStreak int) {
	if !correct {
		return 0, 0
	}
	newStreak = currentStreak + 1
	bonus := newStreak * streakStep
	if bonus > streakCap {
		bonus = streakCap
	}
	return baseCoins + bonus, newStreak
}

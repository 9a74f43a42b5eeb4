package scoring

import "testing"

func TestRewardCorrect(t *testing.T) {
	cases := []struct {
		streak     int
		wantCoins  int
		wantStreak int
	}{
		{0, 15, 1},
		{1, 20, 2},
		{2, 25, 3},
		{3, 30, 4},
		{4, 35, 5},
		{5, 35, 6}, // bonus capped at 25
		{50, 35, 51},
	}
	for _, c := range cases {
		coins, streak := Reward(true, c.streak)
		if coins != c.wantCoins || streak != c.wantStreak {
			t.Fatalf("Reward(true,%d)=(%d,%d), want (%d,%d)",
				c.streak, coins, streak, c.wantCoins, c.wantStreak)
		}
	}
}

func TestRewardIncorrectResetsStreak(t *testing.T) {
	for _, s := range []int{0, 1, 7, 100} {
		coins, streak := Reward(false, s)
		if coins != 0 || streak != 0 {
			t.Fatalf("Reward(false,%d)=(%d,%d), want (0,0)", s, coins, streak)
		}
	}
}

func TestRewardMonotonicInStreak(t *testing.T) {
	prev := 0
	for s := 0; s < 20; s++ {
		coins, _ := Reward(true, s)
		if coins < prev {
			t.Fatalf("coins decreased at streak %d: %d < %d", s, coins, prev)
		}
		if coins > 35 {
			t.Fatalf("coins exceed cap at streak %d: %d", s, coins)
		}
		prev = coins
	}
}

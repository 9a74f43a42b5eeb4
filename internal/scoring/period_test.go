package scoring

import (
	"testing"
	"time"

	"kidslearn_backend/internal/model"
)

func TestParsePeriod(t *testing.T) {
	for _, s := range []string{"7d", "30d", "all", ""} {
		if _, err := ParsePeriod(s); err != nil {
			t.Fatalf("ParsePeriod(%q): %v", s, err)
		}
	}
	if _, err := ParsePeriod("90d"); err == nil {
		t.Fatal("90d should be rejected")
	}
}

func TestPeriodCutoff(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	c, ok := PeriodWeek.Cutoff(now)
	if !ok || !c.Equal(now.AddDate(0, 0, -7)) {
		t.Fatalf("7d cutoff = %v ok=%v", c, ok)
	}
	c, ok = PeriodMonth.Cutoff(now)
	if !ok || !c.Equal(now.AddDate(0, 0, -30)) {
		t.Fatalf("30d cutoff = %v ok=%v", c, ok)
	}
	if _, ok := PeriodAll.Cutoff(now); ok {
		t.Fatal("all must apply no bound")
	}
	// A widening window can only include more: 7d cutoff is after 30d's.
	week, _ := PeriodWeek.Cutoff(now)
	month, _ := PeriodMonth.Cutoff(now)
	if !month.Before(week) {
		t.Fatal("30d window must contain 7d window")
	}
}

func TestMergeStatsIsFieldwiseSum(t *testing.T) {
	a := model.SubjectStats{Correct: 3, Incorrect: 1}
	b := model.SubjectStats{Correct: 2, Incorrect: 4}
	got := MergeStats(a, b)
	if got.Correct != 5 || got.Incorrect != 5 {
		t.Fatalf("MergeStats = %+v", got)
	}
	// Zero value is the identity: missing data contributes nothing.
	if MergeStats(a, model.SubjectStats{}) != a {
		t.Fatal("zero stats must be merge identity")
	}
}

func TestMergeDaily(t *testing.T) {
	a := []model.DailyStats{
		{Date: "2026-03-01", Correct: 2, Incorrect: 1},
		{Date: "2026-03-03", Correct: 1},
	}
	b := []model.DailyStats{
		{Date: "2026-03-01", Correct: 1, Incorrect: 1},
		{Date: "2026-03-02", Incorrect: 2},
	}
	got := MergeDaily(a, b)
	want := []model.DailyStats{
		{Date: "2026-03-01", Correct: 3, Incorrect: 2},
		{Date: "2026-03-02", Correct: 0, Incorrect: 2},
		{Date: "2026-03-03", Correct: 1, Incorrect: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("len=%d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

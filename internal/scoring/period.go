package scoring

import (
	"fmt"
	"sort"
	"time"

	"kidslearn_backend/internal/model"
)

// Period bounds a stats scan to a trailing window. The lower bound is
// inclusive (timestamp >= now - N days); "all" applies no bound.
type Period string

const (
	PeriodWeek  Period = "7d"
	PeriodMonth Period = "30d"
	PeriodAll   Period = "all"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodAll:
		return Period(s), nil
	case "":
		return PeriodAll, nil
	}
	return "", fmt.Errorf("invalid period %q", s)
}

// Cutoff returns the window's lower bound. ok is false for "all".
func (p Period) Cutoff(now time.Time) (cutoff time.Time, ok bool) {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7), true
	case PeriodMonth:
		return now.AddDate(0, 0, -30), true
	}
	return time.Time{}, false
}

// MergeStats sums two aggregates field-wise. Package and legacy rows belong
// to the same assignment timeline, so combining sources is plain addition.
func MergeStats(a, b model.SubjectStats) model.SubjectStats {
	return model.SubjectStats{
		Correct:   a.Correct + b.Correct,
		Incorrect: a.Incorrect + b.Incorrect,
	}
}

// MergeDaily merges two by-date series, summing same-date buckets. The
// result is sorted by date; dates with no activity stay absent.
func MergeDaily(a, b []model.DailyStats) []model.DailyStats {
	byDate := make(map[string]model.SubjectStats, len(a)+len(b))
	for _, d := range a {
		s := byDate[d.Date]
		s.Correct += d.Correct
		s.Incorrect += d.Incorrect
		byDate[d.Date] = s
	}
	for _, d := range b {
		s := byDate[d.Date]
		s.Correct += d.Correct
		s.Incorrect += d.Incorrect
		byDate[d.Date] = s
	}
	out := make([]model.DailyStats, 0, len(byDate))
	for date, s := range byDate {
		out = append(out, model.DailyStats{Date: date, Correct: s.Correct, Incorrect: s.Incorrect})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

package ledger

import (
	"sort"
	"time"
)

func parseDay(day string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, day, time.Local)
}

// DailyScore is one day's bucket.
type DailyScore struct {
	Date  string
	Score int
}

// History returns the daily buckets sorted by date, oldest first.
func (l *Ledger) History() []DailyScore {
	out := make([]DailyScore, 0, len(l.rec.DailyScores))
	for day, v := range l.rec.DailyScores {
		out = append(out, DailyScore{Date: day, Score: v})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// Streak returns the number of consecutive days with points, ending today
// or yesterday. A day without play today does not break a streak until it
// is over.
func (l *Ledger) Streak() int {
	today, err := parseDay(l.today)
	if err != nil {
		return 0
	}

	day := today
	if l.rec.DailyScores[l.today] == 0 {
		day = today.AddDate(0, 0, -1)
	}

	streak := 0
	for l.rec.DailyScores[day.Format(DateLayout)] > 0 {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

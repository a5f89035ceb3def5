// Package ledger keeps the persisted per-player, per-activity score record:
// a bucket per calendar day, the lifetime total and the best day so far.
//
// Each (player, activity) pair lives in its own JSON file. A ledger is
// written synchronously after every change; a failed write is reported to
// the caller as a warning while the in-memory ledger stays authoritative
// for the rest of the process.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/vovakirdan/learning-adventure/internal/config"
	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/player"
)

// DateLayout is the format of day keys in the record.
const DateLayout = "2006-01-02"

var (
	// ErrMalformed wraps read and decode failures of a save file.
	ErrMalformed = errors.New("ledger: malformed save file")

	// ErrInvalidPoints is returned by AddPoints for non-positive amounts.
	ErrInvalidPoints = errors.New("ledger: points must be positive")
)

// Record is the persisted form of a ledger.
type Record struct {
	LifetimeScore int            `json:"lifetime_score"`
	BestDayScore  int            `json:"best_day_score"`
	BestDayDate   string         `json:"best_day_date"`
	DailyScores   map[string]int `json:"daily_scores"`
}

// Stats is a read-only snapshot of a ledger.
type Stats struct {
	Today       int
	Lifetime    int
	BestDay     int
	BestDayDate string
}

// Store opens ledgers from a save directory.
type Store struct {
	dir   string
	clock core.Clock
}

// NewStore returns a store rooted at dir. A leading "~" is expanded to the
// user's home directory; the directory is created on first write.
func NewStore(dir string, clock core.Clock) *Store {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Store{dir: config.ExpandHome(dir), clock: clock}
}

// Dir returns the resolved save directory.
func (s *Store) Dir() string {
	return s.dir
}

// FileName returns the save file name for a (player, activity) pair.
func FileName(p player.ID, activity string) string {
	return fmt.Sprintf("%s_%s_scores.json", p, activity)
}

// Path returns the full save file path for a (player, activity) pair.
func (s *Store) Path(p player.ID, activity string) string {
	return filepath.Join(s.dir, FileName(p, activity))
}

// Load reads the ledger for (p, activity). The returned ledger is never nil.
//
// A missing file yields a zero ledger that is persisted immediately. A file
// that cannot be read or decoded yields a zero ledger and an error wrapping
// ErrMalformed; the file is left alone until the next successful write.
// A file whose totals disagree with its daily buckets loads with the lifetime
// score and best day rebuilt from the buckets. A failed initial write is
// returned as an error as well. All errors are warnings: the ledger is
// usable either way.
func (s *Store) Load(p player.ID, activity string) (*Ledger, error) {
	l := &Ledger{
		player:   p,
		activity: activity,
		path:     s.Path(p, activity),
		today:    s.clock.Now().Format(DateLayout),
		rec:      zeroRecord(),
	}

	data, err := os.ReadFile(l.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := l.persist(); err != nil {
			return l, err
		}
		return l, nil
	case err != nil:
		return l, fmt.Errorf("%w: %s: %w", ErrMalformed, l.path, err)
	}

	rec, err := decode(data)
	if err != nil {
		return l, fmt.Errorf("%w: %s: %w", ErrMalformed, l.path, err)
	}
	l.rec = rec
	return l, nil
}

func zeroRecord() Record {
	return Record{DailyScores: make(map[string]int)}
}

func decode(data []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, err
	}
	if rec.DailyScores == nil {
		rec.DailyScores = make(map[string]int)
	}
	if rec.LifetimeScore < 0 || rec.BestDayScore < 0 {
		return Record{}, errors.New("negative score")
	}
	for day, v := range rec.DailyScores {
		if v < 0 {
			return Record{}, fmt.Errorf("negative score on %s", day)
		}
		if _, err := parseDay(day); err != nil {
			return Record{}, err
		}
	}
	rebuildTotals(&rec)
	return rec, nil
}

// rebuildTotals derives the lifetime score and best day from the daily
// buckets. Points only ever land on the latest day, so the best day is the
// earliest day holding the highest score.
func rebuildTotals(rec *Record) {
	days := make([]string, 0, len(rec.DailyScores))
	for d := range rec.DailyScores {
		days = append(days, d)
	}
	sort.Strings(days)

	total, best, bestDate := 0, 0, ""
	for _, d := range days {
		v := rec.DailyScores[d]
		total += v
		if v > best {
			best, bestDate = v, d
		}
	}
	rec.LifetimeScore = total
	rec.BestDayScore = best
	rec.BestDayDate = bestDate
}

// Ledger is the in-memory score record of one player and activity.
type Ledger struct {
	player   player.ID
	activity string
	path     string
	today    string
	rec      Record
}

// Player returns the ledger's player.
func (l *Ledger) Player() player.ID {
	return l.player
}

// Activity returns the ledger's activity type.
func (l *Ledger) Activity() string {
	return l.activity
}

// Path returns the save file path.
func (l *Ledger) Path() string {
	return l.path
}

// Today returns the date key this ledger writes to.
func (l *Ledger) Today() string {
	return l.today
}

// AddPoints adds n points to today's bucket, recomputes the lifetime total
// and best day, and writes the file. The best day only moves when today's
// total strictly exceeds it, so the first day to reach a score keeps it.
func (l *Ledger) AddPoints(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPoints, n)
	}

	l.rec.DailyScores[l.today] += n

	total := 0
	for _, v := range l.rec.DailyScores {
		total += v
	}
	l.rec.LifetimeScore = total

	if today := l.rec.DailyScores[l.today]; today > l.rec.BestDayScore {
		l.rec.BestDayScore = today
		l.rec.BestDayDate = l.today
	}

	return l.persist()
}

// TodayScore returns the points recorded for today.
func (l *Ledger) TodayScore() int {
	return l.rec.DailyScores[l.today]
}

// Stats returns today's, lifetime and best-day figures.
func (l *Ledger) Stats() Stats {
	return Stats{
		Today:       l.TodayScore(),
		Lifetime:    l.rec.LifetimeScore,
		BestDay:     l.rec.BestDayScore,
		BestDayDate: l.rec.BestDayDate,
	}
}

// Record returns a copy of the underlying record.
func (l *Ledger) Record() Record {
	rec := l.rec
	rec.DailyScores = make(map[string]int, len(l.rec.DailyScores))
	for k, v := range l.rec.DailyScores {
		rec.DailyScores[k] = v
	}
	return rec
}

func (l *Ledger) persist() error {
	data, err := json.MarshalIndent(l.rec, "", "    ")
	if err != nil {
		return fmt.Errorf("ledger: cannot encode %s: %w", l.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("ledger: cannot create directory: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("ledger: cannot write %s: %w", l.path, err)
	}
	return nil
}

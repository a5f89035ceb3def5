// Package session tracks a single play-through of an activity, from the
// moment the player presses start until the score is flushed.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/learning-adventure/internal/player"
)

// ID uniquely identifies a game session.
type ID string

// NewID returns a fresh random session id.
func NewID() ID {
	return ID(uuid.NewString())
}

// Session is the live state of one game run.
type Session struct {
	id        ID
	activity  string
	player    player.ID
	score     int
	active    bool
	startedAt time.Time
	endedAt   time.Time
}

// Summary is the immutable record of a finished session.
type Summary struct {
	ID        ID
	Activity  string
	Player    player.ID
	Score     int
	StartedAt time.Time
	EndedAt   time.Time
}

// Start creates an active session.
func Start(activity string, p player.ID, now time.Time) *Session {
	return &Session{
		id:        NewID(),
		activity:  activity,
		player:    p,
		active:    true,
		startedAt: now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() ID {
	return s.id
}

// Activity returns the activity type being played.
func (s *Session) Activity() string {
	return s.activity
}

// Player returns the player of this session.
func (s *Session) Player() player.ID {
	return s.player
}

// Score returns the points earned so far.
func (s *Session) Score() int {
	return s.score
}

// Active reports whether the session still accepts points.
func (s *Session) Active() bool {
	return s.active
}

// AddScore adds points to an active session. Non-positive amounts and
// inactive sessions are ignored so the score never decreases.
func (s *Session) AddScore(points int) {
	if !s.active || points <= 0 {
		return
	}
	s.score += points
}

// End deactivates the session and returns its summary. The second return
// is false if the session had already ended, so a score is flushed once.
func (s *Session) End(now time.Time) (Summary, bool) {
	if !s.active {
		return s.summary(), false
	}
	s.active = false
	s.endedAt = now
	return s.summary(), true
}

func (s *Session) summary() Summary {
	return Summary{
		ID:        s.id,
		Activity:  s.activity,
		Player:    s.player,
		Score:     s.score,
		StartedAt: s.startedAt,
		EndedAt:   s.endedAt,
	}
}

// Package spelling implements the fill-in-the-blank spelling activity.
// A sentence with a missing word is shown; the player types the word and
// presses Enter. Each correct answer is worth one point and every check
// draws a new challenge, so the activity never ends on its own.
package spelling

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"

	"github.com/vovakirdan/learning-adventure/internal/config"
	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/input"
	"github.com/vovakirdan/learning-adventure/internal/player"
	"github.com/vovakirdan/learning-adventure/internal/registry"
)

// ID is the activity type used in menus, transitions and save files.
const ID = "spelling"

const (
	// FeedbackCorrect is shown after a correct answer.
	FeedbackCorrect = "Correct!"
	// feedbackWrong is formatted with the expected word.
	feedbackWrong = "Not quite! The word was: %s"

	// MaxInput caps the typed answer in runes.
	MaxInput = 32

	// DefaultFeedback is used when no feedback duration is configured.
	DefaultFeedback = 2000 * time.Millisecond
)

// poolPath is the custom challenge pool file, empty for the built-in pools.
var poolPath string

// SetPoolPath sets the custom challenge pool path for loading.
func SetPoolPath(path string) {
	poolPath = path
}

// Challenge is the sentence with a blank and the word that fills it.
type Challenge = config.Challenge

// Spelling holds the state of one spelling activity.
type Spelling struct {
	player   player.ID
	pool     []Challenge
	rng      *rand.Rand
	clock    core.Clock
	logger   *log.Logger
	feedback time.Duration

	current Challenge
	input   []rune

	message    string    // Last feedback text
	correct    bool      // Whether message reports a correct answer
	checkedAt  time.Time // Instant of the last check
	hasMessage bool      // Feedback window still open as of the last Update
}

// New creates a spelling activity for a player drawing from pool.
// A nil rng, clock or logger is replaced with a default.
func New(p player.ID, pool []Challenge, opts registry.Options) (*Spelling, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("spelling: no challenges for player %s", p)
	}
	s := &Spelling{
		player:   p,
		pool:     pool,
		rng:      opts.Rand,
		clock:    opts.Clock,
		logger:   opts.Logger,
		feedback: opts.Feedback,
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if s.clock == nil {
		s.clock = core.SystemClock{}
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.feedback <= 0 {
		s.feedback = DefaultFeedback
	}
	s.next()
	return s, nil
}

// ID returns the activity type.
func (s *Spelling) ID() string {
	return ID
}

// Setup draws a fresh challenge and clears input and feedback.
func (s *Spelling) Setup() {
	s.next()
	s.input = s.input[:0]
	s.message = ""
	s.correct = false
	s.hasMessage = false
	s.checkedAt = time.Time{}
	s.logger.Debug("spelling setup", "player", s.player)
}

// HandleInput applies one event: letters and spaces are typed, backspace
// deletes, Enter checks the answer. Everything else is ignored.
func (s *Spelling) HandleInput(ev input.Event) int {
	switch ev.Kind {
	case input.KindRune:
		if (unicode.IsLetter(ev.Rune) || ev.Rune == ' ') && len(s.input) < MaxInput {
			s.input = append(s.input, ev.Rune)
		}
	case input.KindKey:
		switch ev.Key {
		case input.KeyBackspace:
			if len(s.input) > 0 {
				s.input = s.input[:len(s.input)-1]
			}
		case input.KeyEnter:
			if s.Submit() {
				return 1
			}
		}
	}
	return 0
}

// Submit checks the typed answer, sets feedback, resets the input and
// draws the next challenge. It reports whether the answer was correct.
func (s *Spelling) Submit() bool {
	answer := string(s.input)
	word := s.current.Word
	ok := s.CheckAnswer(answer)

	if ok {
		s.message = FeedbackCorrect
		s.logger.Info("spelling check", "player", s.player, "correct", true)
	} else {
		s.message = fmt.Sprintf(feedbackWrong, word)
		s.logger.Info("spelling check", "player", s.player, "correct", false,
			"distance", levenshtein.ComputeDistance(fold(answer), fold(word)))
	}
	s.correct = ok
	s.checkedAt = s.clock.Now()
	s.hasMessage = true
	s.input = s.input[:0]
	s.next()
	return ok
}

// CheckAnswer reports whether answer matches the current word, ignoring
// surrounding whitespace and letter case.
func (s *Spelling) CheckAnswer(answer string) bool {
	return Matches(answer, s.current.Word)
}

// Matches compares a typed answer against a word: whitespace is trimmed
// from the answer and both sides are case-folded. No partial credit.
func Matches(answer, word string) bool {
	return fold(answer) == fold(word)
}

func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Update closes the feedback window once it has elapsed.
func (s *Spelling) Update(now time.Time) {
	if s.hasMessage && !s.feedbackVisible(now) {
		s.hasMessage = false
	}
}

func (s *Spelling) feedbackVisible(now time.Time) bool {
	return s.message != "" && now.Sub(s.checkedAt) < s.feedback
}

// Done is always false; spelling loops until the player leaves.
func (s *Spelling) Done() bool {
	return false
}

// Instructions returns the lines shown before a session starts.
func (s *Spelling) Instructions(p player.ID) []string {
	return []string{
		"Complete the sentence by spelling the missing word",
		"Type your answer and press Enter to submit",
		"Get 1 point for each correct spelling!",
		fmt.Sprintf("These words are chosen for %s's age group", p.Name()),
	}
}

// Current returns the challenge being asked.
func (s *Spelling) Current() Challenge {
	return s.current
}

// Input returns the answer typed so far.
func (s *Spelling) Input() string {
	return string(s.input)
}

// Feedback returns the feedback text visible at now, or "".
func (s *Spelling) Feedback(now time.Time) string {
	if !s.hasMessage || !s.feedbackVisible(now) {
		return ""
	}
	return s.message
}

// next draws a challenge uniformly at random, with replacement.
func (s *Spelling) next() {
	s.current = s.pool[s.rng.IntN(len(s.pool))]
}

func init() {
	registry.Register(registry.Info{
		ID:    ID,
		Title: "Spelling",
		Label: "Spelling Fun!",
		Color: core.ColorPink,
		Order: 1,
		Factory: func(opts registry.Options) (registry.Activity, error) {
			pools, err := config.LoadSpelling(poolPath)
			if err != nil {
				return nil, err
			}
			return New(opts.Player, pools.Pool(string(opts.Player)), opts)
		},
	})
}

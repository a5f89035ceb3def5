package screen

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/learning-adventure/internal/control"
	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/input"
	"github.com/vovakirdan/learning-adventure/internal/ledger"
	"github.com/vovakirdan/learning-adventure/internal/player"
	"github.com/vovakirdan/learning-adventure/internal/registry"
	"github.com/vovakirdan/learning-adventure/internal/session"
)

// GameState is the phase of a Game screen.
type GameState int

const (
	StateNotStarted GameState = iota
	StateActive
	StateResults
)

func (s GameState) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateActive:
		return "active"
	case StateResults:
		return "results"
	default:
		return "unknown"
	}
}

const (
	startButtonWidth = 24
	scoreY           = 4
	activityTop      = 6
)

// Game hosts one activity for one player and owns its session.
type Game struct {
	base
	player   player.ID
	info     registry.Info
	activity registry.Activity
	ledger   *ledger.Ledger

	state       GameState
	sess        *session.Session
	lastScore   int
	bestSession int

	start *control.Button
	again *control.Button
}

// NewGame creates the game screen for activity and player p.
func NewGame(deps Deps, p player.ID, activity string) (*Game, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("screen: game needs a player, got %q", p)
	}
	info, ok := registry.Lookup(activity)
	if !ok {
		return nil, fmt.Errorf("screen: unknown activity %q", activity)
	}

	g := &Game{
		base:   newBase(deps, "Back"),
		player: p,
		info:   info,
		start:  control.New(core.Rect{}, "Start Game", core.ColorMintGreen),
		again:  control.New(core.Rect{}, "Play again", core.ColorPink),
	}

	a, err := registry.Create(activity, registry.Options{
		Player:   p,
		Rand:     g.deps.Rand,
		Clock:    g.deps.Clock,
		Logger:   g.deps.Logger.With("activity", activity),
		Feedback: g.deps.Config.Feedback,
	})
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}
	g.activity = a
	g.ledger = g.loadLedger()
	if g.deps.History != nil {
		best, err := g.deps.History.BestSession(p, activity)
		if err != nil {
			g.deps.Logger.Warn("session history read failed", "player", p, "activity", activity, "error", err)
		}
		g.bestSession = best
	}
	g.layout()
	return g, nil
}

func (g *Game) loadLedger() *ledger.Ledger {
	if g.deps.Ledgers == nil {
		return nil
	}
	l, err := g.deps.Ledgers.Load(g.player, g.info.ID)
	if err != nil {
		g.deps.Logger.Warn("ledger load failed", "player", g.player, "activity", g.info.ID, "path", l.Path(), "error", err)
	}
	return l
}

func (g *Game) Kind() Kind { return KindGame }

// State returns the current phase.
func (g *Game) State() GameState { return g.state }

// Player returns the player of this game.
func (g *Game) Player() player.ID { return g.player }

// Activity returns the activity type.
func (g *Game) Activity() string { return g.info.ID }

// Score returns the running session score, or the final score of the
// last session while showing results.
func (g *Game) Score() int {
	if g.sess != nil && g.sess.Active() {
		return g.sess.Score()
	}
	return g.lastScore
}

func (g *Game) layout() {
	mid := g.height / 2
	g.start.Bounds = g.centered(mid-2, startButtonWidth, buttonHeight)
	g.again.Bounds = g.centered(mid+2, startButtonWidth, buttonHeight)
}

func (g *Game) Resize(width, height int) {
	g.resize(width, height)
	g.layout()
}

// HandleInput starts with Enter before a session, feeds the activity while
// active and returns to the start state with Enter on the results.
func (g *Game) HandleInput(ev input.Event) bool {
	if ev.IsKey(input.KeyEscape) {
		return g.OnBack()
	}
	switch g.state {
	case StateNotStarted:
		if ev.IsKey(input.KeyEnter) {
			g.begin()
		}
	case StateActive:
		if pts := g.activity.HandleInput(ev); pts > 0 {
			g.sess.AddScore(pts)
		}
		if g.activity.Done() {
			g.finish()
		}
	case StateResults:
		if ev.IsKey(input.KeyEnter) {
			g.state = StateNotStarted
		}
	}
	return true
}

// Update polls every control each tick, whether shown or not, so a press
// that swaps one control for another at the same spot clicks only once.
func (g *Game) Update(p input.Pointer) (bool, error) {
	if g.activity == nil {
		return true, errors.New("screen: game has no activity")
	}
	if !g.pointer(p) {
		g.tickActivity()
		return true, nil
	}
	if g.back.Poll(p) {
		return g.OnBack(), nil
	}
	startClicked := g.start.Poll(p)
	againClicked := g.again.Poll(p)

	switch g.state {
	case StateNotStarted:
		if startClicked {
			g.begin()
		}
	case StateActive:
		g.tickActivity()
	case StateResults:
		if againClicked {
			g.state = StateNotStarted
		}
	}
	return true, nil
}

func (g *Game) tickActivity() {
	if g.state != StateActive {
		return
	}
	g.activity.Update(g.deps.Clock.Now())
	if g.activity.Done() {
		g.finish()
	}
}

// begin opens a new session and resets the activity.
func (g *Game) begin() {
	g.sess = session.Start(g.info.ID, g.player, g.deps.Clock.Now())
	g.activity.Setup()
	g.state = StateActive
	g.deps.Logger.Info("session started", "session", g.sess.ID(), "player", g.player, "activity", g.info.ID)
}

// finish ends the session and shows the results.
func (g *Game) finish() {
	g.lastScore = g.sess.Score()
	g.flush()
	g.state = StateResults
}

// flush ends the running session once: its score goes to the ledger and
// the session to the history store. Failures are logged as warnings.
func (g *Game) flush() {
	if g.sess == nil {
		return
	}
	sum, ok := g.sess.End(g.deps.Clock.Now())
	if !ok {
		return
	}
	logger := g.deps.Logger.With("session", sum.ID, "player", sum.Player, "activity", sum.Activity)

	if sum.Score > 0 && g.ledger != nil {
		if err := g.ledger.AddPoints(sum.Score); err != nil {
			logger.Warn("ledger write failed", "path", g.ledger.Path(), "error", err)
		}
	}
	if g.deps.History != nil {
		if err := g.deps.History.SaveSession(sum); err != nil {
			logger.Warn("session history write failed", "error", err)
		}
		g.bestSession = max(g.bestSession, sum.Score)
	}
	logger.Info("session flushed", "score", sum.Score)
}

func (g *Game) Render(dst *core.Surface) error {
	if g.activity == nil {
		return errors.New("screen: game has no activity")
	}
	now := g.deps.Clock.Now()

	switch g.state {
	case StateNotStarted:
		g.drawFrame(dst, fmt.Sprintf("Welcome to %s!", g.info.Title))
		g.drawScores(dst)
		g.start.Render(dst)
		g.lines(dst, g.start.Bounds.Bottom()+1, g.activity.Instructions(g.player), core.ColorBlack)
	case StateActive:
		g.drawFrame(dst, fmt.Sprintf("%s's %s Game", g.player.Name(), g.info.Title))
		g.drawScores(dst)
		area := core.NewRect(0, activityTop, g.width, g.height-activityTop)
		g.activity.Render(dst, area, now)
	case StateResults:
		g.drawFrame(dst, fmt.Sprintf("%s's %s Game", g.player.Name(), g.info.Title))
		g.drawScores(dst)
		mid := g.height / 2
		dst.DrawTextCentered(mid-3, fmt.Sprintf("Great job, %s!", g.player.Name()), core.ColorPurple)
		dst.DrawTextCentered(mid-1, fmt.Sprintf("You scored %d points!", g.lastScore), core.ColorBlack)
		g.again.Render(dst)
	}
	return nil
}

// drawScores shows the session score on the left and the ledger figures
// on the right.
func (g *Game) drawScores(dst *core.Surface) {
	dst.DrawText(2, scoreY, fmt.Sprintf("Score: %d", g.Score()), core.ColorBlack)

	var text string
	if g.ledger != nil {
		st := g.ledger.Stats()
		text = fmt.Sprintf("Today: %d  Best day: %d", st.Today, st.BestDay)
	}
	if g.deps.History != nil {
		text += fmt.Sprintf("  Best game: %d", g.bestSession)
	}
	dst.DrawText(g.width-core.TextWidth(text)-2, scoreY, text, core.ColorBlack)
}

// OnBack returns to the menu for the same player.
func (g *Game) OnBack() bool {
	g.deps.Navigate(Transition{Target: KindMenu, Params: Params{Player: g.player}})
	return true
}

// Close flushes a session that is still running.
func (g *Game) Close() error {
	g.flush()
	return nil
}

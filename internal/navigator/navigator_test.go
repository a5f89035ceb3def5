package navigator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/learning-adventure/internal/activities/spelling"
	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/input"
	"github.com/vovakirdan/learning-adventure/internal/ledger"
	"github.com/vovakirdan/learning-adventure/internal/player"
	"github.com/vovakirdan/learning-adventure/internal/screen"

	_ "github.com/vovakirdan/learning-adventure/internal/activities/placeholder"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// fakeScreen is a scripted screen for fault and queueing tests.
type fakeScreen struct {
	onInput   func(ev input.Event) bool
	updateErr error
	panicMsg  string
	closed    int
}

func (f *fakeScreen) Kind() screen.Kind { return screen.KindMenu }

func (f *fakeScreen) HandleInput(ev input.Event) bool {
	if f.onInput != nil {
		return f.onInput(ev)
	}
	return true
}

func (f *fakeScreen) Update(input.Pointer) (bool, error) {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return true, f.updateErr
}

func (f *fakeScreen) Render(*core.Surface) error { return nil }
func (f *fakeScreen) OnBack() bool               { return true }
func (f *fakeScreen) Resize(int, int)            {}
func (f *fakeScreen) Close() error               { f.closed++; return nil }

type env struct {
	nav     *Navigator
	ledgers *ledger.Store
	dst     *core.Surface
}

// newEnv builds a navigator with a single-word spelling pool so answers
// are known in advance.
func newEnv(t *testing.T) *env {
	t.Helper()
	pool := filepath.Join(t.TempDir(), "spelling.yaml")
	data := "pools:\n" +
		"  ELLIE:\n    - sentence: \"The _______ hopped.\"\n      word: rabbit\n" +
		"  VIVI:\n    - sentence: \"The _______ hopped.\"\n      word: rabbit\n"
	if err := os.WriteFile(pool, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	spelling.SetPoolPath(pool)
	t.Cleanup(func() { spelling.SetPoolPath("") })

	clock := fixedClock{now: time.Date(2026, 6, 2, 15, 0, 0, 0, time.Local)}
	cfg := core.DefaultConfig()
	ledgers := ledger.NewStore(t.TempDir(), clock)
	nav := New(screen.Deps{
		Clock:   clock,
		Ledgers: ledgers,
		Config:  cfg,
	})
	return &env{nav: nav, ledgers: ledgers, dst: core.NewSurface(cfg.ScreenW, cfg.ScreenH)}
}

// find returns the position of text on the rendered surface.
func (e *env) find(t *testing.T, text string) core.Point {
	t.Helper()
	e.dst.Clear()
	e.nav.Render(e.dst)
	for y := range e.dst.Height() {
		row := []rune(e.dst.Row(y))
		needle := []rune(text)
		for x := 0; x+len(needle) <= len(row); x++ {
			if string(row[x:x+len(needle)]) == text {
				return core.Pt(x, y)
			}
		}
	}
	t.Fatalf("%q not on screen:\n%s", text, e.dst.String())
	return core.Point{}
}

// click runs an idle tick, then presses and releases over text within one
// tick, then idles again so the next screen sees the pointer released.
func (e *env) click(t *testing.T, text string) {
	t.Helper()
	p := e.find(t, text)
	e.nav.Tick(nil)
	if !e.nav.Tick([]input.Event{
		input.PointerEvent(input.KindPointerMove, p.X, p.Y),
		input.PointerEvent(input.KindPointerDown, p.X, p.Y),
		input.PointerEvent(input.KindPointerUp, p.X, p.Y),
	}) {
		t.Fatalf("click on %q exited", text)
	}
	e.nav.Tick(nil)
}

func (e *env) key(k input.Key) bool {
	return e.nav.Tick([]input.Event{input.KeyEvent(k)})
}

func (e *env) typeText(text string) {
	var events []input.Event
	for _, r := range text {
		events = append(events, input.RuneEvent(r))
	}
	e.nav.Tick(events)
}

func TestStartsOnPlayerSelect(t *testing.T) {
	e := newEnv(t)
	if got := e.nav.Current().Kind(); got != screen.KindPlayerSelect {
		t.Fatalf("initial screen = %v", got)
	}
}

func TestNavigationFlow(t *testing.T) {
	e := newEnv(t)

	e.click(t, "Ellie")
	menu, ok := e.nav.Current().(*screen.Menu)
	if !ok {
		t.Fatalf("after Ellie: %T", e.nav.Current())
	}
	if menu.Player() != player.Ellie {
		t.Fatalf("menu player = %q", menu.Player())
	}

	e.click(t, "Spelling Fun!")
	game, ok := e.nav.Current().(*screen.Game)
	if !ok {
		t.Fatalf("after Spelling Fun!: %T", e.nav.Current())
	}
	if game.Activity() != "spelling" || game.Player() != player.Ellie {
		t.Fatalf("game = %s/%s", game.Activity(), game.Player())
	}

	if !e.key(input.KeyEscape) {
		t.Fatal("back from game exited")
	}
	menu, ok = e.nav.Current().(*screen.Menu)
	if !ok || menu.Player() != player.Ellie {
		t.Fatalf("back from game: %T", e.nav.Current())
	}

	e.click(t, "Back")
	if got := e.nav.Current().Kind(); got != screen.KindPlayerSelect {
		t.Fatalf("back from menu = %v", got)
	}

	if e.key(input.KeyEscape) {
		t.Fatal("back from player select must exit")
	}
}

func TestQuitControlExits(t *testing.T) {
	e := newEnv(t)
	p := e.find(t, "Quit")
	e.nav.Tick(nil)
	if e.nav.Tick([]input.Event{
		input.PointerEvent(input.KindPointerDown, p.X, p.Y),
		input.PointerEvent(input.KindPointerUp, p.X, p.Y),
	}) {
		t.Fatal("Quit control must exit")
	}
}

func TestSessionFlushedOnce(t *testing.T) {
	e := newEnv(t)
	e.nav.Tick([]input.Event{input.RuneEvent('2')}) // Vivi
	e.nav.Tick([]input.Event{input.RuneEvent('1')}) // Spelling
	if _, ok := e.nav.Current().(*screen.Game); !ok {
		t.Fatalf("current = %T", e.nav.Current())
	}

	e.key(input.KeyEnter) // start
	for range 3 {
		e.typeText("Rabbit")
		e.key(input.KeyEnter)
	}
	e.key(input.KeyEscape)
	if err := e.nav.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	l, err := e.ledgers.Load(player.Vivi, "spelling")
	if err != nil {
		t.Fatal(err)
	}
	if got := l.TodayScore(); got != 3 {
		t.Fatalf("today = %d, want 3", got)
	}
}

func TestCloseFlushesRunningGame(t *testing.T) {
	e := newEnv(t)
	e.nav.Tick([]input.Event{input.RuneEvent('1'), input.RuneEvent('1')})
	e.key(input.KeyEnter)
	e.typeText("rabbit")
	e.key(input.KeyEnter)

	if err := e.nav.Close(); err != nil {
		t.Fatal(err)
	}
	l, _ := e.ledgers.Load(player.Ellie, "spelling")
	if got := l.TodayScore(); got != 1 {
		t.Fatalf("today = %d, want 1", got)
	}
}

func TestInvalidTransitionsIgnored(t *testing.T) {
	tests := []struct {
		name string
		tr   screen.Transition
	}{
		{"unregistered activity", screen.Transition{Target: screen.KindGame, Params: screen.Params{Player: player.Ellie, Activity: "history"}}},
		{"game without player", screen.Transition{Target: screen.KindGame, Params: screen.Params{Activity: "spelling"}}},
		{"menu without player", screen.Transition{Target: screen.KindMenu}},
		{"unknown target", screen.Transition{Target: screen.Kind(99)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(t)
			e.nav.Tick([]input.Event{input.RuneEvent('1')})
			before := e.nav.Current()

			e.nav.deps.Navigate(tc.tr)
			e.nav.applyPending()
			if e.nav.Current() != before {
				t.Fatalf("screen replaced by %T", e.nav.Current())
			}
			if e.nav.pending != nil {
				t.Fatal("pending transition not cleared")
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	e := newEnv(t)
	_, err := e.nav.build(screen.Transition{Target: screen.Kind(7)})
	if !errors.Is(err, ErrUnknownTarget) {
		t.Fatalf("err = %v", err)
	}
	_, err = e.nav.build(screen.Transition{Target: screen.KindGame, Params: screen.Params{Player: player.Vivi, Activity: "nope"}})
	if !errors.Is(err, ErrUnknownActivity) {
		t.Fatalf("err = %v", err)
	}
	_, err = e.nav.build(screen.Transition{Target: screen.KindMenu})
	if !errors.Is(err, ErrMissingPlayer) {
		t.Fatalf("err = %v", err)
	}
}

func TestFirstTransitionWins(t *testing.T) {
	e := newEnv(t)
	fake := &fakeScreen{}
	fake.onInput = func(input.Event) bool {
		e.nav.deps.Navigate(screen.Transition{Target: screen.KindMenu, Params: screen.Params{Player: player.Vivi}})
		e.nav.deps.Navigate(screen.Transition{Target: screen.KindPlayerSelect})
		return true
	}
	e.nav.current = fake

	e.nav.Tick([]input.Event{input.RuneEvent('x')})
	menu, ok := e.nav.Current().(*screen.Menu)
	if !ok || menu.Player() != player.Vivi {
		t.Fatalf("current = %T", e.nav.Current())
	}
	if fake.closed != 1 {
		t.Fatalf("outgoing screen closed %d times", fake.closed)
	}
}

func TestFaultLimitFallsBack(t *testing.T) {
	e := newEnv(t)
	fake := &fakeScreen{updateErr: errors.New("boom")}
	e.nav.current = fake

	for i := range DefaultFaultLimit - 1 {
		if !e.nav.Tick(nil) {
			t.Fatal("fault must not exit")
		}
		if e.nav.Current() != fake {
			t.Fatalf("fell back after %d faults", i+1)
		}
	}
	e.nav.Tick(nil)
	if got := e.nav.Current().Kind(); got != screen.KindPlayerSelect {
		t.Fatalf("after limit: %v", got)
	}
	if fake.closed != 1 {
		t.Fatalf("faulty screen closed %d times", fake.closed)
	}
}

func TestCleanTickResetsFaults(t *testing.T) {
	e := newEnv(t)
	fake := &fakeScreen{updateErr: errors.New("boom")}
	e.nav.current = fake

	e.nav.Tick(nil)
	e.nav.Tick(nil)
	fake.updateErr = nil
	e.nav.Tick(nil)
	fake.updateErr = errors.New("boom again")
	e.nav.Tick(nil)
	e.nav.Tick(nil)

	if e.nav.Current() != fake {
		t.Fatal("non-consecutive faults forced a fallback")
	}
}

func TestPanicIsFault(t *testing.T) {
	e := newEnv(t)
	fake := &fakeScreen{panicMsg: "nil map"}
	e.nav.current = fake

	for range DefaultFaultLimit {
		if !e.nav.Tick(nil) {
			t.Fatal("panic must not exit")
		}
	}
	if e.nav.Current() == fake {
		t.Fatal("panicking screen was kept")
	}
}

func TestInputFaultKeepsPointerReleases(t *testing.T) {
	e := newEnv(t)
	fake := &fakeScreen{}
	fake.onInput = func(ev input.Event) bool {
		if ev.Kind == input.KindKey && ev.Key == input.KeyTab {
			panic("tab")
		}
		return true
	}
	e.nav.current = fake

	e.nav.Tick([]input.Event{input.PointerEvent(input.KindPointerDown, 5, 5)})
	e.nav.Tick([]input.Event{
		input.KeyEvent(input.KeyTab),
		input.PointerEvent(input.KindPointerUp, 5, 5),
	})
	e.nav.Tick(nil)

	if got := e.nav.tracker.Current(); got.Pressed {
		t.Fatalf("pointer = %+v, want released", got)
	}
}

func TestSkippedAfterFault(t *testing.T) {
	e := newEnv(t)
	fake := &fakeScreen{updateErr: errors.New("boom")}
	e.nav.current = fake

	e.nav.Tick(nil)
	if !e.nav.Skipped() {
		t.Fatal("faulty tick not reported as skipped")
	}
	fake.updateErr = nil
	e.nav.Tick(nil)
	if e.nav.Skipped() {
		t.Fatal("clean tick reported as skipped")
	}
}

func TestFallbackTickNotSkipped(t *testing.T) {
	e := newEnv(t)
	e.nav.current = &fakeScreen{updateErr: errors.New("boom")}

	for range DefaultFaultLimit {
		e.nav.Tick(nil)
	}
	if e.nav.Skipped() {
		t.Fatal("fresh player select must be rendered")
	}
}

func TestGuardWrapsPanic(t *testing.T) {
	e := newEnv(t)
	err := e.nav.guard(func() error { panic("oops") })
	if !errors.Is(err, ErrPanic) || !strings.Contains(err.Error(), "oops") {
		t.Fatalf("err = %v", err)
	}
}

func TestResize(t *testing.T) {
	e := newEnv(t)
	e.nav.Resize(100, 30)
	dst := core.NewSurface(100, 30)
	e.nav.Render(dst)
	if !strings.Contains(dst.String(), "Who's Playing Today?") {
		t.Fatal("title missing after resize")
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/learning-adventure/internal/core"
	"github.com/vovakirdan/learning-adventure/internal/ledger"
	"github.com/vovakirdan/learning-adventure/internal/platform/tui"
	"github.com/vovakirdan/learning-adventure/internal/player"
	"github.com/vovakirdan/learning-adventure/internal/registry"
	"github.com/vovakirdan/learning-adventure/internal/storage"
)

const (
	recentSessions = 10
	recentDays     = 7
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores <player> [activity]",
	Short: "Show a player's scores",
	Long: `Display today's score, lifetime score and best day for a player,
with the most recent sessions. Opens an interactive view in a terminal;
use --plain to print instead.

Examples:
  adventure scores ellie
  adventure scores vivi spelling
  adventure scores ellie --plain`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores instead of opening the interactive view")
}

func runScores(cmd *cobra.Command, args []string) error {
	p, err := player.Parse(args[0])
	if err != nil {
		return fmt.Errorf("unknown player %q (run 'adventure list' to see players)", args[0])
	}

	activity := ""
	if len(args) == 2 {
		activity = args[1]
		if !registry.Exists(activity) {
			return fmt.Errorf("unknown activity %q (run 'adventure list' to see available activities)", activity)
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	src := tui.HistorySource{Ledgers: ledger.NewStore(cfg.Storage.SaveDir, core.SystemClock{})}
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
	} else {
		src.Sessions = store
		defer store.Close()
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(src, p, activity, width, height)
	}

	activities := registry.List()
	if activity != "" {
		info, _ := registry.Lookup(activity)
		activities = []registry.Info{info}
	}
	var games map[string]*storage.ActivityStats
	if src.Sessions != nil {
		games, err = src.Sessions.PlayerStats(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		}
	}
	for i, info := range activities {
		if i > 0 {
			fmt.Println()
		}
		printScores(src, p, info, games[info.ID])
	}
	return nil
}

func printScores(src tui.HistorySource, p player.ID, info registry.Info, games *storage.ActivityStats) {
	title := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(info.Color.Hex())).
		Render(fmt.Sprintf("%s - %s", p.Name(), info.Title))
	fmt.Println(title)

	l, err := src.Ledgers.Load(p, info.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	fmt.Println(tui.StatsLine(l.Stats(), l.Streak()))
	if days := l.History(); len(days) > 0 {
		fmt.Print("Recent days:")
		for _, d := range days[max(len(days)-recentDays, 0):] {
			fmt.Printf("  %s=%d", d.Date, d.Score)
		}
		fmt.Println()
	}

	if src.Sessions == nil {
		return
	}
	sessions, err := src.Sessions.RecentSessions(p, info.ID, recentSessions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		return
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		return
	}

	fmt.Println(tui.GamesLine(games))
	fmt.Println()
	fmt.Println(tui.NewHistoryTable(sessions, len(sessions)+1, false).View())
}

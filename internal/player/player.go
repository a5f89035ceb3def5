// Package player defines the two player identities of the game.
package player

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/learning-adventure/internal/core"
)

// ID identifies a player. It is also the prefix of the player's save files.
type ID string

const (
	Ellie ID = "ELLIE"
	Vivi  ID = "VIVI"
)

// All lists the players in the order they are offered on the select screen.
var All = []ID{Ellie, Vivi}

// Name returns the display name, e.g. "Ellie".
func (id ID) Name() string {
	if id == "" {
		return ""
	}
	s := strings.ToLower(string(id))
	return strings.ToUpper(s[:1]) + s[1:]
}

// Color returns the player's button color.
func (id ID) Color() core.Color {
	switch id {
	case Ellie:
		return core.ColorPink
	case Vivi:
		return core.ColorMintGreen
	default:
		return core.ColorWhite
	}
}

// Valid reports whether id is one of the known players.
func (id ID) Valid() bool {
	for _, p := range All {
		if p == id {
			return true
		}
	}
	return false
}

// Parse resolves a player from a case-insensitive name such as "ellie".
func Parse(s string) (ID, error) {
	id := ID(strings.ToUpper(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", fmt.Errorf("player: unknown player %q", s)
	}
	return id, nil
}

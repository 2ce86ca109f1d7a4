// Package testutil provides shared test utilities for the chessgame project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessgame/enginebridge/corentings"
	"github.com/lgbarn/chessgame/movetree"
	"github.com/lgbarn/chessgame/pgn"
)

// PlyCount counts the half-moves along the main line, from the root to the
// leaf reached by following Child(0) repeatedly.
func PlyCount(game *movetree.Game) int {
	n := game.Root()
	count := 0
	for {
		child := n.Child(0)
		if child == nil {
			return count
		}
		n = child
		count++
	}
}

// ParseTestGame parses a PGN string and returns the first game, or nil if
// parsing fails or no games are found. Use this for tests where parse failure
// is an acceptable outcome.
func ParseTestGame(pgnText string) *movetree.Game {
	if games := ParseTestGames(pgnText); len(games) > 0 {
		return games[0]
	}
	return nil
}

// ParseTestGames parses a PGN string and returns every game found, stopping
// at the first per-game error. Returns an empty slice if parsing fails
// before any game completes.
func ParseTestGames(pgnText string) []*movetree.Game {
	p := pgn.NewParser(strings.NewReader(pgnText), corentings.New())
	var games []*movetree.Game
	for {
		game, err := p.ReadGame()
		if err != nil || game == nil {
			break
		}
		games = append(games, game)
	}
	return games
}

// MustParseGame parses a PGN string and returns the first game.
// It calls t.Fatal if parsing fails or no games are found.
// Use this in test setup where parse failure should abort the test.
func MustParseGame(t *testing.T, pgnText string) *movetree.Game {
	t.Helper()
	game := ParseTestGame(pgnText)
	if game == nil {
		t.Fatalf("failed to parse test game:\n%s", pgnText)
	}
	return game
}

// MustParseGames parses a PGN string and returns all games found.
// It calls t.Fatal if parsing fails or no games are found.
func MustParseGames(t *testing.T, pgnText string) []*movetree.Game {
	t.Helper()
	games := ParseTestGames(pgnText)
	if len(games) == 0 {
		t.Fatalf("failed to parse any games from PGN:\n%s", pgnText)
	}
	return games
}

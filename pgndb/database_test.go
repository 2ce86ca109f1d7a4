package pgndb

import (
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/chessgame/enginebridge/corentings"
)

const twoGames = `[Event "First"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "A"]
[Black "B"]
[Result "1-0"]

1. e4 e5 1-0

[Event "Second"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "C"]
[Black "D"]
[Result "0-1"]

1. d4 d5 0-1
`

func TestNextIteratesGamesInOrder(t *testing.T) {
	db := NewFromReader(strings.NewReader(twoGames), corentings.New())

	first, err := db.Next()
	if err != nil {
		t.Fatal(err)
	}
	if event, _ := first.Metadata().Get("Event"); event != "First" {
		t.Fatalf("first game Event = %q, want First", event)
	}

	second, err := db.Next()
	if err != nil {
		t.Fatal(err)
	}
	if event, _ := second.Metadata().Get("Event"); event != "Second" {
		t.Fatalf("second game Event = %q, want Second", event)
	}

	if _, err := db.Next(); err != io.EOF {
		t.Fatalf("Next() at end of stream = %v, want io.EOF", err)
	}
}

func TestNextRecoversAfterCorruptGame(t *testing.T) {
	const withCorruptFirst = `[Event "Broken"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "A"]
[Black "B"]
[Result "*"]

1. e4 Zz9 *

[Event "Second"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "C"]
[Black "D"]
[Result "*"]

1. e4 e5 *
`
	db := NewFromReader(strings.NewReader(withCorruptFirst), corentings.New())

	_, err := db.Next()
	if err == nil {
		t.Fatal("expected the first (corrupt) game to yield an error")
	}

	game, err := db.Next()
	if err != nil {
		t.Fatal(err)
	}
	if event, _ := game.Metadata().Get("Event"); event != "Second" {
		t.Fatalf("recovered game Event = %q, want Second", event)
	}
}

func TestGamesIteratorStopsCleanlyAtEOF(t *testing.T) {
	db := NewFromReader(strings.NewReader(twoGames), corentings.New())

	var events []string
	for game, err := range db.Games() {
		if err != nil {
			t.Fatal(err)
		}
		event, _ := game.Metadata().Get("Event")
		events = append(events, event)
	}
	want := []string{"First", "Second"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestGamesIteratorYieldsErrorsWithoutStopping(t *testing.T) {
	const withCorruptFirst = `[Event "Broken"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "A"]
[Black "B"]
[Result "*"]

1. e4 Zz9 *

[Event "Second"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "C"]
[Black "D"]
[Result "*"]

1. e4 e5 *
`
	db := NewFromReader(strings.NewReader(withCorruptFirst), corentings.New())

	var errCount, okCount int
	for game, err := range db.Games() {
		if err != nil {
			errCount++
			continue
		}
		okCount++
		if event, _ := game.Metadata().Get("Event"); event != "Second" {
			t.Fatalf("Event = %q, want Second", event)
		}
	}
	if errCount != 1 || okCount != 1 {
		t.Fatalf("errCount=%d okCount=%d, want 1 and 1", errCount, okCount)
	}
}

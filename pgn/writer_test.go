package pgn

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessgame/enginebridge/corentings"
)

func TestWriteGameRoundTripsThroughParser(t *testing.T) {
	engine := corentings.New()
	p := NewParser(strings.NewReader(linearGame), engine)
	game, err := p.ReadGame()
	if err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := NewWriter().WriteGame(&buf, game); err != nil {
		t.Fatal(err)
	}

	reparsed, err := NewParser(strings.NewReader(buf.String()), engine).ReadGame()
	if err != nil {
		t.Fatalf("re-parsing written output failed: %v\noutput was:\n%s", err, buf.String())
	}

	orig, again := game.Root(), reparsed.Root()
	for orig.ChildCount() > 0 {
		if again.ChildCount() == 0 {
			t.Fatal("reparsed game is shorter than the original")
		}
		orig = orig.Child(0)
		again = again.Child(0)
		if orig.Move().To.String() != again.Move().To.String() || orig.Move().From.String() != again.Move().From.String() {
			t.Fatalf("move mismatch: original %v, reparsed %v", orig.Move(), again.Move())
		}
	}
}

func TestWriteGameEmitsSevenTagRoster(t *testing.T) {
	engine := corentings.New()
	p := NewParser(strings.NewReader(linearGame), engine)
	game, err := p.ReadGame()
	if err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := NewWriter().WriteGame(&buf, game); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, tag := range []string{"[Event ", "[Site ", "[Date ", "[Round ", "[White ", "[Black ", "[Result "} {
		if !strings.Contains(out, tag) {
			t.Errorf("output missing %s tag:\n%s", tag, out)
		}
	}
}

func TestWriteGameWrapsLongLines(t *testing.T) {
	engine := corentings.New()
	p := NewParser(strings.NewReader(linearGame), engine)
	game, err := p.ReadGame()
	if err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	if err := NewWriter(WithLineWidth(20)).WriteGame(&buf, game); err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if len(line) > 20 && !strings.HasPrefix(line, "[") {
			t.Errorf("movetext line exceeds requested width: %q", line)
		}
	}
}

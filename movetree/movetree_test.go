package movetree

import (
	"testing"

	"github.com/lgbarn/chessgame/enginebridge/corentings"
	"github.com/lgbarn/chessgame/rules"
)

func e4() rules.Move {
	return rules.Move{
		From:  rules.Square{File: 'e', Rank: '2'},
		To:    rules.Square{File: 'e', Rank: '4'},
		Piece: rules.Piece{Type: rules.Pawn, Color: rules.White},
	}
}

func d4() rules.Move {
	return rules.Move{
		From:  rules.Square{File: 'd', Rank: '2'},
		To:    rules.Square{File: 'd', Rank: '4'},
		Piece: rules.Piece{Type: rules.Pawn, Color: rules.White},
	}
}

func TestNewGameHasCachedRootPosition(t *testing.T) {
	g := New(corentings.New())
	if g.Root().Id() != RootNodeId {
		t.Fatalf("Root().Id() = %d, want %d", g.Root().Id(), RootNodeId)
	}
	if g.Root().Position() == nil {
		t.Fatal("a fresh game's root should have a cached starting position")
	}
}

func TestAddNodeAllocatesMonotoneIds(t *testing.T) {
	g := New(corentings.New())
	n1 := g.AddNode(g.Root(), e4())
	n2 := g.AddNode(n1, d4())
	if n1.Id() <= RootNodeId {
		t.Fatalf("first child id %d should exceed root id %d", n1.Id(), RootNodeId)
	}
	if n2.Id() <= n1.Id() {
		t.Fatalf("ids should be monotonically increasing: %d then %d", n1.Id(), n2.Id())
	}
}

func TestAddNodeDeduplicatesEqualMoves(t *testing.T) {
	g := New(corentings.New())
	first := g.AddNode(g.Root(), e4())
	second := g.AddNode(g.Root(), e4())
	if first != second {
		t.Fatal("adding the same move twice from the same node should return the same child")
	}
	if g.Root().ChildCount() != 1 {
		t.Fatalf("ChildCount() = %d, want 1 after deduplication", g.Root().ChildCount())
	}
}

func TestAddNodeKeepsDistinctMovesAsSiblings(t *testing.T) {
	g := New(corentings.New())
	g.AddNode(g.Root(), e4())
	g.AddNode(g.Root(), d4())
	if g.Root().ChildCount() != 2 {
		t.Fatalf("ChildCount() = %d, want 2 for two distinct first moves", g.Root().ChildCount())
	}
}

func TestCurrentMainlineFollowsChildZero(t *testing.T) {
	g := New(corentings.New())
	n1 := g.AddNode(g.Root(), e4())
	g.AddNode(g.Root(), d4()) // a variation, not on the main line
	n2 := g.AddNode(n1, rules.Move{
		From:  rules.Square{File: 'e', Rank: '7'},
		To:    rules.Square{File: 'e', Rank: '5'},
		Piece: rules.Piece{Type: rules.Pawn, Color: rules.Black},
	})
	if got := g.CurrentMainline(); got != n2 {
		t.Fatalf("CurrentMainline() = node %d, want node %d", got.Id(), n2.Id())
	}
}

func TestCommentAppendSeparatesWithSpace(t *testing.T) {
	n := newNode(2, e4(), nil)
	n.AppendComment("first")
	n.AppendComment("second")
	if got := n.Comment(); got != "first second" {
		t.Fatalf("Comment() = %q, want %q", got, "first second")
	}
}

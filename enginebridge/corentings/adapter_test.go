package corentings

import (
	"testing"

	"github.com/lgbarn/chessgame/rules"
)

func TestStandardStartingHasTwentyLegalMoves(t *testing.T) {
	pos := New().StandardStarting()
	if got := len(pos.LegalMoves()); got != 20 {
		t.Fatalf("len(LegalMoves()) = %d, want 20 in the starting position", got)
	}
	if pos.SideToMove() != rules.White {
		t.Fatalf("SideToMove() = %v, want White", pos.SideToMove())
	}
	if pos.CheckState() != rules.NoCheck {
		t.Fatalf("CheckState() = %v, want NoCheck", pos.CheckState())
	}
}

func TestMakeMoveDoesNotMutateReceiver(t *testing.T) {
	pos := New().StandardStarting()
	var e4 rules.Move
	found := false
	for _, m := range pos.LegalMoves() {
		if m.From.String() == "e2" && m.To.String() == "e4" {
			e4 = m
			found = true
			break
		}
	}
	if !found {
		t.Fatal("e2-e4 should be a legal opening move")
	}

	next, err := pos.MakeMove(e4)
	if err != nil {
		t.Fatal(err)
	}
	if pos.SideToMove() != rules.White {
		t.Fatal("MakeMove must not mutate the receiver's side to move")
	}
	if next.SideToMove() != rules.Black {
		t.Fatalf("SideToMove() after 1.e4 = %v, want Black", next.SideToMove())
	}
}

func TestMakeMoveRejectsMoveNotInPosition(t *testing.T) {
	pos := New().StandardStarting()
	bogus := rules.Move{
		From:  rules.Square{File: 'e', Rank: '2'},
		To:    rules.Square{File: 'e', Rank: '5'},
		Piece: rules.Piece{Type: rules.Pawn, Color: rules.White},
	}
	if _, err := pos.MakeMove(bogus); err == nil {
		t.Fatal("MakeMove should reject a move absent from LegalMoves")
	}
}

func TestFromFENRejectsMalformedInput(t *testing.T) {
	if _, err := New().FromFEN("not a fen"); err == nil {
		t.Fatal("FromFEN should reject a malformed FEN string")
	}
}

func TestFromFENReflectsSideToMove(t *testing.T) {
	pos, err := New().FromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if pos.SideToMove() != rules.Black {
		t.Fatalf("SideToMove() = %v, want Black per the FEN's side-to-move field", pos.SideToMove())
	}
}

func TestFullmoveNumberAdvancesAfterBlackReplies(t *testing.T) {
	engine := New()
	pos := engine.StandardStarting()
	if pos.FullmoveNumber() != 1 {
		t.Fatalf("FullmoveNumber() = %d, want 1 at the start", pos.FullmoveNumber())
	}

	var e4 rules.Move
	for _, m := range pos.LegalMoves() {
		if m.From.String() == "e2" && m.To.String() == "e4" {
			e4 = m
		}
	}
	afterE4, err := pos.MakeMove(e4)
	if err != nil {
		t.Fatal(err)
	}

	var e5 rules.Move
	for _, m := range afterE4.LegalMoves() {
		if m.From.String() == "e7" && m.To.String() == "e5" {
			e5 = m
		}
	}
	afterE5, err := afterE4.MakeMove(e5)
	if err != nil {
		t.Fatal(err)
	}
	if afterE5.FullmoveNumber() != 2 {
		t.Fatalf("FullmoveNumber() = %d, want 2 after black's first reply", afterE5.FullmoveNumber())
	}
}

package san

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessgame/rules"
)

func knightFromG1ToF3() rules.Move {
	return rules.Move{
		From:  rules.Square{File: 'g', Rank: '1'},
		To:    rules.Square{File: 'f', Rank: '3'},
		Piece: rules.Piece{Type: rules.Knight, Color: rules.White},
	}
}

func TestMatchesExactMove(t *testing.T) {
	m, err := Parse("Nf3", rules.White)
	if err != nil {
		t.Fatal(err)
	}
	if !Matches(m, knightFromG1ToF3()) {
		t.Fatal("expected Nf3 to match the g1-f3 knight move")
	}
}

func TestMatchesRejectsWrongTarget(t *testing.T) {
	m, err := Parse("Nf6", rules.White)
	if err != nil {
		t.Fatal(err)
	}
	if Matches(m, knightFromG1ToF3()) {
		t.Fatal("Nf6 should not match a move to f3")
	}
}

func TestMatchListWildcardPieceIgnoresType(t *testing.T) {
	m, err := Parse("e4", rules.White) // parses as a pawn move
	if err != nil {
		t.Fatal(err)
	}
	knightToE4 := rules.Move{
		From:  rules.Square{File: 'g', Rank: '5'},
		To:    rules.Square{File: 'e', Rank: '4'},
		Piece: rules.Piece{Type: rules.Knight, Color: rules.White},
	}
	if len(MatchList(m, []rules.Move{knightToE4})) != 0 {
		t.Fatal("strict MatchList should reject a piece-type mismatch")
	}
	if len(MatchListWildcardPiece(m, []rules.Move{knightToE4})) != 1 {
		t.Fatal("MatchListWildcardPiece should ignore the piece-type mismatch")
	}
}

func TestGenerateDisambiguatesByFile(t *testing.T) {
	move := rules.Move{
		From:  rules.Square{File: 'a', Rank: '1'},
		To:    rules.Square{File: 'd', Rank: '1'},
		Piece: rules.Piece{Type: rules.Rook, Color: rules.White},
	}
	legal := []rules.Move{
		move,
		{From: rules.Square{File: 'h', Rank: '1'}, To: rules.Square{File: 'd', Rank: '1'}, Piece: rules.Piece{Type: rules.Rook, Color: rules.White}},
	}
	got := Generate(move, legal)
	if got == nil {
		t.Fatal("Generate returned nil for a legal move")
	}
	if diff := cmp.Diff("Rad1", got.Original); diff != "" {
		t.Errorf("Generate mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateDisambiguatesByRankWhenFilesShared(t *testing.T) {
	move := rules.Move{
		From:  rules.Square{File: 'd', Rank: '1'},
		To:    rules.Square{File: 'd', Rank: '4'},
		Piece: rules.Piece{Type: rules.Rook, Color: rules.White},
	}
	legal := []rules.Move{
		move,
		{From: rules.Square{File: 'd', Rank: '8'}, To: rules.Square{File: 'd', Rank: '4'}, Piece: rules.Piece{Type: rules.Rook, Color: rules.White}},
	}
	got := Generate(move, legal)
	if got == nil || got.Original != "R1d4" {
		t.Fatalf("Generate = %+v, want R1d4", got)
	}
}

func TestGenerateReturnsNilForIllegalMove(t *testing.T) {
	move := knightFromG1ToF3()
	got := Generate(move, nil)
	if got != nil {
		t.Fatal("Generate should return nil when move is not in legalMoves")
	}
}

func TestGeneratePawnCaptureIncludesOriginFile(t *testing.T) {
	captured := rules.Piece{Type: rules.Pawn, Color: rules.Black}
	move := rules.Move{
		From:     rules.Square{File: 'e', Rank: '4'},
		To:       rules.Square{File: 'd', Rank: '5'},
		Piece:    rules.Piece{Type: rules.Pawn, Color: rules.White},
		Captured: &captured,
	}
	got := Generate(move, []rules.Move{move})
	if got == nil || got.Original != "exd5" {
		t.Fatalf("Generate = %+v, want exd5", got)
	}
}

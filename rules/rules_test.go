package rules

import "testing"

func TestPieceTypeLetter(t *testing.T) {
	cases := map[PieceType]byte{
		Pawn: 'P', Knight: 'N', Bishop: 'B', Rook: 'R', Queen: 'Q', King: 'K',
	}
	for pt, want := range cases {
		if got := pt.Letter(); got != want {
			t.Errorf("PieceType(%d).Letter() = %q, want %q", pt, got, want)
		}
	}
}

func TestPieceTypeFromLetterRoundTrip(t *testing.T) {
	for _, letter := range []byte{'N', 'B', 'R', 'Q', 'K'} {
		pt, ok := PieceTypeFromLetter(letter)
		if !ok {
			t.Fatalf("PieceTypeFromLetter(%q) not found", letter)
		}
		if pt.Letter() != letter {
			t.Errorf("round trip mismatch for %q: got %q", letter, pt.Letter())
		}
	}
	if _, ok := PieceTypeFromLetter('P'); ok {
		t.Error("PieceTypeFromLetter('P') should not resolve; pawns have no SAN letter")
	}
}

func TestColorOpposite(t *testing.T) {
	if White.Opposite() != Black {
		t.Error("White.Opposite() should be Black")
	}
	if Black.Opposite() != White {
		t.Error("Black.Opposite() should be White")
	}
}

func TestMoveEqualIgnoresIdentity(t *testing.T) {
	a := Move{From: Square{'e', '2'}, To: Square{'e', '4'}, Piece: Piece{Type: Pawn, Color: White}}
	b := Move{From: Square{'e', '2'}, To: Square{'e', '4'}, Piece: Piece{Type: Pawn, Color: White}}
	if !a.Equal(b) {
		t.Fatal("structurally identical moves should be Equal")
	}
}

func TestMoveEqualDistinguishesCapture(t *testing.T) {
	captured := Piece{Type: Pawn, Color: Black}
	a := Move{From: Square{'e', '4'}, To: Square{'d', '5'}, Piece: Piece{Type: Pawn, Color: White}, Captured: &captured}
	b := Move{From: Square{'e', '4'}, To: Square{'d', '5'}, Piece: Piece{Type: Pawn, Color: White}}
	if a.Equal(b) {
		t.Fatal("a capturing and non-capturing move to the same square must differ")
	}
}

func TestMoveEqualDistinguishesPromotion(t *testing.T) {
	queen := Queen
	rook := Rook
	a := Move{From: Square{'e', '7'}, To: Square{'e', '8'}, Piece: Piece{Type: Pawn, Color: White}, Promoted: &queen}
	b := Move{From: Square{'e', '7'}, To: Square{'e', '8'}, Piece: Piece{Type: Pawn, Color: White}, Promoted: &rook}
	if a.Equal(b) {
		t.Fatal("different promotion targets must not be Equal")
	}
}

func TestSquareString(t *testing.T) {
	sq := Square{File: 'e', Rank: '4'}
	if got := sq.String(); got != "e4" {
		t.Errorf("Square.String() = %q, want e4", got)
	}
}

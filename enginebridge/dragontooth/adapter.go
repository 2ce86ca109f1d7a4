// Package dragontooth adapts github.com/dylhunn/dragontoothmg to the rules
// package's Position/Engine contract. Unlike the corentings adapter, the
// underlying board is mutable and move-oriented: MakeMove clones the whole
// board value (dragontoothmg.Board is a plain struct of bitboards, cheap to
// copy) before applying, so the receiver stays untouched and callers can
// still hold onto older positions.
package dragontooth

import (
	"fmt"

	upstream "github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessgame/rules"
)

// Engine is a rules.Engine backed by dragontoothmg's bitboard move generator.
type Engine struct{}

// New constructs an Engine.
func New() *Engine { return &Engine{} }

// StandardStarting returns the standard chess starting position.
func (Engine) StandardStarting() rules.Position {
	b := upstream.ParseFen(upstream.Startpos)
	return &position{board: b}
}

// FromFEN parses fen and returns the position it describes. dragontoothmg's
// ParseFen panics on malformed input rather than returning an error, so the
// panic is recovered here and turned into one.
func (Engine) FromFEN(fen string) (pos rules.Position, err error) {
	defer func() {
		if r := recover(); r != nil {
			pos, err = nil, fmt.Errorf("dragontooth: invalid FEN %q: %v", fen, r)
		}
	}()
	b := upstream.ParseFen(fen)
	return &position{board: b}, nil
}

// position adapts one dragontoothmg board value. lastWasCheck records
// whether the move producing this position delivered check; a starting or
// FEN position is never itself a response to a move.
type position struct {
	board        upstream.Board
	lastWasCheck bool
}

func (p *position) SideToMove() rules.Color {
	if p.board.Wtomove {
		return rules.White
	}
	return rules.Black
}

func (p *position) FullmoveNumber() int {
	return int(p.board.Fullmoveno)
}

func (p *position) CheckState() rules.CheckState {
	if !p.lastWasCheck {
		return rules.NoCheck
	}
	if len(p.board.GenerateLegalMoves()) == 0 {
		return rules.Checkmate
	}
	return rules.Check
}

func (p *position) LegalMoves() []rules.Move {
	moves := p.board.GenerateLegalMoves()
	out := make([]rules.Move, 0, len(moves))
	for _, m := range moves {
		out = append(out, convertMove(&p.board, m))
	}
	return out
}

// MakeMove copies the board, applies the matching upstream move to the
// copy, and returns a position wrapping it. The receiver's board is never
// mutated.
func (p *position) MakeMove(m rules.Move) (rules.Position, error) {
	next := p.board

	var target *upstream.Move
	for _, mv := range next.GenerateLegalMoves() {
		if convertMove(&next, mv).Equal(m) {
			mv := mv
			target = &mv
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("dragontooth: move not found among legal moves in this position")
	}

	next.Apply(*target)
	return &position{board: next, lastWasCheck: next.OurKingInCheck()}, nil
}

func convertMove(b *upstream.Board, m upstream.Move) rules.Move {
	from := squareToRules(m.From())
	to := squareToRules(m.To())

	movingBoards, opponentBoards := &b.White, &b.Black
	if !b.Wtomove {
		movingBoards, opponentBoards = &b.Black, &b.White
	}

	pieceType, _ := pieceTypeAt(m.From(), movingBoards)
	movingColor := rules.White
	if !b.Wtomove {
		movingColor = rules.Black
	}

	out := rules.Move{
		From:  from,
		To:    to,
		Piece: rules.Piece{Type: pieceType, Color: movingColor},
	}

	_, destOccupied := pieceTypeAt(m.To(), opponentBoards)
	isEnPassant := pieceType == rules.Pawn && !destOccupied && m.From()%8 != m.To()%8
	switch {
	case isEnPassant:
		out.CapturingEnPassant = true
		captured := rules.Piece{Type: rules.Pawn, Color: movingColor.Opposite()}
		out.Captured = &captured
	default:
		if capturedType, occupied := pieceTypeAt(m.To(), opponentBoards); occupied {
			captured := rules.Piece{Type: capturedType, Color: movingColor.Opposite()}
			out.Captured = &captured
		}
	}

	if pieceType == rules.King {
		fileDelta := int(m.To()%8) - int(m.From()%8)
		if fileDelta == 2 {
			out.Castling = true
		} else if fileDelta == -2 {
			out.Castling, out.CastlingIsQueenside = true, true
		}
	}

	if promo := m.Promote(); promo > 0 {
		t := pieceTypeFromUpstream(promo)
		out.Promoted = &t
	}

	return out
}

func pieceTypeAt(square uint8, boards *upstream.Bitboards) (rules.PieceType, bool) {
	mask := uint64(1) << square
	switch {
	case boards.Pawns&mask != 0:
		return rules.Pawn, true
	case boards.Knights&mask != 0:
		return rules.Knight, true
	case boards.Bishops&mask != 0:
		return rules.Bishop, true
	case boards.Rooks&mask != 0:
		return rules.Rook, true
	case boards.Queens&mask != 0:
		return rules.Queen, true
	case boards.Kings&mask != 0:
		return rules.King, true
	default:
		return rules.NoPieceType, false
	}
}

func pieceTypeFromUpstream(pt upstream.Piece) rules.PieceType {
	switch pt {
	case upstream.Pawn:
		return rules.Pawn
	case upstream.Knight:
		return rules.Knight
	case upstream.Bishop:
		return rules.Bishop
	case upstream.Rook:
		return rules.Rook
	case upstream.Queen:
		return rules.Queen
	case upstream.King:
		return rules.King
	default:
		return rules.NoPieceType
	}
}

func squareToRules(s uint8) rules.Square {
	return rules.Square{
		File: rules.File('a' + s%8),
		Rank: rules.Rank('1' + s/8),
	}
}

// Package corentings adapts github.com/corentings/chess/v2 to the rules
// package's Position/Engine contract. Each rules.Position wraps a whole
// upstream *chess.Game rather than a bare position value, since move
// application, legal-move generation and check/mate detection are exposed
// at the Game level in this library; MakeMove clones the game before
// applying a move so the receiver is left untouched.
package corentings

import (
	"fmt"
	"strconv"
	"strings"

	upstream "github.com/corentings/chess/v2"

	"github.com/lgbarn/chessgame/rules"
)

// Engine is a rules.Engine backed by corentings/chess.
type Engine struct{}

// New constructs an Engine.
func New() *Engine { return &Engine{} }

// StandardStarting returns the standard chess starting position.
func (Engine) StandardStarting() rules.Position {
	return &position{game: upstream.NewGame()}
}

// FromFEN parses fen and returns the position it describes.
func (Engine) FromFEN(fen string) (rules.Position, error) {
	opt, err := upstream.FEN(fen)
	if err != nil {
		return nil, err
	}
	return &position{game: upstream.NewGame(opt)}, nil
}

// position adapts one upstream game state. lastWasCheck/lastWasMate record
// whether the move that produced this position delivered check or mate;
// they are false for a starting/FEN position, which is never itself a
// response to a move.
type position struct {
	game         *upstream.Game
	lastWasCheck bool
	lastWasMate  bool
}

func (p *position) SideToMove() rules.Color {
	return colorFromUpstream(p.game.Position().Turn())
}

func (p *position) FullmoveNumber() int {
	return fullmoveFromFEN(p.game.Position().String())
}

func (p *position) CheckState() rules.CheckState {
	switch {
	case p.lastWasMate:
		return rules.Checkmate
	case p.lastWasCheck:
		return rules.Check
	default:
		return rules.NoCheck
	}
}

func (p *position) LegalMoves() []rules.Move {
	upstreamPos := p.game.Position()
	valid := p.game.ValidMoves()
	out := make([]rules.Move, 0, len(valid))
	for i := range valid {
		out = append(out, convertMove(upstreamPos, valid[i]))
	}
	return out
}

// MakeMove clones the underlying game, plays the matching upstream move on
// the clone, and returns a position wrapping the clone. The receiver's
// game is never mutated.
func (p *position) MakeMove(m rules.Move) (rules.Position, error) {
	next := p.game.Clone()
	upstreamPos := next.Position()
	valid := next.ValidMoves()

	var target *upstream.Move
	for i := range valid {
		if convertMove(upstreamPos, valid[i]).Equal(m) {
			target = &valid[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("corentings: move not found among legal moves in this position")
	}

	if err := next.Move(target, nil); err != nil {
		return nil, err
	}

	check := target.HasTag(upstream.Check)
	mate := check && next.Outcome() != upstream.NoOutcome && next.Method() == upstream.Checkmate
	return &position{game: next, lastWasCheck: check, lastWasMate: mate}, nil
}

func convertMove(pos *upstream.Position, m upstream.Move) rules.Move {
	board := pos.Board()
	mover := board.Piece(m.S1())

	out := rules.Move{
		From:                squareToRules(m.S1()),
		To:                  squareToRules(m.S2()),
		Piece:               rules.Piece{Type: pieceTypeFromUpstream(mover.Type()), Color: colorFromUpstream(mover.Color())},
		CapturingEnPassant:  m.HasTag(upstream.EnPassant),
		Castling:            m.HasTag(upstream.KingSideCastle) || m.HasTag(upstream.QueenSideCastle),
		CastlingIsQueenside: m.HasTag(upstream.QueenSideCastle),
	}

	switch {
	case m.HasTag(upstream.EnPassant):
		captured := rules.Piece{Type: rules.Pawn, Color: out.Piece.Color.Opposite()}
		out.Captured = &captured
	case m.HasTag(upstream.Capture):
		target := board.Piece(m.S2())
		captured := rules.Piece{Type: pieceTypeFromUpstream(target.Type()), Color: colorFromUpstream(target.Color())}
		out.Captured = &captured
	}

	if promo := m.Promo(); promo != upstream.NoPieceType {
		t := pieceTypeFromUpstream(promo)
		out.Promoted = &t
	}

	return out
}

func pieceTypeFromUpstream(pt upstream.PieceType) rules.PieceType {
	switch pt {
	case upstream.King:
		return rules.King
	case upstream.Queen:
		return rules.Queen
	case upstream.Rook:
		return rules.Rook
	case upstream.Bishop:
		return rules.Bishop
	case upstream.Knight:
		return rules.Knight
	case upstream.Pawn:
		return rules.Pawn
	default:
		return rules.NoPieceType
	}
}

func colorFromUpstream(c upstream.Color) rules.Color {
	if c == upstream.Black {
		return rules.Black
	}
	return rules.White
}

func squareToRules(s upstream.Square) rules.Square {
	return rules.Square{
		File: rules.File('a' + byte(s)%8),
		Rank: rules.Rank('1' + byte(s)/8),
	}
}

// fullmoveFromFEN reads the last (fullmove counter) field of a FEN string.
func fullmoveFromFEN(fen string) int {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return 1
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 1
	}
	return n
}

// Package boardsvg renders a chess position to an SVG board diagram via
// github.com/ajstarks/svgo, for CLI diagnostics. Full piece placement is not
// exposed by the narrow rules.Position contract, so RenderCursor derives it
// itself: it walks a move tree cursor's ancestor chain back to the root and
// replays every move over a standard starting placement.
package boardsvg

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessgame/cursor"
	"github.com/lgbarn/chessgame/rules"
)

const squareSize = 60
const boardPixels = squareSize * 8

var lightSquare = "#f0d9b5"
var darkSquare = "#b58863"

// PieceMap gives the piece occupying each occupied square. It is the
// caller's board snapshot; boardsvg has no board representation of its own.
type PieceMap map[rules.Square]rules.Piece

// Render writes an 8x8 SVG diagram of the board described by pieces to w.
func Render(w io.Writer, pieces PieceMap) {
	canvas := svg.New(w)
	canvas.Start(boardPixels, boardPixels)
	defer canvas.End()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := file * squareSize
			y := (7 - rank) * squareSize
			color := lightSquare
			if (rank+file)%2 == 0 {
				color = darkSquare
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+color)
		}
	}

	for sq, piece := range pieces {
		file := int(sq.File - 'a')
		rank := int(sq.Rank - '1')
		x := file*squareSize + squareSize/2
		y := (7-rank)*squareSize + squareSize/2 + squareSize/6
		label := glyph(piece)
		style := "text-anchor:middle;font-size:32px;font-family:sans-serif"
		if piece.Color == rules.Black {
			style += ";fill:#202020"
		} else {
			style += ";fill:#fafafa;stroke:#202020;stroke-width:0.5"
		}
		canvas.Text(x, y, label, style)
	}
}

// RenderCursor renders the position at c by walking from the root and
// replaying moves into a PieceMap, then calling Render.
func RenderCursor(w io.Writer, c cursor.ReadCursor) {
	Render(w, piecesAt(c))
}

func piecesAt(c cursor.ReadCursor) PieceMap {
	pieces := standardStartingMap()

	var path []rules.Move
	cur := c
	for {
		parent, ok := cur.Parent()
		if !ok {
			break
		}
		path = append([]rules.Move{cur.Move()}, path...)
		cur = parent
	}

	for _, m := range path {
		applyMove(pieces, m)
	}
	return pieces
}

func applyMove(pieces PieceMap, m rules.Move) {
	delete(pieces, m.From)
	if m.CapturingEnPassant {
		capturedSquare := rules.Square{File: m.To.File, Rank: m.From.Rank}
		delete(pieces, capturedSquare)
	}
	placed := m.Piece
	if m.Promoted != nil {
		placed = rules.Piece{Type: *m.Promoted, Color: m.Piece.Color}
	}
	pieces[m.To] = placed

	if m.Castling {
		rank := m.From.Rank
		if m.CastlingIsQueenside {
			rook, ok := pieces[rules.Square{File: 'a', Rank: rank}]
			if ok {
				delete(pieces, rules.Square{File: 'a', Rank: rank})
				pieces[rules.Square{File: 'd', Rank: rank}] = rook
			}
		} else {
			rook, ok := pieces[rules.Square{File: 'h', Rank: rank}]
			if ok {
				delete(pieces, rules.Square{File: 'h', Rank: rank})
				pieces[rules.Square{File: 'f', Rank: rank}] = rook
			}
		}
	}
}

func standardStartingMap() PieceMap {
	pieces := PieceMap{}
	backRank := []rules.PieceType{
		rules.Rook, rules.Knight, rules.Bishop, rules.Queen,
		rules.King, rules.Bishop, rules.Knight, rules.Rook,
	}
	for i, pt := range backRank {
		file := rules.File('a' + byte(i))
		pieces[rules.Square{File: file, Rank: '1'}] = rules.Piece{Type: pt, Color: rules.White}
		pieces[rules.Square{File: file, Rank: '8'}] = rules.Piece{Type: pt, Color: rules.Black}
		pieces[rules.Square{File: file, Rank: '2'}] = rules.Piece{Type: rules.Pawn, Color: rules.White}
		pieces[rules.Square{File: file, Rank: '7'}] = rules.Piece{Type: rules.Pawn, Color: rules.Black}
	}
	return pieces
}

func glyph(p rules.Piece) string {
	letter := p.Type.Letter()
	if letter == 0 {
		letter = 'P'
	}
	return fmt.Sprintf("%c", letter)
}

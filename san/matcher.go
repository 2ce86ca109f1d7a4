package san

import "github.com/lgbarn/chessgame/rules"

// wildcardPiece marks a match that should ignore the moved piece's type,
// used only by the PGN parser's forgiving recovery path.
const wildcardPiece = rules.NoPieceType

// Matches reports whether move satisfies the SAN description m: same piece
// (unless piece is the wildcard NoPieceType), same target square,
// disambiguation file/rank honoured when present, capturing flag equal,
// and promotion equal.
func Matches(m *Move, move rules.Move) bool {
	if m.Piece.Type != wildcardPiece && move.Piece.Type != m.Piece.Type {
		return false
	}
	if move.To != m.Target {
		return false
	}
	if m.DisambiguationFile != nil && move.From.File != *m.DisambiguationFile {
		return false
	}
	if m.DisambiguationRank != nil && move.From.Rank != *m.DisambiguationRank {
		return false
	}
	if m.Capturing != (move.Captured != nil) {
		return false
	}
	return promotionMatches(m.Promotion, move.Promoted)
}

func promotionMatches(sanPromotion *rules.Piece, movePromoted *rules.PieceType) bool {
	if sanPromotion == nil || movePromoted == nil {
		return sanPromotion == nil && movePromoted == nil
	}
	return sanPromotion.Type == *movePromoted
}

// MatchList filters moves by Matches, preserving order.
func MatchList(m *Move, moves []rules.Move) []rules.Move {
	var out []rules.Move
	for _, mv := range moves {
		if Matches(m, mv) {
			out = append(out, mv)
		}
	}
	return out
}

// MatchListWildcardPiece filters moves the way MatchList does, but ignores
// the piece-type constraint. It backs the PGN parser's first forgiving
// recovery (MoveMissingPieceType).
func MatchListWildcardPiece(m *Move, moves []rules.Move) []rules.Move {
	relaxed := *m
	relaxed.Piece.Type = wildcardPiece
	return MatchList(&relaxed, moves)
}

// Generate builds the minimally disambiguated SAN for move against
// legalMoves. It returns nil if move is not present in legalMoves.
// Check/checkmate annotation is not attached here; the PGN writer adds it
// from the resulting position.
func Generate(move rules.Move, legalMoves []rules.Move) *Move {
	found := false
	for _, mv := range legalMoves {
		if mv.Equal(move) {
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if move.IsCastling() {
		text := "O-O"
		if move.To.File == 'c' {
			text = "O-O-O"
		}
		return &Move{Original: text, Piece: move.Piece, Target: move.To, Capturing: move.Captured != nil}
	}

	sameTarget := filterBySameOriginKind(move, legalMoves)

	var sb []byte
	pawn := move.Piece.Type == rules.Pawn

	if !pawn {
		sb = append(sb, move.Piece.Letter())
	}

	disambigFile, disambigRank := false, false
	if !pawn && len(sameTarget) > 1 {
		files := map[rules.File]bool{}
		ranks := map[rules.Rank]bool{}
		for _, mv := range sameTarget {
			files[mv.From.File] = true
			ranks[mv.From.Rank] = true
		}
		switch {
		case len(files) == len(sameTarget):
			disambigFile = true
		case len(ranks) == len(sameTarget):
			disambigRank = true
		default:
			disambigFile, disambigRank = true, true
		}
	}

	if disambigFile {
		sb = append(sb, byte(move.From.File))
	}
	if disambigRank {
		sb = append(sb, byte(move.From.Rank))
	}

	capturing := move.Captured != nil
	if capturing {
		if pawn {
			sb = append(sb, byte(move.From.File))
		}
		sb = append(sb, 'x')
	}

	sb = append(sb, byte(move.To.File), byte(move.To.Rank))

	var promotion *rules.Piece
	if move.Promoted != nil {
		p := rules.Piece{Type: *move.Promoted, Color: move.Piece.Color}
		promotion = &p
		sb = append(sb, '=', p.Letter())
	}

	var outFile *rules.File
	var outRank *rules.Rank
	if disambigFile {
		f := move.From.File
		outFile = &f
	}
	if disambigRank {
		r := move.From.Rank
		outRank = &r
	}

	return &Move{
		Original:           string(sb),
		Piece:              move.Piece,
		Target:             move.To,
		Capturing:          capturing,
		Promotion:          promotion,
		DisambiguationFile: outFile,
		DisambiguationRank: outRank,
	}
}

// filterBySameOriginKind returns the legal moves sharing move's piece type
// and target square: the candidate set disambiguation is chosen from.
func filterBySameOriginKind(move rules.Move, legalMoves []rules.Move) []rules.Move {
	var out []rules.Move
	for _, mv := range legalMoves {
		if mv.Piece.Type == move.Piece.Type && mv.To == move.To {
			out = append(out, mv)
		}
	}
	return out
}

package san

import "github.com/lgbarn/chessgame/rules"

// scanner is a small cursor over a SAN token's bytes, in the style of the
// teacher's hand-rolled character scanners: index-based, no backtracking
// buffers, helper predicates per character class.
type scanner struct {
	text string
	pos  int
}

func (s *scanner) atEnd() bool { return s.pos >= len(s.text) }

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.text[s.pos]
}

func (s *scanner) rest() string { return s.text[s.pos:] }

func isFileByte(b byte) bool { return b >= 'a' && b <= 'h' }
func isRankByte(b byte) bool { return b >= '1' && b <= '8' }

// tryFile consumes a file byte if present.
func (s *scanner) tryFile() (rules.File, bool) {
	if s.atEnd() || !isFileByte(s.peek()) {
		return 0, false
	}
	f := rules.File(s.peek())
	s.pos++
	return f, true
}

// tryRank consumes a rank byte if present.
func (s *scanner) tryRank() (rules.Rank, bool) {
	if s.atEnd() || !isRankByte(s.peek()) {
		return 0, false
	}
	r := rules.Rank(s.peek())
	s.pos++
	return r, true
}

// Parse resolves a SAN token against the given side to move, producing a
// structured Move description. It never consults a rules engine: matching
// the description against a legal-move list is the matcher's job
// (matcher.go).
func Parse(text string, sideToMove rules.Color) (*Move, error) {
	if hasCastlingPrefix(text, "O-O-O") {
		return parseCastling(text, sideToMove, true)
	}
	if hasCastlingPrefix(text, "O-O") {
		return parseCastling(text, sideToMove, false)
	}
	return parseOrdinary(text, sideToMove)
}

func hasCastlingPrefix(text, prefix string) bool {
	return len(text) >= len(prefix) && text[:len(prefix)] == prefix
}

func parseCastling(text string, side rules.Color, queenside bool) (*Move, error) {
	prefixLen := 3
	if queenside {
		prefixLen = 5
	}
	s := &scanner{text: text, pos: prefixLen}

	rank := rules.Rank('1')
	if side == rules.Black {
		rank = rules.Rank('8')
	}
	file := rules.File('g')
	if queenside {
		file = rules.File('c')
	}

	m := &Move{
		Original: text,
		Piece:    rules.Piece{Type: rules.King, Color: side},
		Target:   rules.Square{File: file, Rank: rank},
	}
	if err := parseTail(s, m); err != nil {
		return nil, err
	}
	return m, nil
}

// parseOrdinary parses every non-castling SAN token.
func parseOrdinary(text string, side rules.Color) (*Move, error) {
	s := &scanner{text: text}
	m := &Move{Original: text, Piece: rules.Piece{Color: side}}

	pieceType := rules.Pawn
	if !s.atEnd() {
		if pt, ok := rules.PieceTypeFromLetter(s.peek()); ok {
			pieceType = pt
			s.pos++
		} else if s.peek() == 'P' {
			pieceType = rules.Pawn
			s.pos++
		}
	}
	m.Piece.Type = pieceType

	f1, hasF1 := s.tryFile()
	r1, hasR1 := s.tryRank()

	var disambigFile *rules.File
	var disambigRank *rules.Rank

	switch {
	case hasF1 && hasR1:
		if s.peek() == 'x' || isFileByte(s.peek()) {
			// Followed by a capture marker or another file: f1/r1 was the
			// disambiguation square, not the target. Resolved only now
			// that the following character has been seen.
			disambigFile, disambigRank = &f1, &r1
		} else {
			// Nothing more meaningful follows: f1/r1 is the target itself.
			m.Target = rules.Square{File: f1, Rank: r1}
			return finishAfterTarget(s, m, false)
		}
	case hasF1 && !hasR1:
		if s.peek() != 'x' && !isFileByte(s.peek()) {
			// A lone file not followed by a capture marker or a target
			// file was meant as the target square and lacks its rank.
			return nil, &Error{Text: text, Kind: MissingRank}
		}
		disambigFile = &f1
	case !hasF1 && hasR1:
		// Rank-only disambiguation, e.g. "R1e1": a lone rank digit can
		// never itself be a complete target, so it is unconditionally
		// disambiguation.
		disambigRank = &r1
	case !hasF1 && !hasR1:
		// Nothing consumed yet; proceed straight to capture/target parsing.
	}

	capturing := false
	if s.peek() == 'x' {
		capturing = true
		s.pos++
	}

	targetFile, ok := s.tryFile()
	if !ok {
		return nil, &Error{Text: text, Kind: MissingFile}
	}
	targetRank, ok := s.tryRank()
	if !ok {
		return nil, &Error{Text: text, Kind: MissingRank}
	}

	m.DisambiguationFile = disambigFile
	m.DisambiguationRank = disambigRank
	m.Target = rules.Square{File: targetFile, Rank: targetRank}

	return finishAfterTarget(s, m, capturing)
}

// finishAfterTarget parses the optional promotion, check/mate and suffix
// annotation tail that follows every target square.
func finishAfterTarget(s *scanner, m *Move, capturing bool) (*Move, error) {
	m.Capturing = capturing

	if s.peek() == '=' {
		s.pos++
		if s.atEnd() {
			return nil, &Error{Text: m.Original, Kind: MissingPieceType}
		}
		pt, ok := rules.PieceTypeFromLetter(s.peek())
		if !ok {
			return nil, &Error{Text: m.Original, Kind: MissingPieceType}
		}
		s.pos++
		m.Promotion = &rules.Piece{Type: pt, Color: m.Piece.Color}
	}

	if err := parseTail(s, m); err != nil {
		return nil, err
	}
	return m, nil
}

// parseTail parses the shared check/checkmate + suffix-annotation tail and
// asserts that nothing but a recognized suffix glyph remains.
func parseTail(s *scanner, m *Move) error {
	sawCheck := false
	sawMate := false

	if s.peek() == '+' {
		sawCheck = true
		s.pos++
	} else if s.peek() == '#' {
		sawMate = true
		s.pos++
	}

	if (sawCheck && s.peek() == '#') || (sawMate && s.peek() == '+') {
		return &Error{Text: m.Original, Kind: CheckAndCheckmate}
	}

	switch {
	case sawMate:
		m.CheckState = rules.Checkmate
	case sawCheck:
		m.CheckState = rules.Check
	default:
		m.CheckState = rules.NoCheck
	}

	if !s.atEnd() {
		if suf, ok := longestSuffixMatch(s.rest()); ok {
			m.SuffixAnnotation = &suf
			s.pos = len(s.text)
		}
	}

	if !s.atEnd() {
		if looksLikeSuffixAttempt(s.rest()) {
			return &Error{Text: m.Original, Kind: InvalidSuffixAnnotation}
		}
		return &Error{Text: m.Original, Kind: UnexpectedCharsAtEnd}
	}
	return nil
}

// longestSuffixMatch tries the two-character suffix glyphs before the
// one-character ones, since "!?" must not be read as "!" leaving "?"
// dangling.
func longestSuffixMatch(rest string) (SuffixAnnotation, bool) {
	if len(rest) >= 2 {
		if s, ok := SuffixAnnotationFromText(rest[:2]); ok {
			return s, true
		}
	}
	if len(rest) >= 1 {
		if s, ok := SuffixAnnotationFromText(rest[:1]); ok {
			return s, true
		}
	}
	return 0, false
}

func looksLikeSuffixAttempt(rest string) bool {
	return rest[0] == '!' || rest[0] == '?'
}

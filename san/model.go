// Package san implements the two-sided SAN engine: parsing a SAN token
// into a structured description (parser.go) and, in the reverse direction,
// matching it against a legal-move list and generating minimally
// disambiguated SAN for a move (matcher.go).
package san

import "github.com/lgbarn/chessgame/rules"

// SuffixAnnotation is one of the six PGN move-quality suffixes.
type SuffixAnnotation int

const (
	Good SuffixAnnotation = iota + 1
	Poor
	VeryGood
	VeryPoor
	Speculative
	Questionable
)

// suffixToNAG is the total mapping from suffix annotation to NAG.
var suffixToNAG = map[SuffixAnnotation]int{
	Good:         1,
	Poor:         2,
	VeryGood:     3,
	VeryPoor:     4,
	Speculative:  5,
	Questionable: 6,
}

// suffixText is the total mapping from suffix annotation to its PGN glyph.
var suffixText = map[SuffixAnnotation]string{
	Good:         "!",
	Poor:         "?",
	VeryGood:     "!!",
	VeryPoor:     "??",
	Speculative:  "!?",
	Questionable: "?!",
}

// textToSuffix inverts suffixText.
var textToSuffix = map[string]SuffixAnnotation{
	"!":  Good,
	"?":  Poor,
	"!!": VeryGood,
	"??": VeryPoor,
	"!?": Speculative,
	"?!": Questionable,
}

// NAG returns the Numeric Annotation Glyph the suffix maps to.
func (s SuffixAnnotation) NAG() int { return suffixToNAG[s] }

// String returns the PGN glyph for the suffix.
func (s SuffixAnnotation) String() string { return suffixText[s] }

// SuffixAnnotationFromText parses one of "!", "?", "!!", "??", "!?", "?!".
func SuffixAnnotationFromText(text string) (SuffixAnnotation, bool) {
	s, ok := textToSuffix[text]
	return s, ok
}

// Move is a structured description of a SAN token, produced by Parse and
// consumed by Matches/MatchList/Generate.
type Move struct {
	Original string
	Piece    rules.Piece
	Target   rules.Square
	Capturing bool

	Promotion *rules.Piece

	CheckState rules.CheckState

	DisambiguationFile *rules.File
	DisambiguationRank *rules.Rank

	SuffixAnnotation *SuffixAnnotation
}

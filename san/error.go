package san

import "fmt"

// ErrorKind identifies why a SAN token failed to parse.
type ErrorKind int

const (
	UnexpectedToken ErrorKind = iota
	UnexpectedCharsAtEnd
	InvalidSuffixAnnotation
	CheckAndCheckmate
	MissingPieceType
	MissingRank
	MissingFile
)

var errorKindNames = [...]string{
	UnexpectedToken:         "UnexpectedToken",
	UnexpectedCharsAtEnd:    "UnexpectedCharsAtEnd",
	InvalidSuffixAnnotation: "InvalidSuffixAnnotation",
	CheckAndCheckmate:       "CheckAndCheckmate",
	MissingPieceType:        "MissingPieceType",
	MissingRank:             "MissingRank",
	MissingFile:             "MissingFile",
}

func (k ErrorKind) String() string {
	if int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "Unknown"
}

// Error is the SAN parser's own error type. It carries the offending SAN
// text and the taxonomy variant. The PGN parser translates every Error
// into gameerrors.KindInvalidMove.
type Error struct {
	Text string
	Kind ErrorKind
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid SAN %q: %s", e.Text, e.Kind)
}

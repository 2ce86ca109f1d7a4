// Package gameerrors defines the error and warning taxonomies shared by the
// move tree, SAN and PGN subsystems. Errors are fatal to the game currently
// being processed; warnings are recoverable and accumulate on the caller.
package gameerrors

import (
	"errors"
	"fmt"
)

// Kind identifies the category of a Error.
type Kind int

const (
	// KindInputError is a failure of the underlying input stream.
	KindInputError Kind = iota
	// KindUnexpectedChar is a stray byte the lexer could not classify.
	KindUnexpectedChar
	// KindEndOfInput indicates the stream ended where more input was expected.
	KindEndOfInput
	// KindUnexpectedToken is a syntactic error at the token level.
	KindUnexpectedToken
	// KindInvalidGameResult marks a malformed game-termination token.
	KindInvalidGameResult
	// KindInvalidMove indicates a SAN token that does not parse as a move.
	KindInvalidMove
	// KindIllegalMove indicates a SAN token with no matching legal move.
	KindIllegalMove
	// KindAmbiguousMove indicates a SAN token matching more than one legal move.
	KindAmbiguousMove
	// KindCannotStartRav indicates a '(' at a node with no parent.
	KindCannotStartRav
	// KindNoPenRav indicates an unbalanced ')' with no open RAV.
	KindNoPenRav
	// KindChessGameError wraps an error surfaced by the rules engine.
	KindChessGameError
	// KindNoParent indicates an edit operation that requires a parent found none.
	KindNoParent
	// KindOrphanNode indicates position reconstruction failed to reach a cached root.
	KindOrphanNode
)

var kindNames = [...]string{
	KindInputError:        "InputError",
	KindUnexpectedChar:    "UnexpectedChar",
	KindEndOfInput:        "EndOfInput",
	KindUnexpectedToken:   "UnexpectedToken",
	KindInvalidGameResult: "InvalidGameResult",
	KindInvalidMove:       "InvalidMove",
	KindIllegalMove:       "IllegalMove",
	KindAmbiguousMove:     "AmbiguousMove",
	KindCannotStartRav:    "CannotStartRav",
	KindNoPenRav:          "NoPenRav",
	KindChessGameError:    "ChessGameError",
	KindNoParent:          "NoParent",
	KindOrphanNode:        "OrphanNode",
}

// String returns the taxonomy name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// Error is a fatal error produced by the move tree, SAN or PGN subsystems.
// It carries the line number where the failure was detected (0 if not
// applicable) and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Line    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Line > 0 {
		if e.Message != "" {
			return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Message)
		}
		return fmt.Sprintf("%s at line %d", e.Kind, e.Line)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return e.Kind.String()
}

// Unwrap returns the wrapped cause, enabling errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New constructs a Error of the given kind.
func New(kind Kind, line int, message string) *Error {
	return &Error{Kind: kind, Line: line, Message: message}
}

// Wrap constructs a KindChessGameError that carries an underlying rules
// engine failure.
func Wrap(cause error, line int) *Error {
	return &Error{Kind: KindChessGameError, Line: line, Cause: cause}
}

// Is reports whether the target has the same Kind, so callers can write
// errors.Is(err, gameerrors.New(gameerrors.KindIllegalMove, 0, "")).
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// WarningKind identifies the category of a recoverable Warning.
type WarningKind int

const (
	// WarningUnexpectedChar marks a stray byte inside movetext that was skipped.
	WarningUnexpectedChar WarningKind = iota
	// WarningMoveMissingCapture marks a SAN token resolved only after the
	// matcher tolerated a missing capture indicator.
	WarningMoveMissingCapture
	// WarningMoveMissingPieceType marks a SAN token resolved only after the
	// matcher ignored the piece type.
	WarningMoveMissingPieceType
)

var warningKindNames = [...]string{
	WarningUnexpectedChar:       "UnexpectedChar",
	WarningMoveMissingCapture:   "MoveMissingCapture",
	WarningMoveMissingPieceType: "MoveMissingPieceType",
}

// String returns the taxonomy name of the warning kind.
func (k WarningKind) String() string {
	if int(k) < len(warningKindNames) {
		return warningKindNames[k]
	}
	return "Unknown"
}

// Warning is a recoverable deviation recorded during parsing. Warnings never
// abort parsing; they accumulate on the parser for retrieval after each game.
type Warning struct {
	Kind    WarningKind
	Line    int
	Message string
}

// String renders the warning for logging or display.
func (w Warning) String() string {
	if w.Message != "" {
		return fmt.Sprintf("%s at line %d: %s", w.Kind, w.Line, w.Message)
	}
	return fmt.Sprintf("%s at line %d", w.Kind, w.Line)
}

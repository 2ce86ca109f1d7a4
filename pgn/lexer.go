package pgn

import (
	"bufio"
	"io"
	"strings"
)

// Lexer tokenizes a PGN byte stream. It is not an iterator in the language
// sense: NextToken is called by a driver loop (the Parser), and the lexer
// keeps only the minimal state a single-pass scan needs — the current line
// number and a one-byte pushback buffer used for cross-game
// resynchronization.
type Lexer struct {
	r          *bufio.Reader
	lineNumber int
	lastByte   byte
	pushedBack bool
}

// NewLexer wraps r for tokenization. Line numbers start at 1.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(r), lineNumber: 1}
}

// LineNumber returns the current 1-based line number.
func (l *Lexer) LineNumber() int { return l.lineNumber }

// PushBack returns the most recently consumed byte to the input, so the
// next NextToken call re-lexes it. Only one byte of pushback is supported;
// it is used by the parser's cross-game resync to un-consume an
// OpenBracket byte once it has been recognized.
func (l *Lexer) PushBack() {
	l.pushedBack = true
	if l.lastByte == '\n' && l.lineNumber > 1 {
		l.lineNumber--
	}
}

func (l *Lexer) readByte() (byte, bool) {
	if l.pushedBack {
		l.pushedBack = false
		if l.lastByte == '\n' {
			l.lineNumber++
		}
		return l.lastByte, true
	}
	b, err := l.r.ReadByte()
	if err != nil {
		return 0, false
	}
	l.lastByte = b
	if b == '\n' {
		l.lineNumber++
	}
	return b, true
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isSymbolByte(b byte) bool {
	return isLetter(b) || isDigit(b) ||
		b == '-' || b == '/' || b == '+' || b == '#' || b == '=' || b == '?' || b == '!'
}

// NextToken returns the next token from the input. Calling NextToken after
// the stream is exhausted is idempotent: it keeps returning EndOfInput.
func (l *Lexer) NextToken() Token {
	for {
		b, ok := l.readByte()
		if !ok {
			return Token{Type: EndOfInput, Line: l.lineNumber}
		}
		line := l.lineNumber

		switch {
		case isWhitespace(b):
			continue
		case b == '[':
			return Token{Type: OpenBracket, Line: line}
		case b == ']':
			return Token{Type: CloseBracket, Line: line}
		case b == '"':
			return l.lexString(line)
		case b == '{':
			return l.lexComment(line)
		case b == '$':
			return l.lexNag(line)
		case b == '.':
			return Token{Type: Dot, Line: line}
		case b == '(':
			return Token{Type: OpenParen, Line: line}
		case b == ')':
			return Token{Type: CloseParen, Line: line}
		case b == '*':
			return Token{Type: GameResult, Value: "*", Line: line}
		case isDigit(b):
			return l.lexNumber(b, line)
		case isLetter(b):
			return l.lexSymbol(b, line)
		default:
			return Token{Type: Invalid, Value: string(b), Line: line}
		}
	}
}

// lexString consumes a quoted string up to the closing '"'. No backslash
// escape handling is performed; the raw body is passed through unchanged
// (see DESIGN.md for the reasoning).
func (l *Lexer) lexString(line int) Token {
	var sb strings.Builder
	for {
		b, ok := l.readByte()
		if !ok || b == '"' {
			break
		}
		sb.WriteByte(b)
	}
	return Token{Type: String, Value: sb.String(), Line: line}
}

// lexComment consumes a brace comment, collapsing every whitespace run to
// a single space.
func (l *Lexer) lexComment(line int) Token {
	var sb strings.Builder
	inWhitespace := false
	for {
		b, ok := l.readByte()
		if !ok || b == '}' {
			break
		}
		if isWhitespace(b) {
			inWhitespace = true
			continue
		}
		if inWhitespace {
			sb.WriteByte(' ')
			inWhitespace = false
		}
		sb.WriteByte(b)
	}
	return Token{Type: Comment, Value: sb.String(), Line: line}
}

// lexNag consumes the digits following '$'.
func (l *Lexer) lexNag(line int) Token {
	var sb strings.Builder
	for {
		b, ok := l.readByte()
		if !ok {
			break
		}
		if !isDigit(b) {
			l.PushBack()
			break
		}
		sb.WriteByte(b)
	}
	return Token{Type: Nag, Value: sb.String(), Line: line}
}

// lexNumber consumes a digit run that may continue through '-' or '/' into
// a composite symbol, classifying the result as a Number, a GameResult, or
// an Invalid token if it matches neither shape.
func (l *Lexer) lexNumber(first byte, line int) Token {
	var sb strings.Builder
	sb.WriteByte(first)
	composite := false
	for {
		b, ok := l.readByte()
		if !ok {
			break
		}
		if isDigit(b) {
			sb.WriteByte(b)
			continue
		}
		if b == '-' || b == '/' {
			composite = true
			sb.WriteByte(b)
			continue
		}
		l.PushBack()
		break
	}

	text := sb.String()
	if !composite {
		return Token{Type: Number, Value: text, Line: line}
	}
	switch text {
	case "1-0", "0-1", "1/2-1/2":
		return Token{Type: GameResult, Value: text, Line: line}
	default:
		return Token{Type: Invalid, Value: text, Line: line}
	}
}

// lexSymbol consumes the PGN symbol character class. SAN move tokens and
// tag names share this class.
func (l *Lexer) lexSymbol(first byte, line int) Token {
	var sb strings.Builder
	sb.WriteByte(first)
	for {
		b, ok := l.readByte()
		if !ok {
			break
		}
		if !isSymbolByte(b) {
			l.PushBack()
			break
		}
		sb.WriteByte(b)
	}
	return Token{Type: Symbol, Value: sb.String(), Line: line}
}

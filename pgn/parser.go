package pgn

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessgame/cursor"
	"github.com/lgbarn/chessgame/gameerrors"
	"github.com/lgbarn/chessgame/metadata"
	"github.com/lgbarn/chessgame/movetree"
	"github.com/lgbarn/chessgame/rules"
	"github.com/lgbarn/chessgame/san"
)

// ravFrame tracks one open recursive annotation variation: whether it has
// seen its first move yet, and any comment token collected before that
// first move.
type ravFrame struct {
	hasMoves              bool
	pendingPremoveComment string
}

// Parser drives a Lexer through the PGN grammar, building a movetree.Game
// per call to ReadGame and resolving every SAN token against the supplied
// rules engine. Parser state is an ordered stack of edit cursors (the top
// tracks the current line's "present" position), a stack of RAV
// descriptors, and one lookahead token — the lexer's byte pushback is the
// only other buffered state.
type Parser struct {
	lexer      *Lexer
	engine     rules.Engine
	current    Token
	hasCurrent bool
	warnings   []gameerrors.Warning
}

// NewParser creates a parser reading from r and resolving moves against
// engine.
func NewParser(r io.Reader, engine rules.Engine) *Parser {
	return &Parser{lexer: NewLexer(r), engine: engine}
}

// Warnings returns the warnings recorded while parsing the most recently
// returned game. They never abort parsing.
func (p *Parser) Warnings() []gameerrors.Warning { return p.warnings }

func (p *Parser) warn(kind gameerrors.WarningKind, message string) {
	p.warnings = append(p.warnings, gameerrors.Warning{Kind: kind, Line: p.lexer.LineNumber(), Message: message})
}

func (p *Parser) nextToken() {
	p.current = p.lexer.NextToken()
	p.hasCurrent = true
}

func (p *Parser) ensureCurrent() {
	if !p.hasCurrent {
		p.nextToken()
	}
}

// SkipToNextGame reads tokens until either EndOfInput or OpenBracket is
// found. On OpenBracket it pushes the underlying byte back to the lexer so
// the next ReadGame call sees the bracket again, resynchronizing onto the
// next game.
func (p *Parser) SkipToNextGame() {
	p.ensureCurrent()
	for {
		switch p.current.Type {
		case EndOfInput:
			return
		case OpenBracket:
			p.lexer.PushBack()
			p.hasCurrent = false
			return
		default:
			p.nextToken()
		}
	}
}

// ReadGame parses a single game from the input and returns the resulting
// move tree, or (nil, nil) if the input is exhausted. A non-nil error is
// fatal to this game; callers wanting to recover should call
// SkipToNextGame before retrying ReadGame.
func (p *Parser) ReadGame() (*movetree.Game, error) {
	p.ensureCurrent()
	if p.current.Type == EndOfInput {
		return nil, nil
	}
	p.warnings = nil

	meta := metadata.New()
	for p.current.Type == OpenBracket {
		if err := p.parseTag(&meta); err != nil {
			return nil, err
		}
	}

	var overallComment string
	if p.current.Type == Comment {
		overallComment = p.current.Value
		p.nextToken()
	}

	if variant, ok := meta.Get("Variant"); ok && strings.ToLower(variant) == "chess960" {
		p.SkipToNextGame()
		return p.ReadGame()
	}

	game, err := movetree.FromMetadata(p.engine, meta)
	if err != nil {
		return nil, gameerrors.Wrap(err, p.lexer.LineNumber())
	}
	if overallComment != "" {
		game.Root().AppendComment(overallComment)
	}

	cursors := []cursor.EditCursor{cursor.Edit(game)}
	var ravStack []ravFrame

	for {
		top := cursors[len(cursors)-1]

		switch p.current.Type {
		case Symbol:
			newTop, err := p.processMove(top, ravStack)
			if err != nil {
				return nil, err
			}
			cursors[len(cursors)-1] = newTop
			if len(ravStack) > 0 {
				ravStack[len(ravStack)-1].hasMoves = true
			}
			p.nextToken()

		case Nag:
			n, convErr := strconv.Atoi(p.current.Value)
			if convErr == nil {
				top.PushNag(n)
			}
			p.nextToken()

		case Comment:
			if len(ravStack) > 0 && !ravStack[len(ravStack)-1].hasMoves {
				frame := &ravStack[len(ravStack)-1]
				frame.pendingPremoveComment = appendWithSpace(frame.pendingPremoveComment, p.current.Value)
			} else {
				top.AppendComment(p.current.Value)
			}
			p.nextToken()

		case Number:
			p.nextToken()
			for p.current.Type == Dot {
				p.nextToken()
			}

		case Dot:
			p.nextToken()

		case OpenParen:
			parent, ok := top.Parent()
			if !ok {
				return nil, gameerrors.New(gameerrors.KindCannotStartRav, p.lexer.LineNumber(), "no parent to branch from")
			}
			cursors = append(cursors, parent)
			ravStack = append(ravStack, ravFrame{})
			p.nextToken()

		case CloseParen:
			if len(ravStack) == 0 {
				return nil, gameerrors.New(gameerrors.KindNoPenRav, p.lexer.LineNumber(), "unbalanced ')'")
			}
			cursors = cursors[:len(cursors)-1]
			ravStack = ravStack[:len(ravStack)-1]
			p.nextToken()

		case GameResult:
			p.finishResult(&meta, p.current.Value)
			p.nextToken()
			return game, nil

		case Invalid:
			if p.current.Value == "," || p.current.Value == "}" {
				p.warn(gameerrors.WarningUnexpectedChar, fmt.Sprintf("stray %q", p.current.Value))
				p.nextToken()
				continue
			}
			return nil, gameerrors.New(gameerrors.KindUnexpectedToken, p.lexer.LineNumber(), fmt.Sprintf("invalid token %q", p.current.Value))

		case EndOfInput:
			return nil, gameerrors.New(gameerrors.KindEndOfInput, p.lexer.LineNumber(), "unexpected end of input inside movetext")

		default:
			return nil, gameerrors.New(gameerrors.KindUnexpectedToken, p.lexer.LineNumber(), fmt.Sprintf("unexpected %s", p.current.Type))
		}
	}
}

func (p *Parser) finishResult(meta *metadata.Metadata, result string) {
	if v, ok := meta.Get("Result"); !ok || v == "" || v == "?" {
		meta.Set("Result", result)
	}
}

func appendWithSpace(existing, addition string) string {
	if existing == "" {
		return addition
	}
	return existing + " " + addition
}

// parseTag parses one '[' Symbol String ']' tag pair.
func (p *Parser) parseTag(meta *metadata.Metadata) error {
	p.nextToken()
	if p.current.Type != Symbol {
		return gameerrors.New(gameerrors.KindUnexpectedToken, p.lexer.LineNumber(), "expected tag name")
	}
	name := p.current.Value
	p.nextToken()
	if p.current.Type != String {
		return gameerrors.New(gameerrors.KindUnexpectedToken, p.lexer.LineNumber(), "expected tag value")
	}
	value := p.current.Value
	p.nextToken()
	if p.current.Type != CloseBracket {
		return gameerrors.New(gameerrors.KindUnexpectedToken, p.lexer.LineNumber(), "expected ']'")
	}
	p.nextToken()
	meta.Append(name, value)
	return nil
}

// processMove resolves the current Symbol token as a SAN move against top,
// including the two forgiving recovery paths for a missing piece letter or
// a missing capture marker.
func (p *Parser) processMove(top cursor.EditCursor, ravStack []ravFrame) (cursor.EditCursor, error) {
	text := p.current.Value
	line := p.lexer.LineNumber()

	sanMove, err := san.Parse(text, top.SideToMove())
	if err != nil {
		return cursor.EditCursor{}, gameerrors.New(gameerrors.KindInvalidMove, line, err.Error())
	}

	position, err := top.Position()
	if err != nil {
		return cursor.EditCursor{}, err
	}
	legalMoves := position.LegalMoves()

	matched := san.MatchList(sanMove, legalMoves)
	var resolved rules.Move
	switch len(matched) {
	case 1:
		resolved = matched[0]
	case 0:
		wildcard := san.MatchListWildcardPiece(sanMove, legalMoves)
		if len(wildcard) == 1 {
			resolved = wildcard[0]
			p.warn(gameerrors.WarningMoveMissingPieceType, fmt.Sprintf("%q resolved by ignoring piece type", text))
			break
		}
		relaxed := *sanMove
		relaxed.Capturing = true
		recaptured := san.MatchList(&relaxed, legalMoves)
		if len(recaptured) == 1 {
			resolved = recaptured[0]
			p.warn(gameerrors.WarningMoveMissingCapture, fmt.Sprintf("%q resolved by assuming a capture", text))
			break
		}
		return cursor.EditCursor{}, gameerrors.New(gameerrors.KindIllegalMove, line, fmt.Sprintf("no legal move matches %q", text))
	default:
		return cursor.EditCursor{}, gameerrors.New(gameerrors.KindAmbiguousMove, line, fmt.Sprintf("%q matches %d legal moves", text, len(matched)))
	}

	next := top.PlayMove(resolved)
	if sanMove.SuffixAnnotation != nil {
		next.PushNag(sanMove.SuffixAnnotation.NAG())
	}

	if len(ravStack) > 0 {
		frame := &ravStack[len(ravStack)-1]
		if frame.pendingPremoveComment != "" {
			next.SetPremoveComment(frame.pendingPremoveComment)
			frame.pendingPremoveComment = ""
		}
	}

	return next, nil
}

package pgn

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chessgame/cursor"
	"github.com/lgbarn/chessgame/gameerrors"
	"github.com/lgbarn/chessgame/metadata"
	"github.com/lgbarn/chessgame/movetree"
	"github.com/lgbarn/chessgame/rules"
	"github.com/lgbarn/chessgame/san"
)

const defaultLineWidth = 79

// Option configures a Writer.
type Option func(*Writer)

// WithLineWidth overrides the writer's target line width. Values <= 0 are
// ignored and the default of 79 columns is kept.
func WithLineWidth(n int) Option {
	return func(w *Writer) {
		if n > 0 {
			w.lineWidth = n
		}
	}
}

// Writer renders a movetree.Game as PGN text: tags, an optional overall
// comment, wrapped movetext, and a termination marker.
type Writer struct {
	lineWidth int
}

// NewWriter constructs a Writer with the given options applied over a
// 79-column default.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{lineWidth: defaultLineWidth}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteGame renders game to w.
func (wr *Writer) WriteGame(w io.Writer, game *movetree.Game) error {
	meta := game.Metadata()

	for _, name := range metadata.SevenTagRoster {
		fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(meta.GetOr(name, "?")))
	}
	for _, name := range sortedExtraTagNames(meta) {
		value, _ := meta.Get(name)
		fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(value))
	}
	fmt.Fprintln(w)

	root := cursor.Const(game)
	if c := root.Comment(); c != "" {
		fmt.Fprintf(w, "{%s}\n\n", c)
	}

	lw := newLineWriter(w, wr.lineWidth)
	if first, ok := root.Child(0); ok {
		if err := wr.writeLine(lw, first, true); err != nil {
			return err
		}
	}
	lw.writeToken(tokResult, meta.GetOr("Result", "?"))
	lw.newline()
	fmt.Fprintln(w)
	return nil
}

// writeLine walks a chain of main-line nodes starting at node. After each
// move that is its parent's main-line child, the parent's other children
// (the alternatives to that move) are written as RAVs. forceBlackNumber
// is set whenever the writer has just started (or resumed after closing) a
// RAV, so a leading Black move re-emits its move number with the "..."
// continuation marker.
func (wr *Writer) writeLine(lw *lineWriter, node cursor.ReadCursor, forceBlackNumber bool) error {
	force := forceBlackNumber
	for {
		if err := wr.writeMove(lw, node, force); err != nil {
			return err
		}

		force = false
		if parent, ok := node.Parent(); ok && !node.StartsVariation() {
			for i := 1; i < parent.ChildCount(); i++ {
				child, _ := parent.Child(i)
				lw.writeToken(tokRavStart, "(")
				if pc := child.PremoveComment(); pc != "" {
					lw.writeComment(pc)
				}
				if err := wr.writeLine(lw, child, child.PlayerColor() == rules.Black); err != nil {
					return err
				}
				lw.writeToken(tokRavEnd, ")")
			}
			force = parent.ChildCount() > 1
		}

		next, ok := node.Child(0)
		if !ok {
			return nil
		}
		node = next
	}
}

// writeMove emits one move's number (if applicable), SAN, check/mate
// suffix, NAGs and post-move comment.
func (wr *Writer) writeMove(lw *lineWriter, node cursor.ReadCursor, forceBlackNumber bool) error {
	parent, ok := node.Parent()
	if !ok {
		return gameerrors.New(gameerrors.KindNoParent, 0, "cannot render the root as a move")
	}
	parentPos, err := parent.Position()
	if err != nil {
		return err
	}

	moveNumber := parentPos.FullmoveNumber()
	switch {
	case node.PlayerColor() == rules.White:
		lw.writeToken(tokMoveNumber, fmt.Sprintf("%d.", moveNumber))
	case forceBlackNumber:
		lw.writeToken(tokMoveNumber, fmt.Sprintf("%d...", moveNumber))
	}

	sanMove := san.Generate(node.Move(), parentPos.LegalMoves())
	if sanMove == nil {
		return gameerrors.New(gameerrors.KindIllegalMove, 0, "move not found among the parent position's legal moves")
	}
	text := sanMove.Original

	position, err := node.Position()
	if err != nil {
		return err
	}
	switch position.CheckState() {
	case rules.Checkmate:
		text += "#"
	case rules.Check:
		text += "+"
	}
	lw.writeToken(tokMove, text)

	for _, nag := range node.Nags() {
		lw.writeToken(tokNag, fmt.Sprintf("$%d", nag))
	}
	if c := node.Comment(); c != "" {
		lw.writeComment(c)
	}
	return nil
}

func sortedExtraTagNames(m *metadata.Metadata) []string {
	seen := map[string]bool{}
	var names []string
	for i := 0; i < m.Len(); i++ {
		name, _ := m.At(i)
		if metadata.IsSevenTagRosterName(name) || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// tokenKind classifies an emitted movetext token for the spacing rule
// below. It intentionally mirrors only the distinctions that rule needs,
// not the full Token taxonomy the lexer uses.
type tokenKind int

const (
	noToken tokenKind = iota
	tokMoveNumber
	tokMove
	tokRavStart
	tokRavEnd
	tokComment
	tokNag
	tokResult
)

// lineWriter wraps movetext tokens at a target column width. A space is
// due before a token whenever the previous token was a MoveNumber, RavEnd,
// Move, Comment or Nag — except a Move immediately followed by a RavEnd,
// which binds tight ("exf4)" not "exf4 )"). When a due space would push the
// line past the width limit, a newline is emitted instead and the space is
// dropped.
type lineWriter struct {
	w         io.Writer
	lineLength int
	maxWidth  int
	lastKind  tokenKind
}

func newLineWriter(w io.Writer, maxWidth int) *lineWriter {
	return &lineWriter{w: w, maxWidth: maxWidth}
}

func (lw *lineWriter) spaceDueBefore(kind tokenKind) bool {
	switch lw.lastKind {
	case tokMoveNumber, tokRavEnd, tokMove, tokComment, tokNag:
		if lw.lastKind == tokMove && kind == tokRavEnd {
			return false
		}
		return true
	default:
		return false
	}
}

func (lw *lineWriter) writeToken(kind tokenKind, text string) {
	if lw.spaceDueBefore(kind) {
		if lw.lineLength+1+len(text) > lw.maxWidth {
			fmt.Fprintln(lw.w)
			lw.lineLength = 0
		} else {
			fmt.Fprint(lw.w, " ")
			lw.lineLength++
		}
	}
	fmt.Fprint(lw.w, text)
	lw.lineLength += len(text)
	lw.lastKind = kind
}

// writeComment splits the comment body on spaces so a long comment wraps
// like any other run of tokens.
func (lw *lineWriter) writeComment(text string) {
	words := strings.Fields(text)
	if len(words) == 0 {
		lw.writeToken(tokComment, "{}")
		return
	}
	for i, word := range words {
		if i == 0 {
			word = "{" + word
		}
		if i == len(words)-1 {
			word += "}"
		}
		lw.writeToken(tokComment, word)
	}
}

func (lw *lineWriter) newline() {
	fmt.Fprintln(lw.w)
	lw.lineLength = 0
	lw.lastKind = noToken
}

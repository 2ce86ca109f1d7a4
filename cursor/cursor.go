// Package cursor implements navigation and editing handles over a
// movetree.Game. The read/write split is expressed as two distinct types
// rather than a runtime-checked flag: ReadCursor exposes
// only navigation and read accessors, EditCursor additionally exposes
// PlayMove, AddVariation and the comment/NAG mutators. An EditCursor can
// always be projected down to a ReadCursor (Read()); the reverse conversion
// does not exist.
package cursor

import (
	"github.com/lgbarn/chessgame/gameerrors"
	"github.com/lgbarn/chessgame/movetree"
	"github.com/lgbarn/chessgame/rules"
)

// ReadCursor is a read-only (game, node) pair.
type ReadCursor struct {
	game *movetree.Game
	node *movetree.GameNode
}

// NewReadCursor returns a read cursor at node within game.
func NewReadCursor(game *movetree.Game, node *movetree.GameNode) ReadCursor {
	return ReadCursor{game: game, node: node}
}

// Node returns the underlying tree node.
func (c ReadCursor) Node() *movetree.GameNode { return c.node }

// Game returns the owning game.
func (c ReadCursor) Game() *movetree.Game { return c.game }

// Parent returns a cursor at the parent node, and whether one exists.
func (c ReadCursor) Parent() (ReadCursor, bool) {
	p := c.node.Parent()
	if p == nil {
		return ReadCursor{}, false
	}
	return ReadCursor{game: c.game, node: p}, true
}

// Child returns a cursor at child index i, and whether it exists.
func (c ReadCursor) Child(i int) (ReadCursor, bool) {
	ch := c.node.Child(i)
	if ch == nil {
		return ReadCursor{}, false
	}
	return ReadCursor{game: c.game, node: ch}, true
}

// ChildCount returns the number of children of the current node.
func (c ReadCursor) ChildCount() int { return c.node.ChildCount() }

// HasVariations reports whether the current node has more than one child.
func (c ReadCursor) HasVariations() bool { return c.node.ChildCount() > 1 }

// StartsVariation reports whether the current node is a non-mainline child
// of its parent (i.e. it exists and self is not parent.Child(0)).
func (c ReadCursor) StartsVariation() bool {
	p := c.node.Parent()
	if p == nil {
		return false
	}
	return p.Child(0) != c.node
}

// VariationNumber returns the index of the current node among its parent's
// children, or 0 if there is no parent.
func (c ReadCursor) VariationNumber() int {
	p := c.node.Parent()
	if p == nil {
		return 0
	}
	for i := 0; i < p.ChildCount(); i++ {
		if p.Child(i) == c.node {
			return i
		}
	}
	return 0
}

// Comment returns the current node's post-move comment.
func (c ReadCursor) Comment() string { return c.node.Comment() }

// PremoveComment returns the current node's premove comment.
func (c ReadCursor) PremoveComment() string { return c.node.PremoveComment() }

// Nags returns the current node's NAGs.
func (c ReadCursor) Nags() []int { return c.node.Nags() }

// Move returns the move that produced the current node's position.
func (c ReadCursor) Move() rules.Move { return c.node.Move() }

// SideToMove returns the colour to move at the current node: for non-root
// nodes this is the opponent of the colour that played the node's move; at
// the root it comes from the root position.
func (c ReadCursor) SideToMove() rules.Color {
	if c.node.Parent() == nil {
		return c.node.Position().SideToMove()
	}
	return c.node.Move().Piece.Color.Opposite()
}

// PlayerColor returns the colour that played the move leading to the
// current node. Undefined at the root.
func (c ReadCursor) PlayerColor() rules.Color {
	return c.node.Move().Piece.Color
}

// Position reconstructs the position at the current node: if the node
// caches a position it is returned directly, otherwise the cursor walks
// parent links until a cached position is found and replays moves down to
// the current node via the rules engine's MakeMove. This always terminates
// at the root, which is always cached, unless the tree has been corrupted,
// in which case OrphanNode is returned.
func (c ReadCursor) Position() (rules.Position, error) {
	if pos := c.node.Position(); pos != nil {
		return pos, nil
	}

	var path []*movetree.GameNode
	n := c.node
	for n != nil {
		if n.Position() != nil {
			break
		}
		path = append(path, n)
		n = n.Parent()
	}
	if n == nil {
		return nil, gameerrors.New(gameerrors.KindOrphanNode, 0, "no cached position reachable from node")
	}

	pos := n.Position()
	for i := len(path) - 1; i >= 0; i-- {
		next, err := pos.MakeMove(path[i].Move())
		if err != nil {
			return nil, gameerrors.Wrap(err, 0)
		}
		pos = next
		path[i].SetPosition(pos)
	}
	return pos, nil
}

// EditCursor additionally exposes mutation operations over the tree.
type EditCursor struct {
	ReadCursor
}

// NewEditCursor returns an edit cursor at node within game.
func NewEditCursor(game *movetree.Game, node *movetree.GameNode) EditCursor {
	return EditCursor{ReadCursor{game: game, node: node}}
}

// Read projects this edit cursor down to a read-only cursor at the same
// node. This is the only direction of conversion the type system allows.
func (c EditCursor) Read() ReadCursor { return c.ReadCursor }

// Parent returns an edit cursor at the parent node, and whether one exists.
func (c EditCursor) Parent() (EditCursor, bool) {
	p := c.node.Parent()
	if p == nil {
		return EditCursor{}, false
	}
	return EditCursor{ReadCursor{game: c.game, node: p}}, true
}

// Child returns an edit cursor at child index i, and whether it exists.
func (c EditCursor) Child(i int) (EditCursor, bool) {
	ch := c.node.Child(i)
	if ch == nil {
		return EditCursor{}, false
	}
	return EditCursor{ReadCursor{game: c.game, node: ch}}, true
}

// PlayMove appends move as a child of the current node (deduplicating
// against existing children) and returns a cursor at the resulting node.
func (c EditCursor) PlayMove(move rules.Move) EditCursor {
	next := c.game.AddNode(c.node, move)
	return EditCursor{ReadCursor{game: c.game, node: next}}
}

// AddVariation appends move as a child of the current node's parent,
// producing a sibling of the current node. It fails with NoParent at the
// root, since a variation needs a position to diverge from.
func (c EditCursor) AddVariation(move rules.Move) (EditCursor, error) {
	parent := c.node.Parent()
	if parent == nil {
		return EditCursor{}, gameerrors.New(gameerrors.KindNoParent, 0, "cannot add a variation at the root")
	}
	next := c.game.AddNode(parent, move)
	return EditCursor{ReadCursor{game: c.game, node: next}}, nil
}

// SetComment replaces the current node's post-move comment.
func (c EditCursor) SetComment(s string) { c.node.SetComment(s) }

// AppendComment appends to the current node's post-move comment.
func (c EditCursor) AppendComment(s string) { c.node.AppendComment(s) }

// SetPremoveComment replaces the current node's premove comment.
func (c EditCursor) SetPremoveComment(s string) { c.node.SetPremoveComment(s) }

// AppendPremoveComment appends to the current node's premove comment.
func (c EditCursor) AppendPremoveComment(s string) { c.node.AppendPremoveComment(s) }

// PushNag appends a NAG to the current node.
func (c EditCursor) PushNag(nag int) { c.node.PushNag(nag) }

// Edit returns an edit cursor at game's root. Kept here rather than on
// movetree.Game to avoid an import cycle between movetree and cursor.
func Edit(game *movetree.Game) EditCursor {
	return NewEditCursor(game, game.Root())
}

// Const returns a read cursor at game's root. Mirrors Game::const_cursor().
func Const(game *movetree.Game) ReadCursor {
	return NewReadCursor(game, game.Root())
}

// CurrentMainline returns a read cursor at the leaf reached by following
// child(0) from the root. Mirrors Game::current_mainline().
func CurrentMainline(game *movetree.Game) ReadCursor {
	return NewReadCursor(game, game.CurrentMainline())
}

// Package movetree implements the move tree: a parent-linked tree of
// GameNodes rooted at a Game's starting position, with on-demand position
// reconstruction and deduplicating child insertion.
//
// Go's tracing garbage collector reclaims reference cycles, so unlike a
// weak-pointer scheme for avoiding cycles in reference-counted languages,
// parent links here are ordinary pointers: a Game keeps the tree alive for
// exactly as long as something holds the Game (or a node reachable from it),
// and there is no manual bookkeeping to avoid leaking a cycle.
package movetree

import "github.com/lgbarn/chessgame/rules"

// NodeId is an opaque, monotonically increasing identifier allocated by a
// Game. NodeId(0) is reserved to mean "invalid". Ids are per-game only; they
// are never serialized and carry no meaning across games.
type NodeId uint32

// InvalidNodeId is the reserved zero value meaning "no node".
const InvalidNodeId NodeId = 0

// RootNodeId is the id always assigned to a Game's root node.
const RootNodeId NodeId = 1

// GameNode is a position reached by playing one half-move from its parent.
// The root node of a Game has a zero Move and no parent.
type GameNode struct {
	id     NodeId
	move   rules.Move
	parent *GameNode
	children []*GameNode

	comment         string
	premoveComment  string
	nags            []int
	position        rules.Position
}

// newNode constructs a node with the given id, move and parent. It is
// unexported: nodes are only ever created through Game.AddNode so that id
// allocation and ownership stay centralized.
func newNode(id NodeId, move rules.Move, parent *GameNode) *GameNode {
	return &GameNode{id: id, move: move, parent: parent}
}

// Id returns the node's identifier.
func (n *GameNode) Id() NodeId { return n.id }

// Move returns the move that produced this node's position. It is the zero
// Move for the root.
func (n *GameNode) Move() rules.Move { return n.move }

// Parent returns the parent node, or nil at the root.
func (n *GameNode) Parent() *GameNode { return n.parent }

// ChildCount returns the number of children.
func (n *GameNode) ChildCount() int { return len(n.children) }

// Child returns the child at index i, or nil if i is out of range. Index 0
// is the main-line continuation; indices >= 1 are variations in declaration
// order.
func (n *GameNode) Child(i int) *GameNode {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Comment returns the post-move comment.
func (n *GameNode) Comment() string { return n.comment }

// SetComment replaces the post-move comment.
func (n *GameNode) SetComment(s string) { n.comment = s }

// AppendComment appends to the post-move comment, separating with a space
// if a comment is already present.
func (n *GameNode) AppendComment(s string) {
	n.comment = appendText(n.comment, s)
}

// PremoveComment returns the comment attached before the first move of the
// RAV this node begins, if any.
func (n *GameNode) PremoveComment() string { return n.premoveComment }

// SetPremoveComment replaces the premove comment.
func (n *GameNode) SetPremoveComment(s string) { n.premoveComment = s }

// AppendPremoveComment appends to the premove comment.
func (n *GameNode) AppendPremoveComment(s string) {
	n.premoveComment = appendText(n.premoveComment, s)
}

func appendText(existing, addition string) string {
	if existing == "" {
		return addition
	}
	if addition == "" {
		return existing
	}
	return existing + " " + addition
}

// Nags returns the Numeric Annotation Glyphs attached to this node, in
// order of insertion.
func (n *GameNode) Nags() []int { return n.nags }

// PushNag appends a NAG to the node.
func (n *GameNode) PushNag(nag int) {
	n.nags = append(n.nags, nag)
}

// Position returns the node's cached position, or nil if none is cached.
func (n *GameNode) Position() rules.Position { return n.position }

// SetPosition caches a position on the node.
func (n *GameNode) SetPosition(p rules.Position) { n.position = p }

// appendChild scans existing children in order and returns the first whose
// Move equals candidate's move (structural equality per rules.Move.Equal);
// otherwise it appends candidate and returns it. Callers always receive the
// canonical child, so id allocation and subsequent mutation converge on the
// same node even when the PGN grammar reaches the same half-move via two
// different framings.
func (n *GameNode) appendChild(candidate *GameNode) *GameNode {
	for _, existing := range n.children {
		if existing.move.Equal(candidate.move) {
			return existing
		}
	}
	n.children = append(n.children, candidate)
	return candidate
}

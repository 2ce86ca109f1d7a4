package movetree

import (
	"github.com/lgbarn/chessgame/metadata"
	"github.com/lgbarn/chessgame/rules"
)

// Game owns a move tree's root node and metadata, and allocates NodeIds.
// Nodes are created only through Game.AddNode; a node is owned by its
// parent's children slice (the root is owned by the Game itself) and is
// destroyed only when the owning Game becomes unreachable.
type Game struct {
	metadata metadata.Metadata
	root     *GameNode
	nextId   NodeId
}

// New creates a game whose root is a fresh node with id RootNodeId, empty
// metadata, and the standard starting position cached on the root.
func New(engine rules.Engine) *Game {
	root := newNode(RootNodeId, rules.Move{}, nil)
	root.SetPosition(engine.StandardStarting())
	return &Game{
		metadata: metadata.New(),
		root:     root,
		nextId:   RootNodeId + 1,
	}
}

// FromMetadata behaves like New but copies m into the game's metadata and,
// if m contains a FEN tag, uses it (via engine.FromFEN) as the root
// position instead of the standard starting position.
func FromMetadata(engine rules.Engine, m metadata.Metadata) (*Game, error) {
	root := newNode(RootNodeId, rules.Move{}, nil)

	if fen, ok := m.Get("FEN"); ok && fen != "" {
		pos, err := engine.FromFEN(fen)
		if err != nil {
			return nil, err
		}
		root.SetPosition(pos)
	} else {
		root.SetPosition(engine.StandardStarting())
	}

	return &Game{
		metadata: m.Clone(),
		root:     root,
		nextId:   RootNodeId + 1,
	}, nil
}

// Metadata returns the game's ordered tag list.
func (g *Game) Metadata() *metadata.Metadata { return &g.metadata }

// Root returns the root node of the move tree.
func (g *Game) Root() *GameNode { return g.root }

// AddNode allocates a candidate node as a child of parent produced by move,
// then asks parent to deduplicate it. The returned node is the canonical
// child: either the freshly allocated candidate, or a pre-existing sibling
// with the same move. NodeId allocation is monotone regardless: even when
// deduplication drops the candidate, nextId has already advanced, so ids
// among nodes actually retained in the tree need not be contiguous.
func (g *Game) AddNode(parent *GameNode, move rules.Move) *GameNode {
	candidate := newNode(g.nextId, move, parent)
	g.nextId++
	return parent.appendChild(candidate)
}

// CurrentMainline walks child(0) from the root repeatedly until a leaf and
// returns that leaf node.
func (g *Game) CurrentMainline() *GameNode {
	n := g.root
	for {
		child := n.Child(0)
		if child == nil {
			return n
		}
		n = child
	}
}

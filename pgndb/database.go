// Package pgndb sequences the single-game pgn.Parser over a PGN database:
// a stream of many games back to back, the shape PGN files take in the
// wild. It adds no new parsing rules of its own.
package pgndb

import (
	"errors"
	"io"
	"iter"

	"github.com/lgbarn/chessgame/gameerrors"
	"github.com/lgbarn/chessgame/movetree"
	"github.com/lgbarn/chessgame/pgn"
	"github.com/lgbarn/chessgame/rules"
)

// Database wraps a pgn.Parser to iterate every game in a stream.
type Database struct {
	parser *pgn.Parser
}

// New wraps parser for sequential game iteration.
func New(parser *pgn.Parser) *Database {
	return &Database{parser: parser}
}

// Next reads the next game. It returns (nil, io.EOF) once the stream is
// exhausted. On a per-game parse error it resynchronizes to the following
// "[" and returns the error for that game, so a subsequent Next call can
// still recover the games that follow it in the stream. A game cut off by
// the end of the stream (gameerrors.KindEndOfInput) is not reported as an
// error: Next returns (nil, io.EOF) for it.
func (d *Database) Next() (*movetree.Game, error) {
	game, err := d.parser.ReadGame()
	if err == nil {
		if game == nil {
			return nil, io.EOF
		}
		return game, nil
	}

	var gerr *gameerrors.Error
	if errors.As(err, &gerr) && gerr.Kind == gameerrors.KindEndOfInput {
		return nil, io.EOF
	}

	d.parser.SkipToNextGame()
	return nil, err
}

// Warnings returns the warnings accumulated while reading the
// most recently returned game.
func (d *Database) Warnings() []gameerrors.Warning {
	return d.parser.Warnings()
}

// Games returns an iterator over every game in the stream, in order. Errors
// on individual games are yielded rather than stopping iteration; the
// end-of-stream condition ends the sequence without a final error value.
func (d *Database) Games() iter.Seq2[*movetree.Game, error] {
	return func(yield func(*movetree.Game, error) bool) {
		for {
			game, err := d.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(game, err) {
				return
			}
		}
	}
}

// NewFromReader builds a Database reading PGN text from r, resolving move
// positions against engine.
func NewFromReader(r io.Reader, engine rules.Engine) *Database {
	return New(pgn.NewParser(r, engine))
}

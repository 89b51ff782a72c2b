package mapping

import "github.com/ankarhem/advent-of-code/domain/interval"

// Piece is one fragment emitted by Table.Split. A mapped piece has been
// translated by the rule that covered it; an unmapped piece passed through
// unchanged.
type Piece struct {
	source interval.Interval
	dest   interval.Interval
	mapped bool
}

func mappedPiece(r Rule, source interval.Interval) Piece {
	return Piece{source: source, dest: r.translate(source), mapped: true}
}

func unmappedPiece(source interval.Interval) Piece {
	return Piece{source: source, dest: source}
}

// Interval returns the piece in destination coordinates.
func (p Piece) Interval() interval.Interval { return p.dest }

// Source returns the piece in source coordinates.
func (p Piece) Source() interval.Interval { return p.source }

// Mapped reports whether a rule translated the piece.
func (p Piece) Mapped() bool { return p.mapped }

// Package chess models a chess position as a set of glyphs on an 8x8 board. It
// enumerates pseudo-legal moves, applies chosen moves and converts moves to and
// from short algebraic notation.
//
// Check, castling, en passant and promotion are not modelled, and nothing here
// ranks or chooses moves.
package chess

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Board owns every piece, keyed by its location, and the side to move.
type Board struct {
	pieces   map[Location]Piece
	ToMove   Color
	pawnRule PawnRule
}

// New returns an empty board with White to move.
func New() *Board {
	return &Board{pieces: make(map[Location]Piece), ToMove: White}
}

// Default returns the standard starting position.
func Default() *Board {
	board, err := FromRepr(initialRepr)
	if err != nil {
		panic(err)
	}
	return board
}

// FromRepr reads 64 glyphs row by row from rank 8 down to rank 1, files a to h.
// A space is an empty square. White is to move.
func FromRepr(repr string) (*Board, error) {
	glyphs := make([]string, 0, 64)
	graphemes := uniseg.NewGraphemes(repr)
	for graphemes.Next() {
		glyphs = append(glyphs, graphemes.Str())
	}
	if len(glyphs) != 64 {
		return nil, fmt.Errorf("%w: board is not length 64: %d", ErrBoardFormat, len(glyphs))
	}
	board := New()
	for i, glyph := range glyphs {
		loc := Location{Rank: uint8(7 - i/8), File: uint8(i % 8)}
		piece, ok, err := PieceFromGlyph(glyph, loc)
		if err != nil {
			return nil, err
		}
		if ok {
			board.addPiece(piece)
		}
	}
	return board, nil
}

func (board *Board) addPiece(piece Piece) {
	if board.pieces == nil {
		board.pieces = make(map[Location]Piece)
	}
	board.pieces[piece.Location] = piece
}

// Put places piece on the board, replacing any occupant of its location.
func (board *Board) Put(piece Piece) {
	board.addPiece(piece)
}

// GetPiece looks up the piece at loc.
func (board *Board) GetPiece(loc Location) (Piece, bool) {
	piece, ok := board.pieces[loc]
	return piece, ok
}

func (board *Board) occupied(loc Location) bool {
	_, ok := board.pieces[loc]
	return ok
}

// Pieces returns all pieces ordered a1, b1, ... h8.
func (board *Board) Pieces() []Piece {
	pieces := make([]Piece, 0, len(board.pieces))
	for rank := uint8(0); rank < 8; rank++ {
		for file := uint8(0); file < 8; file++ {
			if piece, ok := board.pieces[Location{Rank: rank, File: file}]; ok {
				pieces = append(pieces, piece)
			}
		}
	}
	return pieces
}

// SetPawnRule selects the pawn double step rule used by move generation.
func (board *Board) SetPawnRule(rule PawnRule) {
	board.pawnRule = rule
}

// Clone returns an independent copy of the board.
func (board *Board) Clone() *Board {
	clone := &Board{pieces: make(map[Location]Piece, len(board.pieces)), ToMove: board.ToMove, pawnRule: board.pawnRule}
	for loc, piece := range board.pieces {
		clone.pieces[loc] = piece
	}
	return clone
}

// PossibleMoves returns the moves of every piece of the side to move. Callers
// must not depend on the order.
func (board *Board) PossibleMoves() []Move {
	var moves []Move
	for _, piece := range board.Pieces() {
		if piece.Color == board.ToMove {
			moves = append(moves, piece.PossibleMoves(board)...)
		}
	}
	return moves
}

// ApplyMove relocates the moving piece, overwriting whatever stood on the
// destination, and passes the turn.
func (board *Board) ApplyMove(m Move) error {
	switch m.Type {
	case Simple:
		piece, ok := board.pieces[m.From]
		if !ok {
			return fmt.Errorf("%w: %s", ErrEmptySourceSquare, m.From)
		}
		if !m.To.Valid() {
			return fmt.Errorf("%w: destination %s", ErrNotationParse, m.To)
		}
		delete(board.pieces, m.From)
		piece.Location = m.To
		board.pieces[m.To] = piece
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedMove, m.Type)
	}
	board.ToMove = board.ToMove.Opposite()
	return nil
}

func (board *Board) glyph(loc Location) string {
	if piece, ok := board.pieces[loc]; ok {
		return piece.Glyph()
	}
	return emptyGlyph
}

// Repr returns the packed 64 glyph form read by FromRepr.
func (board *Board) Repr() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			b.WriteString(board.glyph(Location{Rank: uint8(rank), File: uint8(file)}))
		}
	}
	return b.String()
}

// ToStr renders one line per rank from 8 down to 1, squares separated by a space.
func (board *Board) ToStr() string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			b.WriteString(board.glyph(Location{Rank: uint8(rank), File: uint8(file)}))
			if file < 7 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (board *Board) String() string {
	return board.ToStr()
}

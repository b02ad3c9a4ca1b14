package chess

import "errors"

// Errors returned by the engine. They are wrapped with the offending input, test
// with errors.Is.
var (
	// ErrBoardFormat indicates board text that is not 64 known glyphs.
	ErrBoardFormat = errors.New("invalid board format")

	// ErrNotationParse indicates move or square text that does not match the notation.
	ErrNotationParse = errors.New("invalid move notation")

	// ErrNoCandidate indicates that no piece of the side to move can make the move.
	ErrNoCandidate = errors.New("no piece can make the move")

	// ErrAmbiguousMove indicates more than one piece can make the move.
	ErrAmbiguousMove = errors.New("move is ambiguous")

	// ErrEmptySourceSquare indicates a move from a square with no piece.
	ErrEmptySourceSquare = errors.New("no piece at source square")

	// ErrUnsupportedMove indicates a move type the board cannot apply.
	ErrUnsupportedMove = errors.New("unsupported move type")
)

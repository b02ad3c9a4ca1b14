package chess

// MoveType distinguishes move shapes. Only Simple exists; captures, promotions
// and castling would each become a new type handled by Board.ApplyMove.
type MoveType uint8

const (
	Simple MoveType = iota
)

// Move move. A simple move carries no record of what it captures, callers read the
// destination before applying it.
type Move struct {
	Type MoveType
	From Location
	To   Location
}

// NewMove returns the simple move from -> to.
func NewMove(from, to Location) Move {
	return Move{Type: Simple, From: from, To: to}
}

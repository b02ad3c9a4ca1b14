package chess

import "fmt"

// PawnRule selects when a pawn may advance two squares.
type PawnRule uint8

const (
	// DoubleStepWhenClear allows the double step from any rank as long as both
	// squares ahead are empty.
	DoubleStepWhenClear PawnRule = iota
	// DoubleStepFromStart additionally requires the pawn to stand on its second rank.
	DoubleStepFromStart
)

// Piece piece. Color and Kind never change, Location follows the board.
type Piece struct {
	Color    Color
	Kind     Kind
	Location Location
}

// Glyph returns the chess symbol for the piece.
func (piece Piece) Glyph() string {
	if int(piece.Kind) >= len(kindToGlyphWhite) {
		return "?"
	}
	if piece.Color == Black {
		return kindToGlyphBlack[piece.Kind]
	}
	return kindToGlyphWhite[piece.Kind]
}

func (piece Piece) String() string {
	return fmt.Sprintf("%s %s %s", piece.Color, piece.Kind, piece.Location)
}

// PieceFromGlyph builds the piece a glyph stands for. The second result is false
// for the empty square; unknown glyphs return an error.
func PieceFromGlyph(glyph string, loc Location) (Piece, bool, error) {
	if glyph == emptyGlyph {
		return Piece{}, false, nil
	}
	p, ok := glyphToPiece[glyph]
	if !ok {
		return Piece{}, false, fmt.Errorf("%w: invalid glyph %q at %s", ErrBoardFormat, glyph, loc)
	}
	return Piece{Color: p.color, Kind: p.kind, Location: loc}, true, nil
}

// PossibleMoves returns the pseudo-legal moves of the piece on board. Only
// occupancy is considered, never check.
func (piece Piece) PossibleMoves(board *Board) []Move {
	switch piece.Kind {
	case Pawn:
		return piece.movesForPawn(board)
	case Knight:
		return piece.movesForOffsets(board, knightOffsets[:])
	case Bishop:
		return piece.movesForRays(board, bishopRays[:])
	case Rook:
		return piece.movesForRays(board, rookRays[:])
	case Queen:
		moves := piece.movesForRays(board, bishopRays[:])
		return append(moves, piece.movesForRays(board, rookRays[:])...)
	case King:
		return piece.movesForOffsets(board, kingOffsets[:])
	}
	return nil
}

func (piece Piece) simple(to Location) Move {
	return Move{Type: Simple, From: piece.Location, To: to}
}

func (piece Piece) capturable(board *Board, loc Location) bool {
	other, ok := board.GetPiece(loc)
	return ok && other.Color != piece.Color
}

func (piece Piece) onStartRank() bool {
	if piece.Color == Black {
		return piece.Location.Rank == 6
	}
	return piece.Location.Rank == 1
}

func (piece Piece) movesForPawn(board *Board) []Move {
	forward1, ok := piece.Location.Forward(piece.Color)
	if !ok {
		return nil
	}
	var moves []Move
	if !board.occupied(forward1) {
		moves = append(moves, piece.simple(forward1))
		if board.pawnRule == DoubleStepWhenClear || piece.onStartRank() {
			if forward2, ok := forward1.Forward(piece.Color); ok && !board.occupied(forward2) {
				moves = append(moves, piece.simple(forward2))
			}
		}
	}
	if left, ok := forward1.Left(piece.Color); ok && piece.capturable(board, left) {
		moves = append(moves, piece.simple(left))
	}
	if right, ok := forward1.Right(piece.Color); ok && piece.capturable(board, right) {
		moves = append(moves, piece.simple(right))
	}
	return moves
}

func (piece Piece) movesForOffsets(board *Board, offsets [][2]int) []Move {
	moves := make([]Move, 0, len(offsets))
	for _, offset := range offsets {
		dest, ok := piece.Location.MoveRelative(piece.Color, offset[0], offset[1])
		if !ok {
			continue
		}
		if other, ok := board.GetPiece(dest); ok && other.Color == piece.Color {
			continue
		}
		moves = append(moves, piece.simple(dest))
	}
	return moves
}

func (piece Piece) movesForRays(board *Board, rays [][2]int) []Move {
	var moves []Move
	for _, ray := range rays {
		for distance := 1; distance < 8; distance++ {
			dest, ok := piece.Location.MoveRelative(piece.Color, distance*ray[0], distance*ray[1])
			if !ok {
				break
			}
			if other, ok := board.GetPiece(dest); ok {
				if other.Color != piece.Color {
					moves = append(moves, piece.simple(dest))
				}
				break
			}
			moves = append(moves, piece.simple(dest))
		}
	}
	return moves
}

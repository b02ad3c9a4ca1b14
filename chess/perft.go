package chess

// Perft counts the leaves of the pseudo-legal move tree depth plies deep.
func (board *Board) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := board.PossibleMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := board.Clone()
		if err := child.ApplyMove(m); err != nil {
			continue
		}
		nodes += child.Perft(depth - 1)
	}
	return nodes
}

package chess

import (
	"fmt"
	"regexp"
)

var reSimple = regexp.MustCompile(`^([NBRQK]?)([a-h]?)([1-8]?)x?([a-h][1-8])$`)

// ToPGN encodes m as the kind letter of the moving piece followed by the
// destination, "Nf3" or "e4". No disambiguation, capture or check markers.
func (board *Board) ToPGN(m Move) (string, error) {
	piece, ok := board.GetPiece(m.From)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrEmptySourceSquare, m.From)
	}
	return piece.Kind.Letter() + m.To.String(), nil
}

func (piece Piece) canReach(board *Board, dest Location) bool {
	for _, m := range piece.PossibleMoves(board) {
		if m.To == dest {
			return true
		}
	}
	return false
}

// ParsePGNMove resolves short algebraic text to the single move of the side to
// move it describes. A source file or rank may be given to break ties.
func (board *Board) ParsePGNMove(text string) (Move, error) {
	match := reSimple.FindStringSubmatch(text)
	if match == nil {
		return Move{}, fmt.Errorf("%w: could not parse move %q", ErrNotationParse, text)
	}
	kind, _ := KindFromLetter(match[1])
	var sourceFile, sourceRank *uint8
	if match[2] != "" {
		file, _ := parseFile(match[2][0])
		sourceFile = &file
	}
	if match[3] != "" {
		rank, _ := parseRank(match[3][0])
		sourceRank = &rank
	}
	dest, err := ParseLocation(match[4])
	if err != nil {
		return Move{}, err
	}

	var candidates []Piece
	for _, piece := range board.Pieces() {
		if piece.Color != board.ToMove || piece.Kind != kind {
			continue
		}
		if sourceFile != nil && *sourceFile != piece.Location.File {
			continue
		}
		if sourceRank != nil && *sourceRank != piece.Location.Rank {
			continue
		}
		if !piece.canReach(board, dest) {
			continue
		}
		candidates = append(candidates, piece)
	}
	switch len(candidates) {
	case 0:
		return Move{}, fmt.Errorf("%w: %q", ErrNoCandidate, text)
	case 1:
		return NewMove(candidates[0].Location, dest), nil
	}
	return Move{}, fmt.Errorf("%w: %q matches %d pieces", ErrAmbiguousMove, text, len(candidates))
}

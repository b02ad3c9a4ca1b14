package chess

import "fmt"

const fileChars = "abcdefgh"

// Color color.
type Color uint8

const (
	White Color = iota
	Black
)

// Opposite returns the other side.
func (color Color) Opposite() Color {
	if color == White {
		return Black
	}
	return White
}

func (color Color) String() string {
	if color == Black {
		return "Black"
	}
	return "White"
}

// Location is a square, rank 0 is row "1" and file 0 is column "a".
type Location struct {
	Rank uint8
	File uint8
}

// Valid reports whether both coordinates are on the board.
func (loc Location) Valid() bool {
	return loc.Rank < 8 && loc.File < 8
}

// MoveRelative shifts the location in the frame of color, Black's forward being
// White's backward. The second result is false when the shift leaves the board.
func (loc Location) MoveRelative(color Color, rankShift, fileShift int) (Location, bool) {
	if color == Black {
		rankShift, fileShift = -rankShift, -fileShift
	}
	rank := int(loc.Rank) + rankShift
	file := int(loc.File) + fileShift
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return Location{}, false
	}
	return Location{Rank: uint8(rank), File: uint8(file)}, true
}

func (loc Location) Forward(color Color) (Location, bool) {
	return loc.MoveRelative(color, 1, 0)
}

func (loc Location) Left(color Color) (Location, bool) {
	return loc.MoveRelative(color, 0, -1)
}

func (loc Location) Right(color Color) (Location, bool) {
	return loc.MoveRelative(color, 0, 1)
}

func (loc Location) String() string {
	if !loc.Valid() {
		return fmt.Sprintf("Location{%d,%d}", loc.Rank, loc.File)
	}
	return fmt.Sprintf("%c%d", fileChars[loc.File], loc.Rank+1)
}

func parseFile(c byte) (uint8, bool) {
	if c < 'a' || c > 'h' {
		return 0, false
	}
	return c - 'a', true
}

func parseRank(c byte) (uint8, bool) {
	if c < '1' || c > '8' {
		return 0, false
	}
	return c - '1', true
}

// ParseLocation decodes an algebraic square such as "e4".
func ParseLocation(text string) (Location, error) {
	if len(text) != 2 {
		return Location{}, fmt.Errorf("%w: invalid square %q", ErrNotationParse, text)
	}
	file, ok := parseFile(text[0])
	if !ok {
		return Location{}, fmt.Errorf("%w: invalid file %q", ErrNotationParse, text[0:1])
	}
	rank, ok := parseRank(text[1])
	if !ok {
		return Location{}, fmt.Errorf("%w: invalid rank %q", ErrNotationParse, text[1:2])
	}
	return Location{Rank: rank, File: file}, nil
}

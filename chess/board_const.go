package chess

// Kind kind.
type Kind uint8

const (
	King Kind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

var kindNames = [...]string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}

var kindLetters = [...]string{"K", "Q", "R", "B", "N", ""}

var letterToKind = map[string]Kind{
	"K": King,
	"Q": Queen,
	"R": Rook,
	"B": Bishop,
	"N": Knight,
	"":  Pawn,
}

var kindToGlyphWhite = [...]string{"♔", "♕", "♖", "♗", "♘", "♙"}

var kindToGlyphBlack = [...]string{"♚", "♛", "♜", "♝", "♞", "♟"}

var glyphToPiece = map[string]struct {
	color Color
	kind  Kind
}{
	"♔": {White, King},
	"♕": {White, Queen},
	"♖": {White, Rook},
	"♗": {White, Bishop},
	"♘": {White, Knight},
	"♙": {White, Pawn},
	"♚": {Black, King},
	"♛": {Black, Queen},
	"♜": {Black, Rook},
	"♝": {Black, Bishop},
	"♞": {Black, Knight},
	"♟": {Black, Pawn},
}

const emptyGlyph = " "

const initialRepr = "♜♞♝♛♚♝♞♜" +
	"♟♟♟♟♟♟♟♟" +
	"        " +
	"        " +
	"        " +
	"        " +
	"♙♙♙♙♙♙♙♙" +
	"♖♘♗♕♔♗♘♖"

var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}
	bishopRays    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookRays      = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
)

func (kind Kind) String() string {
	if int(kind) < len(kindNames) {
		return kindNames[kind]
	}
	return "Unknown"
}

// Letter returns the notation letter, empty for pawns.
func (kind Kind) Letter() string {
	if int(kind) < len(kindLetters) {
		return kindLetters[kind]
	}
	return "?"
}

// KindFromLetter is the inverse of Letter.
func KindFromLetter(letter string) (Kind, bool) {
	kind, ok := letterToKind[letter]
	return kind, ok
}

package chess

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// ParseMove decodes the long form "e2e4" written by Move.String.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 {
		return Move{}, fmt.Errorf("%w: invalid move format %d %s", ErrNotationParse, len(text), text)
	}
	from, err := ParseLocation(text[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseLocation(text[2:])
	if err != nil {
		return Move{}, err
	}
	return NewMove(from, to), nil
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Scan implements fmt.Scanner.
func (m *Move) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	parsed, err := ParseMove(string(token))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m *Move) UnmarshalJSON(bytes []byte) error {
	var text string
	if err := json.Unmarshal(bytes, &text); err != nil {
		return err
	}
	parsed, err := ParseMove(text)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Move) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func turnLetter(color Color) byte {
	if color == Black {
		return 'b'
	}
	return 'w'
}

// Encode returns Repr followed by the turn letter, w or b.
func (board *Board) Encode() string {
	return board.Repr() + string(turnLetter(board.ToMove))
}

// Decode reads the output of Encode.
func Decode(text string) (*Board, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty board", ErrBoardFormat)
	}
	var toMove Color
	switch text[len(text)-1] {
	case 'w':
		toMove = White
	case 'b':
		toMove = Black
	default:
		return nil, fmt.Errorf("%w: invalid turn %q", ErrBoardFormat, text[len(text)-1:])
	}
	board, err := FromRepr(text[:len(text)-1])
	if err != nil {
		return nil, err
	}
	board.ToMove = toMove
	return board, nil
}

// Value implements driver.Valuer.
func (board Board) Value() (driver.Value, error) {
	return board.Encode(), nil
}

// Scan implements sql.Scanner.
func (board *Board) Scan(cell interface{}) error {
	var text string
	switch cell := cell.(type) {
	case string:
		text = cell
	case []byte:
		text = string(cell)
	default:
		return fmt.Errorf("invalid format scaning %#v", cell)
	}
	decoded, err := Decode(text)
	if err != nil {
		return err
	}
	rule := board.pawnRule
	*board = *decoded
	board.pawnRule = rule
	return nil
}

type boardJSON struct {
	Repr   string
	Rows   []string
	ToMove string
}

func (board Board) MarshalJSON() ([]byte, error) {
	rows := strings.Split(strings.TrimSuffix(board.ToStr(), "\n"), "\n")
	return json.Marshal(boardJSON{Repr: board.Repr(), Rows: rows, ToMove: board.ToMove.String()})
}

func (board *Board) UnmarshalJSON(bytes []byte) error {
	var message boardJSON
	if err := json.Unmarshal(bytes, &message); err != nil {
		return err
	}
	decoded, err := FromRepr(message.Repr)
	if err != nil {
		return err
	}
	switch message.ToMove {
	case "", White.String():
	case Black.String():
		decoded.ToMove = Black
	default:
		return fmt.Errorf("%w: invalid turn %q", ErrBoardFormat, message.ToMove)
	}
	*board = *decoded
	return nil
}

package chess

import (
	. "gopkg.in/check.v1"
)

type NotationSuite struct{}

var _ = Suite(&NotationSuite{})

func (s *NotationSuite) TestKnightRoundTrip(c *C) {
	board := Default()
	m, err := board.ParsePGNMove("Nf3")
	c.Assert(err, IsNil)
	c.Assert(m, Equals, NewMove(Location{Rank: 0, File: 6}, Location{Rank: 2, File: 5}))
	text, err := board.ToPGN(m)
	c.Assert(err, IsNil)
	c.Assert(text, Equals, "Nf3")
}

func (s *NotationSuite) TestPawn(c *C) {
	board := Default()
	m, err := board.ParsePGNMove("e4")
	c.Assert(err, IsNil)
	c.Assert(m, Equals, NewMove(sq(c, "e2"), sq(c, "e4")))
	text, err := board.ToPGN(m)
	c.Assert(err, IsNil)
	c.Assert(text, Equals, "e4")
	c.Assert(board.ApplyMove(m), IsNil)
	m, err = board.ParsePGNMove("e5")
	c.Assert(err, IsNil)
	c.Assert(m, Equals, NewMove(sq(c, "e7"), sq(c, "e5")))
}

func (s *NotationSuite) TestGame(c *C) {
	board := Default()
	for _, text := range []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6", "Bxc6", "dxc6", "Nxe5", "Qd4"} {
		m, err := board.ParsePGNMove(text)
		c.Assert(err, IsNil, Commentf("move %q", text))
		c.Assert(board.ApplyMove(m), IsNil)
	}
	piece, ok := board.GetPiece(sq(c, "c6"))
	c.Assert(ok, Equals, true)
	c.Assert(piece.Color, Equals, Black)
	c.Assert(piece.Kind, Equals, Pawn)
	piece, ok = board.GetPiece(sq(c, "e5"))
	c.Assert(ok, Equals, true)
	c.Assert(piece.Kind, Equals, Knight)
	c.Assert(board.ToMove, Equals, White)
	c.Assert(board.Pieces(), HasLen, 29)
}

func (s *NotationSuite) TestAmbiguous(c *C) {
	board := placed(c, map[string]string{"b1": "♘", "f1": "♘", "a1": "♖", "h1": "♖"})
	_, err := board.ParsePGNMove("Nd2")
	c.Assert(err, errorIs, ErrAmbiguousMove)
	m, err := board.ParsePGNMove("Nbd2")
	c.Assert(err, IsNil)
	c.Assert(m, Equals, NewMove(sq(c, "b1"), sq(c, "d2")))
	m, err = board.ParsePGNMove("Nfd2")
	c.Assert(err, IsNil)
	c.Assert(m, Equals, NewMove(sq(c, "f1"), sq(c, "d2")))
	_, err = board.ParsePGNMove("Re1")
	c.Assert(err, errorIs, ErrNoCandidate)
	_, err = board.ParsePGNMove("Rd1")
	c.Assert(err, errorIs, ErrNoCandidate)
	m, err = board.ParsePGNMove("Rg1")
	c.Assert(err, IsNil)
	c.Assert(m, Equals, NewMove(sq(c, "h1"), sq(c, "g1")))
}

func (s *NotationSuite) TestAmbiguousRank(c *C) {
	board := placed(c, map[string]string{"a1": "♖", "a5": "♖"})
	_, err := board.ParsePGNMove("Ra3")
	c.Assert(err, errorIs, ErrAmbiguousMove)
	m, err := board.ParsePGNMove("R5a3")
	c.Assert(err, IsNil)
	c.Assert(m, Equals, NewMove(sq(c, "a5"), sq(c, "a3")))
	m, err = board.ParsePGNMove("Ra1a3")
	c.Assert(err, IsNil)
	c.Assert(m, Equals, NewMove(sq(c, "a1"), sq(c, "a3")))
}

func (s *NotationSuite) TestCaptureMarkerNotValidated(c *C) {
	board := Default()
	m, err := board.ParsePGNMove("Nxf3")
	c.Assert(err, IsNil)
	c.Assert(m, Equals, NewMove(sq(c, "g1"), sq(c, "f3")))
}

func (s *NotationSuite) TestSideToMove(c *C) {
	board := Default()
	_, err := board.ParsePGNMove("Nf6")
	c.Assert(err, errorIs, ErrNoCandidate)
	_, err = board.ParsePGNMove("e5")
	c.Assert(err, errorIs, ErrNoCandidate)
}

func (s *NotationSuite) TestParseErrors(c *C) {
	board := Default()
	for _, text := range []string{"", "Nf9", "Pe4", "e4+", "O-O", "xe4 ", "nf3", "Ni3"} {
		_, err := board.ParsePGNMove(text)
		c.Check(err, errorIs, ErrNotationParse, Commentf("text %q", text))
	}
}

func (s *NotationSuite) TestToPGNEmptySource(c *C) {
	_, err := Default().ToPGN(NewMove(sq(c, "e4"), sq(c, "e5")))
	c.Assert(err, errorIs, ErrEmptySourceSquare)
}

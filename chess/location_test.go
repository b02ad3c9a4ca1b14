package chess

import (
	. "gopkg.in/check.v1"
)

type LocationSuite struct{}

var _ = Suite(&LocationSuite{})

func (s *LocationSuite) TestMoveRelativeWhite(c *C) {
	loc, ok := Location{Rank: 1, File: 4}.MoveRelative(White, 2, -1)
	c.Assert(ok, Equals, true)
	c.Assert(loc, Equals, Location{Rank: 3, File: 3})
}

func (s *LocationSuite) TestMoveRelativeBlack(c *C) {
	loc, ok := Location{Rank: 6, File: 3}.MoveRelative(Black, 1, 0)
	c.Assert(ok, Equals, true)
	c.Assert(loc, Equals, Location{Rank: 5, File: 3})
	loc, ok = Location{Rank: 6, File: 3}.Right(Black)
	c.Assert(ok, Equals, true)
	c.Assert(loc, Equals, Location{Rank: 6, File: 2})
	loc, ok = Location{Rank: 6, File: 3}.Left(Black)
	c.Assert(ok, Equals, true)
	c.Assert(loc, Equals, Location{Rank: 6, File: 4})
}

func (s *LocationSuite) TestMoveRelativeOffBoard(c *C) {
	_, ok := Location{Rank: 7, File: 0}.Forward(White)
	c.Assert(ok, Equals, false)
	_, ok = Location{Rank: 0, File: 0}.Forward(Black)
	c.Assert(ok, Equals, false)
	_, ok = Location{Rank: 3, File: 0}.Left(White)
	c.Assert(ok, Equals, false)
	_, ok = Location{Rank: 3, File: 7}.MoveRelative(White, 0, 1)
	c.Assert(ok, Equals, false)
}

func (s *LocationSuite) TestString(c *C) {
	c.Assert(Location{Rank: 0, File: 4}.String(), Equals, "e1")
	c.Assert(Location{Rank: 7, File: 7}.String(), Equals, "h8")
	c.Assert(Location{Rank: 2, File: 5}.String(), Equals, "f3")
}

func (s *LocationSuite) TestParseLocation(c *C) {
	for rank := uint8(0); rank < 8; rank++ {
		for file := uint8(0); file < 8; file++ {
			loc := Location{Rank: rank, File: file}
			parsed, err := ParseLocation(loc.String())
			c.Assert(err, IsNil)
			c.Assert(parsed, Equals, loc)
		}
	}
}

func (s *LocationSuite) TestParseLocationInvalid(c *C) {
	for _, text := range []string{"", "e", "e10", "i1", "a0", "a9", "E4", "4e"} {
		_, err := ParseLocation(text)
		c.Check(err, errorIs, ErrNotationParse, Commentf("text %q", text))
	}
}

func (s *LocationSuite) TestOpposite(c *C) {
	c.Assert(White.Opposite(), Equals, Black)
	c.Assert(Black.Opposite(), Equals, White)
}

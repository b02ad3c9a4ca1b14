package main

import (
	"errors"
	"net/http"
	"path"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maplefeline/nboard/chess"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

const maxPerftDepth = 4

type gameRequest struct {
	Board string
}

type playRequest struct {
	Board    string
	Notation string
	Move     *chess.Move
}

type gameResponse struct {
	Href string
	Game Game
}

type gamesResponse struct {
	Href  string
	Games []Game
}

type movesResponse struct {
	Href  string
	Moves []moveOption
}

type playResponse struct {
	Href  string
	Play  Play
	Board chess.Board
}

type playsResponse struct {
	Href  string
	Plays []Play
}

type statsResponse struct {
	Href     string
	Mobility mobility
}

type perftResponse struct {
	Href  string
	Depth int
	Nodes uint64
}

func errToHTTP(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return echo.ErrNotFound
	case errors.Is(err, chess.ErrBoardFormat), errors.Is(err, chess.ErrNotationParse):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, chess.ErrAmbiguousMove):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, chess.ErrNoCandidate), errors.Is(err, chess.ErrEmptySourceSquare), errors.Is(err, chess.ErrUnsupportedMove):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return err
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestGame(c echo.Context) (*Game, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	return getGame(id)
}

func requestPlay(c echo.Context) (*playRequest, error) {
	var request playRequest
	if err := c.Bind(&request); err != nil {
		return nil, err
	}
	if request.Notation == "" && request.Move == nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "player must provide move")
	}
	return &request, nil
}

func gameHref(game *Game) string {
	return path.Join("/games", game.GameID.String())
}

func apiHandler() *echo.Echo {
	e := echo.New()

	e.GET("/games", func(c echo.Context) error {
		games, err := getGames()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, gamesResponse{Games: games, Href: "/games"})
	})
	e.POST("/games", func(c echo.Context) error {
		var request gameRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		game, err := makeGame(request.Board)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, gameResponse{Game: *game, Href: gameHref(game)})
	})
	e.GET("/games/:id", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, gameResponse{Game: *game, Href: gameHref(game)})
	})
	e.GET("/games/:id/moves", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, movesResponse{Moves: moveOptions(&game.Board), Href: path.Join(gameHref(game), "moves")})
	})
	e.GET("/games/:id/plays", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		plays, err := game.getPlays()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, playsResponse{Plays: plays, Href: path.Join(gameHref(game), "plays")})
	})
	e.POST("/games/:id/plays", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		request, err := requestPlay(c)
		if err != nil {
			return err
		}
		play, err := game.play(request.Notation, request.Move)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, playResponse{Play: *play, Board: game.Board, Href: path.Join(gameHref(game), "plays")})
	})
	e.GET("/games/:id/stats", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		plays, err := game.getPlays()
		if err != nil {
			return errToHTTP(err)
		}
		summary, err := summarize(plays)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, statsResponse{Mobility: summary, Href: path.Join(gameHref(game), "stats")})
	})

	e.POST("/boards/plays", func(c echo.Context) error {
		request, err := requestPlay(c)
		if err != nil {
			return err
		}
		board, err := newBoard(request.Board)
		if err != nil {
			return errToHTTP(err)
		}
		m, err := resolveMove(board, request.Notation, request.Move)
		if err != nil {
			return errToHTTP(err)
		}
		play, err := applyPlay(board, m)
		if err != nil {
			return errToHTTP(err)
		}
		play.Ply = 1
		return c.JSON(http.StatusOK, playResponse{Play: play, Board: *board, Href: "/boards/plays"})
	})
	e.GET("/boards/perft", func(c echo.Context) error {
		depth, err := strconv.Atoi(c.QueryParam("depth"))
		if err != nil || depth < 0 || depth > maxPerftDepth {
			return echo.NewHTTPError(http.StatusBadRequest, "depth must be between 0 and 4")
		}
		board, err := newBoard(c.QueryParam("board"))
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, perftResponse{Depth: depth, Nodes: board.Perft(depth), Href: "/boards/perft"})
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}

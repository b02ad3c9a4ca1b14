package main

import (
	"fmt"

	"github.com/apex/log"
	"github.com/maplefeline/nboard/chess"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

var pawnRule = chess.DoubleStepWhenClear

// Game game.
type Game struct {
	gorm.Model

	GameID uuid.UUID   `gorm:"<-:create;type:varchar;size:36;uniqueIndex"`
	Board  chess.Board `gorm:"type:varchar;size:65;not null"`
	Plies  int
}

// Play is one applied move. Captured holds the glyph that stood on the
// destination, empty when nothing was taken.
type Play struct {
	gorm.Model

	GameID   uuid.UUID `gorm:"type:varchar;size:36;index"`
	Ply      int
	Notation string
	Move     string `gorm:"size:4"`
	Captured string
	Mobility int
}

type moveOption struct {
	Move     chess.Move
	Notation string
}

func newBoard(repr string) (*chess.Board, error) {
	if repr == "" {
		board := chess.Default()
		board.SetPawnRule(pawnRule)
		return board, nil
	}
	board, err := chess.FromRepr(repr)
	if err != nil {
		return nil, err
	}
	board.SetPawnRule(pawnRule)
	return board, nil
}

func makeGame(repr string) (*Game, error) {
	board, err := newBoard(repr)
	if err != nil {
		return nil, err
	}
	id := uuid.NewV4()
	if err := db.Create(&Game{GameID: id, Board: *board}).Error; err != nil {
		return nil, err
	}
	log.WithField("game", id).Info("created game")
	return getGame(id)
}

func getGame(id uuid.UUID) (*Game, error) {
	var game Game
	if err := db.First(&game, Game{GameID: id}).Error; err != nil {
		return nil, err
	}
	game.Board.SetPawnRule(pawnRule)
	return &game, nil
}

func getGames() ([]Game, error) {
	var games []Game
	if err := db.Order("id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func moveOptions(board *chess.Board) []moveOption {
	moves := board.PossibleMoves()
	options := make([]moveOption, 0, len(moves))
	for _, m := range moves {
		notation, err := board.ToPGN(m)
		if err != nil {
			continue
		}
		options = append(options, moveOption{Move: m, Notation: notation})
	}
	return options
}

// resolveMove decodes short notation, or checks that a long form move is one
// of the board's possible moves.
func resolveMove(board *chess.Board, notation string, m *chess.Move) (chess.Move, error) {
	if m == nil {
		return board.ParsePGNMove(notation)
	}
	for _, candidate := range board.PossibleMoves() {
		if candidate == *m {
			return candidate, nil
		}
	}
	return chess.Move{}, fmt.Errorf("%w: %s", chess.ErrNoCandidate, m)
}

// applyPlay applies a resolved move to board and describes it.
func applyPlay(board *chess.Board, m chess.Move) (Play, error) {
	notation, err := board.ToPGN(m)
	if err != nil {
		return Play{}, err
	}
	play := Play{Notation: notation, Move: m.String(), Mobility: len(board.PossibleMoves())}
	if captured, ok := board.GetPiece(m.To); ok {
		play.Captured = captured.Glyph()
	}
	if err := board.ApplyMove(m); err != nil {
		return Play{}, err
	}
	return play, nil
}

func (game *Game) play(notation string, m *chess.Move) (*Play, error) {
	resolved, err := resolveMove(&game.Board, notation, m)
	if err != nil {
		return nil, err
	}
	play, err := applyPlay(&game.Board, resolved)
	if err != nil {
		return nil, err
	}
	game.Plies = game.Plies + 1
	play.GameID = game.GameID
	play.Ply = game.Plies
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(game).Error; err != nil {
			return err
		}
		return tx.Create(&play).Error
	})
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"game": game.GameID, "ply": play.Ply, "move": play.Notation}).Info("played")
	return &play, nil
}

func (game Game) getPlays() ([]Play, error) {
	var plays []Play
	if err := db.Where(Play{GameID: game.GameID}).Order("ply").Find(&plays).Error; err != nil {
		return nil, err
	}
	return plays, nil
}

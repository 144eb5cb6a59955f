package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
)

var ErrIllegalAdvice = errors.New("advisor chose an occupied cell")

// InputProvider supplies human moves. RequestMove blocks until the player picks
// a cell or asks to quit.
type InputProvider interface {
	RequestMove(ctx context.Context) (entity.MoveRequest, error)
}

// Renderer displays the board after every change.
type Renderer interface {
	Render(board entity.Board)
}

type advisor interface {
	Advise(ctx context.Context, board entity.Board, subject entity.Mark, objective entity.Objective) (usecase.Advice, error)
}

// Players says which sides are played by the computer.
type Players struct {
	XAuto bool
	OAuto bool
}

func (that Players) IsAutomated(mark entity.Mark) bool {
	switch mark {
	case entity.X:
		return that.XAuto
	case entity.O:
		return that.OAuto
	default:
		return false
	}
}

type GameController struct {
	logger    *slog.Logger
	advisor   advisor
	input     InputProvider
	renderer  Renderer
	players   Players
	objective entity.Objective
}

func NewGameController(
	logger *slog.Logger,
	advisor advisor,
	input InputProvider,
	renderer Renderer,
	players Players,
	objective entity.Objective,
) *GameController {
	return &GameController{
		logger:    logger,
		advisor:   advisor,
		input:     input,
		renderer:  renderer,
		players:   players,
		objective: objective,
	}
}

// Play runs one game from an empty board until it is decided or abandoned.
// A cancelled ctx counts as a quit.
func (that *GameController) Play(ctx context.Context) (entity.GameResult, error) {
	log := that.logger.With("component", "game", "gameID", uuid.NewString())

	log.Info("game started",
		"xAuto", that.players.XAuto,
		"oAuto", that.players.OAuto,
		"objective", that.objective.String(),
	)

	board := entity.NewBoard()
	that.renderer.Render(board)

	for {
		if ctx.Err() != nil {
			log.Info("game interrupted", "board", board.String())
			return entity.GameResult{Quit: true}, nil
		}

		mover := board.Turn

		coord, quit, err := that.nextMove(ctx, board)
		if err != nil {
			return entity.GameResult{}, err
		}

		if quit {
			log.Info("game abandoned", "board", board.String())
			return entity.GameResult{Quit: true}, nil
		}

		if !board.TryPlace(coord) {
			if that.players.IsAutomated(mover) {
				return entity.GameResult{}, fmt.Errorf("%w: row %d col %d", ErrIllegalAdvice, coord.Row, coord.Col)
			}

			log.Debug("move declined", "player", mover.String(), "row", coord.Row, "col", coord.Col)
			continue
		}

		log.Debug("move made", "player", mover.String(), "row", coord.Row, "col", coord.Col)
		that.renderer.Render(board)

		if outcome := board.Outcome(); outcome.IsDecided() {
			log.Info("game finished", "outcome", outcome.String(), "board", board.String())
			return entity.GameResult{Outcome: outcome}, nil
		}
	}
}

func (that *GameController) nextMove(ctx context.Context, board entity.Board) (entity.Coordinate, bool, error) {
	if that.players.IsAutomated(board.Turn) {
		advice, err := that.advisor.Advise(ctx, board, board.Turn, that.objective)
		if err != nil {
			return entity.Coordinate{}, false, fmt.Errorf("automated player %s failed to move: %w", board.Turn, err)
		}

		return advice.Coordinate, false, nil
	}

	request, err := that.input.RequestMove(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return entity.Coordinate{}, true, nil
		}

		return entity.Coordinate{}, false, fmt.Errorf("failed to read move: %w", err)
	}

	return request.Coordinate, request.Quit, nil
}

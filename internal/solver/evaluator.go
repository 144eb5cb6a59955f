// Package solver scores tic-tac-toe positions by exhaustive search.
//
// The side being evaluated always picks its best reply while the other side is
// modelled as choosing uniformly at random among the free cells, so values are
// averages over the opponent's replies rather than a minimax bound.
package solver

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// epsilon bounds the float noise between lines of play that are worth the same.
// A later candidate replaces the best one only when it is better by more than this.
const epsilon = 1e-12

// Evaluate returns the probability, in [0, 1], that objective is met from
// subject's point of view. subject must be X or O and objective must be valid;
// OptimalMove checks both.
func Evaluate(board entity.Board, subject entity.Mark, objective entity.Objective) float64 {
	if outcome := board.Outcome(); outcome.IsDecided() {
		return terminalValue(outcome, subject, objective)
	}

	if board.Turn == subject {
		_, probability, ok := bestMove(board, subject, objective)
		if !ok {
			// an undecided board always has a free cell
			panic(fmt.Errorf("%w: undecided board %s", apperror.ErrNoAvailableMoves, board))
		}

		return probability
	}

	var sum float64
	var replies int

	for _, coord := range entity.AllCoordinates {
		if !board.IsEmpty(coord) {
			continue
		}

		next := board
		next.Apply(coord)
		sum += Evaluate(next, subject, objective)
		replies++
	}

	return sum / float64(replies)
}

// OptimalMove returns the free cell that maximizes Evaluate for subject, who
// must be the player to move. Among equally good cells the first one in
// row-major order is returned.
func OptimalMove(board entity.Board, subject entity.Mark, objective entity.Objective) (entity.Coordinate, float64, error) {
	if err := Validate(board, subject, objective); err != nil {
		return entity.Coordinate{}, 0, err
	}

	coord, probability, ok := bestMove(board, subject, objective)
	if !ok {
		return entity.Coordinate{}, 0, apperror.ErrNoAvailableMoves
	}

	return coord, probability, nil
}

// Validate reports why OptimalMove would refuse the given arguments, if it would.
func Validate(board entity.Board, subject entity.Mark, objective entity.Objective) error {
	if !subject.IsPlayer() {
		return fmt.Errorf("%w: got %q", apperror.ErrInvalidPlayer, subject)
	}

	if !objective.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrUnknownObjective, objective)
	}

	if outcome := board.Outcome(); outcome.IsDecided() {
		return fmt.Errorf("%w: %s", apperror.ErrGameFinished, outcome)
	}

	if board.Turn != subject {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, board.Turn)
	}

	return nil
}

func bestMove(board entity.Board, subject entity.Mark, objective entity.Objective) (entity.Coordinate, float64, bool) {
	var best entity.Coordinate
	var bestProbability float64
	found := false

	for _, coord := range entity.AllCoordinates {
		if !board.IsEmpty(coord) {
			continue
		}

		next := board
		next.Place(coord, subject)
		next.Turn = subject.Opponent()

		probability := Evaluate(next, subject, objective)
		if !found || probability > bestProbability+epsilon {
			best, bestProbability, found = coord, probability, true
		}
	}

	return best, bestProbability, found
}

func terminalValue(outcome entity.Outcome, subject entity.Mark, objective entity.Objective) float64 {
	switch {
	case outcome == entity.Tie:
		switch objective {
		case entity.MaximizeTie:
			return 1
		case entity.AvoidTie:
			return 0
		default:
			return 0.5
		}
	case outcome.Winner() == subject:
		if objective == entity.MaximizeWin || objective == entity.AvoidTie {
			return 1
		}
		return 0
	default:
		if objective == entity.MaximizeLoss || objective == entity.AvoidTie {
			return 1
		}
		return 0
	}
}

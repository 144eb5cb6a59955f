package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
)

type analysisRepo interface {
	Save(ctx context.Context, key repository.AnalysisKey, analysis *entity.Analysis) error
	GetByKey(ctx context.Context, key repository.AnalysisKey) (*entity.Analysis, error)
}

// Advice is a recommended move for the player to move.
type Advice struct {
	Coordinate  entity.Coordinate
	Probability float64
	Cached      bool
}

// Advisor answers "where should this side play" for automated players and the
// analysis API. Results are served from analysisRepo when one is configured.
type Advisor struct {
	logger       *slog.Logger
	analysisRepo analysisRepo
}

// NewAdvisor builds an advisor; analysisRepo may be nil to always search.
func NewAdvisor(logger *slog.Logger, analysisRepo analysisRepo) *Advisor {
	return &Advisor{
		logger:       logger.With("component", "advisor"),
		analysisRepo: analysisRepo,
	}
}

func (that *Advisor) Advise(ctx context.Context, board entity.Board, subject entity.Mark, objective entity.Objective) (Advice, error) {
	log := that.logger.With("method", "Advise", "board", board.String(), "subject", subject.String(), "objective", objective.String())

	if err := solver.Validate(board, subject, objective); err != nil {
		return Advice{}, fmt.Errorf("cannot advise: %w", err)
	}

	key := repository.AnalysisKey{Board: board, Subject: subject, Objective: objective}

	if advice, ok := that.fromCache(ctx, log, key); ok {
		return advice, nil
	}

	coord, probability, err := solver.OptimalMove(board, subject, objective)
	if err != nil {
		return Advice{}, fmt.Errorf("failed to find optimal move: %w", err)
	}

	log.Debug("move computed", "row", coord.Row, "col", coord.Col, "probability", probability)

	if that.analysisRepo != nil {
		analysis := &entity.Analysis{Coordinate: coord, Probability: probability}
		if err = that.analysisRepo.Save(ctx, key, analysis); err != nil {
			log.Error("failed to save analysis", "error", err)
		}
	}

	return Advice{Coordinate: coord, Probability: probability}, nil
}

func (that *Advisor) fromCache(ctx context.Context, log *slog.Logger, key repository.AnalysisKey) (Advice, bool) {
	if that.analysisRepo == nil {
		return Advice{}, false
	}

	analysis, err := that.analysisRepo.GetByKey(ctx, key)
	switch {
	case errors.Is(err, repository.ErrAnalysisNotFound):
		return Advice{}, false
	case err != nil:
		log.Error("failed to get analysis", "error", err)
		return Advice{}, false
	}

	if !analysis.Coordinate.Valid() || !key.Board.IsEmpty(analysis.Coordinate) {
		log.Warn("ignoring stale analysis", "row", analysis.Coordinate.Row, "col", analysis.Coordinate.Col)
		return Advice{}, false
	}

	log.Debug("move served from cache", "row", analysis.Coordinate.Row, "col", analysis.Coordinate.Col)

	return Advice{Coordinate: analysis.Coordinate, Probability: analysis.Probability, Cached: true}, true
}

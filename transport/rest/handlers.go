package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
)

type advisor interface {
	Advise(ctx context.Context, board entity.Board, subject entity.Mark, objective entity.Objective) (usecase.Advice, error)
}

type moveResponse struct {
	Row         int     `json:"row"`
	Col         int     `json:"col"`
	Probability float64 `json:"probability"`
	Cached      bool    `json:"cached"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	logger  *slog.Logger
	advisor advisor
}

func newHandlers(logger *slog.Logger, advisor advisor) *handlers {
	return &handlers{
		logger:  logger,
		advisor: advisor,
	}
}

// Routes - returns the analysis API routes.
func (that *handlers) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", pingHandler)
	mux.HandleFunc("/move", that.moveHandler)

	return mux
}

// moveHandler - advises a move for ?board=<9 cells>&objective=<w|l|t|n>[&player=X|O].
func (that *handlers) moveHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "moveHandler")

	if r.Method != http.MethodGet {
		that.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	query := r.URL.Query()

	board, err := entity.ParseBoard(query.Get("board"))
	if err != nil {
		that.writeError(w, http.StatusBadRequest, err)
		return
	}

	objective := entity.MaximizeWin
	if raw := query.Get("objective"); raw != "" {
		if objective, err = entity.ParseObjective(raw); err != nil {
			that.writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	player := board.Turn
	if raw := query.Get("player"); raw != "" {
		if player, err = entity.ParseMark(raw); err != nil {
			that.writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	advice, err := that.advisor.Advise(r.Context(), board, player, objective)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Error("failed to advise move", "board", board.String(), "error", err)
		}

		that.writeError(w, status, err)
		return
	}

	that.writeJSON(w, http.StatusOK, moveResponse{
		Row:         advice.Coordinate.Row,
		Col:         advice.Coordinate.Col,
		Probability: advice.Probability,
		Cached:      advice.Cached,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidBoard),
		errors.Is(err, apperror.ErrInvalidPlayer),
		errors.Is(err, apperror.ErrUnknownObjective):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrNotYourTurn):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeError(w http.ResponseWriter, status int, err error) {
	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

// AnalysisKey identifies one search: the same board, subject and objective
// always yield the same advice.
type AnalysisKey struct {
	Board     entity.Board
	Subject   entity.Mark
	Objective entity.Objective
}

func (that AnalysisKey) String() string {
	return fmt.Sprintf("analysis:%s:%s:%s", that.Objective, that.Subject, that.Board)
}

type AnalysisRepository interface {
	Save(ctx context.Context, key AnalysisKey, analysis *entity.Analysis) error
	GetByKey(ctx context.Context, key AnalysisKey) (*entity.Analysis, error)
	DeleteByKey(ctx context.Context, key AnalysisKey) error
}

type dbAnalysis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalysisRepository stores entries for ttl; zero keeps them forever.
func NewAnalysisRepository(client *redis.Client, ttl time.Duration) AnalysisRepository {
	return &dbAnalysis{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbAnalysis) Save(ctx context.Context, key AnalysisKey, analysis *entity.Analysis) error {
	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("could not marshal analysis: %w", err)
	}

	if err = that.client.Set(ctx, key.String(), analysisJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set analysis: %w", err)
	}

	return nil
}

func (that *dbAnalysis) GetByKey(ctx context.Context, key AnalysisKey) (*entity.Analysis, error) {
	response, err := that.client.Get(ctx, key.String()).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrAnalysisNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get analysis by key: %w", err)
	}

	var analysis entity.Analysis
	if err = json.Unmarshal([]byte(response), &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}

	return &analysis, nil
}

func (that *dbAnalysis) DeleteByKey(ctx context.Context, key AnalysisKey) error {
	deleted, err := that.client.Del(ctx, key.String()).Result()
	if err != nil {
		return fmt.Errorf("failed to delete analysis by key: %w", err)
	}

	if deleted == 0 {
		return ErrAnalysisNotFound
	}

	return nil
}

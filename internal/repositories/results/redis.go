package results

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/wheelrift/internal/models"
)

const (
	// Key names for Redis
	recentResultsKey = "wheelrift:results:recent"
	bestScoresKey    = "wheelrift:scores:best"
)

// Config holds configuration for the Redis results repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed results repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveResult pushes the result onto a capped list and raises best totals
func (r *redisRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}

	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, recentResultsKey, resultJSON)
	pipe.LTrim(ctx, recentResultsKey, 0, MaxRecentResults-1)

	for _, standing := range input.Result.Standings {
		if standing == nil || standing.Name == "" {
			continue
		}
		// GT only replaces a lower score, new members are always added
		pipe.ZAddGT(ctx, bestScoresKey, redis.Z{
			Score:  float64(standing.TotalBank),
			Member: standing.Name,
		})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// GetRecentResults reads the newest results from the list head
func (r *redisRepository) GetRecentResults(ctx context.Context, input *GetRecentResultsInput) (*GetRecentResultsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := limitOrDefault(input.Limit)
	raw, err := r.client.LRange(ctx, recentResultsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent results: %w", err)
	}

	output := &GetRecentResultsOutput{}
	for _, item := range raw {
		var result models.GameResult
		if err := json.Unmarshal([]byte(item), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
		output.Results = append(output.Results, &result)
	}

	return output, nil
}

// GetTopScores reads the best totals sorted set, highest first
func (r *redisRepository) GetTopScores(ctx context.Context, input *GetTopScoresInput) (*GetTopScoresOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := limitOrDefault(input.Limit)
	rows, err := r.client.ZRevRangeWithScores(ctx, bestScoresKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get top scores: %w", err)
	}

	output := &GetTopScoresOutput{}
	for _, row := range rows {
		name, ok := row.Member.(string)
		if !ok {
			continue
		}
		output.Entries = append(output.Entries, &models.ScoreEntry{
			Name:  name,
			Score: int(row.Score),
		})
	}

	return output, nil
}

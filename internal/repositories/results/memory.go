package results

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/KirkDiggler/wheelrift/internal/models"
)

// memoryRepository keeps results in process, for runs without Redis
type memoryRepository struct {
	mu      sync.RWMutex
	results []*models.GameResult // newest first
	best    map[string]int
}

// NewMemory creates an in-memory results repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		best: make(map[string]int),
	}
}

// SaveResult records the result and raises best totals
func (r *memoryRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = append([]*models.GameResult{cloneResult(input.Result)}, r.results...)
	if len(r.results) > MaxRecentResults {
		r.results = r.results[:MaxRecentResults]
	}

	for _, standing := range input.Result.Standings {
		if standing == nil || standing.Name == "" {
			continue
		}
		if prev, ok := r.best[standing.Name]; !ok || standing.TotalBank > prev {
			r.best[standing.Name] = standing.TotalBank
		}
	}

	return nil
}

// GetRecentResults returns up to limit results, newest first
func (r *memoryRepository) GetRecentResults(ctx context.Context, input *GetRecentResultsInput) (*GetRecentResultsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := limitOrDefault(input.Limit)
	output := &GetRecentResultsOutput{}
	for i := 0; i < len(r.results) && i < limit; i++ {
		output.Results = append(output.Results, cloneResult(r.results[i]))
	}

	return output, nil
}

// GetTopScores returns the best totals, highest first, ties by name
func (r *memoryRepository) GetTopScores(ctx context.Context, input *GetTopScoresInput) (*GetTopScoresOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	entries := make([]*models.ScoreEntry, 0, len(r.best))
	for name, score := range r.best {
		entries = append(entries, &models.ScoreEntry{Name: name, Score: score})
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name > entries[j].Name
	})

	limit := limitOrDefault(input.Limit)
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return &GetTopScoresOutput{Entries: entries}, nil
}

func cloneResult(result *models.GameResult) *models.GameResult {
	clone := *result
	clone.Standings = make([]*models.Standing, 0, len(result.Standings))
	for _, standing := range result.Standings {
		if standing == nil {
			continue
		}
		s := *standing
		clone.Standings = append(clone.Standings, &s)
	}
	return &clone
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScoreCache is the slice of the cache the read-side usecases need.
// Implementations may be unavailable; misses and errors both fall
// through to the database.
type ScoreCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateScores(ctx context.Context) error
}

func rankingCacheKey(jobID uuid.UUID, mode string) string {
	return fmt.Sprintf("ranking:%s:%s", jobID, mode)
}

func insightsCacheKey() string {
	return "insights:departments"
}

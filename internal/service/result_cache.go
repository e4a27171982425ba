package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agapept/internal/cache"
	"agapept/internal/domain"
	"agapept/internal/dto"
	"agapept/internal/logger"

	"go.uber.org/zap"
)

// ErrResultNotCached is returned on a cache miss.
var ErrResultNotCached = errors.New("submission result not found in cache")

// SubmissionResultCache keeps recently scored submissions close to the API.
type SubmissionResultCache interface {
	Put(ctx context.Context, result *dto.SubmissionResponse) error
	Get(ctx context.Context, id int64) (*dto.SubmissionResponse, error)
}

type submissionResultCache struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewSubmissionResultCache falls back to a no-op implementation when c is nil.
func NewSubmissionResultCache(c domain.Cache, ttl time.Duration) SubmissionResultCache {
	if c == nil {
		logger.Get().Info("Submission result cache disabled")
		return noopSubmissionResultCache{}
	}
	return &submissionResultCache{cache: c, ttl: ttl}
}

func (s *submissionResultCache) Put(ctx context.Context, result *dto.SubmissionResponse) error {
	if result == nil {
		return domain.NewInvalidInputError("cannot cache nil result")
	}

	key := cache.SubmissionResultKey(result.ID)
	data, err := json.Marshal(result)
	if err != nil {
		return domain.NewInternalError("failed to marshal result for caching", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to cache result for key %s", key), err)
	}
	logger.Get().Debug("Cached submission result", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *submissionResultCache) Get(ctx context.Context, id int64) (*dto.SubmissionResponse, error) {
	key := cache.SubmissionResultKey(id)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrResultNotCached
		}
		return nil, domain.NewInternalError(fmt.Sprintf("failed to read cached result for key %s", key), err)
	}
	if data == "" {
		return nil, ErrResultNotCached
	}

	var result dto.SubmissionResponse
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal cached result for key %s", key), err)
	}
	return &result, nil
}

type noopSubmissionResultCache struct{}

func (noopSubmissionResultCache) Put(context.Context, *dto.SubmissionResponse) error {
	return nil
}

func (noopSubmissionResultCache) Get(context.Context, int64) (*dto.SubmissionResponse, error) {
	return nil, ErrResultNotCached
}

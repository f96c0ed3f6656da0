package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sumaiya48/summer-camp-server/internal/config"
	"github.com/sumaiya48/summer-camp-server/internal/model"
)

// InstructorRepository is the instructors-collection access the service
// layer needs. Profiles are read-only from this API.
type InstructorRepository interface {
	List(ctx context.Context, limit int64) ([]model.Instructor, error)
}

// InstructorService serves the public instructor listing through the same
// short-TTL cache as the class listing. Nothing in this API mutates
// instructor profiles, so the cache expires on TTL alone.
type InstructorService struct {
	instructorRepo InstructorRepository
	cache          *redis.Client
	cacheTTL       time.Duration
	log            zerolog.Logger
}

// NewInstructorService creates a new InstructorService.
func NewInstructorService(instructorRepo InstructorRepository, cache *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *InstructorService {
	return &InstructorService{instructorRepo: instructorRepo, cache: cache, cacheTTL: cacheTTL, log: log}
}

// List returns instructor profiles, capped at limit when limit > 0.
func (s *InstructorService) List(ctx context.Context, limit int64) ([]model.Instructor, error) {
	key := config.CacheKey.InstructorsKey(limit)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var cached []model.Instructor
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	instructors, err := s.instructorRepo.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(instructors); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Str("key", key).Msg("listing cache write failed")
			}
		}
	}

	return instructors, nil
}

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

// ClassRepository is the classes-collection access the service layer needs.
// A limit of zero means unbounded.
type ClassRepository interface {
	ListByStatus(ctx context.Context, status model.ClassStatus, limit int64) ([]model.Class, error)
	ListAll(ctx context.Context, limit int64) ([]model.Class, error)
	ListByEmail(ctx context.Context, email string) ([]model.Class, error)
	Insert(ctx context.Context, class *model.Class) (*model.InsertAck, error)
	UpdateStatus(ctx context.Context, id string, status model.ClassStatus) (*model.UpdateAck, error)
	SetFeedback(ctx context.Context, id string, feedback string) (*model.UpdateAck, error)
	Delete(ctx context.Context, id string) (*model.DeleteAck, error)
}

// ClassService handles class listing and lifecycle. The public approved
// listing is served through a short-TTL cache; every mutation invalidates
// it. A nil cache client disables caching entirely.
type ClassService struct {
	classRepo ClassRepository
	cache     *redis.Client
	cacheTTL  time.Duration
	log       zerolog.Logger
}

// NewClassService creates a new ClassService.
func NewClassService(classRepo ClassRepository, cache *redis.Client, cacheTTL time.Duration, log zerolog.Logger) *ClassService {
	return &ClassService{classRepo: classRepo, cache: cache, cacheTTL: cacheTTL, log: log}
}

// ListApproved returns the public listing: approved classes only.
func (s *ClassService) ListApproved(ctx context.Context, limit int64) ([]model.Class, error) {
	key := config.CacheKey.ApprovedClassesKey(limit)

	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var cached []model.Class
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	classes, err := s.classRepo.ListByStatus(ctx, model.ClassStatusApproved, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(classes); err == nil {
			if err := s.cache.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Str("key", key).Msg("listing cache write failed")
			}
		}
	}

	return classes, nil
}

// ListAll returns every class regardless of status (admin view).
func (s *ClassService) ListAll(ctx context.Context, limit int64) ([]model.Class, error) {
	return s.classRepo.ListAll(ctx, limit)
}

// ListByEmail returns the classes owned by an instructor email. The match
// is exact equality, no normalization.
func (s *ClassService) ListByEmail(ctx context.Context, email string) ([]model.Class, error) {
	return s.classRepo.ListByEmail(ctx, email)
}

// Create inserts a new class.
func (s *ClassService) Create(ctx context.Context, class *model.Class) (*model.InsertAck, error) {
	ack, err := s.classRepo.Insert(ctx, class)
	if err == nil {
		s.invalidateListing(ctx)
	}
	return ack, err
}

// UpdateStatus transitions a class through admin review.
func (s *ClassService) UpdateStatus(ctx context.Context, id string, status model.ClassStatus) (*model.UpdateAck, error) {
	ack, err := s.classRepo.UpdateStatus(ctx, id, status)
	if err == nil {
		s.invalidateListing(ctx)
	}
	return ack, err
}

// SetFeedback attaches admin feedback to a class.
func (s *ClassService) SetFeedback(ctx context.Context, id string, feedback string) (*model.UpdateAck, error) {
	ack, err := s.classRepo.SetFeedback(ctx, id, feedback)
	if err == nil {
		s.invalidateListing(ctx)
	}
	return ack, err
}

// Delete removes a class by id. A missing id yields deletedCount 0.
func (s *ClassService) Delete(ctx context.Context, id string) (*model.DeleteAck, error) {
	ack, err := s.classRepo.Delete(ctx, id)
	if err == nil {
		s.invalidateListing(ctx)
	}
	return ack, err
}

func (s *ClassService) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	keys, err := s.cache.Keys(ctx, config.CacheKey.ApprovedClassesPattern()).Result()
	if err != nil {
		s.log.Warn().Err(err).Msg("listing cache invalidation scan failed")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.cache.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Msg("listing cache invalidation failed")
	}
}

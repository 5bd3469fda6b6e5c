package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/dangal-ics/planner-backend/internal/config"
	"github.com/dangal-ics/planner-backend/internal/model"
	"github.com/dangal-ics/planner-backend/internal/repository"
)

// Degree programs offered by the institute. Used for catalog filtering and
// registration validation.
var Programs = []string{
	"BS Computer Science",
	"MS Computer Science",
	"Master of Information Technology",
	"PhD Computer Science",
}

// CatalogService serves the static course catalog, cached in Redis since the
// offerings never change within a semester.
type CatalogService struct {
	courseRepo *repository.CourseRepository
	cfg        *config.Config
	rdb        *redis.Client
	log        zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(courseRepo *repository.CourseRepository, cfg *config.Config, rdb *redis.Client, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		courseRepo: courseRepo,
		cfg:        cfg,
		rdb:        rdb,
		log:        log.With().Str("component", "catalog_service").Logger(),
	}
}

// PrewarmCache loads the offerings and every program's filtered list into
// Redis before the server accepts traffic, so first requests never stampede
// Postgres.
func (s *CatalogService) PrewarmCache(ctx context.Context) error {
	if _, err := s.Offerings(ctx); err != nil {
		return fmt.Errorf("prewarm offerings: %w", err)
	}
	for _, program := range Programs {
		if _, err := s.OfferingsByProgram(ctx, program); err != nil {
			return fmt.Errorf("prewarm %s offerings: %w", program, err)
		}
	}
	s.log.Info().Msg("Catalog cache prewarmed")
	return nil
}

// Offerings returns every offered section for the semester.
func (s *CatalogService) Offerings(ctx context.Context) ([]model.Course, error) {
	return s.cached(ctx, config.CacheKey.CatalogOfferingsKey(), func() ([]model.Course, error) {
		return s.courseRepo.GetOfferings(ctx)
	})
}

// OfferingsByProgram returns the offered sections belonging to a program's
// curriculum.
func (s *CatalogService) OfferingsByProgram(ctx context.Context, program string) ([]model.Course, error) {
	return s.cached(ctx, config.CacheKey.ProgramCoursesKey(program), func() ([]model.Course, error) {
		return s.courseRepo.GetOfferingsByProgram(ctx, program)
	})
}

// ProgramCurriculum returns a program's course list for the course-list view.
func (s *CatalogService) ProgramCurriculum(ctx context.Context, program string) ([]model.Course, error) {
	return s.courseRepo.GetProgramCurriculum(ctx, program)
}

// FindSection looks up one offered section by course code and label.
func (s *CatalogService) FindSection(ctx context.Context, code, section string) (*model.Course, error) {
	return s.courseRepo.FindSection(ctx, code, section)
}

// cached reads a course list through the Redis cache, falling back to the
// loader (and logging, not failing) when Redis misbehaves.
func (s *CatalogService) cached(ctx context.Context, key string, load func() ([]model.Course, error)) ([]model.Course, error) {
	raw, err := s.rdb.Get(ctx, key).Result()
	if err == nil {
		var courses []model.Course
		if err := json.Unmarshal([]byte(raw), &courses); err == nil {
			return courses, nil
		}
		s.log.Warn().Str("key", key).Msg("Corrupt catalog cache entry, reloading")
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Str("key", key).Msg("Catalog cache read failed")
	}

	courses, err := load()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(courses); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cfg.CatalogCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("Catalog cache write failed")
		}
	}
	return courses, nil
}

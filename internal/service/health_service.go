package service

import (
	"context"

	"github.com/lshigami/studyaid/internal/dto"
	"github.com/lshigami/studyaid/internal/repository"
	"gorm.io/gorm"
)

type HealthService interface {
	Check(ctx context.Context) (dto.HealthResponse, bool)
}

type healthService struct {
	db    *gorm.DB
	saved repository.SavedContentRepository
}

func NewHealthService(db *gorm.DB, saved repository.SavedContentRepository) HealthService {
	return &healthService{db: db, saved: saved}
}

// Check pings both stores and reports whether all of them are up.
func (s *healthService) Check(ctx context.Context) (dto.HealthResponse, bool) {
	resp := dto.HealthResponse{Status: "ok", Database: "ok", Redis: "ok"}
	healthy := true

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		resp.Database = err.Error()
		healthy = false
	}
	if err := s.saved.Ping(ctx); err != nil {
		resp.Redis = err.Error()
		healthy = false
	}
	if !healthy {
		resp.Status = "degraded"
	}
	return resp, healthy
}

package repository

import (
	"context"

	"github.com/lshigami/studyaid/internal/model"
	"gorm.io/gorm"
)

type PerformanceLogRepository interface {
	Create(ctx context.Context, entry *model.PerformanceLog) error
	// FindPageByUser returns one page of the user's logs, newest first, and
	// the total number of logs the user has.
	FindPageByUser(ctx context.Context, userID uint, page, pageSize int) ([]model.PerformanceLog, int64, error)
}

type performanceLogRepository struct {
	db *gorm.DB
}

func NewPerformanceLogRepository(db *gorm.DB) PerformanceLogRepository {
	return &performanceLogRepository{db: db}
}

func (r *performanceLogRepository) Create(ctx context.Context, entry *model.PerformanceLog) error {
	return translate(r.db.WithContext(ctx).Create(entry).Error)
}

func (r *performanceLogRepository) FindPageByUser(ctx context.Context, userID uint, page, pageSize int) ([]model.PerformanceLog, int64, error) {
	byUser := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.PerformanceLog{}).Where("user_id = ?", userID)
	}

	var total int64
	if err := byUser().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	logs := []model.PerformanceLog{}
	err := byUser().
		Order("created_at DESC").
		Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PerformanceLog records one graded quiz.
type PerformanceLog struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"userId" gorm:"not null;index:idx_performance_user_created,priority:1"`
	User      User           `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Score     int            `json:"score" gorm:"not null"` // percentage, 0-100
	Subject   string         `json:"subject" gorm:"not null"`
	Grade     string         `json:"grade" gorm:"not null"`
	QuizType  string         `json:"quizType" gorm:"not null"`
	Total     int            `json:"total" gorm:"not null"`
	Correct   int            `json:"correct" gorm:"not null"`
	Breakdown datatypes.JSON `json:"breakdown,omitempty"` // per-question review, when logged from a submitted slot
	CreatedAt time.Time      `json:"createdAt" gorm:"index:idx_performance_user_created,priority:2"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

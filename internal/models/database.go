package models

// GORM models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CourseRow is a catalog course stored in Postgres. Position keeps load order.
type CourseRow struct {
	BaseModel
	CourseID    int    `json:"course_id" gorm:"uniqueIndex;not null"`
	Position    int    `json:"position" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
}

// RecommendationEvent mirrors one successful /recommend call.
type RecommendationEvent struct {
	BaseModel
	Variant         string    `json:"variant" gorm:"not null;index;check:variant IN ('catalog','interests')"`
	UserID          string    `json:"user_id" gorm:"type:jsonb;not null"`
	Selector        string    `json:"selector" gorm:"type:jsonb;not null"`
	Recommendations string    `json:"recommendations" gorm:"type:jsonb;not null"`
	ProcessedAt     time.Time `json:"processed_at" gorm:"not null;index"`
}

// Database interfaces for repository pattern
type CourseRepository interface {
	GetAll() ([]CourseRow, error)
	ReplaceAll(rows []CourseRow) error
	Count() (int64, error)
}

type RecommendationEventRepository interface {
	Create(event *RecommendationEvent) error
}

// TableName methods for custom table names
func (CourseRow) TableName() string           { return "courses" }
func (RecommendationEvent) TableName() string { return "recommendation_events" }

// ToCourse drops the persistence fields.
func (r CourseRow) ToCourse() Course {
	return Course{ID: r.CourseID, Title: r.Title, Description: r.Description}
}

// Model validation methods
func (r *CourseRow) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("course %d: title is required", r.CourseID)
	}
	if r.Position < 0 {
		return fmt.Errorf("course %d: position cannot be negative", r.CourseID)
	}
	return nil
}

func (e *RecommendationEvent) Validate() error {
	validVariants := map[string]bool{
		"catalog":   true,
		"interests": true,
	}
	if !validVariants[e.Variant] {
		return fmt.Errorf("invalid variant: %s", e.Variant)
	}
	if e.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if e.ProcessedAt.IsZero() {
		return fmt.Errorf("processed_at is required")
	}
	return nil
}

// GORM hooks
func (r *CourseRow) BeforeCreate(tx *gorm.DB) error {
	return r.Validate()
}

func (e *RecommendationEvent) BeforeCreate(tx *gorm.DB) error {
	return e.Validate()
}

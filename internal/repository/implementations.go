package repository

import (
	"github.com/edu-analytics/courserec/internal/models"
	"gorm.io/gorm"
)

// CourseRepositoryImpl implements CourseRepository
type CourseRepositoryImpl struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) models.CourseRepository {
	return &CourseRepositoryImpl{db: db}
}

// GetAll returns every course in load order.
func (r *CourseRepositoryImpl) GetAll() ([]models.CourseRow, error) {
	var rows []models.CourseRow
	err := r.db.Order("position ASC").Order("id ASC").Find(&rows).Error
	return rows, err
}

// ReplaceAll swaps the whole catalog in one transaction.
func (r *CourseRepositoryImpl) ReplaceAll(rows []models.CourseRow) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.CourseRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 100).Error
	})
}

func (r *CourseRepositoryImpl) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.CourseRow{}).Count(&count).Error
	return count, err
}

// RecommendationEventRepositoryImpl implements RecommendationEventRepository
type RecommendationEventRepositoryImpl struct {
	db *gorm.DB
}

func NewRecommendationEventRepository(db *gorm.DB) models.RecommendationEventRepository {
	return &RecommendationEventRepositoryImpl{db: db}
}

func (r *RecommendationEventRepositoryImpl) Create(event *models.RecommendationEvent) error {
	return r.db.Create(event).Error
}

// RepositoryManager manages all repositories
type RepositoryManager struct {
	Course              models.CourseRepository
	RecommendationEvent models.RecommendationEventRepository
}

func NewRepositoryManager(db *gorm.DB) *RepositoryManager {
	return &RepositoryManager{
		Course:              NewCourseRepository(db),
		RecommendationEvent: NewRecommendationEventRepository(db),
	}
}

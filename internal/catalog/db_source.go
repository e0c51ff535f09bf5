package catalog

import (
	"context"
	"fmt"

	"github.com/edu-analytics/courserec/internal/models"
)

// DBSource reads the courses table through a repository.
type DBSource struct {
	repo models.CourseRepository
}

func NewDBSource(repo models.CourseRepository) *DBSource {
	return &DBSource{repo: repo}
}

func (s *DBSource) Load(ctx context.Context) ([]models.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}

	courses := make([]models.Course, len(rows))
	for i, row := range rows {
		courses[i] = row.ToCourse()
	}
	return courses, nil
}

package services

import (
	"fmt"
	"sort"

	"github.com/edu-analytics/courserec/internal/catalog"
	"github.com/edu-analytics/courserec/internal/models"
	"github.com/edu-analytics/courserec/internal/similarity"
	"github.com/edu-analytics/courserec/pkg/utils"
	"github.com/sirupsen/logrus"
)

// RecommendationLimit is the maximum number of recommendations per call.
const RecommendationLimit = 3

// CatalogRecommender answers course-to-course recommendations from a precomputed similarity matrix.
type CatalogRecommender struct {
	catalog *catalog.Catalog
	matrix  *similarity.Matrix
	now     utils.Clock
	logger  *logrus.Logger
}

func NewCatalogRecommender(cat *catalog.Catalog, matrix *similarity.Matrix, logger *logrus.Logger) (*CatalogRecommender, error) {
	if matrix.Size() != cat.Len() {
		return nil, fmt.Errorf("similarity matrix has %d rows, catalog has %d courses", matrix.Size(), cat.Len())
	}
	return &CatalogRecommender{
		catalog: cat,
		matrix:  matrix,
		now:     utils.SystemClock,
		logger:  logger,
	}, nil
}

// WithClock replaces the time source used for processed_at.
func (s *CatalogRecommender) WithClock(clock utils.Clock) *CatalogRecommender {
	s.now = clock
	return s
}

func (s *CatalogRecommender) Catalog() *catalog.Catalog {
	return s.catalog
}

// Recommend validates req in order (user_id, course_id presence, integer, existence)
// and returns the most similar courses.
func (s *CatalogRecommender) Recommend(req models.CatalogRecommendRequest) (*models.CatalogRecommendation, error) {
	userID, err := validateUserID(req.UserID)
	if err != nil {
		return nil, err
	}

	courseID, err := parseCourseID(req.CourseID)
	if err != nil {
		return nil, err
	}

	recs, err := s.Similar(courseID, RecommendationLimit)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"course_id":       courseID,
		"recommendations": len(recs),
	}).Debug("Computed similar courses")

	return &models.CatalogRecommendation{
		UserID:          userID,
		CourseID:        courseID,
		Recommendations: recs,
		ProcessedAt:     utils.FormatTimestamp(s.now()),
	}, nil
}

// Similar returns up to n courses ordered by descending similarity to courseID.
// Ties keep catalog order. The course itself is never included.
func (s *CatalogRecommender) Similar(courseID, n int) ([]models.Course, error) {
	pos, ok := s.catalog.Position(courseID)
	if !ok {
		return nil, &CourseNotFoundError{ID: courseID}
	}

	scores := s.matrix.Row(pos)
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	recs := make([]models.Course, 0, n)
	for _, i := range order {
		if len(recs) == n {
			break
		}
		if i == pos {
			continue
		}
		recs = append(recs, s.catalog.At(i))
	}
	return recs, nil
}

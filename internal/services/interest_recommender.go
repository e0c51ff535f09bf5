package services

import (
	"math/rand"
	"sync"
	"time"

	"github.com/edu-analytics/courserec/internal/interests"
	"github.com/edu-analytics/courserec/internal/models"
	"github.com/edu-analytics/courserec/pkg/utils"
	"github.com/sirupsen/logrus"
)

// RandomSource picks a uniform integer in [0, n).
type RandomSource interface {
	Intn(n int) int
}

// InterestRecommender samples course titles matching a user's declared interests.
type InterestRecommender struct {
	catalog *interests.Catalog
	now     utils.Clock
	logger  *logrus.Logger

	mu  sync.Mutex // guards rnd
	rnd RandomSource
}

// NewInterestRecommender uses a time-seeded source when rnd is nil.
func NewInterestRecommender(cat *interests.Catalog, rnd RandomSource, logger *logrus.Logger) *InterestRecommender {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &InterestRecommender{
		catalog: cat,
		rnd:     rnd,
		now:     utils.SystemClock,
		logger:  logger,
	}
}

func (s *InterestRecommender) WithClock(clock utils.Clock) *InterestRecommender {
	s.now = clock
	return s
}

func (s *InterestRecommender) Recommend(req models.InterestRecommendRequest) (*models.InterestRecommendation, error) {
	userID, err := validateUserID(req.UserID)
	if err != nil {
		return nil, err
	}

	echo, wanted, err := parseInterests(req.Interests)
	if err != nil {
		return nil, err
	}

	pool := s.CandidatePool(wanted)
	recs := s.sample(pool, RecommendationLimit)

	s.logger.WithFields(logrus.Fields{
		"interests":       len(wanted),
		"pool_size":       len(pool),
		"recommendations": len(recs),
	}).Debug("Sampled interest recommendations")

	return &models.InterestRecommendation{
		UserID:          userID,
		Interests:       echo,
		Recommendations: recs,
		ProcessedAt:     utils.FormatTimestamp(s.now()),
	}, nil
}

// CandidatePool concatenates the titles of every matching keyword, duplicates kept.
// With no match it falls back to every title in the catalog.
func (s *InterestRecommender) CandidatePool(wanted []string) []string {
	var pool []string
	for _, keyword := range wanted {
		pool = append(pool, s.catalog.Lookup(keyword)...)
	}
	if len(pool) == 0 {
		pool = s.catalog.AllTitles()
	}
	return pool
}

// sample draws min(k, len(pool)) distinct positions without replacement.
func (s *InterestRecommender) sample(pool []string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}

	positions := make([]int, len(pool))
	for i := range positions {
		positions[i] = i
	}

	s.mu.Lock()
	for i := 0; i < k; i++ {
		j := i + s.rnd.Intn(len(positions)-i)
		positions[i], positions[j] = positions[j], positions[i]
	}
	s.mu.Unlock()

	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = pool[positions[i]]
	}
	return out
}

package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/edu-analytics/courserec/internal/models"
)

// PostgresSink stores every event as a recommendation_events row.
type PostgresSink struct {
	repo models.RecommendationEventRepository
}

func NewPostgresSink(repo models.RecommendationEventRepository) *PostgresSink {
	return &PostgresSink{repo: repo}
}

func (s *PostgresSink) Name() string { return "postgres" }

func (s *PostgresSink) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	row, err := ToModel(event)
	if err != nil {
		return err
	}
	return s.repo.Create(row)
}

// ToModel encodes the JSON columns of event.
func ToModel(event Event) (*models.RecommendationEvent, error) {
	selector, err := json.Marshal(event.Selector)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal selector: %w", err)
	}
	recs, err := json.Marshal(event.Recommendations)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	return &models.RecommendationEvent{
		Variant:         event.Variant,
		UserID:          string(event.UserID),
		Selector:        string(selector),
		Recommendations: string(recs),
		ProcessedAt:     event.ProcessedAt.UTC(),
	}, nil
}

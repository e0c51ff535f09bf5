package analytics

import (
	"time"

	"github.com/edu-analytics/courserec/internal/models"
	"github.com/edu-analytics/courserec/pkg/utils"
)

// CatalogEvent converts a catalog recommendation for the sinks.
func CatalogEvent(rec models.CatalogRecommendation) Event {
	return Event{
		Variant:         VariantCatalog,
		UserID:          rec.UserID,
		Selector:        rec.CourseID,
		Recommendations: rec.Recommendations,
		ProcessedAt:     parseProcessedAt(rec.ProcessedAt),
	}
}

// InterestEvent converts an interest recommendation for the sinks.
func InterestEvent(rec models.InterestRecommendation) Event {
	return Event{
		Variant:         VariantInterests,
		UserID:          rec.UserID,
		Selector:        rec.Interests,
		Recommendations: rec.Recommendations,
		ProcessedAt:     parseProcessedAt(rec.ProcessedAt),
	}
}

func parseProcessedAt(s string) time.Time {
	t, err := time.Parse(utils.ISOLayout, s)
	if err != nil {
		return time.Now().UTC()
	}
	return t
}

package models

import "encoding/json"

// CatalogRecommendRequest is the body of POST /recommend on the catalog service.
// Fields stay raw so validation can follow the exact error order.
type CatalogRecommendRequest struct {
	UserID   json.RawMessage `json:"user_id"`
	CourseID json.RawMessage `json:"course_id"`
}

// InterestRecommendRequest is the body of POST /recommend on the interest service.
type InterestRecommendRequest struct {
	UserID    json.RawMessage `json:"user_id"`
	Interests json.RawMessage `json:"interests"`
}

// CatalogRecommendation is both the 200 response and the analytics record.
type CatalogRecommendation struct {
	UserID          json.RawMessage `json:"user_id"`
	CourseID        int             `json:"course_id"`
	Recommendations []Course        `json:"recommendations"`
	ProcessedAt     string          `json:"processed_at"`
}

// InterestRecommendation is both the 200 response and the analytics record.
type InterestRecommendation struct {
	UserID          json.RawMessage `json:"user_id"`
	Interests       []interface{}   `json:"interests"`
	Recommendations []string        `json:"recommendations"`
	ProcessedAt     string          `json:"processed_at"`
}

type AnalyticsResponse[T any] struct {
	Count int `json:"count"`
	Items []T `json:"items"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type RootResponse struct {
	Service   string            `json:"service"`
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

package models

type Course struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CourseSummary is a GET /courses entry.
type CourseSummary struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

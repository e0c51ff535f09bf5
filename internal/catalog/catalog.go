// Package catalog loads the course catalog served by the catalog service.
package catalog

import (
	"context"
	"fmt"

	"github.com/edu-analytics/courserec/internal/models"
)

// Source yields the courses in load order.
type Source interface {
	Load(ctx context.Context) ([]models.Course, error)
}

// Catalog is the immutable, ordered set of loaded courses.
type Catalog struct {
	courses []models.Course
	index   map[int]int // course id -> row position
}

func New(courses []models.Course) (*Catalog, error) {
	c := &Catalog{
		courses: make([]models.Course, len(courses)),
		index:   make(map[int]int, len(courses)),
	}
	copy(c.courses, courses)

	for i, course := range c.courses {
		if _, dup := c.index[course.ID]; dup {
			return nil, fmt.Errorf("duplicate course id %d at row %d", course.ID, i+1)
		}
		c.index[course.ID] = i
	}
	return c, nil
}

// Load reads src once. Any error means no catalog.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	courses, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return New(courses)
}

func (c *Catalog) Len() int {
	return len(c.courses)
}

// Position returns the row of the course with id.
func (c *Catalog) Position(id int) (int, bool) {
	pos, ok := c.index[id]
	return pos, ok
}

func (c *Catalog) At(pos int) models.Course {
	return c.courses[pos]
}

func (c *Catalog) Summaries() []models.CourseSummary {
	out := make([]models.CourseSummary, len(c.courses))
	for i, course := range c.courses {
		out[i] = models.CourseSummary{ID: course.ID, Title: course.Title}
	}
	return out
}

// Descriptions returns the description of every course in row order.
func (c *Catalog) Descriptions() []string {
	out := make([]string, len(c.courses))
	for i, course := range c.courses {
		out[i] = course.Description
	}
	return out
}

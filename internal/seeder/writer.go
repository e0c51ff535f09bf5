package seeder

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/edu-analytics/courserec/internal/models"
)

// WriteCSV writes courses with an id,title,description header.
func WriteCSV(w io.Writer, courses []models.Course) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "description"}); err != nil {
		return err
	}
	for _, c := range courses {
		if err := cw.Write([]string{strconv.Itoa(c.ID), c.Title, c.Description}); err != nil {
			return fmt.Errorf("failed to write course %d: %w", c.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile replaces path atomically.
func WriteCSVFile(path string, courses []models.Course) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}
	if err := WriteCSV(f, courses); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// Store replaces the courses table, keeping page order in Position.
func Store(repo models.CourseRepository, courses []models.Course) (int64, error) {
	previous, err := repo.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count existing courses: %w", err)
	}

	rows := make([]models.CourseRow, len(courses))
	for i, c := range courses {
		rows[i] = models.CourseRow{
			CourseID:    c.ID,
			Position:    i,
			Title:       c.Title,
			Description: c.Description,
		}
	}
	if err := repo.ReplaceAll(rows); err != nil {
		return 0, err
	}
	return previous, nil
}

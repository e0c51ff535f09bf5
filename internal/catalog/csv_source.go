package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/edu-analytics/courserec/internal/models"
)

// CSVSource reads a header row followed by one course per row.
// Columns id and title are required, description may be absent or empty.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Load(ctx context.Context) ([]models.Course, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", s.Path, err)
	}
	defer file.Close()

	return ReadCSV(ctx, file)
}

// ReadCSV parses a course table from r.
func ReadCSV(ctx context.Context, r io.Reader) ([]models.Course, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	idCol, ok := cols["id"]
	if !ok {
		return nil, fmt.Errorf("missing column %q", "id")
	}
	titleCol, ok := cols["title"]
	if !ok {
		return nil, fmt.Errorf("missing column %q", "title")
	}
	descCol, hasDesc := cols["description"]

	var courses []models.Course
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		if idCol >= len(record) || titleCol >= len(record) {
			return nil, fmt.Errorf("line %d: expected at least %d fields, got %d", line, max(idCol, titleCol)+1, len(record))
		}

		id, err := parseID(record[idCol])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		course := models.Course{ID: id, Title: record[titleCol]}
		if hasDesc && descCol < len(record) {
			course.Description = record[descCol]
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// parseID accepts integers and integral decimals such as "3.0".
func parseID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if id, err := strconv.Atoi(raw); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid course id %q", raw)
	}
	return int(f), nil
}

package seeder

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/edu-analytics/courserec/internal/catalog"
	"github.com/edu-analytics/courserec/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPage = `<!DOCTYPE html>
<html><body>
<div class="course">
  <h2 class="course-title">Intro to <b>Machine</b> Learning</h2>
  <p class="course-description">Models,   features
  and <em>evaluation</em>.<sup class="reference">[1]</sup></p>
</div>
<div class="course">
  <h2 class="course-title">  </h2>
  <p class="course-description">No title here.</p>
</div>
<div class="course">
  <h2 class="course-title">Cooking Basics</h2>
</div>
<div class="course">
  <h2 class="course-title">intro to machine learning</h2>
  <p class="course-description">Duplicate.</p>
</div>
</body></html>`

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func defaultSelectors() Selectors {
	return Selectors{Item: ".course", Title: ".course-title", Description: ".course-description"}
}

func newTestScraper() *Scraper {
	s := NewScraper(defaultSelectors(), quietLogger())
	s.delay = 0
	return s
}

func TestScrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, listingPage)
	}))
	defer srv.Close()

	courses, err := newTestScraper().Scrape(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, []models.Course{
		{ID: 1, Title: "Intro to Machine Learning", Description: "Models, features and evaluation."},
		{ID: 2, Title: "Cooking Basics", Description: ""},
	}, courses)
}

func TestScrape_NoMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, "<html><body><p>empty</p></body></html>")
	}))
	defer srv.Close()

	_, err := newTestScraper().Scrape(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestScrape_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := newTestScraper().Scrape(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestScrape_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestScraper().Scrape(ctx, "http://127.0.0.1:1/")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCleanContent(t *testing.T) {
	cp := NewContentProcessor()
	assert.Equal(t, "a b c", cp.CleanContent("  a <br/>b\n\t c[12] "))
	assert.Equal(t, 3, cp.CountWords("Go, is fun! a"))
	assert.True(t, cp.SameTitle(" Go ", "go"))
}

func TestWriteCSV_ReadsBack(t *testing.T) {
	courses := []models.Course{
		{ID: 1, Title: "Intro, Part 1", Description: `Say "hello"`},
		{ID: 2, Title: "Cooking", Description: ""},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, courses))

	loaded, err := catalog.ReadCSV(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, courses, loaded)
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.csv")
	courses := []models.Course{{ID: 1, Title: "Go", Description: "concurrency"}}
	require.NoError(t, WriteCSVFile(path, courses))

	loaded, err := catalog.Load(context.Background(), catalog.NewCSVSource(path))
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
}

type recordingRepo struct {
	rows []models.CourseRow
}

func (r *recordingRepo) GetAll() ([]models.CourseRow, error) { return r.rows, nil }
func (r *recordingRepo) ReplaceAll(rows []models.CourseRow) error {
	r.rows = rows
	return nil
}
func (r *recordingRepo) Count() (int64, error) { return int64(len(r.rows)), nil }

func TestStore(t *testing.T) {
	repo := &recordingRepo{}
	previous, err := Store(repo, []models.Course{{ID: 5, Title: "A"}, {ID: 9, Title: "B"}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), previous)

	require.Len(t, repo.rows, 2)
	assert.Equal(t, 5, repo.rows[0].CourseID)
	assert.Equal(t, 1, repo.rows[1].Position)

	previous, err = Store(repo, []models.Course{{ID: 1, Title: "C"}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), previous)
	require.Len(t, repo.rows, 1)
}

func TestStore_CountError(t *testing.T) {
	repo := &failingCountRepo{}
	_, err := Store(repo, []models.Course{{ID: 1, Title: "A"}})
	assert.ErrorContains(t, err, "failed to count existing courses")
	assert.False(t, repo.replaced)
}

type failingCountRepo struct {
	replaced bool
}

func (r *failingCountRepo) GetAll() ([]models.CourseRow, error) { return nil, nil }
func (r *failingCountRepo) ReplaceAll(rows []models.CourseRow) error {
	r.replaced = true
	return nil
}
func (r *failingCountRepo) Count() (int64, error) { return 0, errors.New("connection refused") }

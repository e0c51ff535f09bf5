package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/edu-analytics/courserec/internal/models"
	"github.com/edu-analytics/courserec/internal/requestlog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *memorySink) Name() string { return "memory" }

func (s *memorySink) Publish(ctx context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return s.err
}

func (s *memorySink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func toEvent(rec string) Event {
	return Event{Variant: VariantInterests, UserID: json.RawMessage(`"u1"`), Selector: []string{}, Recommendations: []string{rec}}
}

func TestRecorder_LogsAndPublishes(t *testing.T) {
	ok := &memorySink{}
	failing := &memorySink{err: errors.New("down")}
	r := NewRecorder(requestlog.New[string](2), toEvent, quietLogger(), ok, failing)

	r.Record("a")
	r.Record("b")
	r.Record("c")
	r.Wait()

	assert.Equal(t, []string{"c", "b"}, r.Items())
	assert.Equal(t, 3, ok.count())
	assert.Equal(t, 3, failing.count())
}

func TestRecorder_NoSinks(t *testing.T) {
	r := NewRecorder[string](requestlog.New[string](5), nil, quietLogger())
	r.Record("only")
	r.Wait()
	assert.Equal(t, []string{"only"}, r.Items())
}

type fakeEventRepo struct {
	created []*models.RecommendationEvent
}

func (f *fakeEventRepo) Create(e *models.RecommendationEvent) error {
	f.created = append(f.created, e)
	return nil
}

func TestPostgresSink_Publish(t *testing.T) {
	repo := &fakeEventRepo{}
	sink := NewPostgresSink(repo)
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	err := sink.Publish(context.Background(), Event{
		Variant:         VariantCatalog,
		UserID:          json.RawMessage(`"u1"`),
		Selector:        1,
		Recommendations: []models.Course{{ID: 2, Title: "B"}},
		ProcessedAt:     at,
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	row := repo.created[0]
	assert.Equal(t, "catalog", row.Variant)
	assert.Equal(t, `"u1"`, row.UserID)
	assert.Equal(t, `1`, row.Selector)
	assert.JSONEq(t, `[{"id":2,"title":"B","description":""}]`, row.Recommendations)
	assert.Equal(t, at, row.ProcessedAt)
}

func TestPostgresSink_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := &fakeEventRepo{}
	assert.Error(t, NewPostgresSink(repo).Publish(ctx, Event{}))
	assert.Empty(t, repo.created)
}

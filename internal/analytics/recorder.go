// Package analytics records successful recommendations in the in-memory request log
// and mirrors them to optional external sinks.
package analytics

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/edu-analytics/courserec/internal/requestlog"
	"github.com/sirupsen/logrus"
)

const (
	VariantCatalog   = "catalog"
	VariantInterests = "interests"
)

// Event is the sink-facing form of a recommendation record.
type Event struct {
	Variant         string          `json:"variant"`
	UserID          json.RawMessage `json:"user_id"`
	Selector        interface{}     `json:"selector"`
	Recommendations interface{}     `json:"recommendations"`
	ProcessedAt     time.Time       `json:"processed_at"`
}

// Sink receives a copy of every recorded event. Failures never affect the caller.
type Sink interface {
	Name() string
	Publish(ctx context.Context, event Event) error
}

// Recorder owns the request log of one service.
type Recorder[T any] struct {
	log     *requestlog.Log[T]
	toEvent func(T) Event
	sinks   []Sink
	logger  *logrus.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewRecorder[T any](log *requestlog.Log[T], toEvent func(T) Event, logger *logrus.Logger, sinks ...Sink) *Recorder[T] {
	return &Recorder[T]{
		log:     log,
		toEvent: toEvent,
		sinks:   sinks,
		logger:  logger,
		timeout: 5 * time.Second,
	}
}

// Record prepends rec to the log, then publishes it to every sink in the background.
func (r *Recorder[T]) Record(rec T) {
	r.log.Add(rec)

	if len(r.sinks) == 0 || r.toEvent == nil {
		return
	}

	event := r.toEvent(rec)
	for _, sink := range r.sinks {
		r.wg.Add(1)
		go r.publish(sink, event)
	}
}

func (r *Recorder[T]) publish(sink Sink, event Event) {
	defer r.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := sink.Publish(ctx, event); err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{
			"sink":    sink.Name(),
			"variant": event.Variant,
		}).Warn("Failed to publish recommendation event")
	}
}

// Items returns the logged records, newest first.
func (r *Recorder[T]) Items() []T {
	return r.log.Items()
}

// Wait blocks until in-flight sink publishes finish.
func (r *Recorder[T]) Wait() {
	r.wg.Wait()
}

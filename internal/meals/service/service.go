// Package service implements the record store: the single owner of the meal
// record collection. Every mutation runs on a deep copy of the committed state,
// persists the whole collection, and only then replaces the in-memory state.
package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"

	"mealog/internal/meals/events"
	"mealog/internal/meals/metrics"
	"mealog/internal/meals/models"
	"mealog/internal/platform/config"
	dErrors "mealog/pkg/domain-errors"
	"mealog/pkg/platform/sentinel"
	"mealog/pkg/requestcontext"
)

// Store persists the whole collection as one unit.
type Store interface {
	Load(ctx context.Context) ([]*models.MealRecord, error)
	Save(ctx context.Context, records []*models.MealRecord) error
}

type Service struct {
	store       Store
	logger      *slog.Logger
	metrics     *metrics.Metrics
	publisher   events.Publisher
	tracer      trace.Tracer
	newID       func() string
	defaultTime string

	// queue admits one mutation at a time
	queue *semaphore.Weighted
	ready atomic.Bool

	mu      sync.RWMutex
	records []*models.MealRecord
	version uint64
	loadErr error
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithPublisher(p events.Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithIDGenerator replaces the UUID generator used for new records.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// WithDefaultTimeLabel sets the bucket used when AddItem gets no time label.
func WithDefaultTimeLabel(label string) Option {
	return func(s *Service) {
		if label != "" {
			s.defaultTime = label
		}
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:       store,
		logger:      slog.Default(),
		publisher:   events.Noop{},
		tracer:      otel.Tracer("mealog/internal/meals/service"),
		newID:       uuid.NewString,
		defaultTime: config.DefaultTimeLabel,
		queue:       semaphore.NewWeighted(1),
		records:     []*models.MealRecord{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the persisted collection. A missing collection starts
// empty. A corrupt or unreadable one also starts empty: the failure is logged,
// counted and kept for LoadErr, and Initialize still returns nil. Ready
// reports true once Initialize has run.
func (s *Service) Initialize(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "meals.Initialize")
	defer span.End()

	if err := s.queue.Acquire(ctx, 1); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "initialize cancelled")
		return dErrors.Wrap(err, dErrors.CodeTimeout, "timed out waiting to load meal records")
	}
	defer s.queue.Release(1)

	records, err := s.store.Load(ctx)
	var loadErr error
	switch {
	case err == nil:
	case errors.Is(err, sentinel.ErrNotFound):
		records = nil
	default:
		loadErr = err
		records = nil
		span.RecordError(err)
		s.metrics.IncrementLoadFailure()
		s.logger.WarnContext(ctx, "failed to load meal records, starting empty", "error", err)
	}
	if records == nil {
		records = []*models.MealRecord{}
	}

	s.mu.Lock()
	s.records = records
	s.loadErr = loadErr
	s.mu.Unlock()

	s.metrics.SetRecords(len(records))
	s.ready.Store(true)
	span.SetAttributes(attribute.Int("meal.records", len(records)))
	s.logger.InfoContext(ctx, "meal records loaded", "records", len(records), "load_failed", loadErr != nil)
	return nil
}

// Ready reports whether Initialize has completed. Before that an empty
// collection means "no data yet", not "no records".
func (s *Service) Ready() bool {
	return s.ready.Load()
}

// LoadErr returns the failure absorbed by Initialize, if any.
func (s *Service) LoadErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Version counts committed mutations since start-up.
func (s *Service) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Records returns a deep copy of the collection in store order.
func (s *Service) Records() []*models.MealRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneAll(s.records)
}

// Sorted returns a deep copy of the collection ordered by date ascending.
func (s *Service) Sorted() []*models.MealRecord {
	out := s.Records()
	slices.SortFunc(out, func(a, b *models.MealRecord) int {
		return strings.Compare(a.Date, b.Date)
	})
	return out
}

// Find returns a deep copy of the record for date.
func (s *Service) Find(date string) (*models.MealRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := models.IndexOf(s.records, date)
	if i < 0 {
		return nil, false
	}
	return s.records[i].Clone(), true
}

// AddItem appends item to the time bucket of date. An empty label selects the
// default label. The record and bucket are created when missing. The item is
// stored as given; callers validate it. Returns a copy of the updated record.
func (s *Service) AddItem(ctx context.Context, date string, item models.MealItem, label string) (*models.MealRecord, error) {
	if label == "" {
		label = s.defaultTime
	}
	var added *models.MealRecord
	err := s.apply(ctx, events.OpAddItem, date, label, -1, func(records []*models.MealRecord) ([]*models.MealRecord, result, error) {
		out, r := addItem(records, s.newID, date, label, item)
		added = r
		return out, result{changed: true}, nil
	})
	if err != nil {
		return nil, err
	}
	return added.Clone(), nil
}

// EditItem replaces the item at index in the time bucket of date. A missing
// record or bucket is a no-op. An index outside the bucket fails with
// CodeIndexOutOfRange.
func (s *Service) EditItem(ctx context.Context, date, label string, index int, item models.MealItem) error {
	return s.apply(ctx, events.OpEditItem, date, label, index, func(records []*models.MealRecord) ([]*models.MealRecord, result, error) {
		changed, err := editItem(records, date, label, index, item)
		return records, result{changed: changed}, err
	})
}

// DeleteItem removes the item at index, pruning an emptied bucket and an
// emptied record. Missing record or bucket and index handling match EditItem.
func (s *Service) DeleteItem(ctx context.Context, date, label string, index int) error {
	return s.apply(ctx, events.OpDeleteItem, date, label, index, func(records []*models.MealRecord) ([]*models.MealRecord, result, error) {
		out, changed, removed, err := deleteItem(records, date, label, index)
		return out, result{changed: changed, recordRemoved: removed}, err
	})
}

// SetMemo replaces the memo of the record for date. A missing record is a no-op.
func (s *Service) SetMemo(ctx context.Context, date, memo string) error {
	return s.apply(ctx, events.OpSetMemo, date, "", -1, func(records []*models.MealRecord) ([]*models.MealRecord, result, error) {
		return records, result{changed: setMemo(records, date, memo)}, nil
	})
}

type result struct {
	changed       bool
	recordRemoved bool
}

type mutation func(records []*models.MealRecord) ([]*models.MealRecord, result, error)

func (s *Service) apply(ctx context.Context, op events.Op, date, label string, index int, fn mutation) error {
	ctx, span := s.tracer.Start(ctx, spanName(op),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("meal.date", date),
			attribute.String("meal.time", label),
			attribute.Int("meal.index", index),
		),
	)
	defer span.End()

	if !s.ready.Load() {
		return dErrors.New(dErrors.CodeUnavailable, "meal records are still loading")
	}

	if err := s.queue.Acquire(ctx, 1); err != nil {
		s.metrics.IncrementMutation(string(op), metrics.OutcomeCancelled)
		span.RecordError(err)
		span.SetStatus(codes.Error, "queue wait cancelled")
		return dErrors.Wrap(err, dErrors.CodeTimeout, "timed out waiting for pending record changes")
	}
	defer s.queue.Release(1)

	next := s.Records()
	next, res, err := fn(next)
	if err != nil {
		s.metrics.IncrementMutation(string(op), metrics.OutcomeOutOfRange)
		span.RecordError(err)
		span.SetStatus(codes.Error, "mutation rejected")
		return err
	}
	if !res.changed {
		s.metrics.IncrementMutation(string(op), metrics.OutcomeNoop)
		s.logger.DebugContext(ctx, "meal record not found, nothing changed",
			"op", op, "date", date, "time", label, "request_id", requestcontext.RequestID(ctx))
		return nil
	}

	start := time.Now()
	if err := s.store.Save(ctx, next); err != nil {
		s.metrics.IncrementMutation(string(op), metrics.OutcomeFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "persist failed")
		s.logger.ErrorContext(ctx, "failed to persist meal records",
			"op", op, "date", date, "error", err, "request_id", requestcontext.RequestID(ctx))
		if errors.Is(err, sentinel.ErrUnavailable) {
			return dErrors.Wrap(err, dErrors.CodeUnavailable, "meal storage is unavailable")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist meal records")
	}
	s.metrics.ObservePersist(time.Since(start))

	s.mu.Lock()
	s.records = next
	s.version++
	version := s.version
	s.mu.Unlock()

	s.metrics.SetRecords(len(next))
	s.metrics.IncrementMutation(string(op), metrics.OutcomeOK)
	span.SetAttributes(attribute.Int64("meal.version", int64(version)))

	s.publish(ctx, events.Change{
		Op:            op,
		Date:          date,
		Time:          label,
		Index:         index,
		Version:       version,
		At:            requestcontext.Now(ctx),
		RecordRemoved: res.recordRemoved,
	})
	return nil
}

// publish runs after commit. Failures never undo the mutation.
func (s *Service) publish(ctx context.Context, change events.Change) {
	if err := s.publisher.Publish(context.WithoutCancel(ctx), change); err != nil {
		s.metrics.IncrementPublishFailure()
		s.logger.WarnContext(ctx, "failed to publish meal record change",
			"op", change.Op, "date", change.Date, "version", change.Version, "error", err)
	}
}

func spanName(op events.Op) string {
	switch op {
	case events.OpAddItem:
		return "meals.AddItem"
	case events.OpEditItem:
		return "meals.EditItem"
	case events.OpDeleteItem:
		return "meals.DeleteItem"
	case events.OpSetMemo:
		return "meals.SetMemo"
	default:
		return "meals." + string(op)
	}
}

package handler

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"mealog/internal/meals/models"
	"mealog/internal/meals/stats"
	"mealog/internal/suggest"
	dErrors "mealog/pkg/domain-errors"
	"mealog/pkg/platform/httputil"
	"mealog/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service_mock.go -package=mocks Service

// Service defines the record store operations used by the HTTP layer.
type Service interface {
	Ready() bool
	LoadErr() error
	Sorted() []*models.MealRecord
	Find(date string) (*models.MealRecord, bool)
	AddItem(ctx context.Context, date string, item models.MealItem, time string) (*models.MealRecord, error)
	EditItem(ctx context.Context, date, time string, index int, item models.MealItem) error
	DeleteItem(ctx context.Context, date, time string, index int) error
	SetMemo(ctx context.Context, date, memo string) error
}

// Handler serves the meal record API.
type Handler struct {
	logger  *slog.Logger
	records Service
}

// New creates a new meal record Handler.
func New(records Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		records: records,
	}
}

// Register registers the /v1 routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Use(h.requireReady)

		r.Get("/records", h.handleListRecords)
		r.Get("/records/{date}", h.handleGetRecord)
		r.Post("/records/{date}/items", h.handleAddItem)
		r.Put("/records/{date}/meals/{time}/items/{index}", h.handleEditItem)
		r.Delete("/records/{date}/meals/{time}/items/{index}", h.handleDeleteItem)
		r.Put("/records/{date}/memo", h.handleSetMemo)

		r.Get("/calendar", h.handleCalendar)
		r.Get("/stats/trend", h.handleTrend)
		r.Get("/suggestions", h.handleSuggestions)
	})
}

// requireReady answers 503 until the initial load has finished, so clients
// never mistake "not loaded yet" for "no records".
func (h *Handler) requireReady(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.records.Ready() {
			httputil.WriteError(w, dErrors.New(dErrors.CodeUnavailable, "meal records are still loading"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) handleListRecords(w http.ResponseWriter, r *http.Request) {
	records := h.records.Sorted()
	slices.Reverse(records)

	resp := RecordListResponse{Records: make([]RecordResponse, 0, len(records))}
	for _, rec := range records {
		resp.Records = append(resp.Records, toRecordResponse(rec))
	}
	if err := h.records.LoadErr(); err != nil {
		resp.LoadError = "stored meal records could not be recovered"
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(ctx, w, err, "invalid get record request")
		return
	}
	rec, ok := h.records.Find(date)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no meals recorded for "+date))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toRecordResponse(rec))
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(ctx, w, err, "invalid add item request")
		return
	}
	var req AddItemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.writeError(ctx, w, err, "invalid add item request")
		return
	}

	rec, err := h.records.AddItem(ctx, date, req.toItem(), req.Time)
	if err != nil {
		h.writeError(ctx, w, err, "failed to add meal item")
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toRecordResponse(rec))
}

func (h *Handler) handleEditItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc, err := parseItemPath(r)
	if err != nil {
		h.writeError(ctx, w, err, "invalid edit item request")
		return
	}
	var req ItemRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.writeError(ctx, w, err, "invalid edit item request")
		return
	}

	if err := h.records.EditItem(ctx, loc.Date, loc.Time, loc.Index, req.toItem()); err != nil {
		h.writeError(ctx, w, err, "failed to edit meal item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc, err := parseItemPath(r)
	if err != nil {
		h.writeError(ctx, w, err, "invalid delete item request")
		return
	}
	if err := h.records.DeleteItem(ctx, loc.Date, loc.Time, loc.Index); err != nil {
		h.writeError(ctx, w, err, "failed to delete meal item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSetMemo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(ctx, w, err, "invalid memo request")
		return
	}
	var req MemoRequest
	if err := decodeAndValidate(r, &req); err != nil {
		h.writeError(ctx, w, err, "invalid memo request")
		return
	}
	if err := h.records.SetMemo(ctx, date, req.Memo); err != nil {
		h.writeError(ctx, w, err, "failed to set memo")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	month := r.URL.Query().Get("month")
	if err := validateVar(month, "month", "omitempty,datetime=2006-01"); err != nil {
		h.writeError(ctx, w, err, "invalid calendar request")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, CalendarResponse{
		Month: month,
		Dates: stats.MarkedDates(h.records.Sorted(), month),
	})
}

func (h *Handler) handleTrend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	days, err := parseDays(r.URL.Query().Get("days"))
	if err != nil {
		h.writeError(ctx, w, err, "invalid trend request")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, TrendResponse{
		Days:   days,
		Points: stats.Trend(h.records.Sorted(), days),
	})
}

func (h *Handler) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	date := r.URL.Query().Get("date")
	if date == "" {
		date = requestcontext.Now(ctx).UTC().Format(dateLayout)
	}
	date, err := parseDate(date)
	if err != nil {
		h.writeError(ctx, w, err, "invalid suggestions request")
		return
	}
	httputil.WriteJSON(w, http.StatusOK, suggest.Suggest(h.records.Sorted(), date))
}

// writeError logs at warn for client errors and at error otherwise, then
// renders the error envelope.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	code := dErrors.CodeOf(err)
	attrs := []any{
		"request_id", requestcontext.RequestID(ctx),
		"error", err.Error(),
	}
	switch code {
	case dErrors.CodeInternal, dErrors.CodeUnavailable:
		h.logger.ErrorContext(ctx, msg, attrs...)
	default:
		h.logger.WarnContext(ctx, msg, attrs...)
	}
	httputil.WriteError(w, err)
}

// Dashboard handlers: window-scoped aggregations rendered as JSON. Every
// response is recomputed from a fresh snapshot and cached by request URI
// until the next mutation.

package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"spendlog/internal/core"
)

type summaryResponse struct {
	Total        core.Money `json:"total"`
	Count        int        `json:"count"`
	Categories   []string   `json:"categories"`
	AllTimeTotal core.Money `json:"allTimeTotal"`
}

// serveCached answers from the response cache when possible, otherwise
// builds, caches and writes the payload.
func (s *Server) serveCached(w http.ResponseWriter, r *http.Request, build func(ctx context.Context) (interface{}, error)) {
	key := r.URL.RequestURI()
	if data, ok := s.respCache.Get(key); ok {
		slog.DebugContext(r.Context(), "Dashboard cache hit", "key", key)
		writeJSONBytes(w, http.StatusOK, data)
		return
	}

	v, err := build(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Dashboard query failed", "error", err, "url", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		slog.ErrorContext(r.Context(), "Response marshal failed", "error", err, "url", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	s.respCache.Set(key, data)
	writeJSONBytes(w, http.StatusOK, data)
}

// scoped applies the request's window and category filters to a snapshot.
func scoped(records []core.Record, r *http.Request) ([]core.Record, error) {
	win, err := ParseWindow(r.URL.Query())
	if err != nil {
		return nil, err
	}
	out := core.Filter(records, win)
	return core.FilterCategory(out, ParseCategory(r.URL.Query())), nil
}

// handleSummary returns the scoped total, record count and the categories
// seen in the window, plus the all-time total for context.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	win, err := ParseWindow(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.serveCached(w, r, func(ctx context.Context) (interface{}, error) {
		records, _, err := s.snapshot(ctx)
		if err != nil {
			return nil, err
		}
		windowed := core.Filter(records, win)
		selected := core.FilterCategory(windowed, ParseCategory(r.URL.Query()))
		return summaryResponse{
			Total:        core.Total(selected),
			Count:        len(selected),
			Categories:   core.DistinctCategories(windowed),
			AllTimeTotal: core.Total(records),
		}, nil
	})
}

// handleTrend returns the per-day line series for the scoped records, sorted
// ascending by date.
func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	if _, err := ParseWindow(r.URL.Query()); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.serveCached(w, r, func(ctx context.Context) (interface{}, error) {
		records, _, err := s.snapshot(ctx)
		if err != nil {
			return nil, err
		}
		selected, err := scoped(records, r)
		if err != nil {
			return nil, err
		}
		return core.LineSeries(core.ByDay(selected)), nil
	})
}

// handleBreakdown returns the per-category pie series for the scoped
// records, labels resolved through the category directory.
func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	if _, err := ParseWindow(r.URL.Query()); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.serveCached(w, r, func(ctx context.Context) (interface{}, error) {
		records, categories, err := s.snapshot(ctx)
		if err != nil {
			return nil, err
		}
		selected, err := scoped(records, r)
		if err != nil {
			return nil, err
		}
		return core.PieSeries(core.ByCategory(selected), core.NewDirectory(categories)), nil
	})
}

// handleMonths returns every month that has at least one dated record,
// most recent first. Always computed over the full record set.
func (s *Server) handleMonths(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	s.serveCached(w, r, func(ctx context.Context) (interface{}, error) {
		records, err := s.journal.Records(ctx)
		if err != nil {
			return nil, err
		}
		return core.AvailableMonths(records), nil
	})
}

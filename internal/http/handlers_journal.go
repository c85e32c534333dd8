// Journal handlers: record and category CRUD. Mutations invalidate the
// dashboard response cache before answering.

package http

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"spendlog/internal/core"
)

type recordResponse struct {
	ID           string     `json:"id"`
	Date         core.Date  `json:"date"`
	Category     string     `json:"category"`
	CategoryName string     `json:"categoryName"`
	Amount       core.Money `json:"amount"`
}

func toRecordResponse(r core.Record, dir *core.Directory) recordResponse {
	name := r.Category
	if name == "" {
		name = core.UncategorizedLabel
	} else if c, ok := dir.Lookup(r.Category); ok {
		name = c.Name
	}
	return recordResponse{
		ID:           r.ID,
		Date:         r.Date,
		Category:     r.Category,
		CategoryName: name,
		Amount:       r.Amount,
	}
}

// handleRecords lists records (GET) or creates one (POST).
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listRecords(w, r)
	case http.MethodPost:
		s.createRecord(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// listRecords returns records scoped by the same window and category
// parameters the dashboard uses, newest first. Records without a date sort
// last and appear only under the all-time window.
func (s *Server) listRecords(w http.ResponseWriter, r *http.Request) {
	win, err := ParseWindow(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, categories, err := s.snapshot(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Record list failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	selected := core.FilterCategory(core.Filter(records, win), ParseCategory(r.URL.Query()))
	sort.SliceStable(selected, func(i, j int) bool {
		a, b := selected[i].Date, selected[j].Date
		if a.IsAbsent() || b.IsAbsent() {
			return b.IsAbsent() && !a.IsAbsent()
		}
		return a.After(b.Time)
	})

	dir := core.NewDirectory(categories)
	out := make([]recordResponse, 0, len(selected))
	for _, rec := range selected {
		out = append(out, toRecordResponse(rec, dir))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createRecord(w http.ResponseWriter, r *http.Request) {
	body := NewRequestBodyParser(r)
	if err := body.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	rec, err := s.journal.AddRecord(r.Context(), body.Get("date"), body.Get("category"), body.Get("amount"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.invalidate()

	categories, err := s.journal.Categories(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Category lookup after create failed", "error", err)
		categories = nil
	}
	writeJSON(w, http.StatusCreated, toRecordResponse(rec, core.NewDirectory(categories)))
}

// handleRecordByID deletes a single record addressed as /api/records/{id}.
func (s *Server) handleRecordByID(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/records/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}

	if err := s.journal.RemoveRecord(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	s.invalidate()
	w.WriteHeader(http.StatusNoContent)
}

// handleCategories lists categories (GET) or creates one (POST).
func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		categories, err := s.journal.Categories(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "Category list failed", "error", err)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if categories == nil {
			categories = []core.Category{}
		}
		writeJSON(w, http.StatusOK, categories)
	case http.MethodPost:
		body := NewRequestBodyParser(r)
		if err := body.Parse(); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body")
			return
		}
		c, err := s.journal.AddCategory(r.Context(), body.Get("name"), body.Get("description"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		s.invalidate()
		writeJSON(w, http.StatusCreated, c)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

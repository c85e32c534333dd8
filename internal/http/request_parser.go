// Request parsing helpers: window extraction from query parameters and a
// body parser that accepts both JSON and form-encoded payloads.

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"spendlog/internal/core"
)

// ParseWindow builds the aggregation window from query parameters.
//
//	period=all                    -> all time (default when absent)
//	period=day&date=2025-07-01    -> single day (date defaults to today)
//	period=week&year=2025&week=27 -> week of year (defaults to current week)
//	period=month&month=2025-07    -> calendar month (defaults to current month)
//
// Anchor parameters that fail to parse fall back to their defaults; only an
// unknown period value is an error, since the engine panics on unknown kinds.
func ParseWindow(query url.Values) (core.Window, error) {
	now := time.Now().UTC()
	today := core.NewDate(now.Year(), int(now.Month()), now.Day())

	switch strings.TrimSpace(query.Get("period")) {
	case "", "all":
		return core.AllTime(), nil
	case "day":
		day := today
		if v := strings.TrimSpace(query.Get("date")); v != "" {
			if d, err := core.ParseDate(v); err == nil {
				day = d
			}
		}
		return core.DayOf(day), nil
	case "week":
		year := today.Year()
		week := core.WeekNumber(today)
		// Trailing December days belong to week 1 of the next year.
		if week == 1 && today.Month() == 12 {
			year++
		}
		if v := strings.TrimSpace(query.Get("year")); v != "" {
			if y, err := strconv.Atoi(v); err == nil {
				year = y
			}
		}
		if v := strings.TrimSpace(query.Get("week")); v != "" {
			if w, err := strconv.Atoi(v); err == nil {
				week = w
			}
		}
		return core.WeekOf(year, week), nil
	case "month":
		year, month := today.Year(), today.Month()
		if v := strings.TrimSpace(query.Get("month")); v != "" {
			if y, m, ok := parseMonthKey(v); ok {
				year, month = y, m
			}
		}
		return core.MonthOf(year, month), nil
	default:
		return core.Window{}, fmt.Errorf("unknown period %q", query.Get("period"))
	}
}

// parseMonthKey parses a YYYY-MM month picker value.
func parseMonthKey(s string) (year, month int, ok bool) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), int(t.Month()), true
}

// ParseCategory returns the category selector from the query, defaulting to
// the no-filter sentinel.
func ParseCategory(query url.Values) string {
	if v := strings.TrimSpace(query.Get("category")); v != "" {
		return v
	}
	return core.CategoryAll
}

// RequestBodyParser handles different content types for request body parsing.
// It supports both JSON and form-encoded data.
type RequestBodyParser struct {
	body     []byte
	jsonData map[string]interface{}
	formData url.Values
	parsed   bool
	err      error
}

// NewRequestBodyParser reads the body once and stores it for parsing.
func NewRequestBodyParser(r *http.Request) *RequestBodyParser {
	p := &RequestBodyParser{}
	p.body, p.err = io.ReadAll(r.Body)
	return p
}

// Parse attempts to parse the body as JSON or form data.
func (p *RequestBodyParser) Parse() error {
	if p.parsed {
		return p.err
	}
	p.parsed = true

	if p.err != nil {
		return p.err
	}
	if len(p.body) == 0 {
		p.formData = url.Values{}
		return nil
	}

	if p.body[0] == '{' || p.body[0] == '[' {
		p.jsonData = make(map[string]interface{})
		if err := json.Unmarshal(p.body, &p.jsonData); err != nil {
			p.err = err
			return err
		}
		return nil
	}

	p.formData, p.err = url.ParseQuery(string(p.body))
	return p.err
}

// Get returns a string value from the parsed data (JSON or form). JSON
// numbers come back in decimal notation so amount fields accept both
// `"12.34"` and `12.34`.
func (p *RequestBodyParser) Get(key string) string {
	if p.jsonData != nil {
		if val, ok := p.jsonData[key]; ok {
			return strings.TrimSpace(sanitizeInput(stringValue(val)))
		}
	}
	if p.formData != nil {
		return strings.TrimSpace(sanitizeInput(p.formData.Get(key)))
	}
	return ""
}

// stringValue converts an interface{} to string.
func stringValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// sanitizeInput removes control characters except tab, newline, carriage
// return, and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

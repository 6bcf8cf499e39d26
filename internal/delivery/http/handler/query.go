package handler

import (
	"net/http"
	"strconv"
	"time"

	"health-monitoring-api/pkg/pagination"
)

// intQuery parses an integer query parameter, falling back on absence or
// garbage.
func intQuery(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// timeQuery parses an RFC3339 or date-only query parameter, nil when absent
// or unparseable.
func timeQuery(r *http.Request, name string) *time.Time {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	return nil
}

// pageQuery normalizes page/limit query parameters against the given cap.
func pageQuery(r *http.Request, maxLimit int) pagination.Page {
	return pagination.Normalize(
		intQuery(r, "page", 0),
		intQuery(r, "limit", 0),
		maxLimit,
	)
}

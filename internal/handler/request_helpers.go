package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// urlParamInt parses a chi URL parameter as a positive integer
func urlParamInt(r *http.Request, name string) (int, bool) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || v < 1 {
		return 0, false
	}
	return v, true
}

// queryInt parses an optional integer query parameter, returning 0 when the
// parameter is absent or malformed. Callers treat 0 as "not provided".
func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

// queryIntPtr parses an optional integer query parameter into a pointer,
// nil when absent. Malformed values report failure so filters never
// silently match everything.
func queryIntPtr(r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}

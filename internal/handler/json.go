package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/msomdec/anime-service/internal/domain"
)

// errorResponse is the body of every non-2xx JSON response. Errors lists each
// violation when the request failed validation.
type errorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("write JSON response", "error", err)
	}
}

// writeError sends a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps a service error onto a status code. Unknown errors
// are logged and reported as 500 without leaking their text.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var notFound *domain.NotFoundError
	var invalid *domain.ValidationError
	switch {
	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &invalid):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  invalid.Error(),
			Errors: invalid.Violations,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		slog.ErrorContext(r.Context(), op, "request_id", RequestIDFromContext(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// readJSON decodes the request body into the given destination.
func readJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// pathID parses the {id} path value.
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", domain.ErrInvalidInput, raw)
	}
	return id, nil
}

// queryParam returns the named query parameter, or nil when it is absent.
// A parameter sent with an empty value is returned as a pointer to "".
func queryParam(r *http.Request, name string) *string {
	values, ok := r.URL.Query()[name]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

// queryList returns every value of a repeatable or comma-separated parameter.
func queryList(r *http.Request, name string) []string {
	var out []string
	for _, v := range r.URL.Query()[name] {
		for part := range strings.SplitSeq(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// optional renders an optional parameter for logging.
func optional(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

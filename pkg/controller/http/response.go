package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/utils/apperr"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// statusOf maps an error tag to the response status code
func statusOf(err error) int {
	switch {
	case goerr.HasTag(err, model.ErrTagClassificationFailure):
		return http.StatusServiceUnavailable
	case goerr.HasTag(err, model.ErrTagValidation):
		return http.StatusBadRequest
	case goerr.HasTag(err, model.ErrTagUnauthorized):
		return http.StatusUnauthorized
	case goerr.HasTag(err, model.ErrTagForbidden):
		return http.StatusForbidden
	case goerr.HasTag(err, model.ErrTagNotFound):
		return http.StatusNotFound
	case goerr.HasTag(err, model.ErrTagConflict):
		return http.StatusConflict
	case goerr.HasTag(err, model.ErrTagRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes an error response. Client errors carry the message of
// the root cause; server errors are logged and answered with a generic text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)

	resp := errorResponse{Error: http.StatusText(status)}
	switch {
	case status == http.StatusServiceUnavailable:
		ctxlog.From(r.Context()).Warn("content safety unavailable", "error", err)
		resp.Error = "content moderation is temporarily unavailable"
	case status >= http.StatusInternalServerError:
		apperr.Handle(r.Context(), err)
	default:
		resp.Error = rootCause(err).Error()
		if field, ok := goerr.Values(err)["field"].(string); ok {
			resp.Field = field
		}
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	writeJSON(w, r, status, resp)
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// decodeJSON reads the request body into v
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.New("invalid request body",
			goerr.T(model.ErrTagValidation),
			goerr.V("cause", err.Error()))
	}
	return nil
}

// pageParams reads limit and offset from the query. Missing values are
// zero so the use case applies its default.
func pageParams(r *http.Request) (int, int, error) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		return 0, 0, err
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, goerr.New(name+" must be an integer",
			goerr.T(model.ErrTagValidation),
			goerr.V("field", name),
			goerr.V("value", raw))
	}
	return n, nil
}

package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/emotion-diary/internal/domain"
)

const maxBodyBytes = 1 << 20

var errEmptyBody = domain.NewValidationError("body", "request body is empty")

// Error codes returned in ErrorResponse.Error.
const (
	CodeValidation           = "validation"
	CodeEmptyContent         = "empty_content"
	CodeFutureDate           = "future_date"
	CodeUnauthenticated      = "unauthenticated"
	CodeNotFound             = "not_found"
	CodeAlreadyExists        = "already_exists"
	CodeConfirmationRequired = "confirmation_required"
	CodeAnalysis             = "analysis_failed"
	CodeRateLimited          = "rate_limited"
	CodeInternal             = "internal"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError names an invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", "request body too large")
		}
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// handleError maps domain errors onto HTTP statuses. Unknown errors are
// logged and reported as a generic 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrEmptyContent):
		writeError(w, http.StatusBadRequest, CodeEmptyContent, "content is empty")
	case errors.Is(err, domain.ErrFutureDate):
		writeError(w, http.StatusBadRequest, CodeFutureDate, "date is in the future")
	case errors.As(err, &ve):
		resp := ErrorResponse{Error: CodeValidation, Message: ve.Error()}
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, FieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, CodeUnauthenticated, "sign in required")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, CodeNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, CodeAlreadyExists, "already exists")
	case errors.Is(err, domain.ErrConfirmationRequired):
		writeError(w, http.StatusPreconditionRequired, CodeConfirmationRequired, "confirmation required")
	case errors.Is(err, domain.ErrAnalysis):
		log.WarnContext(r.Context(), "analysis failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, CodeAnalysis, domain.ErrAnalysis.Error())
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

// ErrorFromResponse converts an ErrorResponse back into a domain error so
// API clients can use errors.Is against the same sentinels.
func ErrorFromResponse(status int, resp ErrorResponse) error {
	switch resp.Error {
	case CodeEmptyContent:
		return domain.ErrEmptyContent
	case CodeFutureDate:
		return domain.ErrFutureDate
	case CodeValidation:
		if len(resp.Fields) == 0 {
			return fmt.Errorf("%w: %s", domain.ErrValidation, resp.Message)
		}
		fields := make([]domain.FieldError, 0, len(resp.Fields))
		for _, f := range resp.Fields {
			fields = append(fields, domain.FieldError{Field: f.Field, Message: f.Message})
		}
		return domain.NewValidationErrors(fields)
	case CodeUnauthenticated:
		return domain.ErrUnauthenticated
	case CodeNotFound:
		return domain.ErrNotFound
	case CodeAlreadyExists:
		return domain.ErrAlreadyExists
	case CodeConfirmationRequired:
		return domain.ErrConfirmationRequired
	case CodeAnalysis:
		return domain.ErrAnalysis
	case CodeRateLimited:
		return domain.ErrRateLimited
	}
	switch {
	case status == http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	case status == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	}
	msg := resp.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	return fmt.Errorf("server error %d: %s", status, msg)
}

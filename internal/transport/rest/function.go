package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/emotion-diary/internal/adapter/provider/feedback/function"
	"github.com/heartmarshall/emotion-diary/internal/domain"
)

type analyzer interface {
	Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResult, error)
}

// FunctionHandler exposes the feedback function over HTTP. Errors are
// reported in the function's own envelope (success=false) rather than the
// REST error body.
type FunctionHandler struct {
	svc analyzer
	log *slog.Logger
}

// NewFunctionHandler creates a FunctionHandler.
func NewFunctionHandler(svc analyzer, logger *slog.Logger) *FunctionHandler {
	return &FunctionHandler{svc: svc, log: logger.With("handler", "function")}
}

// Analyze handles POST /functions/v1/analyze.
func (h *FunctionHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req function.Request
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	in, err := req.ToDomain()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.Analyze(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, function.Response{
		Success:  true,
		Message:  res.Message,
		Feedback: res.Feedback,
		Diary:    function.NewDiary(res.Diary),
	})
}

func (h *FunctionHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, domain.ErrValidation):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnauthenticated):
		status, msg = http.StatusUnauthorized, "sign in required"
	case errors.Is(err, domain.ErrNotFound):
		status, msg = http.StatusNotFound, "diary not found"
	case errors.Is(err, domain.ErrAnalysis):
		status, msg = http.StatusBadGateway, domain.ErrAnalysis.Error()
		h.log.WarnContext(r.Context(), "analysis failed", slog.String("error", err.Error()))
	default:
		h.log.ErrorContext(r.Context(), "function error", slog.String("error", err.Error()))
	}

	writeJSON(w, status, function.Response{Success: false, Error: msg})
}

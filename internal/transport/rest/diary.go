package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/emotion-diary/internal/adapter/provider/feedback/function"
	"github.com/heartmarshall/emotion-diary/internal/calendar"
	"github.com/heartmarshall/emotion-diary/internal/domain"
	"github.com/heartmarshall/emotion-diary/internal/service/diary"
)

type diaryService interface {
	SubmitNew(ctx context.Context, input diary.SubmitInput) (*diary.Outcome, error)
	Reanalyze(ctx context.Context, input diary.ReanalyzeInput) (*diary.Outcome, error)
	Edit(ctx context.Context, input diary.EditInput) (*diary.Outcome, error)
	Delete(ctx context.Context, input diary.DeleteInput) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Diary, error)
	List(ctx context.Context) ([]*domain.Diary, error)
	ListByDate(ctx context.Context, date civil.Date) ([]*domain.Diary, error)
	Calendar(ctx context.Context, month calendar.Month) (calendar.MonthView, error)
	CurrentMonth() calendar.Month
}

// DiaryHandler serves the diary and calendar endpoints.
type DiaryHandler struct {
	svc diaryService
	log *slog.Logger
}

// NewDiaryHandler creates a DiaryHandler.
func NewDiaryHandler(svc diaryService, logger *slog.Logger) *DiaryHandler {
	return &DiaryHandler{svc: svc, log: logger.With("handler", "diary")}
}

// SubmitRequest is the body of POST /diaries.
type SubmitRequest struct {
	Content    string `json:"content"`
	TargetDate string `json:"targetDate,omitempty"`
}

// EditRequest is the body of PUT /diaries/{id}.
type EditRequest struct {
	Content string `json:"content"`
}

// ReanalyzeRequest is the optional body of POST /diaries/{id}/reanalyze.
type ReanalyzeRequest struct {
	Content *string `json:"content,omitempty"`
}

// OutcomeResponse reports the entry after a lifecycle operation.
type OutcomeResponse struct {
	Diary    *function.Diary `json:"diary"`
	Feedback string          `json:"feedback"`
	Message  string          `json:"message,omitempty"`
	State    string          `json:"state"`
}

// DiaryListResponse wraps a list of entries, newest first.
type DiaryListResponse struct {
	Diaries []*function.Diary `json:"diaries"`
}

// Create handles POST /diaries.
func (h *DiaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	input := diary.SubmitInput{Content: req.Content}
	if req.TargetDate != "" {
		d, err := parseDate("targetDate", req.TargetDate)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		input.TargetDate = &d
	}

	out, err := h.svc.SubmitNew(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOutcomeResponse(out))
}

// List handles GET /diaries.
func (h *DiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(list))
}

// ListByDate handles GET /diaries/date/{date}.
func (h *DiaryHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate("date", r.PathValue("date"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	list, err := h.svc.ListByDate(r.Context(), date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toListResponse(list))
}

// Get handles GET /diaries/{id}.
func (h *DiaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, function.NewDiary(d))
}

// Update handles PUT /diaries/{id}.
func (h *DiaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req EditRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.svc.Edit(r.Context(), diary.EditInput{ID: id, Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOutcomeResponse(out))
}

// Reanalyze handles POST /diaries/{id}/reanalyze.
func (h *DiaryHandler) Reanalyze(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req ReanalyzeRequest
	if err := decodeJSON(w, r, &req); err != nil && !isEmptyBody(err) {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.svc.Reanalyze(r.Context(), diary.ReanalyzeInput{ID: id, Content: req.Content})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOutcomeResponse(out))
}

// Delete handles DELETE /diaries/{id}?confirm=true.
func (h *DiaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	if err := h.svc.Delete(r.Context(), diary.DeleteInput{ID: id, Confirmed: confirmed}); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Calendar handles GET /calendar?month=YYYY-MM. The current month is used
// when month is absent.
func (h *DiaryHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	month := h.svc.CurrentMonth()
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := calendar.ParseMonth(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("month", "must be YYYY-MM"))
			return
		}
		month = m
	}

	view, err := h.svc.Calendar(r.Context(), month)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, NewCalendarResponse(view))
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

func parseDate(field, raw string) (civil.Date, error) {
	d, err := civil.ParseDate(raw)
	if err != nil {
		return civil.Date{}, domain.NewValidationError(field, "must be YYYY-MM-DD")
	}
	return d, nil
}

func isEmptyBody(err error) bool {
	return errors.Is(err, errEmptyBody)
}

func toOutcomeResponse(out *diary.Outcome) OutcomeResponse {
	return OutcomeResponse{
		Diary:    function.NewDiary(out.Diary),
		Feedback: out.Feedback,
		Message:  out.Message,
		State:    out.State.String(),
	}
}

func toListResponse(list []*domain.Diary) DiaryListResponse {
	resp := DiaryListResponse{Diaries: make([]*function.Diary, 0, len(list))}
	for _, d := range list {
		resp.Diaries = append(resp.Diaries, function.NewDiary(d))
	}
	return resp
}

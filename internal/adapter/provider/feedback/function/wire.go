package function

import (
	"fmt"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/emotion-diary/internal/domain"
)

// Request is the JSON body accepted by the analyze function.
type Request struct {
	Content      string     `json:"content"`
	DiaryID      *uuid.UUID `json:"diaryId,omitempty"`
	IsReanalyze  bool       `json:"isReanalyze,omitempty"`
	SelectedDate string     `json:"selectedDate,omitempty"`
}

// Response is the JSON body returned by the analyze function.
type Response struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
	Feedback string `json:"feedback,omitempty"`
	Diary    *Diary `json:"diary,omitempty"`
}

// Diary is the wire form of a diary entry.
type Diary struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Content    string    `json:"content"`
	AIFeedback *string   `json:"aiFeedback"`
	TargetDate *string   `json:"targetDate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewRequest converts a domain request to its wire form.
func NewRequest(r domain.AnalyzeRequest) Request {
	req := Request{
		Content:     r.Content,
		DiaryID:     r.DiaryID,
		IsReanalyze: r.IsReanalyze,
	}
	if r.TargetDate != nil {
		req.SelectedDate = r.TargetDate.String()
	}
	return req
}

// ToDomain converts the wire request, parsing SelectedDate.
func (r Request) ToDomain() (domain.AnalyzeRequest, error) {
	out := domain.AnalyzeRequest{
		Content:     r.Content,
		DiaryID:     r.DiaryID,
		IsReanalyze: r.IsReanalyze,
	}
	if r.SelectedDate != "" {
		d, err := civil.ParseDate(r.SelectedDate)
		if err != nil {
			return domain.AnalyzeRequest{}, domain.NewValidationError("selectedDate", "must be YYYY-MM-DD")
		}
		out.TargetDate = &d
	}
	return out, nil
}

// NewDiary converts a domain diary to its wire form.
func NewDiary(d *domain.Diary) *Diary {
	if d == nil {
		return nil
	}
	out := &Diary{
		ID:         d.ID,
		UserID:     d.UserID,
		Content:    d.Content,
		AIFeedback: d.Feedback,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if d.TargetDate != nil {
		s := d.TargetDate.String()
		out.TargetDate = &s
	}
	return out
}

// ToDomain converts the wire diary back to a domain diary.
func (d *Diary) ToDomain() (*domain.Diary, error) {
	out := &domain.Diary{
		ID:        d.ID,
		UserID:    d.UserID,
		Content:   d.Content,
		Feedback:  d.AIFeedback,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.TargetDate != nil && *d.TargetDate != "" {
		td, err := civil.ParseDate(*d.TargetDate)
		if err != nil {
			return nil, fmt.Errorf("target date %q: %w", *d.TargetDate, err)
		}
		out.TargetDate = &td
	}
	return out, nil
}

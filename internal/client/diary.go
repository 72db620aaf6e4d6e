package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/emotion-diary/internal/adapter/provider/feedback/function"
	"github.com/heartmarshall/emotion-diary/internal/calendar"
	"github.com/heartmarshall/emotion-diary/internal/domain"
	"github.com/heartmarshall/emotion-diary/internal/transport/rest"
)

// Outcome is the server's answer to a submission, edit or reanalysis.
type Outcome struct {
	Diary    *domain.Diary
	Feedback string
	Message  string
	State    domain.DiaryState
}

// Submit creates an entry for target, or for today when target is nil.
func (c *Client) Submit(ctx context.Context, content string, target *civil.Date) (*Outcome, error) {
	req := rest.SubmitRequest{Content: content}
	if target != nil {
		req.TargetDate = target.String()
	}
	return c.outcome(ctx, http.MethodPost, "/diaries", req)
}

// Edit replaces the content of an entry and refreshes its feedback.
func (c *Client) Edit(ctx context.Context, id uuid.UUID, content string) (*Outcome, error) {
	return c.outcome(ctx, http.MethodPut, diaryPath(id), rest.EditRequest{Content: content})
}

// Reanalyze asks for new feedback. A nil content reuses the stored text.
func (c *Client) Reanalyze(ctx context.Context, id uuid.UUID, content *string) (*Outcome, error) {
	return c.outcome(ctx, http.MethodPost, diaryPath(id)+"/reanalyze", rest.ReanalyzeRequest{Content: content})
}

// Delete removes an entry. The server refuses unless confirmed is set.
func (c *Client) Delete(ctx context.Context, id uuid.UUID, confirmed bool) error {
	q := url.Values{}
	if confirmed {
		q.Set("confirm", "true")
	}
	return c.do(ctx, call{method: http.MethodDelete, path: diaryPath(id), query: q, authed: true})
}

// Get returns one entry.
func (c *Client) Get(ctx context.Context, id uuid.UUID) (*domain.Diary, error) {
	var resp function.Diary
	if err := c.do(ctx, call{method: http.MethodGet, path: diaryPath(id), out: &resp, authed: true}); err != nil {
		return nil, err
	}
	return resp.ToDomain()
}

// List returns all entries, newest first.
func (c *Client) List(ctx context.Context) ([]*domain.Diary, error) {
	return c.list(ctx, "/diaries")
}

// ListByDate returns the entries of one day, newest first.
func (c *Client) ListByDate(ctx context.Context, date civil.Date) ([]*domain.Diary, error) {
	return c.list(ctx, "/diaries/date/"+date.String())
}

// Calendar returns the projection of month, or of the server's current month
// when month is nil.
func (c *Client) Calendar(ctx context.Context, month *calendar.Month) (calendar.MonthView, error) {
	q := url.Values{}
	if month != nil {
		q.Set("month", month.String())
	}

	var resp rest.CalendarResponse
	if err := c.do(ctx, call{method: http.MethodGet, path: "/calendar", query: q, out: &resp, authed: true}); err != nil {
		return calendar.MonthView{}, err
	}
	view, err := resp.View()
	if err != nil {
		return calendar.MonthView{}, fmt.Errorf("client: calendar: %w", err)
	}
	return view, nil
}

func (c *Client) outcome(ctx context.Context, method, path string, body any) (*Outcome, error) {
	var resp rest.OutcomeResponse
	if err := c.do(ctx, call{method: method, path: path, body: body, out: &resp, authed: true}); err != nil {
		return nil, err
	}

	out := &Outcome{
		Feedback: resp.Feedback,
		Message:  resp.Message,
		State:    domain.DiaryState(resp.State),
	}
	if resp.Diary != nil {
		d, err := resp.Diary.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("client: %s %s: %w", method, path, err)
		}
		out.Diary = d
	}
	return out, nil
}

func (c *Client) list(ctx context.Context, path string) ([]*domain.Diary, error) {
	var resp rest.DiaryListResponse
	if err := c.do(ctx, call{method: http.MethodGet, path: path, out: &resp, authed: true}); err != nil {
		return nil, err
	}

	out := make([]*domain.Diary, 0, len(resp.Diaries))
	for _, d := range resp.Diaries {
		entry, err := d.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("client: %s: %w", path, err)
		}
		out = append(out, entry)
	}
	return out, nil
}

func diaryPath(id uuid.UUID) string {
	return "/diaries/" + id.String()
}

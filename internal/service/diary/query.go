package diary

import (
	"context"
	"fmt"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/emotion-diary/internal/calendar"
	"github.com/heartmarshall/emotion-diary/internal/domain"
	"github.com/heartmarshall/emotion-diary/pkg/ctxutil"
)

// Get returns one of the caller's entries.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Diary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	if err := validateID(id); err != nil {
		return nil, err
	}

	d, err := s.diaries.GetByID(ctx, userID, id)
	if err != nil {
		return nil, wrapStore("diary.Get", err)
	}
	return d, nil
}

// List returns all of the caller's entries, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Diary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}

	list, err := s.diaries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("diary.List: %w", err)
	}
	return list, nil
}

// ListByDate returns the caller's entries for one day, newest first.
func (s *Service) ListByDate(ctx context.Context, date civil.Date) ([]*domain.Diary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	if !date.IsValid() {
		return nil, domain.NewValidationError("date", "invalid date")
	}

	list, err := s.diaries.ListByUserAndDate(ctx, userID, date, s.loc)
	if err != nil {
		return nil, fmt.Errorf("diary.ListByDate: %w", err)
	}
	return list, nil
}

// Calendar projects the caller's entries of month onto a month grid.
func (s *Service) Calendar(ctx context.Context, month calendar.Month) (calendar.MonthView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return calendar.MonthView{}, domain.ErrUnauthenticated
	}
	if !month.IsValid() {
		return calendar.MonthView{}, domain.NewValidationError("month", "invalid month")
	}

	list, err := s.diaries.ListByUserInRange(ctx, userID, month.First(), month.Last(), s.loc)
	if err != nil {
		return calendar.MonthView{}, fmt.Errorf("diary.Calendar: %w", err)
	}
	return calendar.Project(list, month, s.now(), s.loc), nil
}

// CurrentMonth returns the month containing today.
func (s *Service) CurrentMonth() calendar.Month {
	return calendar.MonthOf(domain.Today(s.now(), s.loc))
}

package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

// MaxContentLength is the upper bound on diary content, in characters.
const MaxContentLength = 10000

// Diary is a single journal entry owned by one user.
type Diary struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Content  string
	Feedback *string
	// TargetDate is the calendar day the entry is about. Nil only for rows
	// written before the column existed.
	TargetDate *civil.Date
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EffectiveDate returns the day the entry belongs to: TargetDate when set,
// otherwise the date of CreatedAt in loc.
func (d *Diary) EffectiveDate(loc *time.Location) civil.Date {
	if d.TargetDate != nil {
		return *d.TargetDate
	}
	if loc == nil {
		loc = time.UTC
	}
	return civil.DateOf(d.CreatedAt.In(loc))
}

// HasFeedback reports whether analysis produced non-empty feedback.
func (d *Diary) HasFeedback() bool {
	return d.Feedback != nil && *d.Feedback != ""
}

// DiaryPatch lists the mutable fields of a diary. Nil fields are left as is.
type DiaryPatch struct {
	Content  *string
	Feedback *string
}

// IsEmpty reports whether the patch changes nothing.
func (p DiaryPatch) IsEmpty() bool {
	return p.Content == nil && p.Feedback == nil
}

// DiaryState is the lifecycle stage of an entry as seen by the controller.
type DiaryState string

const (
	DiaryStateDraft       DiaryState = "DRAFT"
	DiaryStateSubmitting  DiaryState = "SUBMITTING"
	DiaryStatePersisted   DiaryState = "PERSISTED"
	DiaryStateReanalyzing DiaryState = "REANALYZING"
	DiaryStateEditing     DiaryState = "EDITING"
	DiaryStateDeleting    DiaryState = "DELETING"
	DiaryStateDeleted     DiaryState = "DELETED"
	DiaryStateFailed      DiaryState = "FAILED"
)

func (s DiaryState) String() string { return string(s) }

// Today returns the current calendar day in loc.
func Today(now time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.UTC
	}
	return civil.DateOf(now.In(loc))
}

// NormalizeContent trims content and checks it against maxLen characters
// (MaxContentLength when maxLen <= 0). Blank content yields ErrEmptyContent.
func NormalizeContent(content string, maxLen int) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyContent
	}
	if maxLen <= 0 {
		maxLen = MaxContentLength
	}
	if utf8.RuneCountInString(content) > maxLen {
		return "", NewValidationError("content", fmt.Sprintf("must be at most %d characters", maxLen))
	}
	return content, nil
}

// ResolveTargetDate returns target, or today in loc when target is nil.
// A date after today yields ErrFutureDate.
func ResolveTargetDate(target *civil.Date, now time.Time, loc *time.Location) (civil.Date, error) {
	today := Today(now, loc)
	if target == nil {
		return today, nil
	}
	if !target.IsValid() {
		return civil.Date{}, NewValidationError("target_date", "invalid date")
	}
	if target.After(today) {
		return civil.Date{}, ErrFutureDate
	}
	return *target, nil
}

package diary

import (
	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/emotion-diary/internal/domain"
)

// SubmitInput holds parameters for writing a new entry.
type SubmitInput struct {
	Content string
	// TargetDate defaults to today when nil.
	TargetDate *civil.Date
}

// ReanalyzeInput holds parameters for requesting fresh feedback.
type ReanalyzeInput struct {
	ID uuid.UUID
	// Content overrides the stored content sent for analysis.
	Content *string
}

// Validate validates the reanalyze input.
func (i ReanalyzeInput) Validate() error {
	return validateID(i.ID)
}

// EditInput holds parameters for changing an entry's content.
type EditInput struct {
	ID      uuid.UUID
	Content string
}

// Validate validates the edit input.
func (i EditInput) Validate() error {
	return validateID(i.ID)
}

// DeleteInput holds parameters for deleting an entry.
type DeleteInput struct {
	ID        uuid.UUID
	Confirmed bool
}

// Validate validates the delete input.
func (i DeleteInput) Validate() error {
	if err := validateID(i.ID); err != nil {
		return err
	}
	if !i.Confirmed {
		return domain.ErrConfirmationRequired
	}
	return nil
}

func validateID(id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

package auth

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/emotion-diary/internal/domain"
)

const (
	maxEmailLength    = 254
	maxPasswordLength = 72 // bcrypt ignores bytes past 72
)

// RegisterInput holds parameters for email sign-up.
type RegisterInput struct {
	Email    string
	Password string
}

// Validate validates the register input against the minimum password length.
func (i RegisterInput) Validate(minPassword int) error {
	var errs []domain.FieldError

	errs = appendEmailErrors(errs, i.Email)
	errs = appendPasswordErrors(errs, "password", i.Password, minPassword)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for email + password sign-in.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for a password change.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// Validate validates the change-password input.
func (i ChangePasswordInput) Validate(minPassword int) error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	}
	errs = appendPasswordErrors(errs, "new_password", i.NewPassword, minPassword)
	if i.NewPassword != i.ConfirmPassword {
		errs = append(errs, domain.FieldError{Field: "confirm_password", Message: "does not match"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendEmailErrors(errs []domain.FieldError, email string) []domain.FieldError {
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > maxEmailLength:
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email, "@") {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	return errs
}

func appendPasswordErrors(errs []domain.FieldError, field, password string, minPassword int) []domain.FieldError {
	switch {
	case password == "":
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	case len([]rune(password)) < minPassword:
		return append(errs, domain.FieldError{Field: field, Message: "too short"})
	case len(password) > maxPasswordLength:
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

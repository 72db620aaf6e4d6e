package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/emotion-diary/internal/auth"
	"github.com/heartmarshall/emotion-diary/internal/domain"
	"github.com/heartmarshall/emotion-diary/pkg/ctxutil"
)

// Me returns the authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// ChangePassword verifies the current password, stores the new one, revokes
// every outstanding refresh token and issues a fresh pair.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) (*AuthResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MinPasswordLength); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.ChangePassword get user: %w", err)
	}

	if err := auth.CheckPassword(user.PasswordHash, input.CurrentPassword); err != nil {
		return nil, domain.NewValidationError("current_password", "incorrect")
	}

	hash, err := auth.HashPassword(input.NewPassword, s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.ChangePassword: %w", err)
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		updated, err := s.users.UpdatePassword(txCtx, userID, hash)
		if err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if err := s.tokens.RevokeAllByUser(txCtx, userID); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}
		result, err = s.issueTokens(txCtx, updated)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("auth.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.String("user_id", userID.String()))
	return result, nil
}

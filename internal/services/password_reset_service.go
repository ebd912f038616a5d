package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"expensia/internal/auth"
	apperrors "expensia/internal/errors"
	"expensia/internal/logger"
	"expensia/internal/mailer"
	"expensia/internal/models"
)

// resetTokenTTL is the validity window of an issued reset token.
const resetTokenTTL = time.Hour

// passwordResetService issues and consumes single-use password reset tokens.
type passwordResetService struct {
	db              *gorm.DB
	users           UserServicer
	mailer          mailer.Mailer
	frontendBaseURL string
}

// NewPasswordResetService creates a new PasswordResetServicer. A nil mailer
// means the mail transport is not configured; reset requests will fail with
// MAIL_NOT_CONFIGURED until one is provided.
func NewPasswordResetService(db *gorm.DB, users UserServicer, m mailer.Mailer, frontendBaseURL string) PasswordResetServicer {
	return &passwordResetService{
		db:              db,
		users:           users,
		mailer:          m,
		frontendBaseURL: strings.TrimRight(frontendBaseURL, "/"),
	}
}

// RequestReset issues a reset token for the given email and dispatches the
// reset link. An unknown email returns nil without issuing anything, so the
// response shape never reveals whether an account exists. If dispatch fails
// the token state is rolled back and the user is left without a pending
// reset.
func (s *passwordResetService) RequestReset(email string) error {
	if s.mailer == nil {
		return apperrors.ErrMailNotConfigured
	}

	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expiry := time.Now().Add(resetTokenTTL)
	if err := s.setResetFields(user, auth.HashToken(token), &expiry); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.frontendBaseURL, token)
	if err := s.mailer.SendPasswordReset(user.Email, user.Name, resetURL); err != nil {
		// Roll back so the user is not left pending a reset nobody was told about
		if clearErr := s.setResetFields(user, "", nil); clearErr != nil {
			logger.Get().Errorw("failed to clear reset token after dispatch failure",
				"user_id", user.ID, "error", clearErr)
		}
		return apperrors.Wrap(apperrors.ErrMailDispatchFailed, err)
	}

	return nil
}

// ConsumeReset validates a reset token and replaces the user's password,
// returning the affected user. The token must match a stored hash and its
// expiry must be strictly in the future. Consuming clears the token state,
// so a second attempt with the same value fails.
func (s *passwordResetService) ConsumeReset(token, newPassword string) (*models.User, error) {
	if len(newPassword) < minPasswordLength {
		return nil, apperrors.ErrWeakPassword
	}

	var user models.User
	err := s.db.Where("reset_token_hash = ? AND reset_token_expires_at > ?",
		auth.HashToken(token), time.Now()).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidResetToken
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.users.UpdatePassword(&user, newPassword); err != nil {
		return nil, err
	}
	return &user, nil
}

// setResetFields persists both reset columns together, keeping the
// both-set-or-both-clear invariant.
func (s *passwordResetService) setResetFields(user *models.User, tokenHash string, expiry *time.Time) error {
	updates := map[string]interface{}{
		"reset_token_hash":       tokenHash,
		"reset_token_expires_at": expiry,
	}
	if err := s.db.Model(user).Updates(updates).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	user.ResetTokenHash = tokenHash
	user.ResetTokenExpiresAt = expiry
	return nil
}

// generateResetToken returns 32 random bytes hex-encoded (256 bits of entropy).
func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"jewelpos/internal/config"
	"jewelpos/internal/domain"
	"jewelpos/internal/port"
)

// SendOTPInput is the DTO for requesting a one-time code.
type SendOTPInput struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPInput is the DTO for submitting a code.
type VerifyOTPInput struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

// OTPService issues and verifies emailed one-time codes. One active code per
// address; issuing a new one supersedes the prior, and a code is consumed on
// first successful verification.
type OTPService interface {
	Issue(ctx context.Context, input SendOTPInput) error
	Verify(ctx context.Context, input VerifyOTPInput) error
}

type otpService struct {
	repo   port.OTPRepository
	sender port.EmailSender
	cfg    config.OTPConfig
}

// NewOTPService creates a new OTPService.
func NewOTPService(repo port.OTPRepository, sender port.EmailSender, cfg config.OTPConfig) OTPService {
	return &otpService{repo: repo, sender: sender, cfg: cfg}
}

func (s *otpService) Issue(ctx context.Context, input SendOTPInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return domain.NewValidationError("email", "is required")
	}

	code, err := generateCode(s.cfg.CodeLength)
	if err != nil {
		return fmt.Errorf("generating OTP code: %w", err)
	}

	otp := &domain.EmailOTP{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().UTC().Add(time.Duration(s.cfg.ExpiryMinutes) * time.Minute),
	}
	if err := s.repo.Replace(ctx, otp); err != nil {
		return err
	}

	return s.sender.SendOTPEmail(ctx, email, code)
}

func (s *otpService) Verify(ctx context.Context, input VerifyOTPInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	otp, err := s.repo.GetActive(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrOTPInvalid
		}
		return err
	}

	if time.Now().UTC().After(otp.ExpiresAt) {
		return domain.ErrOTPExpired
	}
	if otp.Code != input.Code {
		return domain.ErrOTPInvalid
	}

	return s.repo.Consume(ctx, otp.ID)
}

// generateCode builds an n-digit numeric code from crypto/rand.
func generateCode(n int) (string, error) {
	if n <= 0 {
		n = 6
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		digit, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%d", digit.Int64())
	}
	return b.String(), nil
}

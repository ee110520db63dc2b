package noop

import (
	"context"
	"log"

	"jewelpos/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs codes to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendOTPEmail(_ context.Context, toEmail, code string) error {
	log.Printf("[NOOP EMAIL] OTP for %s: %s", toEmail, code)
	return nil
}

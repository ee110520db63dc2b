package port

import "context"

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendOTPEmail(ctx context.Context, toEmail, code string) error
}

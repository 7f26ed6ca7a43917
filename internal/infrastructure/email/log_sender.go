package email

import (
	"context"
	"log"

	"garage_manager/internal/usecase/interfaces"
)

// LogSender only logs outgoing mail. It is used when no SMTP relay is
// configured.
type LogSender struct{}

var _ interfaces.IEmailSender = LogSender{}

func (LogSender) Send(_ context.Context, msg interfaces.EmailMessage) error {
	if msg.To == "" {
		return ErrMissingRecipient
	}
	log.Printf("[email][log] skipped delivery to=%s subject=%q attachments=%d", msg.To, msg.Subject, len(msg.Attachments))
	return nil
}

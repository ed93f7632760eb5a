package worker

// email_worker.go
// Processes email jobs from QueueEmail. A failed send returns an error so the
// pool can re-enqueue the job; after maxJobAttempts it lands in the DLQ.

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailSender sends a single message. *infra.Mailer satisfies it.
type EmailSender interface {
	Send(to, subject, body string) error
}

// EmailWorker processes email jobs from QueueEmail.
type EmailWorker struct {
	mailer EmailSender
}

func NewEmailWorker(mailer EmailSender) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

// Process sends the notification email. A malformed payload or an empty
// recipient is dropped without error: retrying cannot fix it.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return nil
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email — skipping")
		return nil
	}

	if err := w.mailer.Send(payload.ToEmail, payload.Subject, payload.Body); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email_worker: failed to send email")
		return err
	}
	log.Info().Str("to", payload.ToEmail).Msg("email_worker: notification sent")
	return nil
}

// Package mail provides outbound mail backends for inventory delivery.
package mail

import (
	"context"

	"github.com/DavidGarzon9580/lite-thinking/internal/application/delivery"
	"go.uber.org/zap"
)

var _ delivery.Mailer = (*LogMailer)(nil)

// LogMailer simulates delivery by logging the message. Development
// only; production configuration rejects it.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer creates a mailer that logs instead of sending
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger.Named("mail")}
}

// Send logs the message and drops it
func (m *LogMailer) Send(ctx context.Context, msg *delivery.Message) error {
	fields := []zap.Field{
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("body", msg.Body),
	}
	if msg.Attachment != nil {
		fields = append(fields,
			zap.String("attachment", msg.Attachment.Filename),
			zap.Int("attachment_bytes", len(msg.Attachment.Data)),
		)
	}
	m.logger.Info("Simulated email delivery", fields...)
	return nil
}

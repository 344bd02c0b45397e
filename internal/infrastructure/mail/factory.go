package mail

import (
	"context"
	"fmt"

	"github.com/DavidGarzon9580/lite-thinking/internal/application/delivery"
	"github.com/DavidGarzon9580/lite-thinking/internal/infrastructure/config"
	"go.uber.org/zap"
)

// New constructs the mail backend selected by mail.provider
func New(ctx context.Context, cfg *config.MailConfig, logger *zap.Logger) (delivery.Mailer, error) {
	switch cfg.Provider {
	case "log":
		return NewLogMailer(logger), nil
	case "sendgrid":
		return NewSendGridMailer(cfg.SendGridAPIKey, cfg.Sender), nil
	case "ses":
		return NewSESMailer(ctx, cfg.SESRegion, cfg.Sender)
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}

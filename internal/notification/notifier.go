package notification

import (
	"context"

	"go.uber.org/zap"
)

// Notifier delivers one HTML email. Callers treat failures as non-fatal.
//
//go:generate mockgen -source=notifier.go -destination=mock/notifier_mock.go -package=mock
type Notifier interface {
	Send(ctx context.Context, recipient, subject, htmlBody string) error
}

type logNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier returns a Notifier that only logs, for environments without kafka.
func NewLogNotifier(logger ...*zap.Logger) Notifier {
	l := zap.L().Named("notification.log")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.log")
	}
	return &logNotifier{logger: l}
}

func (n *logNotifier) Send(_ context.Context, recipient, subject, _ string) error {
	n.logger.Info("notification skipped, no transport configured",
		zap.String("recipient", recipient),
		zap.String("subject", subject),
	)
	return nil
}

package notification

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyRecipient = errors.New("notification recipient is empty")

type outboxNotifier struct {
	outbox kafka.OutboxRepository
	now    func() time.Time
	logger *zap.Logger
}

// NewOutboxNotifier stores each notification as an outbox row; the worker
// publishes it and the mail consumer delivers it.
func NewOutboxNotifier(outbox kafka.OutboxRepository, logger ...*zap.Logger) Notifier {
	l := zap.L().Named("notification.outbox")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.outbox")
	}
	return &outboxNotifier{outbox: outbox, now: time.Now, logger: l}
}

func (n *outboxNotifier) Send(ctx context.Context, recipient, subject, htmlBody string) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return ErrEmptyRecipient
	}

	requestID := contextutil.GetRequestID(ctx)
	event := events.LeaveNotificationRequestedEvent{
		EventType:      events.LeaveNotificationRequestedType,
		NotificationID: uuid.NewString(),
		RequestID:      requestID,
		Recipient:      recipient,
		Subject:        subject,
		HTMLBody:       htmlBody,
		OccurredAt:     n.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = n.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            event.NotificationID,
		RequestID:     requestID,
		AggregateType: "notification",
		AggregateID:   recipient,
		EventType:     events.LeaveNotificationRequestedType,
		Topic:         events.LeaveNotificationRequestedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		n.logger.Error("enqueue notification failed",
			zap.String("recipient", recipient),
			zap.String("subject", subject),
			zap.Error(err),
		)
		return err
	}

	n.logger.Debug("notification enqueued",
		zap.String("notification_id", event.NotificationID),
		zap.String("recipient", recipient),
	)
	return nil
}

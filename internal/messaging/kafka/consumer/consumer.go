package consumer

import (
	"context"
	"encoding/json"

	"go-leave/internal/events"
	"go-leave/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeLeaveNotifications delivers notification events by mail until ctx is done.
// A message is committed after delivery, or right away when it cannot be decoded.
func ConsumeLeaveNotifications(
	ctx context.Context,
	reader MessageReader,
	sender notification.MailSender,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_notification")
	log.Info("leave notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave notification consumer stopped")
				return
			}
			log.Error("fetch leave notification message failed", zap.Error(err))
			continue
		}

		handleLeaveNotification(ctx, reader, sender, log, msg)
	}
}

func handleLeaveNotification(
	ctx context.Context,
	reader MessageReader,
	sender notification.MailSender,
	log *zap.Logger,
	msg kafkago.Message,
) {
	var event events.LeaveNotificationRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode leave notification event failed", zap.Error(err))
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	if err := sender.SendMail(ctx, event.Recipient, event.Subject, event.HTMLBody); err != nil {
		log.Error("deliver leave notification failed",
			zap.String("notification_id", event.NotificationID),
			zap.String("recipient", event.Recipient),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit leave notification message failed", zap.Error(err))
		return
	}

	log.Info("leave notification delivered",
		zap.String("notification_id", event.NotificationID),
		zap.String("request_id", event.RequestID),
		zap.String("recipient", event.Recipient),
	)
}

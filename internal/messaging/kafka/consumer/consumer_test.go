package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-leave/internal/events"
	mock_notification "go-leave/internal/notification/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func encode(t *testing.T, e events.LeaveNotificationRequestedEvent) kafkago.Message {
	t.Helper()
	b, err := json.Marshal(e)
	assert.NoError(t, err)
	return kafkago.Message{Value: b}
}

func TestConsumeLeaveNotifications(t *testing.T) {
	t.Run("delivers and commits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mock_notification.NewMockMailSender(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{
			encode(t, events.LeaveNotificationRequestedEvent{
				NotificationID: "n-1",
				Recipient:      "emp@example.com",
				Subject:        "Leave Request Approved - LR1",
				HTMLBody:       "<p>ok</p>",
			}),
		}}

		sender.EXPECT().SendMail(gomock.Any(), "emp@example.com", "Leave Request Approved - LR1", "<p>ok</p>").Return(nil)

		ConsumeLeaveNotifications(ctx, reader, sender, zap.NewNop())

		assert.Len(t, reader.committed, 1)
	})

	t.Run("undecodable message is committed and skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mock_notification.NewMockMailSender(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{{Value: []byte("not json")}}}

		ConsumeLeaveNotifications(ctx, reader, sender, zap.NewNop())

		assert.Len(t, reader.committed, 1)
	})

	t.Run("delivery failure is not committed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sender := mock_notification.NewMockMailSender(ctrl)
		ctx, cancel := context.WithCancel(context.Background())
		reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{
			encode(t, events.LeaveNotificationRequestedEvent{Recipient: "emp@example.com"}),
		}}

		sender.EXPECT().SendMail(gomock.Any(), "emp@example.com", gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		ConsumeLeaveNotifications(ctx, reader, sender, zap.NewNop())

		assert.Empty(t, reader.committed)
	})
}

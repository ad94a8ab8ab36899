package publisher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/healthydev/pkg/entity"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func testActivity() entity.Activity {
	completed := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	return entity.Activity{
		ID:              uuid.New(),
		Owner:           uuid.New(),
		ActivityType:    entity.ActivityWork,
		Title:           "Work/Study Block",
		DurationMinutes: 60,
		CompletedAt:     completed,
		Date:            entity.Date(completed),
	}
}

func TestActivityMessage(t *testing.T) {
	activity := testActivity()
	msg, err := ActivityMessage(activity)
	require.NoError(t, err)
	assert.Equal(t, activity.Owner.String(), string(msg.Key))
	var payload ActivityLogged
	require.NoError(t, sonic.Unmarshal(msg.Value, &payload))
	assert.Equal(t, activity.ID.String(), payload.ActivityID)
	assert.Equal(t, "2026-10-15", payload.Date)
	assert.Equal(t, 60, payload.DurationMinutes)
	assert.Equal(t, "work", payload.ActivityType)
}

func TestPublishActivity(t *testing.T) {
	w := &recordingWriter{}
	p := &KafkaPublisher{topic: "activities", writer: w}
	ctx := context.Background()

	require.NoError(t, p.PublishActivity(ctx, testActivity()))
	assert.Len(t, w.msgs, 1)

	w.err = errors.New("broker down")
	assert.Error(t, p.PublishActivity(ctx, testActivity()))

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
	assert.Error(t, p.PublishActivity(ctx, testActivity()))
	assert.NoError(t, p.Close())
}

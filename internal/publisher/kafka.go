// Package publisher forwards logged activities to downstream consumers.
package publisher

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/segmentio/kafka-go"

	"github.com/limbo/healthydev/pkg/entity"
)

// ActivityLogged is the payload of one appended activity.
type ActivityLogged struct {
	ActivityID      string         `json:"activity_id"`
	Owner           string         `json:"owner"`
	ActivityType    string         `json:"activity_type"`
	Title           string         `json:"title"`
	DurationMinutes int            `json:"duration_minutes"`
	CompletedAt     time.Time      `json:"completed_at"`
	Date            string         `json:"date"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes ActivityLogged events keyed by owner, so one owner's
// events stay ordered within a partition.
type KafkaPublisher struct {
	topic  string
	mu     sync.Mutex
	writer messageWriter
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		topic: topic,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		},
	}
}

func (p *KafkaPublisher) PublishActivity(ctx context.Context, activity entity.Activity) error {
	msg, err := ActivityMessage(activity)
	if err != nil {
		return err
	}
	p.mu.Lock()
	w := p.writer
	p.mu.Unlock()
	if w == nil {
		return errors.New("publisher closed")
	}
	if err = w.WriteMessages(ctx, msg); err != nil {
		return errors.New("writing activity event error: " + err.Error())
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.writer == nil {
		return nil
	}
	err := p.writer.Close()
	p.writer = nil
	return err
}

// ActivityMessage builds the kafka message for activity.
func ActivityMessage(activity entity.Activity) (kafka.Message, error) {
	body, err := sonic.Marshal(ActivityLogged{
		ActivityID:      activity.ID.String(),
		Owner:           activity.Owner.String(),
		ActivityType:    activity.ActivityType,
		Title:           activity.Title,
		DurationMinutes: activity.DurationMinutes,
		CompletedAt:     activity.CompletedAt.UTC(),
		Date:            activity.Date.Format(time.DateOnly),
		Metadata:        activity.Metadata,
	})
	if err != nil {
		return kafka.Message{}, errors.New("encoding activity event error: " + err.Error())
	}
	return kafka.Message{
		Key:   []byte(activity.Owner.String()),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("activity.logged")},
		},
		Time: activity.CompletedAt,
	}, nil
}

// Noop drops every event. Used when no brokers are configured.
type Noop struct{}

func (Noop) PublishActivity(context.Context, entity.Activity) error { return nil }

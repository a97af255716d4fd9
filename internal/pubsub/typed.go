package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nfrund/wscatalog/internal/topicmgr"
)

// Typed binds a payload type to a registered topic so publishers and
// subscribers agree on the encoding.
type Typed[T any] struct {
	topic string
}

// NewTyped checks topic against reg.
func NewTyped[T any](reg *topicmgr.Registry, topic string) (Typed[T], error) {
	if err := reg.ValidateTopic(topic); err != nil {
		return Typed[T]{}, err
	}
	return Typed[T]{topic: topic}, nil
}

// Topic returns the bound topic.
func (t Typed[T]) Topic() string {
	return t.topic
}

// Publish sends a typed payload as JSON. The compiler ensures payload matches T.
func Publish[T any](ctx context.Context, p Publisher, t Typed[T], payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", t.topic, err)
	}
	return p.Publish(ctx, Message{Topic: t.topic, Payload: data})
}

// Subscribe decodes each delivery into T before calling fn.
func Subscribe[T any](ctx context.Context, s Subscriber, t Typed[T], fn func(ctx context.Context, payload T, msg Message) error) error {
	return s.Subscribe(ctx, t.topic, func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", t.topic, err)
		}
		return fn(ctx, payload, msg)
	})
}

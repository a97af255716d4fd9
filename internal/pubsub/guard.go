package pubsub

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/nfrund/wscatalog/internal/topicmgr"
)

// Rejection labels reported by Metrics.
const (
	OpPublish   = "publish"
	OpSubscribe = "subscribe"
	OpValidate  = "validate"
)

// GuardOption configures a guarded publisher or subscriber.
type GuardOption func(*guard)

// WithTracer records a span per publish and per delivered message.
func WithTracer(tracer trace.Tracer) GuardOption {
	return func(g *guard) { g.tracer = tracer }
}

// WithMetrics counts rejections and accepted publishes.
func WithMetrics(m *Metrics) GuardOption {
	return func(g *guard) { g.metrics = m }
}

type guard struct {
	reg     *topicmgr.Registry
	tracer  trace.Tracer
	metrics *Metrics
}

func newGuard(reg *topicmgr.Registry, opts []GuardOption) guard {
	g := guard{reg: reg, tracer: noop.NewTracerProvider().Tracer(tracerName)}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

func (g guard) check(span trace.Span, op, topic string) error {
	err := g.reg.ValidateTopic(topic)
	if err == nil {
		return nil
	}
	g.metrics.Reject(op)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	slog.Warn("rejected unregistered topic", "op", op, "topic", topic)
	return err
}

// topicGroup returns the namespace half of a topic, "tables" for
// "tables.updated".
func topicGroup(topic string) string {
	if i := strings.LastIndex(topic, "."); i >= 0 {
		return topic[:i]
	}
	return topic
}

func spanAttributes(op, topic string) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.String("messaging.system", "watermill"),
		attribute.String("messaging.operation", op),
		attribute.String("messaging.destination", topic),
	)
}

// GuardedPublisher refuses to publish on topics the registry does not know.
type GuardedPublisher struct {
	next Publisher
	guard
}

// NewGuardedPublisher wraps next with a registry check.
func NewGuardedPublisher(next Publisher, reg *topicmgr.Registry, opts ...GuardOption) *GuardedPublisher {
	return &GuardedPublisher{next: next, guard: newGuard(reg, opts)}
}

// Publish validates msg.Topic and forwards the message. Unknown topics fail
// with a topic_not_found TopicError and never reach the bus.
func (p *GuardedPublisher) Publish(ctx context.Context, msg Message) error {
	ctx, span := p.tracer.Start(ctx, "pubsub.publish."+msg.Topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		spanAttributes(OpPublish, msg.Topic),
		trace.WithAttributes(
			attribute.String("user.id", msg.UserID),
			attribute.Int("messaging.message_payload_size_bytes", len(msg.Payload)),
		),
	)
	defer span.End()

	if err := p.check(span, OpPublish, msg.Topic); err != nil {
		return err
	}
	if err := p.next.Publish(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	p.metrics.publish(topicGroup(msg.Topic))
	return nil
}

// Close closes the wrapped publisher.
func (p *GuardedPublisher) Close() error {
	return p.next.Close()
}

// GuardedSubscriber refuses subscriptions to topics the registry does not
// know.
type GuardedSubscriber struct {
	next Subscriber
	guard
}

// NewGuardedSubscriber wraps next with a registry check.
func NewGuardedSubscriber(next Subscriber, reg *topicmgr.Registry, opts ...GuardOption) *GuardedSubscriber {
	return &GuardedSubscriber{next: next, guard: newGuard(reg, opts)}
}

// Subscribe validates topic, then subscribes with a handler that runs each
// delivery inside a span.
func (s *GuardedSubscriber) Subscribe(ctx context.Context, topic string, handler Handler) error {
	_, span := s.tracer.Start(ctx, "pubsub.subscribe."+topic, spanAttributes(OpSubscribe, topic))
	defer span.End()

	if err := s.check(span, OpSubscribe, topic); err != nil {
		return err
	}

	traced := func(ctx context.Context, msg Message) error {
		ctx, span := s.tracer.Start(ctx, "pubsub.process."+topic,
			trace.WithSpanKind(trace.SpanKindConsumer),
			spanAttributes("process", topic),
		)
		defer span.End()

		if err := handler(ctx, msg); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		return nil
	}
	return s.next.Subscribe(ctx, topic, traced)
}

// Close closes the wrapped subscriber.
func (s *GuardedSubscriber) Close() error {
	return s.next.Close()
}

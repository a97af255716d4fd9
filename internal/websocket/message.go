package websocket

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nfrund/wscatalog/internal/topicmgr"
	"github.com/nfrund/wscatalog/internal/topicmgr/names"
)

// ErrMalformedCommand is returned when an inbound frame is not a command.
var ErrMalformedCommand = errors.New("malformed command")

// Command is an inbound client frame: {"action":"list_tables","payload":{...}}.
// Topic is only used by subscribe and unsubscribe.
type Command struct {
	Action  string          `json:"action"`
	Topic   string          `json:"topic,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ParseCommand decodes a client frame and normalizes its action to
// lowercase without surrounding spaces.
func ParseCommand(raw []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(raw, &cmd); err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrMalformedCommand, err)
	}
	cmd.Action = strings.ToLower(strings.TrimSpace(cmd.Action))
	cmd.Topic = strings.TrimSpace(cmd.Topic)
	if cmd.Action == "" {
		return Command{}, fmt.Errorf("%w: missing action", ErrMalformedCommand)
	}
	return cmd, nil
}

// DecodePayload unmarshals the payload into v. An absent or null payload
// leaves v untouched.
func (c Command) DecodePayload(v any) error {
	if len(c.Payload) == 0 || bytes.Equal(bytes.TrimSpace(c.Payload), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(c.Payload, v); err != nil {
		return fmt.Errorf("decode %s payload: %w", c.Action, err)
	}
	return nil
}

// List paging bounds.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListPayload is the payload of every list_<plural> command.
type ListPayload struct {
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
	Search    string            `json:"search"`
	SortBy    string            `json:"sortBy"`
	SortOrder string            `json:"sortOrder"`
	Filters   map[string]string `json:"filters,omitempty"`
}

// Normalize applies paging defaults and bounds and tidies the text fields.
// Filters with a blank key or value are dropped.
func (p ListPayload) Normalize() ListPayload {
	out := p
	if out.Page <= 0 {
		out.Page = 1
	}
	if out.Limit <= 0 {
		out.Limit = DefaultLimit
	}
	if out.Limit > MaxLimit {
		out.Limit = MaxLimit
	}
	out.Search = strings.TrimSpace(out.Search)
	out.SortBy = strings.TrimSpace(out.SortBy)
	out.SortOrder = strings.ToUpper(strings.TrimSpace(out.SortOrder))
	if len(p.Filters) > 0 {
		out.Filters = make(map[string]string, len(p.Filters))
		for k, v := range p.Filters {
			k, v = strings.TrimSpace(k), strings.TrimSpace(v)
			if k == "" || v == "" {
				continue
			}
			out.Filters[k] = v
		}
	}
	return out
}

// GetPayload is the payload of every get_<singular> command.
type GetPayload struct {
	ID string `json:"id"`
}

// AnalyticsPayload is the payload of the analytics refresh, fetch and query
// commands.
type AnalyticsPayload struct {
	Identifier string            `json:"identifier,omitempty"`
	Query      map[string]string `json:"query,omitempty"`
}

// Event is an outbound frame. Entity and Action are the two halves of Topic
// split at its last dot.
type Event struct {
	ID         string            `json:"id"`
	Topic      string            `json:"topic"`
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID string            `json:"resourceId,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Data       any               `json:"data,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

// NewEvent builds an event for a registered topic. Unknown topics are
// rejected with a topic_not_found error.
func NewEvent(reg *topicmgr.Registry, topic string, data any) (*Event, error) {
	if err := reg.ValidateTopic(topic); err != nil {
		return nil, err
	}
	return newEvent(names.Topic(topic), data), nil
}

func newEvent(t names.Topic, data any) *Event {
	topic := t.String()
	entity, action := topic, ""
	if i := strings.LastIndex(topic, "."); i >= 0 {
		entity, action = topic[:i], topic[i+1:]
	}
	return &Event{
		ID:        uuid.NewString(),
		Topic:     topic,
		Entity:    entity,
		Action:    action,
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

// ErrorEvent builds a system.error event carrying reason.
func ErrorEvent(reason string) *Event {
	ev := newEvent(names.TopicSystemError, nil)
	ev.Metadata = map[string]string{"reason": reason}
	return ev
}

// PongEvent answers command.ping.
func PongEvent() *Event {
	return newEvent(names.TopicSystemPong, nil)
}

// ConnectedEvent greets a client after its initial subscriptions are set up.
func ConnectedEvent(topics []string) *Event {
	return newEvent(names.TopicSystemConnected, map[string]any{"topics": topics})
}

// WithResource sets the identifier of the resource the event is about.
func (e *Event) WithResource(id string) *Event {
	e.ResourceID = id
	return e
}

// WithMetadata adds a metadata entry.
func (e *Event) WithMetadata(key, value string) *Event {
	if e.Metadata == nil {
		e.Metadata = make(map[string]string)
	}
	e.Metadata[key] = value
	return e
}

// Marshal encodes the event as a JSON frame.
func (e *Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

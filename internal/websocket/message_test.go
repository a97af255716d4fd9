package websocket

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/wscatalog/internal/testutils"
	"github.com/nfrund/wscatalog/internal/topicmgr"
	"github.com/nfrund/wscatalog/internal/topicmgr/names"
)

func TestParseCommand(t *testing.T) {
	cmd, err := ParseCommand([]byte(`{"action":"  LIST_Tables ","payload":{"page":2,"limit":500}}`))
	require.NoError(t, err)
	assert.Equal(t, "list_tables", cmd.Action)

	var list ListPayload
	require.NoError(t, cmd.DecodePayload(&list))
	list = list.Normalize()
	assert.Equal(t, 2, list.Page)
	assert.Equal(t, MaxLimit, list.Limit)
}

func TestParseCommand_Malformed(t *testing.T) {
	for _, raw := range []string{`not json`, `{}`, `{"action":"   "}`, `[]`} {
		_, err := ParseCommand([]byte(raw))
		assert.ErrorIs(t, err, ErrMalformedCommand, raw)
	}
}

func TestDecodePayload(t *testing.T) {
	var get GetPayload
	require.NoError(t, Command{Action: "get_table"}.DecodePayload(&get))
	require.NoError(t, Command{Action: "get_table", Payload: json.RawMessage(" null ")}.DecodePayload(&get))
	assert.Empty(t, get.ID)

	require.NoError(t, Command{Action: "get_table", Payload: json.RawMessage(`{"id":"t-1"}`)}.DecodePayload(&get))
	assert.Equal(t, "t-1", get.ID)

	var analytics AnalyticsPayload
	cmd := Command{Action: "query", Payload: json.RawMessage(`{"identifier":"r-9","query":{"startDate":"2024-01-01"}}`)}
	require.NoError(t, cmd.DecodePayload(&analytics))
	assert.Equal(t, "r-9", analytics.Identifier)
	assert.Equal(t, "2024-01-01", analytics.Query["startDate"])

	err := Command{Action: "get_table", Payload: json.RawMessage(`{"id":7}`)}.DecodePayload(&get)
	assert.ErrorContains(t, err, "decode get_table payload")
}

func TestListPayload_Normalize(t *testing.T) {
	got := ListPayload{
		Search:    "  patio ",
		SortBy:    " name ",
		SortOrder: "desc",
		Filters:   map[string]string{"status": " open ", " ": "x", "zone": ""},
	}.Normalize()

	assert.Equal(t, ListPayload{
		Page:      1,
		Limit:     DefaultLimit,
		Search:    "patio",
		SortBy:    "name",
		SortOrder: "DESC",
		Filters:   map[string]string{"status": "open"},
	}, got)
}

func TestNewEvent(t *testing.T) {
	reg := testutils.Registry(t)

	ev, err := NewEvent(reg, "section-objects.updated", map[string]string{"id": "so-1"})
	require.NoError(t, err)
	assert.Equal(t, "section-objects", ev.Entity)
	assert.Equal(t, "updated", ev.Action)
	assert.False(t, ev.Timestamp.IsZero())
	_, err = uuid.Parse(ev.ID)
	assert.NoError(t, err)

	ev, err = NewEvent(reg, "analytics-admin-tables.snapshot", nil)
	require.NoError(t, err)
	assert.Equal(t, "analytics-admin-tables", ev.Entity)
	assert.Equal(t, "snapshot", ev.Action)

	_, err = NewEvent(reg, "tables.archived", nil)
	assert.ErrorIs(t, err, topicmgr.ErrNotFound)
}

func TestControlEvents(t *testing.T) {
	ev := ErrorEvent("boom")
	assert.Equal(t, "system.error", ev.Topic)
	assert.Equal(t, "system", ev.Entity)
	assert.Equal(t, "error", ev.Action)
	assert.Equal(t, "boom", ev.Metadata["reason"])

	assert.Equal(t, "system.pong", PongEvent().Topic)
	assert.Equal(t, "system.connected", ConnectedEvent([]string{"tables.list"}).Topic)
	assert.NotEqual(t, PongEvent().ID, PongEvent().ID)
}

func TestControlEvents_UseRegisteredTopics(t *testing.T) {
	reg := testutils.Registry(t)

	tests := []struct {
		ev   *Event
		want names.Topic
	}{
		{ErrorEvent("boom"), names.TopicSystemError},
		{PongEvent(), names.TopicSystemPong},
		{ConnectedEvent(nil), names.TopicSystemConnected},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got, ok := names.ParseTopic(tt.ev.Topic)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.True(t, reg.IsTopic(tt.ev.Topic))
		})
	}
}

func TestEvent_Marshal(t *testing.T) {
	reg := testutils.Registry(t)
	ev, err := NewEvent(reg, "tables.deleted", nil)
	require.NoError(t, err)
	ev.WithResource("t-3").WithMetadata("sectionId", "s-1")

	raw, err := ev.Marshal()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "tables.deleted", decoded["topic"])
	assert.Equal(t, "t-3", decoded["resourceId"])
	assert.Equal(t, map[string]any{"sectionId": "s-1"}, decoded["metadata"])
	assert.NotContains(t, decoded, "data")
}

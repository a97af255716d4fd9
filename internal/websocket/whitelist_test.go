package websocket

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/wscatalog/internal/testutils"
	"github.com/nfrund/wscatalog/internal/topicmgr"
)

func TestActionWhitelist_DefaultsToEveryAction(t *testing.T) {
	reg := testutils.Registry(t)
	wl, err := NewActionWhitelist(reg)
	require.NoError(t, err)

	assert.Equal(t, reg.Actions(), wl.Actions())
	assert.Len(t, wl.Actions(), 34)
}

func TestActionWhitelist_IsAllowed(t *testing.T) {
	reg := testutils.Registry(t)

	tests := []struct {
		name     string
		actions  []string
		action   string
		expected bool
	}{
		{
			name:     "action exists",
			actions:  []string{"list_tables", "ping"},
			action:   "list_tables",
			expected: true,
		},
		{
			name:     "registered but not allowed",
			actions:  []string{"list_tables", "ping"},
			action:   "get_table",
			expected: false,
		},
		{
			name:     "empty action",
			actions:  []string{"ping"},
			action:   "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wl, err := NewActionWhitelist(reg, tt.actions...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, wl.IsAllowed(tt.action))
		})
	}
}

func TestActionWhitelist_Allow(t *testing.T) {
	reg := testutils.Registry(t)

	tests := []struct {
		name           string
		initial        []string
		action         string
		expectedError  error
		expectedCount  int
		expectedExists bool
	}{
		{
			name:           "add new action",
			initial:        []string{"ping"},
			action:         "refresh",
			expectedCount:  2,
			expectedExists: true,
		},
		{
			name:           "duplicate action",
			initial:        []string{"ping"},
			action:         "ping",
			expectedError:  ErrActionAlreadyExists,
			expectedCount:  1,
			expectedExists: true,
		},
		{
			name:           "empty action",
			initial:        []string{"ping"},
			action:         "",
			expectedError:  ErrInvalidAction,
			expectedCount:  1,
			expectedExists: false,
		},
		{
			name:           "padded action is stored trimmed",
			initial:        []string{"ping"},
			action:         " list_tables ",
			expectedCount:  2,
			expectedExists: true,
		},
		{
			name:           "padded duplicate",
			initial:        []string{"ping"},
			action:         "ping ",
			expectedError:  ErrActionAlreadyExists,
			expectedCount:  1,
			expectedExists: true,
		},
		{
			name:           "blank action",
			initial:        []string{"ping"},
			action:         "   ",
			expectedError:  ErrInvalidAction,
			expectedCount:  1,
			expectedExists: false,
		},
		{
			name:           "unregistered action",
			initial:        []string{"ping"},
			action:         "list_restaurantz",
			expectedError:  topicmgr.ErrNotFound,
			expectedCount:  1,
			expectedExists: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wl, err := NewActionWhitelist(reg, tt.initial...)
			require.NoError(t, err)

			err = wl.Allow(tt.action)
			if tt.expectedError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedError)
			}
			assert.Equal(t, tt.expectedExists, wl.IsAllowed(tt.action))
			assert.Len(t, wl.Actions(), tt.expectedCount)
		})
	}
}

func TestNewActionWhitelist_RejectsUnknownActions(t *testing.T) {
	_, err := NewActionWhitelist(testutils.Registry(t), "ping", "list_tablez")
	assert.ErrorIs(t, err, topicmgr.ErrNotFound)
}

func TestActionWhitelist_Revoke(t *testing.T) {
	wl, err := NewActionWhitelist(testutils.Registry(t), "ping", "subscribe")
	require.NoError(t, err)

	wl.Revoke("ping")
	wl.Revoke("ping")
	assert.False(t, wl.IsAllowed("ping"))
	assert.Equal(t, []string{"subscribe"}, wl.Actions())

	_, err = wl.Resolve("ping")
	assert.ErrorIs(t, err, ErrActionNotAllowed)
}

func TestActionWhitelist_ResolveTrimsLikeRegistry(t *testing.T) {
	reg := testutils.Registry(t)
	wl, err := NewActionWhitelist(reg, "list_tables")
	require.NoError(t, err)

	want, err := reg.ResolveAction(" list_tables ")
	require.NoError(t, err)

	got, err := wl.Resolve(" list_tables ")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"list_tables"}, wl.Actions())

	wl.Revoke(" list_tables")
	assert.Empty(t, wl.Actions())
}

func TestActionWhitelist_Check(t *testing.T) {
	wl, err := NewActionWhitelist(testutils.Registry(t), "list_restaurants", "subscribe", "refresh")
	require.NoError(t, err)

	tests := []struct {
		name    string
		cmd     Command
		want    string
		wantErr bool
	}{
		{"list command", Command{Action: "list_restaurants"}, "command.list_restaurants", false},
		{"analytics command", Command{Action: "refresh"}, "command.analytics.refresh", false},
		{"subscribe to registered topic", Command{Action: "subscribe", Topic: "tables.updated"}, "command.subscribe", false},
		{"subscribe to unknown topic", Command{Action: "subscribe", Topic: "tables.archived"}, "", true},
		{"misspelled action", Command{Action: "list_restaurantz"}, "", true},
		{"registered but not allowed", Command{Action: "ping"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			command, ev := wl.Check(tt.cmd)
			if !tt.wantErr {
				assert.Nil(t, ev)
				assert.Equal(t, tt.want, command)
				return
			}
			require.NotNil(t, ev)
			assert.Empty(t, command)
			assert.Equal(t, topicmgr.TopicSystemError, ev.Topic)
			assert.Equal(t, tt.cmd.Action, ev.Metadata["action"])
			assert.NotEmpty(t, ev.Metadata["reason"])
		})
	}
}

func TestActionWhitelist_ConcurrentAccess(t *testing.T) {
	reg := testutils.Registry(t)
	wl, err := NewActionWhitelist(reg, "ping")
	require.NoError(t, err)

	actions := reg.Actions()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			_ = wl.Allow(actions[idx%len(actions)])
		}(i)
		go func(idx int) {
			defer wg.Done()
			_ = wl.IsAllowed(actions[idx%len(actions)])
		}(i)
	}
	wg.Wait()

	for _, action := range actions {
		assert.True(t, wl.IsAllowed(action), "action %s should be in whitelist", action)
	}
}

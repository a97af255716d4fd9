package websocket

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/nfrund/wscatalog/internal/topicmgr"
	"github.com/nfrund/wscatalog/internal/topicmgr/names"
)

var (
	// ErrActionAlreadyExists is returned when trying to add a duplicate action
	ErrActionAlreadyExists = errors.New("action already exists in whitelist")
	// ErrInvalidAction is returned when an empty action is provided
	ErrInvalidAction = errors.New("action cannot be empty")
	// ErrActionNotAllowed is returned for registered actions outside the whitelist
	ErrActionNotAllowed = errors.New("action not allowed")
)

// ActionWhitelist holds the wire actions clients may send. Every entry must
// resolve to a registered command.
type ActionWhitelist struct {
	mu      sync.RWMutex
	reg     *topicmgr.Registry
	allowed map[string]string
}

// NewActionWhitelist allows the given actions, or every registered action
// when none are given.
func NewActionWhitelist(reg *topicmgr.Registry, actions ...string) (*ActionWhitelist, error) {
	w := &ActionWhitelist{reg: reg, allowed: make(map[string]string)}
	if len(actions) == 0 {
		actions = reg.Actions()
	}
	for _, action := range actions {
		if err := w.Allow(action); err != nil && !errors.Is(err, ErrActionAlreadyExists) {
			return nil, err
		}
	}
	return w, nil
}

// IsAllowed checks if an action is in the whitelist in a thread-safe manner
func (w *ActionWhitelist) IsAllowed(action string) bool {
	action = strings.TrimSpace(action)
	if action == "" {
		return false
	}

	w.mu.RLock()
	defer w.mu.RUnlock()

	_, ok := w.allowed[action]
	return ok
}

// Allow adds a registered action to the whitelist. Surrounding spaces are
// trimmed as the registry does.
func (w *ActionWhitelist) Allow(action string) error {
	action = strings.TrimSpace(action)
	if action == "" {
		slog.Warn("attempted to add empty action to whitelist")
		return ErrInvalidAction
	}
	command, err := w.reg.ResolveAction(action)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.allowed[action]; ok {
		slog.Debug("action already in whitelist", "action", action)
		return ErrActionAlreadyExists
	}

	w.allowed[action] = command
	slog.Debug("added action to whitelist", "action", action, "command", command)
	return nil
}

// Revoke removes an action. Revoking an absent action is a no-op.
func (w *ActionWhitelist) Revoke(action string) {
	action = strings.TrimSpace(action)
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.allowed, action)
}

// Actions returns the allowed actions in lexical order.
func (w *ActionWhitelist) Actions() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]string, 0, len(w.allowed))
	for action := range w.allowed {
		out = append(out, action)
	}
	sort.Strings(out)
	return out
}

// Resolve maps an allowed action to its command leaf. Unknown actions fail
// with the registry error; known but disallowed ones with ErrActionNotAllowed.
func (w *ActionWhitelist) Resolve(action string) (string, error) {
	action = strings.TrimSpace(action)
	w.mu.RLock()
	command, ok := w.allowed[action]
	w.mu.RUnlock()
	if ok {
		return command, nil
	}
	if _, err := w.reg.ResolveAction(action); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%w: %s", ErrActionNotAllowed, action)
}

// Check resolves cmd to its command leaf. Subscribe and unsubscribe must also
// name a registered topic. On failure it returns the system.error event to
// send back instead.
func (w *ActionWhitelist) Check(cmd Command) (string, *Event) {
	command, err := w.Resolve(cmd.Action)
	if err != nil {
		slog.Debug("rejected client command", "action", cmd.Action, "error", err)
		return "", ErrorEvent(err.Error()).WithMetadata("action", cmd.Action)
	}
	switch names.Command(command) {
	case names.CommandSubscribe, names.CommandUnsubscribe:
		if err := w.reg.ValidateTopic(cmd.Topic); err != nil {
			slog.Debug("rejected subscription", "action", cmd.Action, "topic", cmd.Topic)
			return "", ErrorEvent(err.Error()).WithMetadata("action", cmd.Action)
		}
	}
	return command, nil
}

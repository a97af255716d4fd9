package websocket

import (
	"fmt"
	"strings"

	"github.com/nfrund/wscatalog/internal/topicmgr"
)

// Route is a parsed connection URL and the topics a client on it starts
// subscribed to. Two shapes are recognized:
//
//	/ws/<entity>/<section>[/<token>]
//	/ws/analytics/<scope>/<entity>
//
// Routes only describe the subscription; tokens are carried, not checked.
type Route struct {
	Entity    string
	Section   string
	Token     string
	Scope     topicmgr.Scope
	Analytics bool
	Topics    []string
}

// ParseRoute resolves a URL path against reg. Entity spellings are
// normalized, so "/ws/table/s1" subscribes to the tables topics.
func ParseRoute(reg *topicmgr.Registry, path string) (Route, error) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 3 || parts[0] != "ws" {
		return Route{}, routeError(path, "expected /ws/<entity>/<section>[/<token>] or /ws/analytics/<scope>/<entity>")
	}

	if parts[1] == topicmgr.GroupAnalytics {
		if len(parts) != 4 {
			return Route{}, routeError(path, "expected /ws/analytics/<scope>/<entity>")
		}
		scope := topicmgr.Scope(strings.ToLower(parts[2]))
		if !scope.Valid() {
			return Route{}, &topicmgr.TopicError{
				Type:    topicmgr.ErrorInvalidScope,
				Topic:   path,
				Message: fmt.Sprintf("unknown analytics scope: %s", parts[2]),
			}
		}
		entity := strings.ToLower(strings.TrimSpace(parts[3]))
		_, topics, ok := reg.Analytics(scope, entity)
		if !ok {
			return Route{}, &topicmgr.TopicError{
				Type:    topicmgr.ErrorTopicNotFound,
				Topic:   path,
				Group:   topicmgr.GroupAnalytics,
				Message: fmt.Sprintf("no analytics stream for %s/%s", scope, entity),
			}
		}
		return Route{Entity: entity, Scope: scope, Analytics: true, Topics: topics}, nil
	}

	if len(parts) > 4 {
		return Route{}, routeError(path, "too many path segments")
	}
	entity, ok := reg.NormalizeEntity(parts[1])
	if !ok {
		return Route{}, &topicmgr.TopicError{
			Type:    topicmgr.ErrorMissingEntity,
			Topic:   path,
			Message: fmt.Sprintf("unknown entity: %s", parts[1]),
		}
	}
	section := strings.TrimSpace(parts[2])
	if section == "" {
		return Route{}, routeError(path, "missing section")
	}
	route := Route{Entity: entity, Section: section}
	if len(parts) == 4 {
		route.Token = strings.TrimSpace(parts[3])
	}
	route.Topics, _ = reg.EntityTopics(entity)
	return route, nil
}

func routeError(path, msg string) error {
	return &topicmgr.TopicError{
		Type:    topicmgr.ErrorValidationFailed,
		Topic:   path,
		Message: fmt.Sprintf("invalid route %q: %s", path, msg),
	}
}

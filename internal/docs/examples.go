// Package docs holds the published examples and HTML rendering of the
// catalog. Nothing here is consulted when validating traffic.
package docs

import (
	"fmt"
	"net/url"

	"go.uber.org/multierr"

	"github.com/nfrund/wscatalog/internal/topicmgr"
	"github.com/nfrund/wscatalog/internal/websocket"
)

// Example is an illustrative connection: the URL a client opens, the first
// command it sends and the topics it should expect back.
type Example struct {
	Name        string         `json:"name"`
	Group       string         `json:"group"`
	Description string         `json:"description"`
	URL         string         `json:"url"`
	Action      string         `json:"action"`
	Payload     map[string]any `json:"payload,omitempty"`
	Expects     []string       `json:"expects"`
}

// Examples returns the published examples.
func Examples() []Example {
	return []Example{
		{
			Name:        "restaurantsList",
			Group:       "realtime",
			Description: "Paged snapshot of the restaurants in a section",
			URL:         "ws://localhost:8080/ws/restaurants/main-hall",
			Action:      "list_restaurants",
			Payload:     map[string]any{"page": 1, "limit": 20, "search": ""},
			Expects:     []string{"restaurants.list", "restaurants.error"},
		},
		{
			Name:        "tablesDetail",
			Group:       "realtime",
			Description: "Detail of a single table in the main section",
			URL:         "ws://localhost:8080/ws/tables/main-hall",
			Action:      "get_table",
			Payload:     map[string]any{"id": "table-17"},
			Expects:     []string{"tables.detail", "tables.error"},
		},
		{
			Name:        "sectionObjectsList",
			Group:       "realtime",
			Description: "Objects placed in a section; note the underscore command noun",
			URL:         "ws://localhost:8080/ws/section-objects/main-hall",
			Action:      "list_section_objects",
			Payload:     map[string]any{"page": 1, "limit": 50},
			Expects:     []string{"section-objects.list", "section-objects.error"},
		},
		{
			Name:        "publicUsers",
			Group:       "analytics",
			Description: "Public user trends, no token required",
			URL:         "ws://localhost:8080/ws/analytics/public/users",
			Action:      "fetch",
			Payload:     map[string]any{"query": map[string]any{"startDate": "2024-01-01"}},
			Expects:     []string{"analytics-public-users.snapshot", "analytics-public-users.error"},
		},
		{
			Name:        "restaurantUsers",
			Group:       "analytics",
			Description: "User indicators for one restaurant (token required)",
			URL:         "ws://localhost:8080/ws/analytics/restaurant/users?restaurantId=rest-123",
			Action:      "refresh",
			Payload: map[string]any{
				"identifier": "rest-123",
				"query":      map[string]any{"startDate": "2024-01-01"},
			},
			Expects: []string{"analytics-restaurant-users.snapshot", "analytics-restaurant-users.error"},
		},
		{
			Name:        "adminPayments",
			Group:       "analytics",
			Description: "Admin payments dashboard filtered by restaurant",
			URL:         "ws://localhost:8080/ws/analytics/admin/payments?restaurantId=rest-123&startDate=2024-01-01",
			Action:      "query",
			Payload: map[string]any{
				"query": map[string]any{"restaurantId": "rest-123", "startDate": "2024-01-01"},
			},
			Expects: []string{"analytics-admin-payments.snapshot", "analytics-admin-payments.error"},
		},
		{
			Name:        "keepAlive",
			Group:       "system",
			Description: "Heartbeat answered on the control channel",
			URL:         "ws://localhost:8080/ws/restaurants/main-hall",
			Action:      "ping",
			Expects:     []string{"system.pong"},
		},
	}
}

// Verify checks that every example resolves against reg: its action is a
// registered command, its URL parses as a route and it only expects
// registered topics.
func Verify(reg *topicmgr.Registry, examples []Example) error {
	var errs error
	for _, ex := range examples {
		if _, err := reg.ResolveAction(ex.Action); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("example %s: %w", ex.Name, err))
		}
		u, err := url.Parse(ex.URL)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("example %s: %w", ex.Name, err))
			continue
		}
		if _, err := websocket.ParseRoute(reg, u.Path); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("example %s: %w", ex.Name, err))
		}
		for _, topic := range ex.Expects {
			if err := reg.ValidateTopic(topic); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("example %s: %w", ex.Name, err))
			}
		}
	}
	return errs
}

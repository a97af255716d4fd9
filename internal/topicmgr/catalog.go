package topicmgr

// Catalog is the static configuration the registry is derived from. It lists
// which entities and analytics scopes exist; the factories decide how their
// identifiers are spelled.
type Catalog struct {
	Entities     []EntitySpec        `yaml:"entities" json:"entities" validate:"required,min=1,dive"`
	Analytics    []AnalyticsSpec     `yaml:"analytics" json:"analytics" validate:"dive"`
	Dependencies map[string][]string `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// EntitySpec describes one domain resource. Key is the topic namespace
// ("section-objects"); Plural and Singular are the command nouns
// ("section_objects", "section_object"). The hyphen/underscore split mirrors
// deployed clients and is kept as-is.
type EntitySpec struct {
	Key      string   `yaml:"key" json:"key" validate:"required,ident"`
	Plural   string   `yaml:"plural" json:"plural" validate:"required,ident"`
	Singular string   `yaml:"singular" json:"singular" validate:"required,ident"`
	Aliases  []string `yaml:"aliases,omitempty" json:"aliases,omitempty" validate:"dive,required"`
}

// AnalyticsSpec describes one scoped analytics stream. RequireToken,
// IdentifierParam, QueryParams and Path document how the gateway serves the
// stream; the registry does not enforce them.
type AnalyticsSpec struct {
	Scope           Scope    `yaml:"scope" json:"scope" validate:"required,oneof=public restaurant admin"`
	Entity          string   `yaml:"entity" json:"entity" validate:"required,ident"`
	Path            string   `yaml:"path,omitempty" json:"path,omitempty"`
	RequireToken    bool     `yaml:"require_token,omitempty" json:"require_token,omitempty"`
	IdentifierParam string   `yaml:"identifier_param,omitempty" json:"identifier_param,omitempty"`
	QueryParams     []string `yaml:"query_params,omitempty" json:"query_params,omitempty"`
}

// Key returns the analytics topic namespace, e.g. "analytics-admin-payments".
func (a AnalyticsSpec) Key() string {
	return AnalyticsKey(a.Scope, a.Entity)
}

func entity(key, plural, singular string, aliases ...string) EntitySpec {
	return EntitySpec{Key: key, Plural: plural, Singular: singular, Aliases: aliases}
}

func analytics(scope Scope, name, path string, requireToken bool, query ...string) AnalyticsSpec {
	return AnalyticsSpec{
		Scope:        scope,
		Entity:       name,
		Path:         path,
		RequireToken: requireToken,
		QueryParams:  query,
	}
}

// DefaultCatalog returns the production catalog: 14 domain entities and 15
// analytics streams across the public, restaurant and admin scopes.
func DefaultCatalog() Catalog {
	restaurantUsers := analytics(ScopeRestaurant, "users", "/api/v1/users/analytics", true, "startDate")
	restaurantUsers.IdentifierParam = "restaurantId"

	return Catalog{
		Entities: []EntitySpec{
			entity("reviews", "reviews", "review"),
			entity("restaurants", "restaurants", "restaurant"),
			entity("sections", "sections", "section"),
			entity("tables", "tables", "table"),
			entity("objects", "objects", "object"),
			entity("menus", "menus", "menu"),
			entity("dishes", "dishes", "dish"),
			entity("images", "images", "image"),
			entity("section-objects", "section_objects", "section_object"),
			entity("reservations", "reservations", "reservation"),
			entity("payments", "payments", "payment"),
			entity("subscriptions", "subscriptions", "subscription"),
			entity("subscription-plans", "subscription_plans", "subscription_plan"),
			entity("auth-users", "auth_users", "auth_user", "auth"),
		},
		Analytics: []AnalyticsSpec{
			analytics(ScopePublic, "users", "/api/v1/users/analytics", false, "startDate"),
			analytics(ScopePublic, "dishes", "/api/v1/dishes/analytics", false, "startDate"),
			analytics(ScopePublic, "menus", "/api/v1/menus/analytics", false, "startDate"),
			restaurantUsers,
			analytics(ScopeAdmin, "auth", "/api/v1/auth/analytics", true, "startDate"),
			analytics(ScopeAdmin, "restaurants", "/api/v1/restaurants/analytics", true, "startDate"),
			analytics(ScopeAdmin, "sections", "/api/v1/sections/analytics", true, "restaurantId", "startDate"),
			analytics(ScopeAdmin, "tables", "/api/v1/tables/analytics", true, "sectionId", "restaurantId", "startDate"),
			analytics(ScopeAdmin, "images", "/api/v1/images/analytics", true, "startDate"),
			analytics(ScopeAdmin, "objects", "/api/v1/objects/analytics", true, "startDate"),
			analytics(ScopeAdmin, "subscriptions", "/api/v1/subscriptions/analytics", true, "startDate"),
			analytics(ScopeAdmin, "subscription-plans", "/api/v1/subscription-plans/analytics", true, "startDate"),
			analytics(ScopeAdmin, "reservations", "/api/v1/reservations/analytics", true, "restaurantId", "startDate"),
			analytics(ScopeAdmin, "reviews", "/api/v1/reviews/analytics/stats", true, "restaurantId", "startDate"),
			analytics(ScopeAdmin, "payments", "/api/v1/payments/analytics", true, "restaurantId", "startDate"),
		},
		Dependencies: map[string][]string{
			"restaurants":        {"analytics-admin-restaurants", "analytics-admin-sections", "analytics-admin-tables", "analytics-admin-payments"},
			"sections":           {"analytics-admin-sections", "analytics-admin-tables"},
			"tables":             {"analytics-admin-tables", "analytics-admin-payments"},
			"images":             {"analytics-admin-images"},
			"objects":            {"analytics-admin-objects", "analytics-admin-sections"},
			"section-objects":    {"analytics-admin-objects", "analytics-admin-sections"},
			"subscriptions":      {"analytics-admin-subscriptions", "analytics-admin-subscription-plans", "analytics-admin-payments"},
			"subscription-plans": {"analytics-admin-subscription-plans"},
			"reservations":       {"analytics-admin-reservations", "analytics-restaurant-users"},
			"reviews":            {"analytics-admin-reviews"},
			"payments":           {"analytics-admin-payments"},
			"auth-users":         {"analytics-admin-auth", "analytics-public-users", "analytics-restaurant-users"},
			"menus":              {"analytics-public-menus"},
			"dishes":             {"analytics-public-dishes"},
		},
	}
}

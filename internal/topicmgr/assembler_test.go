package topicmgr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func smallCatalog() Catalog {
	return Catalog{
		Entities: []EntitySpec{
			{Key: "tables", Plural: "tables", Singular: "table"},
			{Key: "section-objects", Plural: "section_objects", Singular: "section_object"},
		},
		Analytics: []AnalyticsSpec{
			{Scope: ScopeAdmin, Entity: "tables"},
			{Scope: ScopePublic, Entity: "users"},
		},
		Dependencies: map[string][]string{
			"tables": {"analytics-admin-tables"},
		},
	}
}

func TestBuild_SmallCatalog(t *testing.T) {
	reg, err := Build(smallCatalog())
	require.NoError(t, err)

	assert.Equal(t, []string{"system", "analytics", "tables", "section-objects"}, reg.Topics().Keys())
	assert.Equal(t, []string{"system", "analytics", "tables", "section-objects"}, reg.Commands().Keys())

	analytics, ok := reg.Topics().Child(GroupAnalytics)
	require.True(t, ok)
	assert.Equal(t, []string{"public", "admin"}, analytics.Keys(), "scopes follow enumeration order")

	node, ok := reg.Topics().Lookup("analytics", "admin", "tables", "snapshot")
	require.True(t, ok)
	assert.Equal(t, "analytics-admin-tables.snapshot", node.Value())

	node, ok = reg.Commands().Lookup("section-objects", "get")
	require.True(t, ok)
	assert.Equal(t, "command.get_section_object", node.Value())

	stats := reg.Stats()
	assert.Equal(t, 3+7*2+2*2, stats.Topics)
	assert.Equal(t, 3+3+2*2, stats.Commands)
	assert.True(t, stats.Complete())
}

func TestBuild_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Catalog)
		wantType ErrorType
	}{
		{
			name:     "empty entity key",
			mutate:   func(c *Catalog) { c.Entities[0].Key = "" },
			wantType: ErrorInvalidName,
		},
		{
			name:     "empty singular",
			mutate:   func(c *Catalog) { c.Entities[1].Singular = "" },
			wantType: ErrorInvalidName,
		},
		{
			name:     "uppercase entity key",
			mutate:   func(c *Catalog) { c.Entities[0].Key = "Tables" },
			wantType: ErrorInvalidName,
		},
		{
			name:     "dotted plural",
			mutate:   func(c *Catalog) { c.Entities[0].Plural = "tables.v2" },
			wantType: ErrorInvalidName,
		},
		{
			name:     "unknown scope",
			mutate:   func(c *Catalog) { c.Analytics[0].Scope = "internal" },
			wantType: ErrorInvalidScope,
		},
		{
			name:     "entity declared twice",
			mutate:   func(c *Catalog) { c.Entities = append(c.Entities, c.Entities[0]) },
			wantType: ErrorDuplicateRegistration,
		},
		{
			name:     "analytics pair declared twice",
			mutate:   func(c *Catalog) { c.Analytics = append(c.Analytics, c.Analytics[1]) },
			wantType: ErrorDuplicateRegistration,
		},
		{
			name: "topic leaf collides with analytics leaf",
			mutate: func(c *Catalog) {
				c.Entities = append(c.Entities, EntitySpec{Key: "analytics-admin-tables", Plural: "admin_tables", Singular: "admin_table"})
			},
			wantType: ErrorDuplicateRegistration,
		},
		{
			name: "command nouns shared by two entities",
			mutate: func(c *Catalog) {
				c.Entities = append(c.Entities, EntitySpec{Key: "desks", Plural: "tables", Singular: "desk"})
			},
			wantType: ErrorDuplicateRegistration,
		},
		{
			name: "alias claimed by two entities",
			mutate: func(c *Catalog) {
				c.Entities[1].Aliases = []string{"table"}
			},
			wantType: ErrorDuplicateRegistration,
		},
		{
			name:     "reserved entity key",
			mutate:   func(c *Catalog) { c.Entities[0].Key = "system" },
			wantType: ErrorInvalidName,
		},
		{
			name:     "dependency on unknown stream",
			mutate:   func(c *Catalog) { c.Dependencies["tables"] = []string{"analytics-admin-chairs"} },
			wantType: ErrorMissingEntity,
		},
		{
			name:     "dependency from unknown entity",
			mutate:   func(c *Catalog) { c.Dependencies["chairs"] = []string{"analytics-admin-tables"} },
			wantType: ErrorMissingEntity,
		},
		{
			name:     "no entities",
			mutate:   func(c *Catalog) { c.Entities = []EntitySpec{} },
			wantType: ErrorValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := smallCatalog()
			tt.mutate(&cat)

			reg, err := Build(cat)
			require.Error(t, err)
			assert.Nil(t, reg, "a failed build must not return a partial registry")
			assert.ErrorIs(t, err, ErrInvalidCatalog)

			var found bool
			for _, e := range multierr.Errors(errors.Unwrap(err)) {
				var topicErr *TopicError
				if errors.As(e, &topicErr) && topicErr.Type == tt.wantType {
					found = true
				}
			}
			assert.True(t, found, "expected a %s error, got: %v", tt.wantType, err)
		})
	}
}

func TestBuild_ReportsEveryProblem(t *testing.T) {
	cat := smallCatalog()
	cat.Entities[0].Key = ""
	cat.Analytics[0].Scope = "internal"

	_, err := Build(cat)
	require.Error(t, err)
	assert.GreaterOrEqual(t, len(multierr.Errors(errors.Unwrap(err))), 2)
}

func TestMustBuild_Panics(t *testing.T) {
	cat := smallCatalog()
	cat.Entities[0].Plural = ""

	assert.Panics(t, func() { MustBuild(cat) })
	assert.NotPanics(t, func() { MustBuild(smallCatalog()) })
}

func TestActionOf(t *testing.T) {
	assert.Equal(t, "list_tables", ActionOf("command.list_tables"))
	assert.Equal(t, "refresh", ActionOf("command.analytics.refresh"))
	assert.Equal(t, "ping", ActionOf("ping"))
}

func TestSpellingVariants(t *testing.T) {
	assert.ElementsMatch(t,
		[]string{"section-object", "section_object", "section-object", "sectionobject"},
		spellingVariants(" Section-Object "),
	)
	assert.Nil(t, spellingVariants("  "))
}

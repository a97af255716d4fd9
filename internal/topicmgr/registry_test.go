package topicmgr

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := Build(DefaultCatalog())
	require.NoError(t, err)
	return reg
}

func TestDefaultCatalog_Completeness(t *testing.T) {
	reg := defaultRegistry(t)
	stats := reg.Stats()

	assert.Equal(t, 14, stats.Entities)
	assert.Equal(t, 15, stats.AnalyticsPairs)
	assert.Equal(t, map[Scope]int{ScopePublic: 3, ScopeRestaurant: 1, ScopeAdmin: 11}, stats.AnalyticsByScope)

	assert.Equal(t, 3+7*14+2*15, stats.Topics)
	assert.Equal(t, 3+3+2*14, stats.Commands)
	assert.True(t, stats.Complete())
}

func TestDefaultCatalog_GlobalUniqueness(t *testing.T) {
	reg := defaultRegistry(t)

	assert.Equal(t, reg.Topics().LeafCount(), reg.TopicSet().Len(), "every topic leaf must be distinct")
	assert.Equal(t, reg.Commands().LeafCount(), reg.CommandSet().Len(), "every command leaf must be distinct")

	for topic := range reg.TopicSet() {
		assert.False(t, reg.IsCommand(topic), "%s is both a topic and a command", topic)
	}
}

func TestDefaultCatalog_EveryEntityInBothTrees(t *testing.T) {
	reg := defaultRegistry(t)

	for _, e := range DefaultCatalog().Entities {
		topics, ok := reg.EntityTopics(e.Key)
		require.True(t, ok, e.Key)
		assert.Len(t, topics, 7)

		_, ok = reg.Commands().Child(e.Key)
		assert.True(t, ok, "%s missing from command tree", e.Key)
	}
}

func TestRegistry_ConcreteScenarios(t *testing.T) {
	reg := defaultRegistry(t)

	t.Run("restaurant topics", func(t *testing.T) {
		topics, ok := reg.EntityTopics("restaurants")
		require.True(t, ok)
		assert.Equal(t, []string{
			"restaurants.snapshot",
			"restaurants.list",
			"restaurants.detail",
			"restaurants.error",
			"restaurants.created",
			"restaurants.updated",
			"restaurants.deleted",
		}, topics)
	})

	t.Run("section object commands", func(t *testing.T) {
		list, ok := reg.Commands().Lookup("section-objects", "list")
		require.True(t, ok)
		get, ok := reg.Commands().Lookup("section-objects", "get")
		require.True(t, ok)
		assert.Equal(t, "command.list_section_objects", list.Value())
		assert.Equal(t, "command.get_section_object", get.Value())
	})

	t.Run("admin payments analytics", func(t *testing.T) {
		spec, topics, ok := reg.Analytics(ScopeAdmin, "payments")
		require.True(t, ok)
		assert.True(t, spec.RequireToken)
		assert.Equal(t, []string{"analytics-admin-payments.snapshot", "analytics-admin-payments.error"}, topics)
	})

	t.Run("wire action validation", func(t *testing.T) {
		command, err := reg.ResolveAction("list_restaurants")
		require.NoError(t, err)
		assert.Equal(t, "command.list_restaurants", command)

		_, err = reg.ResolveAction("list_restaurantz")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRegistry_ResolveAction(t *testing.T) {
	reg := defaultRegistry(t)

	tests := []struct {
		action  string
		want    string
		wantErr bool
	}{
		{action: "get_table", want: "command.get_table"},
		{action: "list_subscription_plans", want: "command.list_subscription_plans"},
		{action: "get_auth_user", want: "command.get_auth_user"},
		{action: "refresh", want: "command.analytics.refresh"},
		{action: "fetch", want: "command.analytics.fetch"},
		{action: "query", want: "command.analytics.query"},
		{action: "ping", want: "command.ping"},
		{action: " subscribe ", want: "command.subscribe"},
		{action: "unsubscribe", want: "command.unsubscribe"},
		{action: "list_section-objects", wantErr: true},
		{action: "command.list_tables", wantErr: true},
		{action: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			got, err := reg.ResolveAction(tt.action)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, reg.IsCommand(got))
		})
	}

	assert.Len(t, reg.Actions(), reg.CommandSet().Len(), "every command has exactly one wire action")
}

func TestRegistry_ValidateTopic(t *testing.T) {
	reg := defaultRegistry(t)

	assert.NoError(t, reg.ValidateTopic("system.pong"))
	assert.NoError(t, reg.ValidateTopic("section-objects.updated"))
	assert.NoError(t, reg.ValidateTopic("analytics-restaurant-users.error"))

	err := reg.ValidateTopic("analytics-restaurant-payments.snapshot")
	require.Error(t, err)
	var topicErr *TopicError
	require.ErrorAs(t, err, &topicErr)
	assert.Equal(t, ErrorTopicNotFound, topicErr.Type)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, reg.ValidateCommand("command.analytics.query"))
	assert.ErrorIs(t, reg.ValidateCommand("command.delete_table"), ErrNotFound)
}

func TestRegistry_NormalizeEntity(t *testing.T) {
	reg := defaultRegistry(t)

	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{raw: "restaurant", want: "restaurants", ok: true},
		{raw: "Tables", want: "tables", ok: true},
		{raw: "sectionobject", want: "section-objects", ok: true},
		{raw: "section_objects", want: "section-objects", ok: true},
		{raw: "subscription-plan", want: "subscription-plans", ok: true},
		{raw: "authusers", want: "auth-users", ok: true},
		{raw: "auth", want: "auth-users", ok: true},
		{raw: " dish ", want: "dishes", ok: true},
		{raw: "default", ok: false},
		{raw: "-", ok: false},
		{raw: "", ok: false},
		{raw: "chairs", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := reg.NormalizeEntity(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_AnalyticsDependents(t *testing.T) {
	reg := defaultRegistry(t)

	deps := reg.AnalyticsDependents("reservations")
	assert.Equal(t, []string{"analytics-admin-reservations", "analytics-restaurant-users"}, deps)

	for _, dep := range deps {
		assert.True(t, reg.IsTopic(dep+".snapshot"), dep)
	}

	deps[0] = "mutated"
	assert.Equal(t, "analytics-admin-reservations", reg.AnalyticsDependents("reservations")[0])
	assert.Empty(t, reg.AnalyticsDependents("chairs"))
}

func TestRegistry_GroupsAndCatalogCopy(t *testing.T) {
	reg := defaultRegistry(t)

	groups := reg.Groups()
	require.Len(t, groups, 16)
	assert.Equal(t, []string{"system", "analytics"}, groups[:2])
	assert.Equal(t, []string{"system.connected", "system.pong", "system.error"}, reg.GroupTopics("system"))
	assert.Len(t, reg.GroupTopics("analytics"), 30)
	assert.Nil(t, reg.GroupTopics("chairs"))

	_, ok := reg.EntityTopics("analytics")
	assert.False(t, ok, "grouping keys are not entities")

	cat := reg.Catalog()
	cat.Entities[0].Key = "mutated"
	assert.Equal(t, "reviews", reg.Catalog().Entities[0].Key)

	set := reg.TopicSet()
	delete(set, "system.pong")
	assert.True(t, reg.IsTopic("system.pong"))
}

func TestRegistry_ConcurrentReaders(t *testing.T) {
	reg := defaultRegistry(t)
	topics := reg.TopicList()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, topic := range topics {
				assert.True(t, reg.IsTopic(topic))
			}
			_, err := reg.ResolveAction("get_reservation")
			assert.NoError(t, err)
			_ = reg.Stats()
		}()
	}
	wg.Wait()
}

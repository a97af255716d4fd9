package topicmgr

import (
	"fmt"
	"strings"
)

// Registry is the assembled, read-only catalog of topics and commands. It is
// built once by Build and shared by reference; none of its methods mutate it.
type Registry struct {
	catalog    Catalog
	topics     *Node
	commands   *Node
	topicSet   LeafSet
	commandSet LeafSet
	actions    map[string]string
	aliases    map[string]string
	analytics  map[string]AnalyticsSpec
}

func newRegistry(cat Catalog, topics, commands *Node, actions, aliases map[string]string) *Registry {
	byKey := make(map[string]AnalyticsSpec, len(cat.Analytics))
	for _, a := range cat.Analytics {
		byKey[a.Key()] = a
	}
	return &Registry{
		catalog:    cloneCatalog(cat),
		topics:     topics,
		commands:   commands,
		topicSet:   topics.Leaves(),
		commandSet: commands.Leaves(),
		actions:    actions,
		aliases:    aliases,
		analytics:  byKey,
	}
}

// Topics returns the root of the topic tree.
func (r *Registry) Topics() *Node {
	return r.topics
}

// Commands returns the root of the command tree.
func (r *Registry) Commands() *Node {
	return r.commands
}

// Catalog returns a copy of the catalog the registry was built from.
func (r *Registry) Catalog() Catalog {
	return cloneCatalog(r.catalog)
}

// IsTopic reports whether topic is a registered topic leaf.
func (r *Registry) IsTopic(topic string) bool {
	return r.topicSet.Has(topic)
}

// IsCommand reports whether command is a registered command leaf.
func (r *Registry) IsCommand(command string) bool {
	return r.commandSet.Has(command)
}

// ValidateTopic returns a TopicError when topic is not registered.
func (r *Registry) ValidateTopic(topic string) error {
	if r.IsTopic(topic) {
		return nil
	}
	return &TopicError{
		Type:    ErrorTopicNotFound,
		Topic:   topic,
		Message: fmt.Sprintf("topic not found: %s", topic),
	}
}

// ValidateCommand returns a TopicError when command is not registered.
func (r *Registry) ValidateCommand(command string) error {
	if r.IsCommand(command) {
		return nil
	}
	return &TopicError{
		Type:    ErrorCommandNotFound,
		Topic:   command,
		Message: fmt.Sprintf("command not found: %s", command),
	}
}

// ResolveAction maps a wire action ("list_restaurants", "refresh", "ping") to
// its command leaf. Matching is exact after trimming surrounding spaces.
func (r *Registry) ResolveAction(action string) (string, error) {
	key := strings.TrimSpace(action)
	if command, ok := r.actions[key]; ok {
		return command, nil
	}
	return "", &TopicError{
		Type:    ErrorCommandNotFound,
		Topic:   action,
		Message: fmt.Sprintf("unknown action: %s", action),
	}
}

// Actions returns every wire action in lexical order.
func (r *Registry) Actions() []string {
	set := make(LeafSet, len(r.actions))
	for action := range r.actions {
		set[action] = struct{}{}
	}
	return set.Sorted()
}

// TopicList returns every topic in lexical order.
func (r *Registry) TopicList() []string {
	return r.topicSet.Sorted()
}

// CommandList returns every command in lexical order.
func (r *Registry) CommandList() []string {
	return r.commandSet.Sorted()
}

// TopicSet returns a copy of the flattened topic tree.
func (r *Registry) TopicSet() LeafSet {
	return copySet(r.topicSet)
}

// CommandSet returns a copy of the flattened command tree.
func (r *Registry) CommandSet() LeafSet {
	return copySet(r.commandSet)
}

// Groups returns the top-level group keys of the topic tree: "system",
// "analytics" and one key per entity.
func (r *Registry) Groups() []string {
	return r.topics.Keys()
}

// GroupTopics returns the topics below a top-level group in tree order.
func (r *Registry) GroupTopics(group string) []string {
	node, ok := r.topics.Child(group)
	if !ok {
		return nil
	}
	var out []string
	node.Walk(func(_ []string, value string) {
		out = append(out, value)
	})
	return out
}

// EntityTopics returns the lifecycle topics of an entity key in
// EventKinds order, or false when the entity is not in the catalog.
func (r *Registry) EntityTopics(entity string) ([]string, bool) {
	if entity == GroupSystem || entity == GroupAnalytics {
		return nil, false
	}
	topics := r.GroupTopics(entity)
	return topics, topics != nil
}

// Analytics returns the analytics stream for a scope/entity pair.
func (r *Registry) Analytics(scope Scope, entity string) (AnalyticsSpec, []string, bool) {
	spec, ok := r.analytics[AnalyticsKey(scope, entity)]
	if !ok {
		return AnalyticsSpec{}, nil, false
	}
	node, _ := r.topics.Lookup(GroupAnalytics, string(scope), entity)
	var topics []string
	node.Walk(func(_ []string, value string) {
		topics = append(topics, value)
	})
	return spec, topics, true
}

// NormalizeEntity resolves the many client spellings of an entity
// ("table", "Section_Object", "auth") to its catalog key. Empty input and the
// placeholders "-" and "default" resolve to no entity.
func (r *Registry) NormalizeEntity(raw string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	switch key {
	case "", "-", "default":
		return "", false
	}
	entity, ok := r.aliases[key]
	return entity, ok
}

// AnalyticsDependents returns the analytics streams ("analytics-admin-tables")
// whose data changes when entity changes.
func (r *Registry) AnalyticsDependents(entity string) []string {
	deps := r.catalog.Dependencies[entity]
	out := make([]string, len(deps))
	copy(out, deps)
	return out
}

// Stats summarizes the registry and the counts the catalog implies.
func (r *Registry) Stats() Stats {
	stats := Stats{
		Topics:           r.topics.LeafCount(),
		Commands:         r.commands.LeafCount(),
		Entities:         len(r.catalog.Entities),
		AnalyticsPairs:   len(r.catalog.Analytics),
		AnalyticsByScope: make(map[Scope]int),
		TopicsByGroup:    make(map[string]int),
	}
	for _, a := range r.catalog.Analytics {
		stats.AnalyticsByScope[a.Scope]++
	}
	for _, group := range r.topics.Keys() {
		node, _ := r.topics.Child(group)
		stats.TopicsByGroup[group] = node.LeafCount()
	}
	stats.ExpectedTopics = SystemTopicCount + len(EventKinds())*stats.Entities + len(AnalyticsEventKinds())*stats.AnalyticsPairs
	stats.ExpectedCommands = SystemCommandCount + AnalyticsCommandCount + len(CommandVerbs())*stats.Entities
	return stats
}

func copySet(in LeafSet) LeafSet {
	out := make(LeafSet, len(in))
	for k := range in {
		out[k] = struct{}{}
	}
	return out
}

func cloneCatalog(cat Catalog) Catalog {
	out := Catalog{
		Entities:  make([]EntitySpec, len(cat.Entities)),
		Analytics: make([]AnalyticsSpec, len(cat.Analytics)),
	}
	for i, e := range cat.Entities {
		e.Aliases = append([]string(nil), e.Aliases...)
		out.Entities[i] = e
	}
	for i, a := range cat.Analytics {
		a.QueryParams = append([]string(nil), a.QueryParams...)
		out.Analytics[i] = a
	}
	if cat.Dependencies != nil {
		out.Dependencies = make(map[string][]string, len(cat.Dependencies))
		for k, v := range cat.Dependencies {
			out.Dependencies[k] = append([]string(nil), v...)
		}
	}
	return out
}

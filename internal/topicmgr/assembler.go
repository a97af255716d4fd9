package topicmgr

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Build derives both registry trees from cat. It either returns a complete,
// collision-free registry or nil together with every problem found.
func Build(cat Catalog) (*Registry, error) {
	if err := NewValidator().ValidateCatalog(cat); err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}

	topics := assembleTopics(cat)
	commands := assembleCommands(cat)

	var errs error
	errs = multierr.Append(errs, checkUniqueLeaves("topic", topics))
	errs = multierr.Append(errs, checkUniqueLeaves("command", commands))
	errs = multierr.Append(errs, checkEntityParity(cat, topics, commands))

	actions, err := buildActions(commands)
	errs = multierr.Append(errs, err)

	aliases, err := buildAliases(cat)
	errs = multierr.Append(errs, err)

	if errs != nil {
		return nil, fmt.Errorf("build registry: %w", errs)
	}

	return newRegistry(cat, topics, commands, actions, aliases), nil
}

// MustBuild is Build for process initialization; it panics on a bad catalog.
func MustBuild(cat Catalog) *Registry {
	reg, err := Build(cat)
	if err != nil {
		panic(err)
	}
	return reg
}

func assembleTopics(cat Catalog) *Node {
	groups := []*Node{fixedBranch(GroupSystem, systemTopics), analyticsTopicBranch(cat.Analytics)}
	for _, e := range cat.Entities {
		generated := EntityTopics(e.Key)
		leaves := make([]*Node, 0, len(generated))
		for _, kind := range EventKinds() {
			leaves = append(leaves, Leaf(string(kind), generated[kind]))
		}
		groups = append(groups, Branch(e.Key, leaves...))
	}
	return Branch("topics", groups...)
}

func assembleCommands(cat Catalog) *Node {
	groups := []*Node{fixedBranch(GroupSystem, systemCommands), fixedBranch(GroupAnalytics, analyticsCommands)}
	for _, e := range cat.Entities {
		generated := EntityCommands(e.Plural, e.Singular)
		leaves := make([]*Node, 0, len(generated))
		for _, verb := range CommandVerbs() {
			leaves = append(leaves, Leaf(string(verb), generated[verb]))
		}
		groups = append(groups, Branch(e.Key, leaves...))
	}
	return Branch("commands", groups...)
}

func fixedBranch(key string, fixed []struct{ key, value string }) *Node {
	leaves := make([]*Node, len(fixed))
	for i, f := range fixed {
		leaves[i] = Leaf(f.key, f.value)
	}
	return Branch(key, leaves...)
}

// analyticsTopicBranch nests pairs by scope then entity. Scopes keep their
// enumeration order and entities keep catalog order within a scope.
func analyticsTopicBranch(pairs []AnalyticsSpec) *Node {
	byScope := make(map[Scope][]*Node)
	for _, pair := range pairs {
		generated := AnalyticsTopics(pair.Scope, pair.Entity)
		leaves := make([]*Node, 0, len(generated))
		for _, kind := range AnalyticsEventKinds() {
			leaves = append(leaves, Leaf(string(kind), generated[kind]))
		}
		byScope[pair.Scope] = append(byScope[pair.Scope], Branch(pair.Entity, leaves...))
	}

	scopes := make([]*Node, 0, len(byScope))
	for _, scope := range Scopes() {
		if entities, ok := byScope[scope]; ok {
			scopes = append(scopes, Branch(string(scope), entities...))
		}
	}
	return Branch(GroupAnalytics, scopes...)
}

func checkUniqueLeaves(kind string, root *Node) error {
	var errs error
	seen := make(map[string]string)
	root.Walk(func(path []string, value string) {
		where := strings.Join(path, "/")
		if first, dup := seen[value]; dup {
			errs = multierr.Append(errs, &TopicError{
				Type:    ErrorDuplicateRegistration,
				Topic:   value,
				Group:   path[0],
				Message: fmt.Sprintf("%s %q produced by both %s and %s", kind, value, first, where),
			})
			return
		}
		seen[value] = where
	})
	return errs
}

// checkEntityParity verifies every entity owns a group in both trees.
func checkEntityParity(cat Catalog, topics, commands *Node) error {
	var errs error
	for _, e := range cat.Entities {
		_, inTopics := topics.Child(e.Key)
		_, inCommands := commands.Child(e.Key)
		if inTopics && inCommands {
			continue
		}
		errs = multierr.Append(errs, &TopicError{
			Type:    ErrorMissingEntity,
			Group:   e.Key,
			Message: fmt.Sprintf("entity %s missing from topics=%t commands=%t", e.Key, !inTopics, !inCommands),
		})
	}
	return errs
}

// ActionOf returns the wire action of a command leaf: the segment after the
// last dot, so "command.list_tables" is sent as "list_tables" and
// "command.analytics.refresh" as "refresh".
func ActionOf(command string) string {
	if i := strings.LastIndex(command, "."); i >= 0 {
		return command[i+1:]
	}
	return command
}

func buildActions(commands *Node) (map[string]string, error) {
	var errs error
	actions := make(map[string]string)
	commands.Walk(func(_ []string, value string) {
		action := ActionOf(value)
		if existing, dup := actions[action]; dup && existing != value {
			errs = multierr.Append(errs, &TopicError{
				Type:    ErrorDuplicateRegistration,
				Topic:   value,
				Message: fmt.Sprintf("wire action %q maps to both %s and %s", action, existing, value),
			})
			return
		}
		actions[action] = value
	})
	return actions, errs
}

func buildAliases(cat Catalog) (map[string]string, error) {
	var errs error
	aliases := make(map[string]string)
	claim := func(alias, key string) {
		if owner, taken := aliases[alias]; taken && owner != key {
			errs = multierr.Append(errs, &TopicError{
				Type:    ErrorDuplicateRegistration,
				Group:   key,
				Topic:   alias,
				Message: fmt.Sprintf("alias %q claimed by both %s and %s", alias, owner, key),
			})
			return
		}
		aliases[alias] = key
	}

	for _, e := range cat.Entities {
		names := append([]string{e.Key, e.Plural, e.Singular}, e.Aliases...)
		for _, name := range names {
			for _, variant := range spellingVariants(name) {
				claim(variant, e.Key)
			}
		}
	}
	return aliases, errs
}

// spellingVariants covers the ways clients spell an entity in URLs:
// "section-object", "section_object" and "sectionobject".
func spellingVariants(name string) []string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil
	}
	return []string{
		lower,
		strings.ReplaceAll(lower, "-", "_"),
		strings.ReplaceAll(lower, "_", "-"),
		strings.NewReplacer("-", "", "_", "").Replace(lower),
	}
}

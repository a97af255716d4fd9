package topicmgr

// EntityTopics returns the seven lifecycle topics of a resource entity, each
// "<entity>.<kind>". The entity name is used verbatim.
func EntityTopics(entity string) map[EventKind]string {
	topics := make(map[EventKind]string, 7)
	for _, kind := range EventKinds() {
		topics[kind] = entity + "." + string(kind)
	}
	return topics
}

// EntityCommands returns the list and get commands of an entity. The plural and
// singular spellings are independent: topic keys may be hyphenated while the
// command nouns of the same entity use underscores.
func EntityCommands(plural, singular string) map[CommandVerb]string {
	return map[CommandVerb]string{
		VerbList: CommandPrefix + string(VerbList) + "_" + plural,
		VerbGet:  CommandPrefix + string(VerbGet) + "_" + singular,
	}
}

// AnalyticsTopics returns the snapshot and error topics of an analytics entity
// within a scope.
func AnalyticsTopics(scope Scope, entity string) map[EventKind]string {
	prefix := AnalyticsKey(scope, entity)
	return map[EventKind]string{
		KindSnapshot: prefix + "." + string(KindSnapshot),
		KindError:    prefix + "." + string(KindError),
	}
}

// AnalyticsKey is the topic namespace of a scoped analytics entity,
// e.g. "analytics-admin-payments".
func AnalyticsKey(scope Scope, entity string) string {
	return GroupAnalytics + "-" + string(scope) + "-" + entity
}

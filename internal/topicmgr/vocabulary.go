package topicmgr

// EventKind is the lifecycle suffix of a resource topic.
type EventKind string

const (
	KindSnapshot EventKind = "snapshot"
	KindList     EventKind = "list"
	KindDetail   EventKind = "detail"
	KindError    EventKind = "error"
	KindCreated  EventKind = "created"
	KindUpdated  EventKind = "updated"
	KindDeleted  EventKind = "deleted"
)

// EventKinds returns the seven resource event kinds in catalog order.
func EventKinds() []EventKind {
	return []EventKind{KindSnapshot, KindList, KindDetail, KindError, KindCreated, KindUpdated, KindDeleted}
}

// AnalyticsEventKinds returns the event kinds carried by analytics topics.
func AnalyticsEventKinds() []EventKind {
	return []EventKind{KindSnapshot, KindError}
}

// CommandVerb is the verb half of an entity command.
type CommandVerb string

const (
	VerbList CommandVerb = "list"
	VerbGet  CommandVerb = "get"
)

// CommandVerbs returns the entity command verbs in catalog order.
func CommandVerbs() []CommandVerb {
	return []CommandVerb{VerbList, VerbGet}
}

// Scope is an analytics access tier. The registry only uses it for naming;
// which credentials a scope needs is decided by the gateway.
type Scope string

const (
	ScopePublic     Scope = "public"
	ScopeRestaurant Scope = "restaurant"
	ScopeAdmin      Scope = "admin"
)

// Scopes returns every analytics scope in catalog order.
func Scopes() []Scope {
	return []Scope{ScopePublic, ScopeRestaurant, ScopeAdmin}
}

// Valid reports whether s is one of the known scopes.
func (s Scope) Valid() bool {
	switch s {
	case ScopePublic, ScopeRestaurant, ScopeAdmin:
		return true
	default:
		return false
	}
}

func (s Scope) String() string {
	return string(s)
}

// Grouping keys used at the top of both trees.
const (
	GroupSystem    = "system"
	GroupAnalytics = "analytics"
)

// Control channel topics.
const (
	TopicSystemConnected = "system.connected"
	TopicSystemPong      = "system.pong"
	TopicSystemError     = "system.error"
)

// Control channel and analytics commands.
const (
	CommandPrefix = "command."

	CommandPing        = "command.ping"
	CommandSubscribe   = "command.subscribe"
	CommandUnsubscribe = "command.unsubscribe"

	CommandAnalyticsRefresh = "command.analytics.refresh"
	CommandAnalyticsFetch   = "command.analytics.fetch"
	CommandAnalyticsQuery   = "command.analytics.query"
)

// systemTopics and the command lists below keep the tree order stable.
var systemTopics = []struct{ key, value string }{
	{"connected", TopicSystemConnected},
	{"pong", TopicSystemPong},
	{"error", TopicSystemError},
}

var systemCommands = []struct{ key, value string }{
	{"ping", CommandPing},
	{"subscribe", CommandSubscribe},
	{"unsubscribe", CommandUnsubscribe},
}

var analyticsCommands = []struct{ key, value string }{
	{"refresh", CommandAnalyticsRefresh},
	{"fetch", CommandAnalyticsFetch},
	{"query", CommandAnalyticsQuery},
}

// SystemTopicCount, SystemCommandCount and AnalyticsCommandCount are the fixed
// parts of the completeness identity checked by Registry.Stats.
const (
	SystemTopicCount      = 3
	SystemCommandCount    = 3
	AnalyticsCommandCount = 3
)

// Package names holds the registered topics and commands as typed constants so
// handlers can refer to them without string literals.
//
// names_gen.go is regenerated from the default catalog:
//
//	wscatalog gen --out internal/topicmgr/names/names_gen.go
package names

//go:generate go run ../../../cmd/wscatalog gen --out names_gen.go

var (
	topicIndex   = indexOf(AllTopics)
	commandIndex = indexOf(AllCommands)
)

func indexOf[T ~string](values []T) map[string]T {
	out := make(map[string]T, len(values))
	for _, v := range values {
		out[string(v)] = v
	}
	return out
}

// ParseTopic returns the typed topic for s.
func ParseTopic(s string) (Topic, bool) {
	t, ok := topicIndex[s]
	return t, ok
}

// ParseCommand returns the typed command for s.
func ParseCommand(s string) (Command, bool) {
	c, ok := commandIndex[s]
	return c, ok
}

func (t Topic) String() string { return string(t) }

func (c Command) String() string { return string(c) }

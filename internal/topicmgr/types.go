package topicmgr

import "errors"

// ErrorType defines the type of catalog error
type ErrorType string

const (
	ErrorTopicNotFound         ErrorType = "topic_not_found"
	ErrorCommandNotFound       ErrorType = "command_not_found"
	ErrorDuplicateRegistration ErrorType = "duplicate_registration"
	ErrorInvalidName           ErrorType = "invalid_name"
	ErrorInvalidScope          ErrorType = "invalid_scope"
	ErrorMissingEntity         ErrorType = "missing_entity"
	ErrorValidationFailed      ErrorType = "validation_failed"
)

// Sentinel errors matched by TopicError.Is so callers can use errors.Is without
// inspecting the Type field.
var (
	ErrNotFound       = errors.New("identifier not registered")
	ErrDuplicate      = errors.New("identifier registered twice")
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// TopicError represents structured errors raised while building or consulting
// the registry.
type TopicError struct {
	Type    ErrorType `json:"type"`
	Topic   string    `json:"topic"`
	Group   string    `json:"group"`
	Message string    `json:"message"`
	Cause   error     `json:"cause,omitempty"`
}

// Error implements the error interface
func (e *TopicError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *TopicError) Unwrap() error {
	return e.Cause
}

// Is maps error types onto the package sentinels.
func (e *TopicError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Type == ErrorTopicNotFound || e.Type == ErrorCommandNotFound
	case ErrDuplicate:
		return e.Type == ErrorDuplicateRegistration
	case ErrInvalidCatalog:
		switch e.Type {
		case ErrorDuplicateRegistration, ErrorInvalidName, ErrorInvalidScope, ErrorMissingEntity, ErrorValidationFailed:
			return true
		}
	}
	return false
}

// Stats describes the size of a built registry.
type Stats struct {
	Topics           int            `json:"topics"`
	Commands         int            `json:"commands"`
	Entities         int            `json:"entities"`
	AnalyticsPairs   int            `json:"analytics_pairs"`
	AnalyticsByScope map[Scope]int  `json:"analytics_by_scope"`
	TopicsByGroup    map[string]int `json:"topics_by_group"`
	ExpectedTopics   int            `json:"expected_topics"`
	ExpectedCommands int            `json:"expected_commands"`
}

// Complete reports whether the leaf counts match the catalog arithmetic:
// 3 + 7*entities + 2*analytics pairs topics and 3 + 3 + 2*entities commands.
func (s Stats) Complete() bool {
	return s.Topics == s.ExpectedTopics && s.Commands == s.ExpectedCommands
}

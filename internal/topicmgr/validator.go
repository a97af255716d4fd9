package topicmgr

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

// identPattern accepts lowercase names made of alphanumeric words joined by
// single hyphens or underscores: "tables", "section-objects", "auth_user".
var identPattern = regexp.MustCompile(`^[a-z][a-z0-9]*([-_][a-z0-9]+)*$`)

// Validator checks catalogs before they are assembled.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a catalog validator with the "ident" rule registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// RegisterValidation only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
		return ValidIdent(fl.Field().String())
	})
	return &Validator{validate: v}
}

// ValidIdent reports whether name may be used as an entity key or command noun.
func ValidIdent(name string) bool {
	if len(name) > 100 {
		return false
	}
	return identPattern.MatchString(name)
}

// ValidateCatalog returns every structural problem in cat, aggregated with
// multierr. A nil result means the catalog can be assembled, though Build
// still checks the produced leaves for collisions.
func (v *Validator) ValidateCatalog(cat Catalog) error {
	var errs error
	if err := v.validate.Struct(cat); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return &TopicError{Type: ErrorValidationFailed, Message: "catalog validation failed", Cause: err}
		}
		for _, fe := range fieldErrs {
			errs = multierr.Append(errs, fieldError(fe))
		}
	}

	seenEntities := make(map[string]struct{}, len(cat.Entities))
	for _, e := range cat.Entities {
		if e.Key == "" {
			continue
		}
		if _, dup := seenEntities[e.Key]; dup {
			errs = multierr.Append(errs, &TopicError{
				Type:    ErrorDuplicateRegistration,
				Group:   e.Key,
				Message: fmt.Sprintf("entity declared twice: %s", e.Key),
			})
		}
		seenEntities[e.Key] = struct{}{}
		if e.Key == GroupSystem || e.Key == GroupAnalytics {
			errs = multierr.Append(errs, &TopicError{
				Type:    ErrorInvalidName,
				Group:   e.Key,
				Message: fmt.Sprintf("entity key %q is reserved", e.Key),
			})
		}
	}

	seenPairs := make(map[string]struct{}, len(cat.Analytics))
	for _, a := range cat.Analytics {
		if a.Entity == "" || !a.Scope.Valid() {
			continue
		}
		key := a.Key()
		if _, dup := seenPairs[key]; dup {
			errs = multierr.Append(errs, &TopicError{
				Type:    ErrorDuplicateRegistration,
				Group:   GroupAnalytics,
				Topic:   key,
				Message: fmt.Sprintf("analytics pair declared twice: %s/%s", a.Scope, a.Entity),
			})
		}
		seenPairs[key] = struct{}{}
	}

	for source, targets := range cat.Dependencies {
		if _, ok := seenEntities[source]; !ok {
			errs = multierr.Append(errs, &TopicError{
				Type:    ErrorMissingEntity,
				Group:   source,
				Message: fmt.Sprintf("dependency source is not an entity: %s", source),
			})
		}
		for _, target := range targets {
			if _, ok := seenPairs[target]; !ok {
				errs = multierr.Append(errs, &TopicError{
					Type:    ErrorMissingEntity,
					Group:   source,
					Topic:   target,
					Message: fmt.Sprintf("dependency target is not an analytics stream: %s", target),
				})
			}
		}
	}

	return errs
}

func fieldError(fe validator.FieldError) error {
	errType := ErrorValidationFailed
	switch fe.Tag() {
	case "ident", "required":
		errType = ErrorInvalidName
	case "oneof":
		errType = ErrorInvalidScope
	}
	if fe.StructField() == "Scope" {
		errType = ErrorInvalidScope
	}
	return &TopicError{
		Type:    errType,
		Topic:   fmt.Sprint(fe.Value()),
		Message: fmt.Sprintf("%s failed %q rule (value %q)", fe.Namespace(), fe.Tag(), fmt.Sprint(fe.Value())),
	}
}

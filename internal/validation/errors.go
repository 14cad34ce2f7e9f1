package validation

import (
	"fmt"
	"strings"
)

// Kind classifies a field-level violation.
type Kind string

const (
	KindMissing    Kind = "missing"
	KindEmpty      Kind = "empty"
	KindTooLong    Kind = "too_long"
	KindOutOfRange Kind = "out_of_range"
	KindNoFields   Kind = "no_fields"
	KindNoCriteria Kind = "no_criteria"
	KindInvalid    Kind = "invalid"
)

// FieldError describes one violated rule. Field is empty for errors that
// concern the request as a whole (no_fields, no_criteria).
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Failure is returned when one or more rules are violated.
// Errors is never empty.
type Failure struct {
	Errors []FieldError
}

func (f *Failure) Error() string {
	msgs := make([]string, 0, len(f.Errors))
	for _, e := range f.Errors {
		msgs = append(msgs, e.Error())
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether the failure contains an error of the given kind.
func (f *Failure) Has(kind Kind) bool {
	for _, e := range f.Errors {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// collector accumulates field errors without short-circuiting.
type collector struct {
	errs []FieldError
}

func (c *collector) add(fe *FieldError) {
	if fe != nil {
		c.errs = append(c.errs, *fe)
	}
}

func (c *collector) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return &Failure{Errors: c.errs}
}

// Merge combines the field errors of several validation results.
// Non-Failure errors are returned unchanged.
func Merge(errs ...error) error {
	var c collector
	for _, err := range errs {
		if err == nil {
			continue
		}
		f, ok := err.(*Failure)
		if !ok {
			return err
		}
		c.errs = append(c.errs, f.Errors...)
	}
	return c.err()
}

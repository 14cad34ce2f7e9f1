// Package validation checks untrusted book input before it reaches the store.
//
// Every function here is pure: no I/O and no clock access. Callers pass the
// current year explicitly. Validators collect all violated rules instead of
// stopping at the first one, so a client gets the complete list in a single
// response.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mrlokans/catalog/internal/entities"
)

const (
	FieldTitle  = "title"
	FieldAuthor = "author"
	FieldYear   = "year"
)

// BookDraft is unvalidated create or update input.
type BookDraft struct {
	Title  Optional[string] `json:"title"`
	Author Optional[string] `json:"author"`
	Year   Optional[int]    `json:"year"`
}

// ValidatedCreate is a draft that passed ValidateCreate.
type ValidatedCreate struct {
	Title  string
	Author string
	Year   *int
}

// ValidatedUpdate is a patch that passed ValidateUpdate. Nil Title or Author
// leave the stored value untouched. Year.Set with a nil Value clears the year.
type ValidatedUpdate struct {
	Title  *string
	Author *string
	Year   Optional[int]
}

// Fields lists the names of the columns the patch touches.
func (u ValidatedUpdate) Fields() []string {
	var fields []string
	if u.Title != nil {
		fields = append(fields, FieldTitle)
	}
	if u.Author != nil {
		fields = append(fields, FieldAuthor)
	}
	if u.Year.Set {
		fields = append(fields, FieldYear)
	}
	return fields
}

// ValidateYear passes nil through and rejects years outside [0, currentYear].
func ValidateYear(year *int, currentYear int) (*int, *FieldError) {
	if year == nil {
		return nil, nil
	}
	if *year < 0 || *year > currentYear {
		return nil, &FieldError{
			Field:   FieldYear,
			Kind:    KindOutOfRange,
			Message: fmt.Sprintf("Year must be between 0 and %d.", currentYear),
		}
	}
	return year, nil
}

// ValidateNonEmpty passes nil through and rejects whitespace-only strings.
// The value itself is returned untrimmed.
func ValidateNonEmpty(field string, value *string) (*string, *FieldError) {
	if value == nil {
		return nil, nil
	}
	if strings.TrimSpace(*value) == "" {
		return nil, &FieldError{
			Field:   field,
			Kind:    KindEmpty,
			Message: "Field cannot be empty string",
		}
	}
	return value, nil
}

// ValidateLength rejects strings longer than maxLen characters.
func ValidateLength(field string, value *string, maxLen int) (*string, *FieldError) {
	if value == nil {
		return nil, nil
	}
	if utf8.RuneCountInString(*value) > maxLen {
		return nil, &FieldError{
			Field:   field,
			Kind:    KindTooLong,
			Message: fmt.Sprintf("Field must be at most %d characters long", maxLen),
		}
	}
	return value, nil
}

func required(field string) *FieldError {
	return &FieldError{
		Field:   field,
		Kind:    KindMissing,
		Message: fmt.Sprintf("Field '%s' is required", field),
	}
}

func notNull(field string) *FieldError {
	return &FieldError{
		Field:   field,
		Kind:    KindEmpty,
		Message: "Field cannot be null",
	}
}

// checkText runs the non-empty and length rules and records at most one
// error for the field.
func checkText(c *collector, field string, value *string, maxLen int) *string {
	if _, fe := ValidateNonEmpty(field, value); fe != nil {
		c.add(fe)
		return nil
	}
	if _, fe := ValidateLength(field, value, maxLen); fe != nil {
		c.add(fe)
		return nil
	}
	return value
}

// ValidateCreate requires title and author and validates the optional year.
func ValidateCreate(draft BookDraft, currentYear int) (ValidatedCreate, error) {
	var c collector

	var title, author *string
	if draft.Title.Value == nil {
		c.add(required(FieldTitle))
	} else {
		title = checkText(&c, FieldTitle, draft.Title.Value, entities.TitleMaxLength)
	}
	if draft.Author.Value == nil {
		c.add(required(FieldAuthor))
	} else {
		author = checkText(&c, FieldAuthor, draft.Author.Value, entities.AuthorMaxLength)
	}

	year, fe := ValidateYear(draft.Year.Value, currentYear)
	c.add(fe)

	if err := c.err(); err != nil {
		return ValidatedCreate{}, err
	}
	return ValidatedCreate{Title: *title, Author: *author, Year: year}, nil
}

// ValidateUpdate accepts any subset of fields but at least one must be supplied.
func ValidateUpdate(draft BookDraft, currentYear int) (ValidatedUpdate, error) {
	if !draft.Title.Set && !draft.Author.Set && !draft.Year.Set {
		return ValidatedUpdate{}, &Failure{Errors: []FieldError{{
			Kind:    KindNoFields,
			Message: "At least one update criterion must be provided.",
		}}}
	}

	var c collector
	var patch ValidatedUpdate

	if draft.Title.IsNull() {
		c.add(notNull(FieldTitle))
	} else if draft.Title.Set {
		patch.Title = checkText(&c, FieldTitle, draft.Title.Value, entities.TitleMaxLength)
	}
	if draft.Author.IsNull() {
		c.add(notNull(FieldAuthor))
	} else if draft.Author.Set {
		patch.Author = checkText(&c, FieldAuthor, draft.Author.Value, entities.AuthorMaxLength)
	}
	if draft.Year.Set {
		year, fe := ValidateYear(draft.Year.Value, currentYear)
		c.add(fe)
		patch.Year = Optional[int]{Set: true, Value: year}
	}

	if err := c.err(); err != nil {
		return ValidatedUpdate{}, err
	}
	return patch, nil
}

package validation

import "strings"

// Pagination defaults and bounds.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 1000
)

// SearchCriteria is unvalidated search input. Blank strings count as absent.
type SearchCriteria struct {
	Title  *string
	Author *string
	Year   *int
}

// ValidatedSearch holds the criteria that were actually supplied.
type ValidatedSearch struct {
	Title  *string
	Author *string
	Year   *int
}

// PageInput is unvalidated pagination input. Nil means use the default.
type PageInput struct {
	Skip  *int
	Limit *int
}

// Page is a validated pagination window.
type Page struct {
	Skip  int
	Limit int
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// ValidateSearch requires at least one of title, author or year.
func ValidateSearch(criteria SearchCriteria) (ValidatedSearch, error) {
	search := ValidatedSearch{
		Title:  blankToNil(criteria.Title),
		Author: blankToNil(criteria.Author),
		Year:   criteria.Year,
	}
	if search.Title == nil && search.Author == nil && search.Year == nil {
		return ValidatedSearch{}, &Failure{Errors: []FieldError{{
			Kind:    KindNoCriteria,
			Message: "At least one search criterion must be provided.",
		}}}
	}
	return search, nil
}

// ValidatePage applies defaults and checks skip >= 0 and 1 <= limit <= MaxLimit.
func ValidatePage(input PageInput) (Page, error) {
	page := Page{Skip: DefaultSkip, Limit: DefaultLimit}
	var c collector

	if input.Skip != nil {
		if *input.Skip < 0 {
			c.add(&FieldError{Field: "skip", Kind: KindInvalid, Message: "skip must be greater than or equal to 0"})
		} else {
			page.Skip = *input.Skip
		}
	}
	if input.Limit != nil {
		if *input.Limit < 1 || *input.Limit > MaxLimit {
			c.add(&FieldError{Field: "limit", Kind: KindInvalid, Message: "limit must be between 1 and 1000"})
		} else {
			page.Limit = *input.Limit
		}
	}

	if err := c.err(); err != nil {
		return Page{}, err
	}
	return page, nil
}

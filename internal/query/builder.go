// Package query composes book search statements.
//
// Statements are rendered with goqu's default dialect: "?" placeholders and
// double-quoted identifiers, which both SQLite and PostgreSQL accept once gorm
// rebinds the placeholders for the active driver.
package query

import (
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	dialectDefault = "default"
	colID          = "id"
	colTitle       = "title"
	colAuthor      = "author"
	colYear        = "year"
	likeEscape     = `\`
	containsFold   = "LOWER(?) LIKE LOWER(?) ESCAPE '" + likeEscape + "'"
)

// Criteria is the set of optional search filters. Nil fields are ignored.
type Criteria struct {
	Title  *string
	Author *string
	Year   *int
}

// Empty reports whether no filter is set.
func (c Criteria) Empty() bool {
	return c.Title == nil && c.Author == nil && c.Year == nil
}

// Bounds is the pagination window. Bounds are assumed valid.
type Bounds struct {
	Skip  int
	Limit int
}

// Statement is a rendered SQL query with its positional arguments.
type Statement struct {
	SQL  string
	Args []any
}

func (s Statement) String() string {
	return fmt.Sprintf("%s %v", s.SQL, s.Args)
}

// Builder renders select statements against a single table.
type Builder struct {
	table   string
	dialect goqu.DialectWrapper
}

// NewBuilder creates a builder for the given table.
func NewBuilder(table string) *Builder {
	return &Builder{
		table:   table,
		dialect: goqu.Dialect(dialectDefault),
	}
}

// Predicate combines the supplied criteria with AND. It returns nil when no
// criteria are set, meaning every row matches.
func Predicate(c Criteria) exp.Expression {
	var exprs []exp.Expression
	if c.Title != nil {
		exprs = append(exprs, contains(colTitle, *c.Title))
	}
	if c.Author != nil {
		exprs = append(exprs, contains(colAuthor, *c.Author))
	}
	if c.Year != nil {
		exprs = append(exprs, goqu.C(colYear).Eq(*c.Year))
	}
	if len(exprs) == 0 {
		return nil
	}
	return goqu.And(exprs...)
}

// Build renders the select for the given criteria and window, ordered by id.
func (b *Builder) Build(c Criteria, bounds Bounds) (Statement, error) {
	ds := b.dialect.From(b.table).
		Prepared(true).
		Order(goqu.I(colID).Asc()).
		Limit(uint(bounds.Limit)).
		Offset(uint(bounds.Skip))

	if pred := Predicate(c); pred != nil {
		ds = ds.Where(pred)
	}

	sql, args, err := ds.ToSQL()
	if err != nil {
		return Statement{}, fmt.Errorf("failed to build select query: %w", err)
	}
	return Statement{SQL: sql, Args: args}, nil
}

// contains matches col case-insensitively against value as a literal substring.
func contains(col, value string) exp.Expression {
	return goqu.L(containsFold, goqu.I(col), "%"+escapeLike(value)+"%")
}

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// escapeLike neutralises LIKE wildcards in user input.
func escapeLike(s string) string {
	return likeReplacer.Replace(s)
}

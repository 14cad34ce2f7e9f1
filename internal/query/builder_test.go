package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder("books")

	t.Run("unconstrained list", func(t *testing.T) {
		stmt, err := b.Build(Criteria{}, Bounds{Skip: 0, Limit: 100})
		require.NoError(t, err)

		assert.Contains(t, stmt.SQL, `FROM "books"`)
		assert.NotContains(t, stmt.SQL, "WHERE")
		assert.Contains(t, stmt.SQL, `ORDER BY "id" ASC`)
		assert.Contains(t, stmt.SQL, "LIMIT ?")
	})

	t.Run("offset is rendered when skipping", func(t *testing.T) {
		stmt, err := b.Build(Criteria{}, Bounds{Skip: 100, Limit: 100})
		require.NoError(t, err)
		assert.Contains(t, stmt.SQL, "OFFSET ?")
		assert.Len(t, stmt.Args, 2)
	})

	t.Run("title criterion uses case-insensitive containment", func(t *testing.T) {
		stmt, err := b.Build(Criteria{Title: strPtr("Alice")}, Bounds{Limit: 10})
		require.NoError(t, err)

		assert.Contains(t, stmt.SQL, `LOWER("title") LIKE LOWER(?) ESCAPE '\'`)
		require.NotEmpty(t, stmt.Args)
		assert.Equal(t, "%Alice%", stmt.Args[0])
	})

	t.Run("criteria are combined with AND", func(t *testing.T) {
		stmt, err := b.Build(Criteria{
			Title:  strPtr("dune"),
			Author: strPtr("herbert"),
			Year:   intPtr(1965),
		}, Bounds{Limit: 10})
		require.NoError(t, err)

		assert.Contains(t, stmt.SQL, `LOWER("title")`)
		assert.Contains(t, stmt.SQL, `LOWER("author")`)
		assert.Contains(t, stmt.SQL, `"year" = ?`)
		assert.Contains(t, stmt.SQL, " AND ")
		assert.Equal(t, "%dune%", stmt.Args[0])
		assert.Equal(t, "%herbert%", stmt.Args[1])
	})
}

func TestCriteria_Empty(t *testing.T) {
	assert.True(t, Criteria{}.Empty())
	assert.False(t, Criteria{Year: intPtr(0)}.Empty())
	assert.Nil(t, Predicate(Criteria{}))
}

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"plain":   "plain",
		"100%":    `100\%`,
		"a_b":     `a\_b`,
		`back\sl`: `back\\sl`,
	}
	for in, want := range tests {
		assert.Equal(t, want, escapeLike(in), "input %q", in)
	}
}

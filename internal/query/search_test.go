package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSearchTerm(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"red-shoe", "red shoe"},
		{"red_shoe", "red shoe"},
		{"  red   shoe  ", "red shoe"},
		{"red--_shoe", "red shoe"},
		{"---", ""},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSearchTerm(tt.raw))
		})
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% cotton`, EscapeLike("100% cotton"))
	assert.Equal(t, `a\\b`, EscapeLike(`a\b`))
}

func TestCompileSearch_BlankTerm(t *testing.T) {
	for _, raw := range []string{"", "  ", "-_-"} {
		_, ok := CompileSearch(raw)
		assert.False(t, ok, raw)
	}
}

func TestCompileSearch(t *testing.T) {
	stmt, ok := CompileSearch("Red-Shoe")
	require.True(t, ok)

	assert.Equal(t, "SELECT prd.id, prd.title, prd.pictures, prd.slug, prd.tags FROM products prd"+
		" WHERE (prd.title ILIKE @pattern OR @term = ANY(prd.tags) OR EXISTS (SELECT 1 FROM unnest(prd.tags) AS tag"+
		" WHERE tag ILIKE @pattern OR lower(tag) IN (@word0, @word1)))"+
		" ORDER BY prd.title ASC", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"pattern": "%Red Shoe%",
		"term":    "Red Shoe",
		"word0":   "red",
		"word1":   "shoe",
	}, stmt.Params)
}

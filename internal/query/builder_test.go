package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileProductList_NoFilters(t *testing.T) {
	stmts := CompileProductList(nil, 10, 10)

	assert.NotContains(t, stmts.Data.SQL, "WHERE")
	assert.True(t, strings.HasSuffix(stmts.Data.SQL,
		" GROUP BY prd.id, brd.id, brd.name, brd.slug ORDER BY prd.created_at DESC, prd.id DESC LIMIT @limit OFFSET @offset"))
	assert.Equal(t, map[string]interface{}{"limit": 10, "offset": 10}, stmts.Data.Params)

	assert.Equal(t, "SELECT COUNT(DISTINCT prd.id) FROM products prd"+
		" LEFT JOIN categories cat ON cat.id = ANY(prd.category_ids)"+
		" LEFT JOIN brands brd ON brd.id = prd.brand_id", stmts.Count.SQL)
	assert.Nil(t, stmts.Count.Params)
	assert.Nil(t, stmts.Count.Args())
}

func TestCompileProductList_SharesWhereWithCount(t *testing.T) {
	preds := ProductFilter{Type: "shoe", Brands: []string{"acme"}}.Predicates()
	stmts := CompileProductList(preds, 20, 0)

	where := " WHERE prd.type = @type AND brd.slug IN (@brand0)"
	assert.Contains(t, stmts.Data.SQL, where+" GROUP BY")
	assert.True(t, strings.HasSuffix(stmts.Count.SQL, where))

	assert.Equal(t, map[string]interface{}{"type": "shoe", "brand0": "acme"}, stmts.Count.Params)
	assert.Equal(t, map[string]interface{}{"type": "shoe", "brand0": "acme", "limit": 20, "offset": 0}, stmts.Data.Params)
}

func TestCompileProductList_CountHasNoPagination(t *testing.T) {
	stmts := CompileProductList(PredicateSet{True("prd.is_featured")}, 10, 0)

	assert.NotContains(t, stmts.Count.SQL, "LIMIT")
	assert.NotContains(t, stmts.Count.SQL, "ORDER BY")
	assert.NotContains(t, stmts.Count.SQL, "GROUP BY")
}

func TestCompileProductList_CategoriesNeverNull(t *testing.T) {
	stmts := CompileProductList(nil, 10, 0)

	assert.Contains(t, stmts.Data.SQL, "FILTER (WHERE cat.id IS NOT NULL), '[]'::json) AS categories")
}

func TestCompileCategoryProducts(t *testing.T) {
	stmts := CompileCategoryProducts("shoes", 10, 0)

	assert.Contains(t, stmts.Data.SQL, "fc.slug = @category")
	assert.Equal(t, map[string]interface{}{"category": "shoes"}, stmts.Count.Params)
}

func TestCompileBrandProducts(t *testing.T) {
	stmts := CompileBrandProducts("acme", 10, 0)

	assert.Contains(t, stmts.Data.SQL, " WHERE brd.slug = @brand GROUP BY")
	assert.Equal(t, map[string]interface{}{"brand": "acme"}, stmts.Count.Params)
}

func TestStatement_Args(t *testing.T) {
	stmt := Statement{SQL: "SELECT 1 WHERE a = @a", Params: map[string]interface{}{"a": 1}}

	assert.Equal(t, []interface{}{map[string]interface{}{"a": 1}}, stmt.Args())
}

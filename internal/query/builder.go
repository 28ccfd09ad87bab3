package query

import "strings"

// Statement is a compiled SQL statement with its named parameters.
// Params is nil when the statement binds nothing.
type Statement struct {
	SQL    string
	Params map[string]interface{}
}

// Args returns the arguments to pass alongside SQL to gorm's Raw. A statement
// without parameters must be issued with no arguments at all.
func (s Statement) Args() []interface{} {
	if len(s.Params) == 0 {
		return nil
	}
	return []interface{}{s.Params}
}

// ListStatements is the pair issued for a paginated listing. Both share the
// same joins and WHERE clause.
type ListStatements struct {
	Data  Statement
	Count Statement
}

const (
	productListColumns = "prd.id, prd.title, prd.slug, prd.pictures, prd.price, prd.moq, prd.status, prd.is_featured, prd.created_at, " +
		"COALESCE(json_agg(json_build_object('id', cat.id, 'name', cat.name, 'slug', cat.slug, 'image', cat.image) " +
		"ORDER BY array_position(prd.category_ids, cat.id)) FILTER (WHERE cat.id IS NOT NULL), '[]'::json) AS categories, " +
		"COALESCE(brd.name, '') AS brand, COALESCE(brd.slug, '') AS brand_slug"

	productListFrom = " FROM products prd" +
		" LEFT JOIN categories cat ON cat.id = ANY(prd.category_ids)" +
		" LEFT JOIN brands brd ON brd.id = prd.brand_id"

	productListGroupBy = " GROUP BY prd.id, brd.id, brd.name, brd.slug"
	productListOrderBy = " ORDER BY prd.created_at DESC, prd.id DESC"
)

// CompileProductList compiles the data and count statements for a listing
// filtered by preds. The data statement returns one row per product, newest
// first, windowed by limit and offset.
func CompileProductList(preds PredicateSet, limit, offset int) ListStatements {
	where := preds.Where()

	var data strings.Builder
	data.WriteString("SELECT ")
	data.WriteString(productListColumns)
	data.WriteString(productListFrom)
	data.WriteString(where)
	data.WriteString(productListGroupBy)
	data.WriteString(productListOrderBy)
	data.WriteString(" LIMIT @limit OFFSET @offset")

	dataParams := preds.Params()
	dataParams["limit"] = limit
	dataParams["offset"] = offset

	// A product with several categories joins to several rows before grouping.
	count := Statement{
		SQL: "SELECT COUNT(DISTINCT prd.id)" + productListFrom + where,
	}
	if params := preds.Params(); len(params) > 0 {
		count.Params = params
	}

	return ListStatements{
		Data:  Statement{SQL: data.String(), Params: dataParams},
		Count: count,
	}
}

// CompileCategoryProducts compiles the listing of a single category.
func CompileCategoryProducts(slug string, limit, offset int) ListStatements {
	return CompileProductList(PredicateSet{CategoryIs(slug)}, limit, offset)
}

// CompileBrandProducts compiles the listing of a single brand.
func CompileBrandProducts(slug string, limit, offset int) ListStatements {
	return CompileProductList(PredicateSet{BrandIs(slug)}, limit, offset)
}

package query

// Each relation is folded in its own lateral subquery so the root row is
// never multiplied by the product of the relation sizes. COALESCE turns an
// empty relation into [] rather than NULL.
const productDetailSQL = "SELECT prd.id, prd.title, prd.slug, prd.description, prd.custom_description, prd.pictures, prd.tags, prd.sku, " +
	"prd.price, prd.moq, prd.status, prd.is_featured, prd.meta_title, prd.meta_description, " +
	"cats.categories, rel.related_products, brd.brand" +
	" FROM products prd" +
	" LEFT JOIN LATERAL (SELECT COALESCE(json_agg(json_build_object('id', c.id, 'name', c.name, 'slug', c.slug, 'image', c.image)" +
	" ORDER BY array_position(prd.category_ids, c.id)), '[]'::json) AS categories" +
	" FROM categories c WHERE c.id = ANY(prd.category_ids)) cats ON true" +
	" LEFT JOIN LATERAL (SELECT COALESCE(json_agg(json_build_object('id', r.id, 'title', r.title, 'slug', r.slug, 'description', r.description," +
	" 'custom_description', r.custom_description, 'pictures', COALESCE(r.pictures, ARRAY[]::text[]), 'tags', COALESCE(r.tags, ARRAY[]::text[]), 'sku', r.sku)" +
	" ORDER BY array_position(prd.related_products, r.id)), '[]'::json) AS related_products" +
	" FROM products r WHERE r.id = ANY(prd.related_products)) rel ON true" +
	" LEFT JOIN LATERAL (SELECT COALESCE(json_agg(json_build_object('id', b.id, 'name', b.name, 'slug', b.slug)), '[]'::json) AS brand" +
	" FROM brands b WHERE b.id = prd.brand_id) brd ON true" +
	" WHERE prd.slug = @slug" +
	" LIMIT 1"

// CompileProductDetail compiles the aggregated single-product view: the
// product row with its categories, related products and brand folded into
// JSON arrays.
func CompileProductDetail(slug string) Statement {
	return Statement{
		SQL:    productDetailSQL,
		Params: map[string]interface{}{"slug": slug},
	}
}

package query

import (
	"strconv"
	"strings"
)

// Recognized filter keys of the product listing.
const (
	KeyType       = "type"
	KeyFeatured   = "featured"
	KeyCategories = "categories"
	KeyBrands     = "brands"
)

// SlugSeparator joins several slugs in one filter value ("shoes_bags").
const SlugSeparator = "_"

// ProductFilter is the typed form of the listing filters. Zero values mean
// the filter is absent.
type ProductFilter struct {
	Type       string
	Featured   bool
	Categories []string
	Brands     []string
}

// ParseProductFilter reads the recognized keys from values. Unknown keys
// are ignored.
func ParseProductFilter(values map[string]string) ProductFilter {
	return ProductFilter{
		Type:       strings.TrimSpace(values[KeyType]),
		Featured:   isTrue(values[KeyFeatured]),
		Categories: SplitSlugs(values[KeyCategories]),
		Brands:     SplitSlugs(values[KeyBrands]),
	}
}

// SplitSlugs splits an underscore-joined slug list, dropping blank segments.
func SplitSlugs(raw string) []string {
	var slugs []string
	for _, s := range strings.Split(raw, SlugSeparator) {
		if s = strings.TrimSpace(s); s != "" {
			slugs = append(slugs, s)
		}
	}
	return slugs
}

func isTrue(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}

// Predicates converts the filter into an ordered predicate set.
func (f ProductFilter) Predicates() PredicateSet {
	var set PredicateSet
	if f.Type != "" {
		set = set.With(Eq("prd.type", "type", f.Type))
	}
	if f.Featured {
		set = set.With(True("prd.is_featured"))
	}
	if len(f.Categories) > 0 {
		set = set.With(InCategories(f.Categories))
	}
	if len(f.Brands) > 0 {
		set = set.With(In("brd.slug", "brand", f.Brands))
	}
	return set
}

// InCategories matches products that belong to at least one of the given
// category slugs. It tests membership with EXISTS so the joined category
// array of each row stays complete.
func InCategories(slugs []string) Predicate {
	placeholders, params := bindList("category", slugs)
	return Predicate{
		Fragment: "EXISTS (SELECT 1 FROM categories fc WHERE fc.id = ANY(prd.category_ids) AND fc.slug IN (" + placeholders + "))",
		Params:   params,
	}
}

// CategoryIs matches products belonging to the category with the given slug.
func CategoryIs(slug string) Predicate {
	return Predicate{
		Fragment: "EXISTS (SELECT 1 FROM categories fc WHERE fc.id = ANY(prd.category_ids) AND fc.slug = @category)",
		Params:   []Param{{Name: "category", Value: slug}},
	}
}

// BrandIs matches products owned by the brand with the given slug.
func BrandIs(slug string) Predicate {
	return Eq("brd.slug", "brand", slug)
}

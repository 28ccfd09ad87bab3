package query

import (
	"strings"
)

const searchSQL = "SELECT prd.id, prd.title, prd.pictures, prd.slug, prd.tags FROM products prd"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// NormalizeSearchTerm turns a slug-like term into plain words: hyphens and
// underscores become spaces, runs of whitespace collapse and the ends are
// trimmed. "red-shoe" becomes "red shoe".
func NormalizeSearchTerm(raw string) string {
	replaced := strings.NewReplacer("-", " ", "_", " ").Replace(raw)
	return strings.Join(strings.Fields(replaced), " ")
}

// EscapeLike escapes LIKE wildcards so the term matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Matches is a case-insensitive substring match of a normalized term against
// the title and tags. A tag also matches when it equals any single word of
// the term.
func Matches(term string) Predicate {
	words := strings.Fields(strings.ToLower(term))
	placeholders, params := bindList("word", words)

	return Predicate{
		Fragment: "(prd.title ILIKE @pattern OR @term = ANY(prd.tags) OR EXISTS (SELECT 1 FROM unnest(prd.tags) AS tag" +
			" WHERE tag ILIKE @pattern OR lower(tag) IN (" + placeholders + ")))",
		Params: append([]Param{
			{Name: "pattern", Value: "%" + EscapeLike(term) + "%"},
			{Name: "term", Value: term},
		}, params...),
	}
}

// CompileSearch normalizes raw and compiles the search statement. ok is false
// when the term is blank, in which case nothing should be queried.
func CompileSearch(raw string) (stmt Statement, ok bool) {
	term := NormalizeSearchTerm(raw)
	if term == "" {
		return Statement{}, false
	}

	preds := PredicateSet{Matches(term)}
	return Statement{
		SQL:    searchSQL + preds.Where() + " ORDER BY prd.title ASC",
		Params: preds.Params(),
	}, true
}

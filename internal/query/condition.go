package query

import (
	"fmt"
	"strings"
)

// Param is a named value bound to a placeholder (@Name) in a fragment.
type Param struct {
	Name  string
	Value interface{}
}

// Predicate is a single WHERE condition. Values never appear in Fragment,
// only in Params.
type Predicate struct {
	Fragment string
	Params   []Param
}

// Eq creates an equality predicate bound to a single named parameter.
// Example: Eq("prd.type", "type", "shoe") generates "prd.type = @type"
func Eq(column, name string, value interface{}) Predicate {
	return Predicate{
		Fragment: fmt.Sprintf("%s = @%s", column, name),
		Params:   []Param{{Name: name, Value: value}},
	}
}

// True creates a predicate on a boolean column with no parameters.
func True(column string) Predicate {
	return Predicate{Fragment: fmt.Sprintf("%s = true", column)}
}

// In creates a membership predicate with one parameter per value, named
// prefix0, prefix1, ...
// Example: In("brd.slug", "brand", []string{"acme", "zeta"}) generates
// "brd.slug IN (@brand0, @brand1)"
func In(column, prefix string, values []string) Predicate {
	placeholders, params := bindList(prefix, values)
	return Predicate{
		Fragment: fmt.Sprintf("%s IN (%s)", column, placeholders),
		Params:   params,
	}
}

func bindList(prefix string, values []string) (string, []Param) {
	names := make([]string, 0, len(values))
	params := make([]Param, 0, len(values))
	for i, v := range values {
		name := fmt.Sprintf("%s%d", prefix, i)
		names = append(names, "@"+name)
		params = append(params, Param{Name: name, Value: v})
	}
	return strings.Join(names, ", "), params
}

// PredicateSet is an ordered conjunction of predicates.
type PredicateSet []Predicate

// With returns a new set with p appended; the receiver is left untouched.
func (s PredicateSet) With(p ...Predicate) PredicateSet {
	out := make(PredicateSet, 0, len(s)+len(p))
	out = append(out, s...)
	return append(out, p...)
}

// Where renders " WHERE a AND b", or an empty string for an empty set.
func (s PredicateSet) Where() string {
	if len(s) == 0 {
		return ""
	}
	parts := make([]string, 0, len(s))
	for _, p := range s {
		parts = append(parts, p.Fragment)
	}
	return " WHERE " + strings.Join(parts, " AND ")
}

// Params merges the parameters of every predicate into one bound map.
func (s PredicateSet) Params() map[string]interface{} {
	params := make(map[string]interface{})
	for _, p := range s {
		for _, param := range p.Params {
			params[param.Name] = param.Value
		}
	}
	return params
}

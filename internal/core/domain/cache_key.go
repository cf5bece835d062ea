package domain

import (
	"fmt"
	"strings"
)

// Kind names a remote resource collection.
type Kind string

const (
	KindUsers    Kind = "users"
	KindProducts Kind = "products"
)

// Singular returns the capitalized singular noun, e.g. "User".
func (k Kind) Singular() string {
	s := strings.TrimSuffix(string(k), "s")
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}

// Operation distinguishes the request shapes cached for a kind.
type Operation string

const (
	OpList   Operation = "list"
	OpItem   Operation = "item"
	OpLookup Operation = "lookup"
)

// CacheKey identifies a cached response by every parameter that shapes it.
// It is a comparable value: two keys are the same entry iff all fields are equal.
type CacheKey struct {
	Kind   Kind
	Op     Operation
	Limit  int
	Skip   int
	Query  string
	Filter string
	ID     int
	Name   string
}

// ListKey is the key for a collection page.
func ListKey(kind Kind, limit, skip int, query, filter string) CacheKey {
	return CacheKey{Kind: kind, Op: OpList, Limit: limit, Skip: skip, Query: query, Filter: filter}
}

// ItemKey is the key for a single record.
func ItemKey(kind Kind, id int) CacheKey {
	return CacheKey{Kind: kind, Op: OpItem, ID: id}
}

// LookupKey is the key for a parameterless lookup such as the category list.
func LookupKey(kind Kind, name string) CacheKey {
	return CacheKey{Kind: kind, Op: OpLookup, Name: name}
}

// String renders the key deterministically. Free-text fields are quoted so
// separators inside a query or filter cannot make two keys render the same.
func (k CacheKey) String() string {
	switch k.Op {
	case OpItem:
		return fmt.Sprintf("%s:%s:%d", k.Kind, k.Op, k.ID)
	case OpLookup:
		return fmt.Sprintf("%s:%s:%q", k.Kind, k.Op, k.Name)
	default:
		return fmt.Sprintf("%s:%s:limit=%d:skip=%d:q=%q:filter=%q", k.Kind, k.Op, k.Limit, k.Skip, k.Query, k.Filter)
	}
}

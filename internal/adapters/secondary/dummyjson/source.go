package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/parths19/Admin-Dashboard/internal/core/domain"
)

type pageParams struct {
	Limit int    `url:"limit"`
	Skip  int    `url:"skip"`
	Q     string `url:"q,omitempty"`
	Key   string `url:"key,omitempty"`
	Value string `url:"value,omitempty"`
}

// filterRoute maps a filter value to the endpoint path and parameters.
type filterRoute func(filter string, params pageParams) (string, pageParams, error)

// Source reads one DummyJSON collection (users or products).
type Source[T any] struct {
	client   *Client
	resource string
	filter   filterRoute
}

// NewUserSource creates the users source. Filters are "key=value" pairs
// passed to /users/filter, e.g. "hair.color=Brown".
func NewUserSource(client *Client) *Source[domain.User] {
	return &Source[domain.User]{
		client:   client,
		resource: string(domain.KindUsers),
		filter: func(filter string, params pageParams) (string, pageParams, error) {
			key, value, ok := strings.Cut(filter, "=")
			if !ok || key == "" {
				return "", params, fmt.Errorf("invalid users filter %q: want key=value", filter)
			}
			params.Key, params.Value = key, value

			return "/users/filter", params, nil
		},
	}
}

// List returns one page of the collection.
func (s *Source[T]) List(ctx context.Context, limit, skip int) (*domain.Page[T], error) {
	return s.page(ctx, "/"+s.resource, pageParams{Limit: limit, Skip: skip})
}

// Search returns one page of records matching the free-text query.
func (s *Source[T]) Search(ctx context.Context, q string, limit, skip int) (*domain.Page[T], error) {
	return s.page(ctx, "/"+s.resource+"/search", pageParams{Limit: limit, Skip: skip, Q: q})
}

// Filter returns one page of records matching filter.
func (s *Source[T]) Filter(ctx context.Context, filter string, limit, skip int) (*domain.Page[T], error) {
	path, params, err := s.filter(filter, pageParams{Limit: limit, Skip: skip})
	if err != nil {
		return nil, err
	}

	return s.page(ctx, path, params)
}

// Get returns one record by id.
func (s *Source[T]) Get(ctx context.Context, id int) (*T, error) {
	var item T
	if err := s.client.get(ctx, "/"+s.resource+"/"+strconv.Itoa(id), nil, &item); err != nil {
		return nil, fmt.Errorf("failed to get %s %d: %w", s.resource, id, err)
	}

	return &item, nil
}

// page fetches a collection envelope such as
// {"users": [...], "total": 208, "skip": 0, "limit": 10}.
func (s *Source[T]) page(ctx context.Context, path string, params pageParams) (*domain.Page[T], error) {
	var raw map[string]json.RawMessage
	if err := s.client.get(ctx, path, params, &raw); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.resource, err)
	}

	page := &domain.Page[T]{Items: []T{}}

	if items, ok := raw[s.resource]; ok {
		if err := json.Unmarshal(items, &page.Items); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", s.resource, err)
		}
	}

	for field, dst := range map[string]*int{"total": &page.Total, "skip": &page.Skip, "limit": &page.Limit} {
		if v, ok := raw[field]; ok {
			if err := json.Unmarshal(v, dst); err != nil {
				return nil, fmt.Errorf("failed to decode %s %s: %w", s.resource, field, err)
			}
		}
	}

	return page, nil
}

// ProductSource is the products source plus the category list.
type ProductSource struct {
	*Source[domain.Product]
}

// NewProductSource creates the products source. Filters are category slugs.
func NewProductSource(client *Client) *ProductSource {
	return &ProductSource{
		Source: &Source[domain.Product]{
			client:   client,
			resource: string(domain.KindProducts),
			filter: func(slug string, params pageParams) (string, pageParams, error) {
				return "/products/category/" + url.PathEscape(slug), params, nil
			},
		},
	}
}

// Categories lists product categories. Older API versions return bare slugs,
// which are mapped to categories named after the slug.
func (s *ProductSource) Categories(ctx context.Context) ([]domain.Category, error) {
	var raw []json.RawMessage
	if err := s.client.get(ctx, "/products/categories", nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(raw))
	for _, r := range raw {
		var slug string
		if json.Unmarshal(r, &slug) == nil {
			categories = append(categories, domain.Category{Slug: slug, Name: slug})

			continue
		}

		var c domain.Category
		if err := json.Unmarshal(r, &c); err != nil {
			return nil, fmt.Errorf("failed to decode category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, nil
}

package ascii

import (
	"strings"
	"testing"

	"github.com/parths19/Admin-Dashboard/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUsers(t *testing.T) {
	users := []domain.User{
		{ID: 1, FirstName: "Emily", LastName: "Johnson", Username: "emilys", Email: "emily.johnson@x.dummyjson.com"},
		{ID: 2, FirstName: "Michael", LastName: "Williams", Username: "michaelw", Email: "michael.williams@x.dummyjson.com"},
	}

	out, err := FormatUsers(users, 208, 10, 10)
	require.NoError(t, err)

	assert.Contains(t, out, "Emily Johnson")
	assert.Contains(t, out, "michaelw")
	assert.Contains(t, out, "Page 2/21, 208 total")
}

func TestFormatUsers_Empty(t *testing.T) {
	out, err := FormatUsers(nil, 0, 0, 10)
	require.NoError(t, err)

	assert.Contains(t, out, "No users found")
	assert.Contains(t, out, "Page 0/0, 0 total")
}

func TestFormatProducts(t *testing.T) {
	products := []domain.Product{
		{ID: 121, Title: "iPhone 5s", Category: "smartphones", Price: 199.99, Rating: 2.83},
	}

	out, err := FormatProducts(products, 16, 0, 12)
	require.NoError(t, err)

	assert.Contains(t, out, "iPhone 5s")
	assert.Contains(t, out, "$199.99")
	assert.Contains(t, out, "★★★☆☆")
	assert.Contains(t, out, "Page 1/2, 16 total")
}

func TestFormatProduct(t *testing.T) {
	p := &domain.Product{
		ID:                 1,
		Title:              "Essence Mascara Lash Princess",
		Category:           "beauty",
		Brand:              "Essence",
		Price:              9.99,
		DiscountPercentage: 7.17,
		Rating:             4.94,
		Stock:              5,
		Description:        "The Essence Mascara Lash Princess is a popular mascara.\n\nIt is cruelty free.",
		Reviews: []domain.Review{
			{Rating: 2, Comment: "Very unhappy with my purchase!", ReviewerName: "John Doe"},
		},
	}

	out, err := FormatProduct(p)
	require.NoError(t, err)

	assert.Contains(t, out, "Brand:     Essence")
	assert.Contains(t, out, "$9.99 (-7.17%)")
	assert.Contains(t, out, "★★★★★ 4.94")
	assert.Contains(t, out, "popular mascara.; It is cruelty free.")
	assert.Contains(t, out, "★★☆☆☆ John Doe: Very unhappy with my purchase!")
}

func TestFormatUser(t *testing.T) {
	u := &domain.User{
		ID: 1, FirstName: "Emily", LastName: "Johnson", Username: "emilys", Age: 28, Gender: "female",
		Company: domain.Company{Name: "Dooley, Kozey and Cronin", Title: "Sales Manager"},
		Address: domain.Address{Address: "626 Main Street", City: "Phoenix", Country: "United States"},
	}

	out, err := FormatUser(u)
	require.NoError(t, err)

	assert.Contains(t, out, "Emily Johnson")
	assert.Contains(t, out, "Age:       28 (female)")
	assert.Contains(t, out, "Dooley, Kozey and Cronin, Sales Manager")
	assert.NotContains(t, out, "Role:")
}

func TestFormatCategories(t *testing.T) {
	out, err := FormatCategories([]domain.Category{{Slug: "mens-shirts", Name: "Mens Shirts"}})
	require.NoError(t, err)

	assert.Contains(t, out, "mens-shirts")
	assert.Contains(t, out, "Mens Shirts")
}

func TestFormatSession(t *testing.T) {
	tests := []struct {
		name   string
		user   *domain.Profile
		status domain.SessionStatus
		want   string
	}{
		{
			name:   "authenticated",
			user:   &domain.Profile{Username: "emilys", FirstName: "Emily", LastName: "Johnson", Email: "e@x.com"},
			status: domain.StatusAuthenticated,
			want:   "(Emily Johnson, e@x.com)",
		},
		{
			name:   "anonymous",
			status: domain.StatusAnonymous,
			want:   "Not logged in (anonymous)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FormatSession(tt.user, tt.status)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestFormatCacheStats(t *testing.T) {
	out, err := FormatCacheStats(map[domain.Kind]domain.CacheStats{
		domain.KindUsers:    {Entries: 3, Hits: 7, Misses: 3},
		domain.KindProducts: {Entries: 1, Hits: 0, Misses: 1, Evictions: 2},
	})
	require.NoError(t, err)

	products := strings.Index(out, "products")
	users := strings.Index(out, "users")
	require.NotEqual(t, -1, products)
	require.NotEqual(t, -1, users)
	assert.Less(t, products, users, "rows are sorted by store")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		text string
		n    int
		want string
	}{
		{text: "short", n: 10, want: "short"},
		{text: "exactly10!", n: 10, want: "exactly10!"},
		{text: "this is too long", n: 10, want: "this is..."},
		{text: "ñññññ", n: 4, want: "ñ..."},
		{text: "abcdef", n: 2, want: "ab"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, truncate(tt.text, tt.n))
	}
}

func TestStars(t *testing.T) {
	assert.Equal(t, "☆☆☆☆☆", stars(0))
	assert.Equal(t, "★★★★★", stars(4.94))
	assert.Equal(t, "★★★★★", stars(7))
	assert.Equal(t, "★★★☆☆", stars(2.5))
}

func TestFormatBoxTitle(t *testing.T) {
	plain := formatBoxTitle("Users")
	bolded := formatBoxTitle("\033[1mUsers\033[0m")

	assert.Equal(t,
		strings.Count(plain, "─"),
		strings.Count(bolded, "─"),
		"escape codes do not count towards the width")
	assert.True(t, strings.HasPrefix(plain, "┌─ Users "))
	assert.True(t, strings.HasSuffix(plain, "┐"))
}

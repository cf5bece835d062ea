package ascii

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"sort"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/parths19/Admin-Dashboard/internal/core/domain"
)

const (
	descriptionMaxLen = 100
	descriptionTrunc  = 97
	boxWidth          = 100
	boxTitlePadding   = 5
	boxBottomPadding  = 2
	maxStars          = 5
)

var (
	//go:embed users.tmpl
	usersTemplate string

	//go:embed user.tmpl
	userTemplate string

	//go:embed products.tmpl
	productsTemplate string

	//go:embed product.tmpl
	productTemplate string

	//go:embed categories.tmpl
	categoriesTemplate string

	//go:embed session.tmpl
	sessionTemplate string

	//go:embed cache_stats.tmpl
	cacheStatsTemplate string
)

// PageData holds one page of a listing for templates.
type PageData[T any] struct {
	Items []T
	Total int
	Page  int
	Pages int
}

// SessionData holds the session summary for templates.
type SessionData struct {
	User   *domain.Profile
	Status string
}

// CacheStatsRow is one store's line in the cache table.
type CacheStatsRow struct {
	Kind string
	domain.CacheStats
}

func newPageData[T any](items []T, total, skip, limit int) PageData[T] {
	data := PageData[T]{
		Items: items,
		Total: total,
		Pages: domain.TotalPages(total, limit),
	}
	if data.Pages > 0 {
		data.Page = skip/limit + 1
	}

	return data
}

// FormatUsers formats one page of users.
func FormatUsers(users []domain.User, total, skip, limit int) (string, error) {
	return execute("users", usersTemplate, newPageData(users, total, skip, limit))
}

// FormatUser formats a single user.
func FormatUser(user *domain.User) (string, error) {
	return execute("user", userTemplate, user)
}

// FormatProducts formats one page of products.
func FormatProducts(products []domain.Product, total, skip, limit int) (string, error) {
	return execute("products", productsTemplate, newPageData(products, total, skip, limit))
}

// FormatProduct formats a single product with its reviews.
func FormatProduct(product *domain.Product) (string, error) {
	return execute("product", productTemplate, product)
}

// FormatCategories formats the category list.
func FormatCategories(categories []domain.Category) (string, error) {
	return execute("categories", categoriesTemplate, categories)
}

// FormatSession formats a one-line session summary.
func FormatSession(user *domain.Profile, status domain.SessionStatus) (string, error) {
	return execute("session", sessionTemplate, SessionData{User: user, Status: status.String()})
}

// FormatCacheStats formats cache counters, one row per store.
func FormatCacheStats(stats map[domain.Kind]domain.CacheStats) (string, error) {
	rows := make([]CacheStatsRow, 0, len(stats))
	for kind, s := range stats {
		rows = append(rows, CacheStatsRow{Kind: string(kind), CacheStats: s})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Kind < rows[j].Kind })

	return execute("cacheStats", cacheStatsTemplate, rows)
}

func execute(name, templateStr string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs()).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatBoxTitle":      formatBoxTitle,
		"formatBoxBottom":     formatBoxBottom,
		"truncateDescription": truncateDescription,
		"truncate":            truncate,
		"price":               price,
		"stars":               stars,
		"float": func(i int) float64 {
			return float64(i)
		},
		"bold": func(text string) string {
			return "\033[1m" + text + "\033[0m"
		},
	}
}

func truncateDescription(desc string) string {
	for strings.Contains(desc, "\n\n") {
		desc = strings.ReplaceAll(desc, "\n\n", "; ")
	}
	desc = strings.ReplaceAll(desc, "\n", "; ")

	return truncateRunes(desc, descriptionMaxLen, descriptionTrunc)
}

// truncate shortens text to at most n runes, marking the cut with "...".
func truncate(text string, n int) string {
	if n <= 3 {
		return truncateRunes(text, n, n)
	}

	return truncateRunes(text, n, n-3)
}

func truncateRunes(text string, maxLen, truncLen int) string {
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}

	runes := []rune(text)
	if truncLen == maxLen {
		return string(runes[:truncLen])
	}

	return string(runes[:truncLen]) + "..."
}

func price(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

func stars(rating float64) string {
	full := int(math.Round(rating))
	if full < 0 {
		full = 0
	}
	if full > maxStars {
		full = maxStars
	}

	return strings.Repeat("★", full) + strings.Repeat("☆", maxStars-full)
}

func formatBoxTitle(title string) string {
	titleMax := boxWidth - boxTitlePadding

	// Strip ANSI escape codes for length calculation
	cleanTitle := strings.ReplaceAll(title, "\033[1m", "")
	cleanTitle = strings.ReplaceAll(cleanTitle, "\033[0m", "")

	titleLen := utf8.RuneCountInString(cleanTitle)
	if titleLen > titleMax {
		titleLen = titleMax
	}

	dashCount := boxWidth - titleLen - boxTitlePadding
	if dashCount < 0 {
		dashCount = 0
	}

	return "┌─ " + title + " " + strings.Repeat("─", dashCount) + "┐"
}

func formatBoxBottom() string {
	return "└" + strings.Repeat("─", boxWidth-boxBottomPadding) + "┘"
}

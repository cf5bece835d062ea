package http

import (
	"net/http"
	"strconv"

	"github.com/parths19/Admin-Dashboard/internal/core/app"
	"github.com/parths19/Admin-Dashboard/internal/core/domain"
)

const maxPageSize = 100

// pageQuery is the parsed ?page=&limit=&q=&<filter>= of a listing request.
type pageQuery struct {
	limit  int
	skip   int
	page   int
	query  string
	filter string
}

func parsePageQuery(r *http.Request, defaultLimit int, filterParam string) (pageQuery, bool) {
	values := r.URL.Query()
	q := pageQuery{
		limit:  defaultLimit,
		page:   1,
		query:  values.Get("q"),
		filter: values.Get(filterParam),
	}

	if v := values.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 || limit > maxPageSize {
			return q, false
		}
		q.limit = limit
	}

	if v := values.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page <= 0 {
			return q, false
		}
		q.page = page
	}

	q.skip = (q.page - 1) * q.limit

	return q, true
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	listEntities(w, r, s.app.Users, s.app.UsersPageSize(), "filter")
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	getEntity(w, r, s.app.Users)
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	listEntities(w, r, s.app.Products.EntityStore, s.app.ProductsPageSize(), "category")
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	getEntity(w, r, s.app.Products.EntityStore)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.app.Products.FetchCategories(r.Context())

	categories := s.app.Products.Categories()
	if categories == nil {
		categories = []domain.Category{}
	}

	writeJSON(w, http.StatusOK, categories)
}

// listEntities fetches one page and responds with it. On a failed fetch the
// store's last good items are returned alongside the error.
func listEntities[T any](w http.ResponseWriter, r *http.Request, store *app.EntityStore[T], defaultLimit int, filterParam string) {
	q, ok := parsePageQuery(r, defaultLimit, filterParam)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid page or limit")

		return
	}

	page, err := store.FetchCollection(r.Context(), q.limit, q.skip, q.query, q.filter)
	if err != nil {
		st := store.State()
		writeJSON(w, statusFor(err), newPageResponse(st.Items, st.Total, q, domain.Message(err)))

		return
	}

	writeJSON(w, http.StatusOK, newPageResponse(page.Items, page.Total, q, ""))
}

func newPageResponse[T any](items []T, total int, q pageQuery, message string) PageResponse[T] {
	if items == nil {
		items = []T{}
	}

	return PageResponse[T]{
		Items: items,
		Total: total,
		Page:  q.page,
		Pages: domain.TotalPages(total, q.limit),
		Error: message,
	}
}

func getEntity[T any](w http.ResponseWriter, r *http.Request, store *app.EntityStore[T]) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid id")

		return
	}

	item, err := store.FetchSingle(r.Context(), id)
	if err != nil {
		writeError(w, statusFor(err), domain.Message(err))

		return
	}

	writeJSON(w, http.StatusOK, item)
}

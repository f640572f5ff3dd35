package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rta-cma/camtrack/internal/query"
	"github.com/rta-cma/camtrack/internal/service"
	"github.com/rta-cma/camtrack/internal/utils"
	"github.com/rta-cma/camtrack/models"
)

// listSpec parses the listing parameters shared by every collection
// endpoint: search, sort_by, sort_order, skip, limit, start_date, end_date.
// Omitted skip/limit fall back to 0 and the configured default page size.
// Entity-specific equality filters are added by the individual handlers.
func (h *Handler) listSpec(r *http.Request) (query.Spec, error) {
	q := r.URL.Query()

	spec := query.Spec{
		Search: q.Get("search"),
		SortBy: q.Get("sort_by"),
		Order:  query.Direction(q.Get("sort_order")),
		Equals: map[string]any{},
		Skip:   0,
		Limit:  h.cfg.DefaultLimit,
	}

	if v := q.Get("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil {
			return query.Spec{}, fmt.Errorf("%w: skip must be an integer", service.ErrInvalidDataProvided)
		}
		spec.Skip = skip
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return query.Spec{}, fmt.Errorf("%w: limit must be an integer", service.ErrInvalidDataProvided)
		}
		spec.Limit = limit
	}

	dates, err := parseDateRange(q)
	if err != nil {
		return query.Spec{}, err
	}
	spec.Dates = dates

	return spec, nil
}

func parseDateRange(q url.Values) (*query.DateRange, error) {
	var dates *query.DateRange

	for _, p := range []struct {
		name string
		set  func(*query.DateRange, *time.Time)
	}{
		{"start_date", func(d *query.DateRange, t *time.Time) { d.Start = t }},
		{"end_date", func(d *query.DateRange, t *time.Time) { d.End = t }},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be RFC 3339", service.ErrInvalidDataProvided, p.name)
		}
		if dates == nil {
			dates = &query.DateRange{}
		}
		p.set(dates, &t)
	}

	return dates, nil
}

// equalsParam copies a verbatim string query parameter into the equality
// filter map under the given storage column.
func equalsParam(spec query.Spec, q url.Values, param, column string) {
	if v := q.Get(param); v != "" {
		spec.Equals[column] = v
	}
}

// equalsInt64Param parses an integer query parameter into the equality
// filter map under the given storage column.
func equalsInt64Param(spec query.Spec, q url.Values, param, column string) error {
	v := q.Get(param)
	if v == "" {
		return nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s must be an integer", service.ErrInvalidDataProvided, param)
	}
	spec.Equals[column] = id
	return nil
}

// equalsBoolParam parses a boolean query parameter into the equality filter
// map under the given storage column.
func equalsBoolParam(spec query.Spec, q url.Values, param, column string) error {
	v := q.Get(param)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s must be a boolean", service.ErrInvalidDataProvided, param)
	}
	spec.Equals[column] = b
	return nil
}

// idListParam parses a comma-separated list of ids from the named query
// parameter. An absent parameter yields nil.
func idListParam(q url.Values, param string) ([]int64, error) {
	v := q.Get(param)
	if v == "" {
		return nil, nil
	}

	parts := strings.Split(v, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be a comma-separated list of integers", service.ErrInvalidDataProvided, param)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// pathID parses the {id} chi route parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: id must be a positive integer", service.ErrInvalidDataProvided)
	}
	return id, nil
}

// currentUser returns the account resolved by the auth middleware. A missing
// value means the route was wired outside the authenticated group, which is
// a programming error surfaced as 500 downstream.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		return models.User{}, fmt.Errorf("no authenticated user in request context")
	}
	return user, nil
}

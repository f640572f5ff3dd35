// Package query implements the generic filtering, searching, sorting and
// pagination layer shared by every entity listing in the application.
//
// A [Spec] carries the caller's declarative criteria; an [Entity] carries the
// per-table metadata (searchable columns, sort allow-list, timestamp column).
// Combining the two yields parameterised PostgreSQL statements built with
// squirrel. The composer itself performs no I/O and holds no state, so values
// of both types are safe to share between request-handling goroutines.
//
// Stages are applied in a fixed order: equality filters, substring search,
// date range, then (for the page query only) ordering and the skip/limit
// window. The matching total is always computed over the filtered set before
// pagination, which is why [Entity.Count] stops after the third stage.
package query

import (
	"errors"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// MaxLimit is the largest page window a caller may request.
const MaxLimit = 1000

// Direction selects the sort order for a listing.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

var (
	// ErrInvalidWindow is returned when the skip/limit pagination window is
	// outside the accepted bounds (skip >= 0, 1 <= limit <= MaxLimit).
	ErrInvalidWindow = errors.New("pagination window out of bounds")

	// ErrInvalidSortOrder is returned when the sort direction is neither
	// "asc" nor "desc". An unknown sort *field* is not an error; it is
	// silently ignored so clients may probe unsupported sort keys.
	ErrInvalidSortOrder = errors.New("unknown sort order")
)

// DateRange restricts a listing to records whose timestamp column falls
// inside the inclusive [Start, End] interval. Either bound may be nil, in
// which case that side is unbounded. Both nil is equivalent to no filter.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Spec is one query's worth of listing criteria. The zero value of every
// field is a no-op: empty Search skips the search stage, nil map entries
// skip their equality filter, an unknown SortBy leaves the result unordered.
type Spec struct {
	// Search is matched case-insensitively as a substring against each of
	// the entity's searchable columns, ORed together.
	Search string

	// Equals narrows results to exact matches, ANDed across entries.
	// Entries with a nil value are ignored rather than matching NULL.
	Equals map[string]any

	// Dates bounds the entity's timestamp column, when it has one.
	Dates *DateRange

	// SortBy names a key of the entity's sort allow-list. Names outside the
	// allow-list are ignored.
	SortBy string
	Order  Direction

	// Skip and Limit define the pagination window applied after filtering.
	Skip  int
	Limit int
}

// Validate rejects malformed pagination windows and sort directions before
// any SQL is produced. Callers are expected to validate at the service
// boundary; the composer re-checks at entry regardless.
func (s Spec) Validate() error {
	if s.Skip < 0 || s.Limit < 1 || s.Limit > MaxLimit {
		return fmt.Errorf("%w: skip=%d limit=%d", ErrInvalidWindow, s.Skip, s.Limit)
	}
	if s.Order != "" && s.Order != Ascending && s.Order != Descending {
		return fmt.Errorf("%w: %q", ErrInvalidSortOrder, s.Order)
	}
	return nil
}

// Entity describes one queryable table: which columns a SELECT returns,
// which text columns participate in free-text search, and which public sort
// names map onto which storage columns.
type Entity struct {
	// Table is the SQL table name.
	Table string

	// Columns are the columns returned by Select, in scan order.
	Columns []string

	// IDColumn is the primary key column, used as the deterministic
	// tie-breaker whenever an explicit sort is applied.
	IDColumn string

	// SearchFields are the text columns matched by Spec.Search.
	SearchFields []string

	// SortFields maps public sort names to storage columns. Only names
	// present here are honoured by Spec.SortBy.
	SortFields map[string]string

	// TimeField is the timestamp column bounded by Spec.Dates.
	// Empty means the entity has no date-range support.
	TimeField string
}

// Select builds the page query: filters, search, date range, ordering and
// the skip/limit window, in that order.
func (e Entity) Select(s Spec) (string, []any, error) {
	if err := s.Validate(); err != nil {
		return "", nil, err
	}

	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(e.Columns...).
		From(e.Table)
	b = e.applyFilters(b, s)

	if column, ok := e.SortFields[s.SortBy]; ok {
		dir := "ASC"
		if s.Order == Descending {
			dir = "DESC"
		}
		// Secondary order on the primary key keeps ties deterministic
		// across repeated calls.
		b = b.OrderBy(column+" "+dir, e.IDColumn+" ASC")
	}

	b = b.Offset(uint64(s.Skip)).Limit(uint64(s.Limit))

	return b.ToSql()
}

// Count builds the matching-total query over the filtered set, without
// ordering or pagination.
func (e Entity) Count(s Spec) (string, []any, error) {
	if err := s.Validate(); err != nil {
		return "", nil, err
	}

	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("COUNT(*)").
		From(e.Table)
	b = e.applyFilters(b, s)

	return b.ToSql()
}

// applyFilters applies the three narrowing stages shared by Select and
// Count: equality filters, substring search, date range.
func (e Entity) applyFilters(b sq.SelectBuilder, s Spec) sq.SelectBuilder {
	// Equality filters are ANDed in sorted key order so the produced SQL
	// and argument list are stable for a fixed Spec.
	keys := make([]string, 0, len(s.Equals))
	for k, v := range s.Equals {
		if v == nil {
			continue // absent filter, not "match NULL"
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b = b.Where(sq.Eq{k: s.Equals[k]})
	}

	if s.Search != "" && len(e.SearchFields) > 0 {
		pattern := "%" + s.Search + "%"
		or := make(sq.Or, 0, len(e.SearchFields))
		for _, field := range e.SearchFields {
			or = append(or, sq.ILike{field: pattern})
		}
		b = b.Where(or)
	}

	if s.Dates != nil && e.TimeField != "" {
		if s.Dates.Start != nil {
			b = b.Where(sq.GtOrEq{e.TimeField: *s.Dates.Start})
		}
		if s.Dates.End != nil {
			b = b.Where(sq.LtOrEq{e.TimeField: *s.Dates.End})
		}
	}

	return b
}

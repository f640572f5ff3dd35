package models

// Page is the generic paginated envelope returned by every listing endpoint.
// Total is the number of records matching the filters before the skip/limit
// window was applied, so clients can render page controls.
type Page[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Skip    int   `json:"skip"`
	Limit   int   `json:"limit"`
	HasMore bool  `json:"has_more"`
}

// NewPage assembles a Page from a fetched window and the pre-pagination
// total. HasMore holds exactly when records exist past the returned window:
// skip + len(items) < total.
func NewPage[T any](items []T, total int64, skip, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:   items,
		Total:   total,
		Skip:    skip,
		Limit:   limit,
		HasMore: int64(skip+len(items)) < total,
	}
}

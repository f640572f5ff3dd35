package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name    string
		items   []int
		total   int64
		skip    int
		limit   int
		hasMore bool
	}{
		{name: "first page of many", items: []int{1, 2, 3}, total: 10, skip: 0, limit: 3, hasMore: true},
		{name: "exact last page", items: []int{8, 9, 10}, total: 10, skip: 7, limit: 3, hasMore: false},
		{name: "short last page", items: []int{10}, total: 10, skip: 9, limit: 3, hasMore: false},
		{name: "window past the end", items: nil, total: 10, skip: 50, limit: 3, hasMore: false},
		{name: "no matches at all", items: nil, total: 0, skip: 0, limit: 3, hasMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(tt.items, tt.total, tt.skip, tt.limit)

			assert.Equal(t, tt.hasMore, page.HasMore)
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.skip, page.Skip)
			assert.Equal(t, tt.limit, page.Limit)
			// Items must serialize as [], never null.
			assert.NotNil(t, page.Items)
		})
	}
}

package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		perPage  int
		total    int64
		expected Meta
	}{
		{
			name: "empty result set", page: 1, perPage: 20, total: 0,
			expected: Meta{Page: 1, PerPage: 20, TotalCount: 0, TotalPages: 0, HasNext: false, HasPrev: false},
		},
		{
			name: "first of three pages", page: 1, perPage: 2, total: 5,
			expected: Meta{Page: 1, PerPage: 2, TotalCount: 5, TotalPages: 3, HasNext: true, HasPrev: false},
		},
		{
			name: "last page", page: 3, perPage: 2, total: 5,
			expected: Meta{Page: 3, PerPage: 2, TotalCount: 5, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name: "exact multiple", page: 2, perPage: 5, total: 10,
			expected: Meta{Page: 2, PerPage: 5, TotalCount: 10, TotalPages: 2, HasNext: false, HasPrev: true},
		},
		{
			name: "beyond the end", page: 9, perPage: 5, total: 10,
			expected: Meta{Page: 9, PerPage: 5, TotalCount: 10, TotalPages: 2, HasNext: false, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewMeta(tt.page, tt.perPage, tt.total))
		})
	}
}

func TestPageCoverage(t *testing.T) {
	// Every record lands on exactly one page.
	for total := int64(0); total <= 23; total++ {
		for perPage := 1; perPage <= 7; perPage++ {
			pages := TotalPages(total, perPage)
			var seen int64
			for page := 1; page <= pages; page++ {
				remaining := total - int64((page-1)*perPage)
				if remaining > int64(perPage) {
					remaining = int64(perPage)
				}
				assert.Positive(t, remaining)
				seen += remaining
			}
			assert.Equal(t, total, seen, "total=%d perPage=%d", total, perPage)
		}
	}
}

func TestBounds(t *testing.T) {
	assert.False(t, ValidPage(0))
	assert.True(t, ValidPage(1))
	assert.False(t, ValidPerPage(0))
	assert.True(t, ValidPerPage(1))
	assert.True(t, ValidPerPage(MaxPerPage))
	assert.False(t, ValidPerPage(MaxPerPage+1))
}

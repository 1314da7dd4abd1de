package pagination

const (
	// DefaultPerPage is used when configuration does not supply a page size.
	DefaultPerPage = 20
	// MaxPerPage caps the page size a client may request.
	MaxPerPage = 100
)

// Meta describes where a page sits within the full result set.
type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// NewMeta computes page metadata. page and perPage must already be validated (>= 1).
func NewMeta(page, perPage int, totalCount int64) Meta {
	totalPages := TotalPages(totalCount, perPage)
	return Meta{
		Page:       page,
		PerPage:    perPage,
		TotalCount: totalCount,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// TotalPages returns ceil(totalCount / perPage), or 0 when there is nothing to page.
func TotalPages(totalCount int64, perPage int) int {
	if totalCount <= 0 || perPage <= 0 {
		return 0
	}
	pp := int64(perPage)
	return int((totalCount + pp - 1) / pp)
}

// ValidPage reports whether page is an acceptable 1-based page number.
func ValidPage(page int) bool {
	return page >= 1
}

// ValidPerPage reports whether perPage lies in [1, MaxPerPage].
func ValidPerPage(perPage int) bool {
	return perPage >= 1 && perPage <= MaxPerPage
}

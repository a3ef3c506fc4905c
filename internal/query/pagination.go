package query

// PageMeta describes one page of a filtered collection read. It is derived
// from the total match count and the effective page/perPage, never stored.
type PageMeta struct {
	Page            int   `json:"page"`
	PerPage         int   `json:"perPage"`
	TotalItems      int64 `json:"totalItems"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewPageMeta computes pagination metadata. TotalPages is zero for an
// empty result set, in which case both page flags are false.
func NewPageMeta(totalItems int64, page, perPage int) PageMeta {
	totalPages := 0
	if perPage > 0 {
		totalPages = int((totalItems + int64(perPage) - 1) / int64(perPage))
	}
	return PageMeta{
		Page:            page,
		PerPage:         perPage,
		TotalItems:      totalItems,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

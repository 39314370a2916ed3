package response

import "github.com/Liku-id/wukong-admin-api/internal/pkg/pagination"

// Pagination is the listing footer the dashboard renders under every
// table.
type Pagination struct {
	Total       int    `json:"total"`
	CurrentPage int    `json:"currentPage"`
	PageSize    int    `json:"pageSize"`
	Label       string `json:"label"`
	HasPrev     bool   `json:"hasPrev"`
	HasNext     bool   `json:"hasNext"`
}

func NewPagination(p pagination.Page) Pagination {
	return Pagination{
		Total:       p.Total,
		CurrentPage: p.Current,
		PageSize:    p.Size,
		Label:       p.Label(),
		HasPrev:     p.HasPrev(),
		HasNext:     p.HasNext(),
	}
}

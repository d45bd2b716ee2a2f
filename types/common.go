package types

// Pagination 列表分页信息
type Pagination struct {
	Total        int64 `json:"total"`
	CurrentPage  int   `json:"currentPage"`
	Limit        int   `json:"limit"`
	TotalPages   int   `json:"totalPages"`
	HasPrevPage  bool  `json:"hasPrevPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	PreviousPage *int  `json:"previousPage"`
	NextPage     *int  `json:"nextPage"`
}

func NewPagination(total int64, page, limit int) Pagination {
	p := Pagination{Total: total, CurrentPage: page, Limit: limit}
	if limit > 0 {
		p.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	if page > 1 {
		prev := page - 1
		p.HasPrevPage = true
		p.PreviousPage = &prev
	}
	if page < p.TotalPages {
		next := page + 1
		p.HasNextPage = true
		p.NextPage = &next
	}
	return p
}

// Summary 后台首页统计
type Summary struct {
	Products      int64 `json:"products"`
	Customers     int64 `json:"customers"`
	PendingOrders int64 `json:"pendingOrders"`
	LowStockItems int64 `json:"lowStockItems"`
}

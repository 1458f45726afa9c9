package scene

// Pagination drives the pager shown under tables and forms.
type Pagination struct {
	Show        bool `json:"show"`
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
}

func DefaultPagination() Pagination {
	return Pagination{Show: false, CurrentPage: 1, TotalPages: 5}
}

// SetPage moves to page n, clamped to [1, TotalPages].
func (p Pagination) SetPage(n int) Pagination {
	p.CurrentPage = clamp(n, 1, max(1, p.TotalPages))
	return p
}

// SetTotal changes the page count (at least 1) and keeps the current page in range.
func (p Pagination) SetTotal(n int) Pagination {
	p.TotalPages = max(1, n)
	p.CurrentPage = clamp(p.CurrentPage, 1, p.TotalPages)
	return p
}

func (p Pagination) Normalize() Pagination {
	return p.SetTotal(p.TotalPages)
}

// EmptyState replaces the body of a scene with a placeholder message.
type EmptyState struct {
	Show    bool   `json:"show"`
	Message string `json:"message"`
}

const DefaultEmptyMessage = "데이터가 없습니다."

func DefaultEmptyState() EmptyState {
	return EmptyState{Show: false, Message: DefaultEmptyMessage}
}

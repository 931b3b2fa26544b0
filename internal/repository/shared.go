package repository

// Pagination holds pagination parameters for listing entities.
type Pagination struct {
	PageNo   int32
	PageSize int32
}

func (p *Pagination) Offset() int32 { return (p.PageNo - 1) * p.PageSize }

// Window clamps the page to n items and returns the [start,end) bounds. A zero page size
// means everything.
func (p *Pagination) Window(n int) (start, end int) {
	if p.PageSize <= 0 {
		return 0, n
	}
	pageNo := p.PageNo
	if pageNo <= 0 {
		pageNo = 1
	}
	start = int((pageNo - 1) * p.PageSize)
	if start > n {
		start = n
	}
	end = start + int(p.PageSize)
	if end > n {
		end = n
	}
	return start, end
}

type FilterOrder struct {
	Filter  string
	OrderBy string
}

func (fo *FilterOrder) GetFilter() string { return fo.Filter }

func (fo *FilterOrder) GetOrderBy() string { return fo.OrderBy }

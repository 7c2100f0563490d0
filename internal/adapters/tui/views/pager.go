package views

// Pager tracks a cursor over a list shown one page at a time
type Pager struct {
	pageSize   int
	pageOffset int
	cursor     int
	totalItems int
}

// NewPager creates a pager with the given page size
func NewPager(pageSize int) *Pager {
	p := &Pager{}
	p.SetPageSize(pageSize)
	return p
}

// SetPageSize changes the page size, keeping the cursor visible
func (p *Pager) SetPageSize(size int) {
	if size <= 0 {
		size = 10
	}
	p.pageSize = size
	p.follow()
}

// SetTotal sets the number of items and clamps the cursor
func (p *Pager) SetTotal(total int) {
	p.totalItems = total
	if p.cursor >= total {
		p.cursor = max(total-1, 0)
	}
	p.follow()
}

// Cursor returns the absolute cursor position
func (p *Pager) Cursor() int {
	return p.cursor
}

// Up moves the cursor up by one
func (p *Pager) Up() {
	if p.cursor > 0 {
		p.cursor--
		p.follow()
	}
}

// Down moves the cursor down by one
func (p *Pager) Down() {
	if p.cursor < p.totalItems-1 {
		p.cursor++
		p.follow()
	}
}

// NextPage moves the cursor to the first item of the next page
func (p *Pager) NextPage() {
	if p.pageOffset+p.pageSize < p.totalItems {
		p.pageOffset += p.pageSize
		p.cursor = p.pageOffset
	}
}

// PrevPage moves the cursor to the first item of the previous page
func (p *Pager) PrevPage() {
	if p.pageOffset > 0 {
		p.pageOffset = max(p.pageOffset-p.pageSize, 0)
		p.cursor = p.pageOffset
	}
}

// VisibleRange returns the start and end indices of the current page
func (p *Pager) VisibleRange() (start, end int) {
	return p.pageOffset, min(p.pageOffset+p.pageSize, p.totalItems)
}

// TotalPages returns the number of pages, at least one
func (p *Pager) TotalPages() int {
	if p.totalItems == 0 {
		return 1
	}
	return (p.totalItems + p.pageSize - 1) / p.pageSize
}

// CurrentPage returns the 1-based current page
func (p *Pager) CurrentPage() int {
	return p.pageOffset/p.pageSize + 1
}

// follow moves the page so that it contains the cursor
func (p *Pager) follow() {
	if p.cursor < p.pageOffset || p.cursor >= p.pageOffset+p.pageSize {
		p.pageOffset = (p.cursor / p.pageSize) * p.pageSize
	}
}

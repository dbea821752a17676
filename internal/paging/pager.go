package paging

// Pager tracks the current page against a page count. GoTo assigns the
// requested page as is; keeping requests in range is the job of the
// controls, which consult CanPrev and CanNext.
type Pager struct {
	Current int
	Total   int
}

// GoTo moves to page and returns it.
func (p *Pager) GoTo(page int) int {
	p.Current = page
	return p.Current
}

// CanPrev reports whether a previous control should be enabled.
func (p Pager) CanPrev() bool {
	return p.Current > FirstPage
}

// CanNext reports whether a next control should be enabled.
func (p Pager) CanNext() bool {
	return p.Current < p.Total
}

// Prev steps back one page when enabled and reports whether it moved.
func (p *Pager) Prev() bool {
	if !p.CanPrev() {
		return false
	}
	p.Current--
	return true
}

// Next steps forward one page when enabled and reports whether it moved.
func (p *Pager) Next() bool {
	if !p.CanNext() {
		return false
	}
	p.Current++
	return true
}

// InRange reports whether page is a reachable page number.
func (p Pager) InRange(page int) bool {
	return page >= FirstPage && page <= p.Total
}

package pagination

// Pager tracks the current page and page size for a collection it does not
// own. The page count is derived from TotalItems at construction time; call
// Update whenever the size of the underlying collection changes.
//
// Pager uses the same offset as Paginated: page n covers items
// [(n-1)*ItemsPerPage, n*ItemsPerPage).
type Pager struct {
	itemsPerPage int
	totalItems   int
	current      Counter
}

// NewPager builds a pager for totalItems items. Page sizes below 1 clamp to 1
// and negative totals count as an empty collection.
func NewPager(itemsPerPage, totalItems int) Pager {
	itemsPerPage = max(1, itemsPerPage)
	totalItems = max(0, totalItems)
	return Pager{
		itemsPerPage: itemsPerPage,
		totalItems:   totalItems,
		current:      pageCounter(totalPages(totalItems, itemsPerPage)),
	}
}

// Update replaces the page size and item count, keeping the current page
// number clamped to the new bounds.
func (p Pager) Update(itemsPerPage, totalItems int) Pager {
	return NewPager(itemsPerPage, totalItems).GoTo(p.CurrentPage())
}

func (p Pager) GoTo(n int) Pager {
	p.current = p.current.Set(n)
	return p
}

func (p Pager) Next() Pager {
	p.current = p.current.Increment(1)
	return p
}

func (p Pager) Prev() Pager {
	p.current = p.current.Decrement(1)
	return p
}

func (p Pager) First() Pager { return p.GoTo(1) }
func (p Pager) Last() Pager  { return p.GoTo(p.TotalPages()) }

func (p Pager) IsFirst() bool { return p.CurrentPage() == 1 }
func (p Pager) IsLast() bool  { return p.CurrentPage() == p.TotalPages() }

func (p Pager) CurrentPage() int  { return p.current.Value() }
func (p Pager) ItemsPerPage() int { return p.itemsPerPage }
func (p Pager) TotalPages() int   { return p.current.Max() }
func (p Pager) TotalItems() int   { return p.totalItems }

// Bounds returns the [from, to) item window of the current page, suitable for
// OFFSET/LIMIT style queries. to may exceed TotalItems on the last page.
func (p Pager) Bounds() (from, to int) {
	return window(p.CurrentPage(), p.itemsPerPage)
}

// PageOf returns the current page of items. items is expected to be the
// collection the pager was sized for; a shorter slice yields a short page.
func PageOf[E any](p Pager, items []E) []E {
	from, to := p.Bounds()
	return dropTake(items, from, to)
}

package pagination

import "math"

// Collection is the length/slice capability a Paginated needs from its
// collection type. Slice receives a window [from, to) that may run past the
// end of the collection and must saturate rather than fail.
type Collection[T any] interface {
	Len(items T) int
	Slice(items T, from, to int) T
}

// Cloner is optionally implemented by a Collection. When present, Transform
// hands the transformation function a private copy of the items.
type Cloner[T any] interface {
	Clone(items T) T
}

// Funcs adapts a pair of plain functions to Collection.
type Funcs[T any] struct {
	LenFunc   func(items T) int
	SliceFunc func(items T, from, to int) T
}

func (f Funcs[T]) Len(items T) int                { return f.LenFunc(items) }
func (f Funcs[T]) Slice(items T, from, to int) T { return f.SliceFunc(items, from, to) }

// Position is the read-only view of a pager used by the page-selector helpers.
type Position interface {
	CurrentPage() int
	TotalPages() int
}

// Paginated couples a collection with a page size and a current-page cursor.
//
// Invariants, for every value produced by this package:
//   - ItemsPerPage() >= 1
//   - TotalPages() >= 1, even for an empty collection
//   - 1 <= CurrentPage() <= TotalPages()
//
// Paginated is immutable; every operation returns a new value. The zero value
// has no Collection and is not usable; build values with New or FromList.
type Paginated[T any] struct {
	coll         Collection[T]
	itemsPerPage int
	current      Counter
	items        T
}

// New paginates items with the given page size. Page sizes below 1 clamp to 1
// and the cursor starts on page 1.
func New[T any](coll Collection[T], itemsPerPage int, items T) Paginated[T] {
	itemsPerPage = max(1, itemsPerPage)
	return Paginated[T]{
		coll:         coll,
		itemsPerPage: itemsPerPage,
		current:      pageCounter(totalPages(coll.Len(items), itemsPerPage)),
		items:        items,
	}
}

// totalPages is ceil(n / perPage), with an empty collection still having one page.
func totalPages(n, perPage int) int {
	if n <= 0 {
		return 1
	}
	pages := n / perPage
	if n%perPage != 0 {
		pages++
	}
	return pages
}

// Transform applies f to the items and recomputes the page count, keeping the
// current page where the new bounds allow it. This is the only way to change
// the items: filtering, sorting, insertion and deletion all go through here.
//
// Transform(f).Transform(g) equals a single Transform applying f then g as
// long as the intermediate collection still reaches the current page; otherwise
// the cursor is clamped by the intermediate bounds first.
func (p Paginated[T]) Transform(f func(T) T) Paginated[T] {
	return New(p.coll, p.itemsPerPage, f(p.detached())).GoTo(p.CurrentPage())
}

// ChangeItemsPerPage re-paginates the same items with a new page size,
// keeping the current page number (clamped to the new page count).
func (p Paginated[T]) ChangeItemsPerPage(n int) Paginated[T] {
	return New(p.coll, n, p.items).GoTo(p.CurrentPage())
}

// GoTo moves to page n, silently clamped to [1, TotalPages()].
func (p Paginated[T]) GoTo(n int) Paginated[T] {
	p.current = p.current.Set(n)
	return p
}

// Next moves one page forward; it is a no-op on the last page.
func (p Paginated[T]) Next() Paginated[T] {
	p.current = p.current.Increment(1)
	return p
}

// Prev moves one page back; it is a no-op on the first page.
func (p Paginated[T]) Prev() Paginated[T] {
	p.current = p.current.Decrement(1)
	return p
}

func (p Paginated[T]) First() Paginated[T] { return p.GoTo(1) }
func (p Paginated[T]) Last() Paginated[T]  { return p.GoTo(p.TotalPages()) }

func (p Paginated[T]) IsFirst() bool { return p.CurrentPage() == 1 }
func (p Paginated[T]) IsLast() bool  { return p.CurrentPage() == p.TotalPages() }

func (p Paginated[T]) CurrentPage() int  { return p.current.Value() }
func (p Paginated[T]) ItemsPerPage() int { return p.itemsPerPage }
func (p Paginated[T]) TotalPages() int   { return p.current.Max() }

// Items returns the whole collection, bypassing pagination. Collections that
// implement Cloner hand out a copy.
func (p Paginated[T]) Items() T { return p.detached() }

func (p Paginated[T]) detached() T {
	if c, ok := p.coll.(Cloner[T]); ok {
		return c.Clone(p.items)
	}
	return p.items
}

// Bounds returns the [from, to) item window of the current page. to may exceed
// the collection length on the last page.
func (p Paginated[T]) Bounds() (from, to int) {
	return window(p.CurrentPage(), p.itemsPerPage)
}

// Page returns the items on the current page. The result never holds more
// than ItemsPerPage() items.
func (p Paginated[T]) Page() T {
	from, to := p.Bounds()
	return p.coll.Slice(p.items, from, to)
}

// FoldMap applies f to the whole collection. Use it for queries such as
// counts or lookups that should not go through page slicing. f receives the
// same copy Items would return.
func FoldMap[T, R any](p Paginated[T], f func(T) R) R {
	return f(p.detached())
}

// window saturates at math.MaxInt instead of wrapping for huge page sizes.
func window(current, perPage int) (from, to int) {
	if current > 1 && perPage > math.MaxInt/(current-1) {
		return math.MaxInt, math.MaxInt
	}
	from = (current - 1) * perPage
	return from, from + min(perPage, math.MaxInt-from)
}

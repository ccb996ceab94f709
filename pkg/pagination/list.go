package pagination

import "slices"

// List is a Paginated over a plain slice.
type List[E any] = Paginated[[]E]

// FromList paginates a copy of items. Later changes to the caller's slice do
// not leak into the returned value.
func FromList[E any](itemsPerPage int, items []E) List[E] {
	return New[[]E](sliceCollection[E]{}, itemsPerPage, slices.Clone(items))
}

// Query runs an arbitrary function over all items of l.
func Query[E, R any](l List[E], f func([]E) R) R {
	return FoldMap(l, f)
}

// sliceCollection slices with drop/take semantics: windows past the end yield
// a short or empty page instead of panicking. It is a comparable zero-size
// type so that list values compare structurally.
type sliceCollection[E any] struct{}

func (sliceCollection[E]) Len(items []E) int { return len(items) }

func (sliceCollection[E]) Slice(items []E, from, to int) []E {
	return dropTake(items, from, to)
}

func (sliceCollection[E]) Clone(items []E) []E { return slices.Clone(items) }

func dropTake[E any](items []E, from, to int) []E {
	from = clamp(from, 0, len(items))
	to = clamp(to, from, len(items))
	return slices.Clone(items[from:to])
}

// Package pagination keeps a collection, a page size and a current page
// consistent with each other.
//
// The core type is Paginated, generic over the collection type. It owns the
// collection and recomputes the page count whenever the items or the page
// size change. Every operation is a pure value transformation: navigating,
// transforming items or resizing pages returns a new value and leaves the
// receiver as it was. Out-of-range input is clamped, never rejected.
//
// Two thin shapes sit on top of the core:
//
//   - List, a Paginated over a slice, built with FromList.
//   - Pager, which tracks only the cursor and page size for a collection
//     owned elsewhere (for example a database table queried with OFFSET/LIMIT).
//
// # Basic Usage
//
//	p := pagination.FromList(10, articles).GoTo(3)
//	visible := p.Page()          // articles[20:30]
//	p = p.Next()                 // page 4, or still 3 if that was the last page
//
//	p = p.Transform(func(a []Article) []Article {
//	    return slices.DeleteFunc(a, isDraft)
//	})
//
// # Page Selectors
//
// Pages renders one value per page; Elide renders a shortened pager with gap
// markers for large page counts:
//
//	links := pagination.Elide(p, pagination.ElideOptions[string]{
//	    InnerWindow: 1,
//	    OuterWindow: 1,
//	    PageView:    func(n int, cur bool) string { return strconv.Itoa(n) },
//	    GapView:     "…",
//	})
//	// page 5 of 10: [1 … 4 5 6 … 10]
package pagination

package pagination

import (
	"cmp"
	"slices"
)

// Pages renders one value per page, from 1 to TotalPages in ascending order.
// f receives the page number and whether it is the current page.
func Pages[R any](pos Position, f func(page int, current bool) R) []R {
	cur, total := pos.CurrentPage(), pos.TotalPages()
	out := make([]R, 0, total)
	for n := 1; n <= total; n++ {
		out = append(out, f(n, n == cur))
	}
	return out
}

// Token is one element of an elided pager: either a page number or a gap.
type Token struct {
	Page int
	Gap  bool
}

// ElideOptions configures Elide.
type ElideOptions[R any] struct {
	// InnerWindow is the number of pages shown on each side of the current page.
	InnerWindow int
	// OuterWindow is the number of pages shown at each end.
	OuterWindow int
	PageView    func(page int, current bool) R
	GapView     R
}

// Elide renders a shortened pager: the first OuterWindow pages, the pages
// within InnerWindow of the current one and the last OuterWindow pages, with
// a single GapView wherever pages were skipped. Negative windows count as 0.
func Elide[R any](pos Position, opts ElideOptions[R]) []R {
	cur := pos.CurrentPage()
	plan := Plan(cur, pos.TotalPages(), opts.InnerWindow, opts.OuterWindow)
	out := make([]R, 0, len(plan))
	for _, t := range plan {
		if t.Gap {
			out = append(out, opts.GapView)
			continue
		}
		out = append(out, opts.PageView(t.Page, t.Page == cur))
	}
	return out
}

// Plan computes the elided page sequence for the given position and windows.
//
// For current=5, total=10, inner=1, outer=1 the plan is 1 … 4 5 6 … 10.
// Pages outside [1, total] are never emitted; a gap appears only between two
// kept pages that are not adjacent, never at either end.
func Plan(current, total, inner, outer int) []Token {
	if total < 1 {
		return nil
	}
	inner, outer = clamp(inner, 0, total), clamp(outer, 0, total)
	current = clamp(current, 1, total)

	// window ends are computed without leaving [1, total] so no sum can overflow
	spans := [][2]int{
		{1, outer},
		{current - min(inner, current-1), current + min(inner, total-current)},
		{total - outer + 1, total},
	}
	slices.SortFunc(spans, func(a, b [2]int) int { return cmp.Compare(a[0], b[0]) })

	var plan []Token
	last := 0
	for _, s := range spans {
		if last == total {
			break
		}
		lo, hi := max(1, s[0], last+1), min(total, s[1])
		if lo > hi {
			continue
		}
		if last > 0 && lo-last > 1 {
			plan = append(plan, Token{Gap: true})
		}
		// counts up to hi inclusive without stepping past math.MaxInt
		for n := lo; ; n++ {
			plan = append(plan, Token{Page: n})
			if n == hi {
				break
			}
		}
		last = hi
	}
	return plan
}

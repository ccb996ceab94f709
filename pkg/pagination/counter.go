package pagination

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a Counter is built with a lower bound above its upper bound.
var ErrInvalidRange = errors.New("pagination: invalid counter range")

// Counter is an integer clamped to [min, max]. It is a value type: every
// operation returns a new Counter and the receiver is left untouched.
type Counter struct {
	value int
	min   int
	max   int
}

// Between builds a Counter ranging over [lower, upper], starting at lower.
// The range must not be empty; lower > upper fails with ErrInvalidRange.
func Between(lower, upper int) (Counter, error) {
	if lower > upper {
		return Counter{}, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, lower, upper)
	}
	return Counter{value: lower, min: lower, max: upper}, nil
}

// pageCounter builds the [1, totalPages] counter used by paginated values.
// totalPages is always >= 1 there, so a failure means the page-count formula broke.
func pageCounter(totalPages int) Counter {
	c, err := Between(1, totalPages)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Counter) Value() int { return c.value }
func (c Counter) Min() int   { return c.min }
func (c Counter) Max() int   { return c.max }

// Set moves the counter to v, clamped into the counter's bounds.
func (c Counter) Set(v int) Counter {
	c.value = clamp(v, c.min, c.max)
	return c
}

// Increment adds step, saturating at Max. There is no wraparound, even for
// steps that would overflow int.
func (c Counter) Increment(step int) Counter {
	v := c.value + step
	switch {
	case step > 0 && v < c.value:
		return c.Set(c.max)
	case step < 0 && v > c.value:
		return c.Set(c.min)
	}
	return c.Set(v)
}

// Decrement subtracts step, saturating at Min.
func (c Counter) Decrement(step int) Counter {
	v := c.value - step
	switch {
	case step > 0 && v > c.value:
		return c.Set(c.min)
	case step < 0 && v < c.value:
		return c.Set(c.max)
	}
	return c.Set(v)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

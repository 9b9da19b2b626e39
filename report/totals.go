// Package report turns group totals into the final answers and renders them.
package report

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNoGroups = errors.New("no groups")
	ErrBadTop   = errors.New("top count must be positive")
)

// Totals holds one total per group, in input order.
type Totals []uint32

// Max returns the largest total.
func (t Totals) Max() (uint32, error) {
	if len(t) == 0 {
		return 0, ErrNoGroups
	}
	return slices.Max(t), nil
}

// Ranked returns the totals sorted from largest to smallest.
func (t Totals) Ranked() []uint32 {
	out := slices.Clone([]uint32(t))
	slices.SortFunc(out, func(a, b uint32) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
	return out
}

// TopSum adds up the n largest totals. Fewer than n groups sum what there is.
func (t Totals) TopSum(n int) (uint64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadTop, n)
	}
	if len(t) == 0 {
		return 0, ErrNoGroups
	}
	var sum uint64
	for i, v := range t.Ranked() {
		if i == n {
			break
		}
		sum += uint64(v)
	}
	return sum, nil
}

// Summary is everything a run reports.
type Summary struct {
	Source   string   `json:"source" yaml:"source"`
	Groups   []uint32 `json:"groups" yaml:"groups"`
	Max      uint32   `json:"max" yaml:"max"`
	Top      int      `json:"top" yaml:"top"`
	TopSum   uint64   `json:"topSum" yaml:"topSum"`
	Trailing int      `json:"trailing,omitempty" yaml:"trailing,omitempty"`
}

// Summarize computes the maximum and the sum of the top largest totals.
func Summarize(source string, totals Totals, top int) (Summary, error) {
	best, err := totals.Max()
	if err != nil {
		return Summary{}, err
	}
	sum, err := totals.TopSum(top)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Source: source,
		Groups: slices.Clone([]uint32(totals)),
		Max:    best,
		Top:    top,
		TopSum: sum,
	}, nil
}

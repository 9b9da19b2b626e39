// Package grammar assembles the combinators that turn blank-line separated
// groups of decimal lines into one total per group.
package grammar

import (
	"errors"
	"fmt"

	"github.com/dhamidi/tally/combinator"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("tally.grammar")

// ErrShape is returned when the input does not reduce to a list of totals.
var ErrShape = errors.New("input is not a list of numbered groups")

func newline() combinator.Combinator {
	return combinator.Optional(combinator.LiteralByte('\n'))
}

// Number matches one line of digits with an optional trailing newline and
// resolves it to its value.
func Number() combinator.Combinator {
	return combinator.Map(combinator.Terminated(combinator.DigitRun(), newline()), combinator.ToNumber)
}

// GroupTotal matches consecutive number lines and sums them.
func GroupTotal() combinator.Combinator {
	return combinator.SumReduce(combinator.Many1(Number()))
}

// Groups matches one or more groups, each optionally followed by the blank
// line that separates it from the next.
func Groups() combinator.Combinator {
	return combinator.Many1(combinator.Terminated(GroupTotal(), newline()))
}

var groups = Groups()

// Result is the outcome of parsing a whole input buffer.
type Result struct {
	Outcome combinator.Outcome
	Totals  []uint32

	// Trailing is the input left after the last group. It is empty when
	// the whole buffer was consumed.
	Trailing combinator.Span
}

// Complete reports whether every byte of the input was consumed.
func (r *Result) Complete() bool {
	return r.Trailing.Empty()
}

// Evaluate runs the grammar over buf without interpreting the result.
func Evaluate(buf []byte) combinator.Outcome {
	return combinator.Parse(groups, buf)
}

// Parse runs the grammar over buf and extracts one total per group.
// A value that is not a list of numbers is reported as ErrShape, wrapped
// with the position where the problem was found.
func Parse(buf []byte) (*Result, error) {
	o := Evaluate(buf)
	log.Debugf("evaluated %d bytes: matched=%t consumed=%d", len(buf), o.Matched, o.Consumed(combinator.NewSpan(buf)))

	if !o.Matched {
		return nil, fmt.Errorf("%s: no groups: %w", o.Remaining.Start(), ErrShape)
	}

	totals, ok := o.Value.Numbers()
	if !ok {
		return nil, fmt.Errorf("%s: %w", badGroup(buf), ErrShape)
	}

	res := &Result{Outcome: o, Totals: totals, Trailing: o.Remaining}
	if !res.Complete() {
		log.Warningf("unparsed input at %s", o.Remaining.Start())
	}
	return res, nil
}

// Group is one group of the input together with the bytes it covers,
// including its separating blank line.
type Group struct {
	Span  combinator.Span
	Value combinator.Value
}

// Split walks buf one group at a time, the way Groups does, and returns the
// groups found along with the unconsumed tail.
func Split(buf []byte) ([]Group, combinator.Span) {
	item := combinator.Terminated(GroupTotal(), newline())
	rest := combinator.NewSpan(buf)
	var out []Group
	for !rest.Empty() {
		o := item.Evaluate(rest)
		if !o.Matched || o.Remaining.Begin <= rest.Begin {
			break
		}
		s := rest
		s.End = o.Remaining.Begin
		out = append(out, Group{Span: s, Value: o.Value})
		rest = o.Remaining
	}
	return out, rest
}

// badGroup describes the first group that did not reduce to a number.
func badGroup(buf []byte) string {
	found, _ := Split(buf)
	for i, g := range found {
		if g.Value.Kind() != combinator.KindNumber {
			return fmt.Sprintf("%s: group %d is %s", g.Span.Start(), i+1, g.Value.Kind())
		}
	}
	return "malformed result"
}

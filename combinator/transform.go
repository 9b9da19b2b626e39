package combinator

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyNumber = errors.New("empty digit span")
	ErrNotDigit    = errors.New("non-digit byte")
	ErrOverflow    = errors.New("value exceeds uint32")
)

// ToNumber parses the decimal digits covered by s.
// It reads exactly the bytes in the span and never writes to the buffer.
func ToNumber(s Span) (uint32, error) {
	data := s.Bytes()
	if len(data) == 0 {
		return 0, ErrEmptyNumber
	}
	var n uint64
	for i, c := range data {
		if !isDigit(c) {
			return 0, fmt.Errorf("%w %q at offset %d", ErrNotDigit, c, s.Begin+i)
		}
		n = n*10 + uint64(c-'0')
		if n > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, data)
		}
	}
	return uint32(n), nil
}

// NumberFunc converts a matched span into an integer.
type NumberFunc func(Span) (uint32, error)

type mapper struct {
	inner Combinator
	fn    NumberFunc
}

// Map evaluates inner and, on success, replaces every Scalar leaf of its
// value with Number(fn(span)). Lists keep their shape and order. Any other
// node, or a leaf fn rejects, becomes Error.
func Map(inner Combinator, fn NumberFunc) Combinator {
	return mapper{inner: inner, fn: fn}
}

func (p mapper) Evaluate(in Span) Outcome {
	o := p.inner.Evaluate(in)
	if !o.Matched {
		return failed(Error(), in)
	}
	return matched(mapValue(o.Value, p.fn), o.Remaining)
}

func mapValue(v Value, fn NumberFunc) Value {
	switch v.kind {
	case KindScalar:
		n, err := fn(v.span)
		if err != nil {
			return Error()
		}
		return Number(n)
	case KindList:
		out := make([]Value, len(v.items))
		for i, item := range v.items {
			out[i] = mapValue(item, fn)
		}
		return List(out...)
	default:
		return Error()
	}
}

type sumReduce struct {
	inner Combinator
}

// SumReduce evaluates inner and collapses its value into a single Number:
// Numbers pass through and Lists become the sum of their reduced children.
// A Scalar or Error anywhere in the tree, or a sum past uint32, yields Error.
func SumReduce(inner Combinator) Combinator {
	return sumReduce{inner: inner}
}

func (p sumReduce) Evaluate(in Span) Outcome {
	o := p.inner.Evaluate(in)
	if !o.Matched {
		return failed(Error(), in)
	}
	return matched(Reduce(o.Value), o.Remaining)
}

// Reduce collapses v the way SumReduce does.
func Reduce(v Value) Value {
	switch v.kind {
	case KindNumber:
		return v
	case KindList:
		var sum uint64
		for _, item := range v.items {
			r := Reduce(item)
			if r.kind != KindNumber {
				return Error()
			}
			sum += uint64(r.number)
			if sum > math.MaxUint32 {
				return Error()
			}
		}
		return Number(uint32(sum))
	default:
		return Error()
	}
}

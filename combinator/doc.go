// Package combinator provides a small byte-oriented parser-combinator engine.
//
// # Overview
//
// A Combinator consumes a prefix of a Span and reports an Outcome: the value
// it produced, the Span that is left over, and whether it matched at all.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│    Span     │────▶│ Combinator  │────▶│   Outcome   │
//	│  (borrowed) │     │ (Evaluate)  │     │ value, rest │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// # Values
//
// Every evaluation produces a Value, a small tagged tree:
//
//	KindScalar  an unprocessed matched byte range
//	KindList    results of repetition, in match order
//	KindNumber  an integer resolved by a transform
//	KindError   a transform met a shape it cannot handle
//
// Values are never modified after construction. Transforms build new trees.
//
// # Primitives
//
//	LiteralByte(c)           one byte equal to c
//	DigitRun()               the longest run of ASCII digits, at least one
//	Terminated(a, b)         a then b, keeping a's value
//	Optional(a)              a if it matches, otherwise nothing; never fails
//	Many1(a)                 one or more a, collected into a List
//
// # Transforms
//
//	Map(a, f)                Scalar leaves of a's value become Number(f(span))
//	SumReduce(a)             a's value tree collapses into one Number
//
// # Failure
//
// A combinator that does not match leaves the input untouched: Remaining is
// always the Span that was passed in. This is what lets Many1 stop cleanly.
// Failure of a rule (Matched == false) and a malformed value (KindError) are
// separate signals; callers check both.
//
// # Thread Safety
//
// Combinators carry no mutable state and never write to the bytes behind a
// Span, so a single grammar may be evaluated from several goroutines.
package combinator

package combinator

type literalByte struct {
	target byte
}

// LiteralByte matches exactly one byte equal to target.
func LiteralByte(target byte) Combinator {
	return literalByte{target: target}
}

func (p literalByte) Evaluate(in Span) Outcome {
	if c, ok := in.first(); ok && c == p.target {
		head, rest := in.split(1)
		return matched(Scalar(head), rest)
	}
	return failed(Scalar(in.at()), in)
}

type digitRun struct{}

// DigitRun matches the longest prefix of ASCII digits '0'..'9'.
// It fails when the input does not start with a digit.
func DigitRun() Combinator {
	return digitRun{}
}

func (digitRun) Evaluate(in Span) Outcome {
	data := in.Bytes()
	n := 0
	for n < len(data) && isDigit(data[n]) {
		n++
	}
	if n == 0 {
		return failed(Scalar(in.at()), in)
	}
	head, rest := in.split(n)
	return matched(Scalar(head), rest)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

type terminated struct {
	first      Combinator
	terminator Combinator
}

// Terminated matches first followed by terminator and keeps first's value.
// If either step fails nothing is consumed.
func Terminated(first, terminator Combinator) Combinator {
	return terminated{first: first, terminator: terminator}
}

func (p terminated) Evaluate(in Span) Outcome {
	a := p.first.Evaluate(in)
	if a.Matched {
		b := p.terminator.Evaluate(a.Remaining)
		if b.Matched {
			return matched(a.Value, b.Remaining)
		}
	}
	return failed(Scalar(in.at()), in)
}

type optional struct {
	inner Combinator
}

// Optional turns inner into best-effort consumption: it always matches, and
// consumes whatever inner consumed, which is nothing when inner failed.
func Optional(inner Combinator) Combinator {
	return optional{inner: inner}
}

func (p optional) Evaluate(in Span) Outcome {
	o := p.inner.Evaluate(in)
	o.Matched = true
	return o
}

type many1 struct {
	inner Combinator
}

// Many1 applies inner repeatedly and collects the values in match order.
// It stops at the first failure, at end of input, or as soon as inner
// matches without consuming anything; such a zero-width match is dropped.
// At least one value must be collected for Many1 to match.
func Many1(inner Combinator) Combinator {
	return many1{inner: inner}
}

func (p many1) Evaluate(in Span) Outcome {
	var items []Value
	rest := in
	for !rest.Empty() {
		o := p.inner.Evaluate(rest)
		if !o.Matched || o.Remaining.Begin <= rest.Begin {
			break
		}
		items = append(items, o.Value)
		rest = o.Remaining
	}
	if len(items) == 0 {
		return failed(List(), in)
	}
	return matched(List(items...), rest)
}

package combinator

// Outcome is the result of evaluating a combinator against a Span.
// When Matched is false, Remaining equals the Span that was evaluated.
type Outcome struct {
	Value     Value
	Remaining Span
	Matched   bool
}

// Consumed returns how many bytes of in the outcome used up.
func (o Outcome) Consumed(in Span) int {
	return o.Remaining.Begin - in.Begin
}

// Combinator is a parsing rule.
type Combinator interface {
	Evaluate(in Span) Outcome
}

// Func adapts an ordinary function to the Combinator interface.
type Func func(in Span) Outcome

func (f Func) Evaluate(in Span) Outcome {
	return f(in)
}

// Parse evaluates c against all of buf.
func Parse(c Combinator, buf []byte) Outcome {
	return c.Evaluate(NewSpan(buf))
}

func matched(v Value, rest Span) Outcome {
	return Outcome{Value: v, Remaining: rest, Matched: true}
}

func failed(v Value, in Span) Outcome {
	return Outcome{Value: v, Remaining: in, Matched: false}
}

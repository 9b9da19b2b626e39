package grammar

import (
	"fmt"

	"golang.org/x/exp/ebnf"
)

type memoKey struct {
	name   string
	offset int
}

type match struct {
	n  int
	ok bool
}

// Recognizer matches input bytes directly against an EBNF grammar.
// Repetitions and options are greedy and alternatives take the longest
// match, which is how the combinators behave, so the two can be compared.
type Recognizer struct {
	grammar  ebnf.Grammar
	input    []byte
	memo     map[memoKey]match
	visiting map[memoKey]bool
}

func NewRecognizer(g ebnf.Grammar, input []byte) *Recognizer {
	return &Recognizer{
		grammar:  g,
		input:    input,
		memo:     make(map[memoKey]match),
		visiting: make(map[memoKey]bool),
	}
}

// Match returns the length of the prefix of the input that production name
// accepts, and whether it accepts one at all.
func (r *Recognizer) Match(name string) (int, bool) {
	m := r.matchName(name, 0)
	return m.n, m.ok
}

// Recognize matches buf against the built-in description.
func Recognize(buf []byte) (int, bool, error) {
	g, err := Builtin()
	if err != nil {
		return 0, false, err
	}
	n, ok := NewRecognizer(g, buf).Match(Start)
	return n, ok, nil
}

// CrossCheck evaluates buf with both the combinators and the EBNF
// description and reports an error when they disagree on how much input
// is accepted.
func CrossCheck(buf []byte) error {
	n, ok, err := Recognize(buf)
	if err != nil {
		return err
	}
	o := Evaluate(buf)
	consumed := o.Remaining.Begin
	if ok != o.Matched || (ok && n != consumed) {
		return fmt.Errorf("grammar mismatch: ebnf matched=%t len=%d, combinators matched=%t len=%d",
			ok, n, o.Matched, consumed)
	}
	return nil
}

func (r *Recognizer) match(expr ebnf.Expression, offset int) match {
	switch e := expr.(type) {
	case nil:
		return match{ok: true}

	case *ebnf.Token:
		return r.matchToken(e.String, offset)

	case *ebnf.Range:
		return r.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		pos := offset
		for _, item := range e {
			m := r.match(item, pos)
			if !m.ok {
				return match{}
			}
			pos += m.n
		}
		return match{n: pos - offset, ok: true}

	case ebnf.Alternative:
		best := match{}
		for _, alt := range e {
			m := r.match(alt, offset)
			if m.ok && (!best.ok || m.n > best.n) {
				best = m
			}
		}
		return best

	case *ebnf.Repetition:
		pos := offset
		for {
			m := r.match(e.Body, pos)
			if !m.ok || m.n == 0 {
				break
			}
			pos += m.n
		}
		return match{n: pos - offset, ok: true}

	case *ebnf.Option:
		m := r.match(e.Body, offset)
		if !m.ok {
			return match{ok: true}
		}
		return m

	case *ebnf.Group:
		return r.match(e.Body, offset)

	case *ebnf.Name:
		return r.matchName(e.String, offset)

	default:
		return match{}
	}
}

func (r *Recognizer) matchName(name string, offset int) match {
	key := memoKey{name: name, offset: offset}
	if m, ok := r.memo[key]; ok {
		return m
	}
	// left recursion
	if r.visiting[key] {
		return match{}
	}

	prod, ok := r.grammar[name]
	if !ok {
		r.memo[key] = match{}
		return match{}
	}

	r.visiting[key] = true
	m := r.match(prod.Expr, offset)
	delete(r.visiting, key)

	r.memo[key] = m
	return m
}

func (r *Recognizer) matchToken(s string, offset int) match {
	if offset+len(s) > len(r.input) {
		return match{}
	}
	if string(r.input[offset:offset+len(s)]) == s {
		return match{n: len(s), ok: true}
	}
	return match{}
}

func (r *Recognizer) matchRange(begin, end string, offset int) match {
	if offset >= len(r.input) || len(begin) != 1 || len(end) != 1 {
		return match{}
	}
	ch := r.input[offset]
	if ch >= begin[0] && ch <= end[0] {
		return match{n: 1, ok: true}
	}
	return match{}
}

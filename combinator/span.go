package combinator

import "fmt"

// Span is a half-open view [Begin, End) over a byte buffer it does not own.
// Spans over the same buffer may overlap.
type Span struct {
	buf   []byte
	Begin int
	End   int
}

// NewSpan returns a Span covering all of buf.
func NewSpan(buf []byte) Span {
	return Span{buf: buf, Begin: 0, End: len(buf)}
}

// Bytes returns the bytes covered by the span. The result aliases the
// underlying buffer and must not be modified.
func (s Span) Bytes() []byte {
	return s.buf[s.Begin:s.End]
}

func (s Span) Len() int {
	return s.End - s.Begin
}

func (s Span) Empty() bool {
	return s.Begin >= s.End
}

// Buffer returns the whole buffer the span points into.
func (s Span) Buffer() []byte {
	return s.buf
}

// Text returns a copy of the covered bytes as a string.
func (s Span) Text() string {
	return string(s.Bytes())
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Begin, s.End)
}

// first returns the first covered byte, if any.
func (s Span) first() (byte, bool) {
	if s.Empty() {
		return 0, false
	}
	return s.buf[s.Begin], true
}

// split cuts the span n bytes in, returning the consumed head and the rest.
func (s Span) split(n int) (Span, Span) {
	mid := s.Begin + n
	return Span{buf: s.buf, Begin: s.Begin, End: mid},
		Span{buf: s.buf, Begin: mid, End: s.End}
}

// at returns an empty span positioned at the start of s.
func (s Span) at() Span {
	return Span{buf: s.buf, Begin: s.Begin, End: s.Begin}
}

package combinator

import "fmt"

// Position is a location in the buffer a Span points into.
type Position struct {
	Filename string
	Offset   int
	Line     int // 1-based
	Column   int // 1-based, in bytes
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Start returns the position of the first byte of s.
func (s Span) Start() Position {
	return positionAt(s.buf, s.Begin)
}

// Stop returns the position just past the last byte of s.
func (s Span) Stop() Position {
	return positionAt(s.buf, s.End)
}

func positionAt(buf []byte, offset int) Position {
	pos := Position{Offset: offset, Line: 1, Column: 1}
	for _, c := range buf[:offset] {
		if c == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

package combinator

import (
	"fmt"
	"strings"
)

// Kind identifies which variant of Value is active.
type Kind uint8

const (
	KindScalar Kind = iota
	KindList
	KindNumber
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindList:
		return "List"
	case KindNumber:
		return "Number"
	case KindError:
		return "Error"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a node of the result tree produced by a combinator.
// Exactly one of span, items or number is meaningful, depending on kind.
type Value struct {
	kind   Kind
	span   Span
	items  []Value
	number uint32
}

func Scalar(s Span) Value {
	return Value{kind: KindScalar, span: s}
}

// List builds a list node. The slice is owned by the returned Value.
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindList, items: items}
}

func Number(n uint32) Value {
	return Value{kind: KindNumber, number: n}
}

func Error() Value {
	return Value{kind: KindError}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Span returns the matched range of a Scalar, or an empty Span otherwise.
func (v Value) Span() Span {
	return v.span
}

// Items returns a copy of the children of a List, or nil otherwise.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	out := make([]Value, len(v.items))
	copy(out, v.items)
	return out
}

// Len returns the number of children of a List.
func (v Value) Len() int {
	return len(v.items)
}

// Item returns the i-th child of a List.
func (v Value) Item(i int) Value {
	return v.items[i]
}

// Number returns the integer held by a Number node.
func (v Value) Number() uint32 {
	return v.number
}

func (v Value) IsError() bool {
	return v.kind == KindError
}

// Numbers returns the integers of a List whose children are all Numbers.
// The second result is false for any other shape.
func (v Value) Numbers() ([]uint32, bool) {
	if v.kind != KindList {
		return nil, false
	}
	out := make([]uint32, 0, len(v.items))
	for _, item := range v.items {
		if item.kind != KindNumber {
			return nil, false
		}
		out = append(out, item.number)
	}
	return out, true
}

// String renders the tree on one line, e.g. List[Number(3), Scalar("12")].
func (v Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v Value) write(sb *strings.Builder) {
	switch v.kind {
	case KindScalar:
		fmt.Fprintf(sb, "Scalar(%q)", v.span.Bytes())
	case KindNumber:
		fmt.Fprintf(sb, "Number(%d)", v.number)
	case KindError:
		sb.WriteString("Error")
	case KindList:
		sb.WriteString("List[")
		for i, item := range v.items {
			if i > 0 {
				sb.WriteString(", ")
			}
			item.write(sb)
		}
		sb.WriteString("]")
	}
}

// Tree renders the value as an indented tree, one node per line.
func (v Value) Tree() string {
	var sb strings.Builder
	v.tree(&sb, 0)
	return sb.String()
}

func (v Value) tree(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	switch v.kind {
	case KindList:
		fmt.Fprintf(sb, "List (%d)\n", len(v.items))
		for _, item := range v.items {
			item.tree(sb, depth+1)
		}
	case KindScalar:
		fmt.Fprintf(sb, "Scalar %s %q\n", v.span, v.span.Bytes())
	default:
		v.write(sb)
		sb.WriteString("\n")
	}
}

package report

import (
	"encoding"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(s Summary) error
}

// NewEncoder returns the encoder for format: "text", "json" or "yaml".
// colored only affects text output.
func NewEncoder(format string, w io.Writer, colored bool) (Encoder, error) {
	switch format {
	case "", "text":
		return NewTextEncoder(w, colored), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

type encoder struct {
	w       io.Writer
	summary Summary
	marshal func(Summary) ([]byte, error)
}

func (e *encoder) Encode(s Summary) error {
	e.summary = s
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *encoder) MarshalText() ([]byte, error) {
	return e.marshal(e.summary)
}

type JSONEncoder struct {
	encoder
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{encoder{w: w, marshal: func(s Summary) ([]byte, error) {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}}}
}

type YAMLEncoder struct {
	encoder
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{encoder{w: w, marshal: func(s Summary) ([]byte, error) {
		return yaml.Marshal(s)
	}}}
}

// styles holds the color formatters for text output
type styles struct {
	label  *color.Color
	value  *color.Color
	groups *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		label:  color.New(color.Bold),
		value:  color.New(color.FgHiGreen),
		groups: color.New(color.FgHiBlue),
	}
	for _, c := range []*color.Color{s.label, s.value, s.groups} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

type TextEncoder struct {
	encoder
}

// NewTextEncoder writes one line per answer:
//
//	groups: 6000 4000 11000
//	max: 11000
//	top 3: 21000
func NewTextEncoder(w io.Writer, colored bool) *TextEncoder {
	st := newStyles(colored)
	return &TextEncoder{encoder{w: w, marshal: func(s Summary) ([]byte, error) {
		var sb strings.Builder
		parts := make([]string, len(s.Groups))
		for i, g := range s.Groups {
			parts[i] = fmt.Sprint(g)
		}
		fmt.Fprintf(&sb, "%s %s\n", st.label.Sprint("groups:"), st.groups.Sprint(strings.Join(parts, " ")))
		fmt.Fprintf(&sb, "%s %s\n", st.label.Sprint("max:"), st.value.Sprint(s.Max))
		fmt.Fprintf(&sb, "%s %s\n", st.label.Sprintf("top %d:", s.Top), st.value.Sprint(s.TopSum))
		if s.Trailing > 0 {
			fmt.Fprintf(&sb, "%s %d bytes\n", st.label.Sprint("unparsed:"), s.Trailing)
		}
		return []byte(sb.String()), nil
	}}}
}

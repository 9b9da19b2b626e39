package lsp

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dhamidi/tally/combinator"
	"github.com/dhamidi/tally/grammar"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Diagnostics parses content and reports every problem found:
// no groups at all, groups that do not reduce to a number, and input left
// over after the last group.
func Diagnostics(content []byte) []protocol.Diagnostic {
	groups, rest := grammar.Split(content)

	diagnostics := []protocol.Diagnostic{}
	if len(groups) == 0 {
		diagnostics = append(diagnostics, newDiagnostic(rest, protocol.DiagnosticSeverityError,
			"expected a line of digits"))
		return diagnostics
	}

	for i, g := range groups {
		if g.Value.Kind() == combinator.KindNumber {
			continue
		}
		diagnostics = append(diagnostics, newDiagnostic(g.Span, protocol.DiagnosticSeverityError,
			fmt.Sprintf("group %d does not add up to a number: a line or the total exceeds 4294967295", i+1)))
	}

	if !rest.Empty() {
		diagnostics = append(diagnostics, newDiagnostic(rest, protocol.DiagnosticSeverityWarning,
			fmt.Sprintf("unparsed input (%d bytes)", rest.Len())))
	}

	return diagnostics
}

func newDiagnostic(s combinator.Span, severity protocol.DiagnosticSeverity, message string) protocol.Diagnostic {
	source := lsName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: toProtocolPosition(s.Buffer(), s.Start()),
			End:   toProtocolPosition(s.Buffer(), s.Stop()),
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

// toProtocolPosition converts a byte position in buf to an LSP position,
// whose character offset counts UTF-16 code units.
func toProtocolPosition(buf []byte, p combinator.Position) protocol.Position {
	line := buf[p.Offset-(p.Column-1) : p.Offset]
	character := 0
	for len(line) > 0 {
		r, size := utf8.DecodeRune(line)
		character += utf16.RuneLen(r)
		line = line[size:]
	}
	return protocol.Position{
		Line:      protocol.UInteger(p.Line - 1),
		Character: protocol.UInteger(character),
	}
}

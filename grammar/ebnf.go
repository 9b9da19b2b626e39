package grammar

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Start is the production the built-in description starts from.
const Start = "Groups"

//go:embed grammar.ebnf
var description string

// Describe returns the EBNF text matching what Groups accepts.
func Describe() string {
	return description
}

// Load parses an EBNF grammar. When start is not empty the grammar is also
// verified: every production must be defined and reachable from start.
func Load(filename string, r io.Reader, start string) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if start == "" {
		return g, nil
	}
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// LoadFile is Load for a grammar stored on disk.
func LoadFile(filename, start string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return Load(filename, f, start)
}

// Builtin parses and verifies the embedded description.
func Builtin() (ebnf.Grammar, error) {
	return Load("grammar.ebnf", strings.NewReader(description), Start)
}

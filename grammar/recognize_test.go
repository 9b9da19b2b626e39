package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecognize(t *testing.T) {
	tests := []struct {
		input string
		n     int
		ok    bool
	}{
		{"", 0, false},
		{"x", 0, false},
		{"1", 1, true},
		{"1\n2\n\n3\n", 7, true},
		{"1\n2\nabc", 4, true},
		{canonical, len(canonical), true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, ok, err := Recognize([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.n, n)
		})
	}
}

func TestCrossCheck(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"abc",
		"7",
		"1\n2\n\n3\n",
		"1\n\n\n2\n",
		"12\n34\n\n56x",
		canonical,
	}
	for _, input := range inputs {
		assert.NoError(t, CrossCheck([]byte(input)), "input %q", input)
	}
}

func TestRecognizer_CustomGrammar(t *testing.T) {
	g, err := Load("ab.ebnf", strings.NewReader(`
		S = ( "a" | "ab" ) { "c" } [ "d" ] .
	`), "S")
	require.NoError(t, err)

	n, ok := NewRecognizer(g, []byte("abccdx")).Match("S")
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	_, ok = NewRecognizer(g, []byte("x")).Match("S")
	assert.False(t, ok)

	_, ok = NewRecognizer(g, []byte("a")).Match("Missing")
	assert.False(t, ok)
}

func TestRecognizer_LeftRecursion(t *testing.T) {
	g, err := Load("lr.ebnf", strings.NewReader(`
		E = E "+" "1" | "1" .
	`), "E")
	require.NoError(t, err)

	n, ok := NewRecognizer(g, []byte("1+1")).Match("E")
	assert.True(t, ok)
	assert.Equal(t, 1, n)
}

package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var canonical = Totals{6000, 4000, 11000, 24000, 10000}

func TestTotals_Max(t *testing.T) {
	got, err := canonical.Max()
	require.NoError(t, err)
	assert.Equal(t, uint32(24000), got)

	got, err = Totals{3, 3}.Max()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), got)

	_, err = Totals{}.Max()
	assert.ErrorIs(t, err, ErrNoGroups)
}

func TestTotals_TopSum(t *testing.T) {
	tests := []struct {
		n    int
		want uint64
	}{
		{1, 24000},
		{3, 45000},
		{5, 55000},
		{10, 55000},
	}
	for _, tt := range tests {
		got, err := canonical.TopSum(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "top %d", tt.n)
	}

	_, err := canonical.TopSum(0)
	assert.ErrorIs(t, err, ErrBadTop)

	_, err = Totals(nil).TopSum(3)
	assert.ErrorIs(t, err, ErrNoGroups)
}

func TestTotals_TopSumDoesNotOverflow(t *testing.T) {
	big := Totals{4294967295, 4294967295, 4294967295}
	got, err := big.TopSum(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(3*4294967295), got)
}

func TestTotals_Ranked(t *testing.T) {
	assert.Equal(t, []uint32{24000, 11000, 10000, 6000, 4000}, canonical.Ranked())
	assert.Equal(t, Totals{6000, 4000, 11000, 24000, 10000}, canonical, "input order is kept")
}

func TestSummarize(t *testing.T) {
	s, err := Summarize("input.txt", canonical, 3)
	require.NoError(t, err)
	assert.Equal(t, uint32(24000), s.Max)
	assert.Equal(t, uint64(45000), s.TopSum)
	assert.Equal(t, 3, s.Top)
	assert.Equal(t, []uint32(canonical), s.Groups)

	_, err = Summarize("empty", nil, 3)
	assert.ErrorIs(t, err, ErrNoGroups)
}

func TestTextEncoder(t *testing.T) {
	s, err := Summarize("input.txt", Totals{3, 3}, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewTextEncoder(&buf, false).Encode(s))
	assert.Equal(t, "groups: 3 3\nmax: 3\ntop 3: 6\n", buf.String())

	s.Trailing = 4
	buf.Reset()
	require.NoError(t, NewTextEncoder(&buf, false).Encode(s))
	assert.Contains(t, buf.String(), "unparsed: 4 bytes\n")
}

func TestTextEncoder_Color(t *testing.T) {
	s, err := Summarize("input.txt", Totals{3, 3}, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewTextEncoder(&buf, true).Encode(s))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestJSONEncoder(t *testing.T) {
	s, err := Summarize("input.txt", canonical, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewJSONEncoder(&buf).Encode(s))

	var got Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, s, got)
	assert.NotContains(t, buf.String(), "trailing")
}

func TestYAMLEncoder(t *testing.T) {
	s, err := Summarize("input.txt", canonical, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewYAMLEncoder(&buf).Encode(s))

	var got Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, s, got)
	assert.Contains(t, buf.String(), "topSum: 45000")
}

func TestNewEncoder(t *testing.T) {
	var buf bytes.Buffer
	for _, format := range []string{"", "text", "json", "yaml"} {
		enc, err := NewEncoder(format, &buf, false)
		require.NoError(t, err, format)
		assert.NotNil(t, enc)
	}

	_, err := NewEncoder("xml", &buf, false)
	assert.EqualError(t, err, "unknown format: xml")
}

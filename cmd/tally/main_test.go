package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dhamidi/tally/grammar"
	"github.com/dhamidi/tally/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonical = "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n"

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_Canonical(t *testing.T) {
	path := writeInput(t, "input.txt", canonical)

	out, _, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Equal(t, "groups: 6000 4000 11000 24000 10000\nmax: 24000\ntop 3: 45000\n", out)
}

func TestRun_TwoGroups(t *testing.T) {
	path := writeInput(t, "input.txt", "1\n2\n\n3\n")

	out, _, err := execute(t, "run", path, "--top", "1", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "groups: 3 3\nmax: 3\ntop 1: 3\n", out)
}

func TestRun_JSON(t *testing.T) {
	path := writeInput(t, "input.txt", canonical)

	out, _, err := execute(t, "run", "-f", "json", path)
	require.NoError(t, err)

	var s report.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, uint32(24000), s.Max)
	assert.Equal(t, uint64(45000), s.TopSum)
	assert.Equal(t, path, s.Source)
}

func TestRun_EmptyInputFails(t *testing.T) {
	path := writeInput(t, "empty.txt", "")

	out, _, err := execute(t, "run", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, grammar.ErrShape)
	assert.Empty(t, out)
}

func TestRun_Strict(t *testing.T) {
	path := writeInput(t, "input.txt", "1\n2\nabc")

	out, _, err := execute(t, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "unparsed: 3 bytes")

	_, _, err = execute(t, "run", "--strict", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3:1: unparsed input")
}

func TestRun_Config(t *testing.T) {
	input := writeInput(t, "input.txt", canonical)
	cfg := writeInput(t, "tally.toml", "top = 2\ninput = \""+filepath.ToSlash(input)+"\"\nformat = \"yaml\"\n")

	out, _, err := execute(t, "--config", cfg, "run")
	require.NoError(t, err)
	assert.Contains(t, out, "topSum: 35000")

	out, _, err = execute(t, "--config", cfg, "run", "-n", "3", "-f", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "top 3: 45000")
}

func TestRun_InvalidFlags(t *testing.T) {
	path := writeInput(t, "input.txt", canonical)

	_, _, err := execute(t, "run", "-f", "xml", path)
	assert.ErrorContains(t, err, "unknown format")

	_, _, err = execute(t, "run", "--color", "sometimes", path)
	assert.ErrorContains(t, err, "unknown color mode")
}

func TestRun_MissingFile(t *testing.T) {
	_, _, err := execute(t, "run", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "open input")
}

func TestParse_DumpsTree(t *testing.T) {
	path := writeInput(t, "input.txt", "1\n2\n\n3\nxy")

	out, _, err := execute(t, "parse", "--check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "matched: true\n")
	assert.Contains(t, out, "consumed: 7 of 9 bytes\n")
	assert.Contains(t, out, "List (2)\n  Number(3)\n  Number(3)\n")
	assert.Contains(t, out, `rest at `+path+`:5:1: "xy"`)
	assert.Contains(t, out, "ebnf: ok")
}

func TestParse_NoMatch(t *testing.T) {
	path := writeInput(t, "input.txt", "abc")

	out, _, err := execute(t, "parse", path)
	assert.ErrorIs(t, err, grammar.ErrShape)
	assert.Contains(t, out, "matched: false")
}

func TestParse_ErrorGroup(t *testing.T) {
	path := writeInput(t, "input.txt", "1\n\n99999999999\n")

	out, _, err := execute(t, "parse", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, grammar.ErrShape)
	assert.Contains(t, err.Error(), "3:1: group 2 is Error")
	assert.Contains(t, out, "List (2)\n  Number(1)\n  Error")
}

func TestGrammar(t *testing.T) {
	out, _, err := execute(t, "grammar", "print")
	require.NoError(t, err)
	assert.Equal(t, grammar.Describe(), out)

	out, _, err = execute(t, "grammar", "check")
	require.NoError(t, err)
	assert.Equal(t, "ok\n", out)

	good := writeInput(t, "good.ebnf", grammar.Describe())
	_, _, err = execute(t, "grammar", "check", good)
	require.NoError(t, err)

	bad := writeInput(t, "bad.ebnf", "Groups = Group .\n")
	_, stderr, err := execute(t, "grammar", "check", bad)
	require.Error(t, err)
	assert.Contains(t, stderr, "Group")

	_, _, err = execute(t, "grammar", "check", "--start", "", bad)
	require.NoError(t, err)

	_, stderr, err = execute(t, "grammar", "check", filepath.Join(t.TempDir(), "missing.ebnf"))
	require.Error(t, err)
	assert.Contains(t, stderr, "open grammar")
}

func TestRun_ZeroTop(t *testing.T) {
	path := writeInput(t, "input.txt", canonical)

	_, _, err := execute(t, "run", "--top", "0", path)
	assert.ErrorContains(t, err, "top must be positive")
}

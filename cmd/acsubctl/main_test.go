package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testRules = `
rules:
  - pattern: hello
    replace: hi
  - pattern: "${GREETEE}"
    template: true
`

func TestRunRewritesStdin(t *testing.T) {
	dir := t.TempDir()
	rulePath := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(rulePath, []byte(testRules), 0o644))

	var out bytes.Buffer
	in := strings.NewReader("hello ${GREETEE}")

	opts := options{RuleFile: rulePath, Vars: []string{"GREETEE=world"}}
	require.NoError(t, run(opts, in, &out))
	require.Equal(t, "hi world", out.String())
}

func TestRunFailsOnMissingRuleFile(t *testing.T) {
	var out bytes.Buffer
	opts := options{RuleFile: "/no/such/file.yaml"}
	err := run(opts, strings.NewReader("x"), &out)
	require.Error(t, err)
}

func TestParseVars(t *testing.T) {
	m := parseVars([]string{"A=1", "B=2=3", "noequals"})
	require.Equal(t, "1", m["A"])
	require.Equal(t, "2=3", m["B"])
	require.NotContains(t, m, "noequals")
}

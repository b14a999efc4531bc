package rulefile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	acsub "github.com/PilouGit/mod-replace"
	"github.com/PilouGit/mod-replace/rulefile"
	"github.com/PilouGit/mod-replace/tmplvar"
)

const sampleYAML = `
rules:
  - pattern: hello
    replace: hi
  - pattern: world
    replace: universe
  - pattern: "${NONCE}"
    template: true
    tag: nonce
  - pattern: "___SESSION___"
    template: true
    tag: session-id
`

func TestParseAndApply(t *testing.T) {
	doc, err := rulefile.Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, doc.Rules, 4)

	a := acsub.NewDefault()
	require.NoError(t, rulefile.Apply(a, doc))
	require.NoError(t, a.Compile())

	out, err := a.ReplaceAlloc([]byte("hello world"))
	require.NoError(t, err)
	require.Equal(t, "hi universe", string(out))

	out, err = a.ReplaceWithCallback([]byte("id=${NONCE}"), tmplvar.Callback, tmplvar.Context{"NONCE": "42"})
	require.NoError(t, err)
	require.Equal(t, "id=42", string(out))

	// "___SESSION___" is not a "${NAME}"/"%{NAME}" literal, so Callback
	// falls back to the rule's Tag ("session-id") to key the lookup.
	out, err = a.ReplaceWithCallback([]byte("sid=___SESSION___"), tmplvar.Callback, tmplvar.Context{"session-id": "abc"})
	require.NoError(t, err)
	require.Equal(t, "sid=abc", string(out))
}

func TestApplyRejectsEmptyPattern(t *testing.T) {
	doc := &rulefile.Document{Rules: []rulefile.Rule{{Pattern: ""}}}
	a := acsub.NewDefault()
	err := rulefile.Apply(a, doc)
	require.Error(t, err)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := rulefile.Parse([]byte("not: [valid: yaml"))
	require.Error(t, err)
}

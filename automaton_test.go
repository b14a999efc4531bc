package acsub_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	acsub "github.com/PilouGit/mod-replace"
)

func TestRegisterLastWriterWins(t *testing.T) {
	a := acsub.NewDefault()
	require.NoError(t, a.Register([]byte("dup"), []byte("first")))
	require.NoError(t, a.Register([]byte("dup"), []byte("second")))
	require.NoError(t, a.Compile())

	out, err := a.ReplaceAlloc([]byte("dup"))
	require.NoError(t, err)
	require.Equal(t, "second", string(out))
	require.Equal(t, 1, a.Stats().Patterns)
}

func TestRegisterExUserData(t *testing.T) {
	a := acsub.NewDefault()
	type handle struct{ id int }
	h := &handle{id: 7}
	require.NoError(t, a.RegisterEx([]byte("tok"), []byte("static"), h))
	require.NoError(t, a.Compile())

	seen := false
	_, err := a.ReplaceWithCallback([]byte("tok"), func(pattern []byte, userData any, ctx any) []byte {
		seen = true
		got, ok := userData.(*handle)
		require.True(t, ok)
		require.Equal(t, 7, got.id)
		return []byte("dynamic")
	}, nil)
	require.NoError(t, err)
	require.True(t, seen)
}

func TestRegisterInvalidatesCompilation(t *testing.T) {
	a := acsub.NewDefault()
	require.NoError(t, a.Register([]byte("a"), []byte("1")))
	require.NoError(t, a.Compile())

	require.NoError(t, a.Register([]byte("b"), []byte("2")))
	_, err := a.Scan([]byte("ab"), func(acsub.Match) bool { return true })
	require.ErrorIs(t, err, acsub.ErrNotCompiled)

	require.NoError(t, a.Compile())
	out, err := a.ReplaceAlloc([]byte("ab"))
	require.NoError(t, err)
	require.Equal(t, "12", string(out))
}

func TestPatternCountsDistinctPatternsOnce(t *testing.T) {
	a := acsub.NewDefault()
	require.NoError(t, a.Register([]byte("one"), nil))
	require.NoError(t, a.Register([]byte("two"), nil))
	require.NoError(t, a.Register([]byte("one"), []byte("override")))
	require.Equal(t, 2, a.Stats().Patterns)
}

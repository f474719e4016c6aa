package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopHandler(ctx context.Context, inv *Invocation) error { return nil }

func buildRouter(t *testing.T, specs ...Spec) *Router {
	t.Helper()
	b := NewBuilder()
	for _, s := range specs {
		if s.Handler == nil {
			s.Handler = noopHandler
		}
		require.NoError(t, b.Add(s))
	}
	return b.Build()
}

func TestParseCommandLongestMatchWins(t *testing.T) {
	rt := buildRouter(t,
		Spec{Path: "a"},
		Spec{Path: "a b", Params: []Param{{Name: "rest", Kind: Multiple}}},
	)

	cmds, offset := ParseCommand("a b extra", rt.Root())
	require.Len(t, cmds, 1)
	assert.Equal(t, "a b", cmds[0].Path())
	assert.Equal(t, "extra", "a b extra"[offset:])
}

func TestParseCommandStopsAtUnknownSegment(t *testing.T) {
	rt := buildRouter(t, Spec{Path: "a", Params: []Param{{Name: "rest", Kind: Multiple}}})

	cmds, offset := ParseCommand("a zzz tail", rt.Root())
	require.Len(t, cmds, 1)
	assert.Equal(t, "a", cmds[0].Path())
	assert.Equal(t, "zzz tail", "a zzz tail"[offset:])
}

func TestParseCommandGroupWithoutCommandsFails(t *testing.T) {
	// "a b" exists but the intermediate "a" has nothing registered, and the
	// walk stopped there.
	rt := buildRouter(t, Spec{Path: "a b"})

	cmds, _ := ParseCommand("a", rt.Root())
	assert.Nil(t, cmds)

	cmds, _ = ParseCommand("zzz", rt.Root())
	assert.Nil(t, cmds)
}

func TestParseCommandNoBacktracking(t *testing.T) {
	// Descending into "a b" is final: the node has no commands, so the
	// match fails even though "a" alone would have succeeded.
	rt := buildRouter(t,
		Spec{Path: "a", Params: []Param{{Name: "rest", Kind: Multiple}}},
		Spec{Path: "a b c"},
	)

	cmds, _ := ParseCommand("a b", rt.Root())
	assert.Nil(t, cmds)
}

func TestParseCommandConsumesTrailingWhitespace(t *testing.T) {
	rt := buildRouter(t, Spec{Path: "cmd", Params: []Param{{Name: "text", Kind: Unparsed}}})

	text := "cmd   a  b"
	cmds, offset := ParseCommand(text, rt.Root())
	require.Len(t, cmds, 1)
	assert.Equal(t, "a  b", text[offset:])
}

func TestParseArgsRequiredAndOptional(t *testing.T) {
	rt := buildRouter(t, Spec{Path: "x", Params: []Param{
		{Name: "first", Kind: Required},
		{Name: "second", Kind: Optional},
	}})
	cmd := rt.Commands()[0]

	args, err := ParseArgs("x one two", 2, cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, args)

	args, err = ParseArgs("x one", 2, cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{"one"}, args)

	_, err = ParseArgs("x", 1, cmd)
	var bad *BadArgCountError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, 0, bad.Got)

	_, err = ParseArgs("x one two three", 2, cmd)
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, 3, bad.Got)
}

func TestParseArgsMultiple(t *testing.T) {
	rt := buildRouter(t, Spec{Path: "x", Params: []Param{{Name: "items", Kind: Multiple}}})
	cmd := rt.Commands()[0]

	args, err := ParseArgs("x a b c", 2, cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, args)

	args, err = ParseArgs("x", 1, cmd)
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestParseArgsUnparsedKeepsWhitespace(t *testing.T) {
	rt := buildRouter(t, Spec{Path: "cmd", Params: []Param{{Name: "text", Kind: Unparsed}}})
	cmd := rt.Commands()[0]

	text := "cmd   a  b"
	cmds, offset := ParseCommand(text, rt.Root())
	require.NotNil(t, cmds)

	args, err := ParseArgs(text, offset, cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{"a  b"}, args)
}

func TestParseArgsUnparsedEmptyRemainder(t *testing.T) {
	rt := buildRouter(t, Spec{Path: "cmd", Params: []Param{{Name: "text", Kind: Unparsed}}})
	cmd := rt.Commands()[0]

	args, err := ParseArgs("cmd", 3, cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, args)
}

func TestParseArgsNoParamsRejectsTokens(t *testing.T) {
	rt := buildRouter(t, Spec{Path: "x"})
	cmd := rt.Commands()[0]

	args, err := ParseArgs("x", 1, cmd)
	require.NoError(t, err)
	assert.Empty(t, args)

	_, err = ParseArgs("x stray", 2, cmd)
	var bad *BadArgCountError
	assert.ErrorAs(t, err, &bad)
}

func TestParseArgsRequiredThenUnparsed(t *testing.T) {
	rt := buildRouter(t, Spec{Path: "x", Params: []Param{
		{Name: "target", Kind: Required},
		{Name: "rest", Kind: Unparsed},
	}})
	cmd := rt.Commands()[0]

	args, err := ParseArgs("x alice  hello   there", 2, cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "hello   there"}, args)
}

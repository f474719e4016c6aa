package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderRejectsBadSignatures(t *testing.T) {
	cases := []struct {
		name   string
		params []Param
	}{
		{"required after optional", []Param{
			{Name: "a", Kind: Optional},
			{Name: "b", Kind: Required},
		}},
		{"multiple not last", []Param{
			{Name: "a", Kind: Multiple},
			{Name: "b", Kind: Required},
		}},
		{"unparsed not last", []Param{
			{Name: "a", Kind: Unparsed},
			{Name: "b", Kind: Optional},
		}},
		{"two variadic tails", []Param{
			{Name: "a", Kind: Multiple},
			{Name: "b", Kind: Unparsed},
		}},
		{"unnamed parameter", []Param{
			{Name: "", Kind: Required},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBuilder()
			err := b.Add(Spec{Path: "x", Params: tc.params, Handler: noopHandler})
			assert.Error(t, err)
		})
	}
}

func TestBuilderRejectsEmptyPathAndMissingHandler(t *testing.T) {
	b := NewBuilder()
	assert.Error(t, b.Add(Spec{Path: "   ", Handler: noopHandler}))
	assert.Error(t, b.Add(Spec{Path: "x"}))
	assert.Error(t, b.Add(Spec{Path: "x", Handler: noopHandler, Aliases: []string{" "}}))
}

func TestBuilderLocksAfterBuild(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Add(Spec{Path: "x", Handler: noopHandler}))
	b.Build()
	assert.Error(t, b.Add(Spec{Path: "y", Handler: noopHandler}))
}

func TestBuilderNormalizesPathWhitespace(t *testing.T) {
	rt := buildRouter(t, Spec{Path: "  foo   bar "})
	node := rt.GetItem("foo bar")
	require.NotNil(t, node)
	assert.Equal(t, "foo bar", node.Commands()[0].Path())
}

func TestCategoriesKeepFirstRegistrationOrder(t *testing.T) {
	rt := buildRouter(t,
		Spec{Path: "a", Category: "Fun"},
		Spec{Path: "b", Category: "Core"},
		Spec{Path: "c", Category: "Fun"},
		Spec{Path: "d"},
		Spec{Path: "e", Category: "Core", Hidden: true},
	)

	assert.Equal(t, []string{"Fun", "Core", ""}, rt.Categories())

	fun := rt.Category("Fun")
	require.NotNil(t, fun)
	var names []string
	for _, sub := range fun.SubGroups() {
		names = append(names, sub.Name())
	}
	assert.Equal(t, []string{"a", "c"}, names)

	// Hidden commands never reach the category index.
	core := rt.Category("Core")
	require.NotNil(t, core)
	assert.Nil(t, core.GetItem("e"))
}

func TestCommandsReturnsEachCommandOnce(t *testing.T) {
	rt := buildRouter(t, Spec{Path: "foo", Aliases: []string{"f", "fo"}})
	assert.Len(t, rt.Commands(), 1)
}

func TestUsageRendering(t *testing.T) {
	rt := buildRouter(t, Spec{Path: "give", Params: []Param{
		{Name: "user", Kind: Required},
		{Name: "amount", Kind: Optional},
		{Name: "note", Kind: Unparsed},
	}})
	assert.Equal(t, "give <user> [amount] <note...>", rt.Commands()[0].Usage())

	rt = buildRouter(t, Spec{Path: "list", Params: []Param{{Name: "filters", Kind: Multiple}}})
	assert.Equal(t, "list [filters...]", rt.Commands()[0].Usage())
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Modules, 5)
	assert.Len(t, c.Library, 6)
}

func TestValidateRejectsBadIDs(t *testing.T) {
	cases := map[string]Catalog{
		"blank module":   {Modules: []Module{{ID: " "}}},
		"dup module":     {Modules: []Module{{ID: "a"}, {ID: "a"}}},
		"blank item":     {Library: []Item{{ID: ""}}},
		"dup item":       {Library: []Item{{ID: "1"}, {ID: "1"}}},
		"negative hours": {Library: []Item{{ID: "1", Hours: -1}}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, c.Validate())
		})
	}
}

func TestLookups(t *testing.T) {
	c := Default()

	m, ok := c.Module(0)
	require.True(t, ok)
	assert.Equal(t, "steam", m.ID)
	_, ok = c.Module(5)
	assert.False(t, ok)
	_, ok = c.Module(-1)
	assert.False(t, ok)

	item, ok := c.Item(5)
	require.True(t, ok)
	assert.Equal(t, "Stardew Valley", item.Name)
	_, ok = c.Item(6)
	assert.False(t, ok)

	found, idx, ok := c.FindItem("4")
	require.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, "Celeste", found.Name)
	_, _, ok = c.FindItem("")
	assert.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	c := Default()
	dup := c.Clone()
	dup.Library[0].Name = "changed"
	assert.Equal(t, "Tales of the Elements", c.Library[0].Name)
	assert.Empty(t, Catalog{}.Clone().Library)
}

func TestSearch(t *testing.T) {
	c := Default()

	matches := c.Search("stard")
	require.NotEmpty(t, matches)
	assert.Equal(t, "6", matches[0].Item.ID)
	assert.Equal(t, 5, matches[0].Index)

	matches = c.Search("HADES")
	require.Len(t, matches, 1)
	assert.Equal(t, "Hades", matches[0].Item.Name)

	assert.Empty(t, c.Search("   "))
	assert.Empty(t, c.Search("zzzz"))
}

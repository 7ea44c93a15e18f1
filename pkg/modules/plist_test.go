// pkg/modules/plist_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test property list rendering of sub-trees

package modules_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/modules"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_Plist(t *testing.T) {
	tree, err := modules.Aggregate(sampleFragments()...)
	require.NoError(t, err)

	out, err := tree.Plist("system.defaults.dock")
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, text, "<!DOCTYPE plist")

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	dict := doc.FindElement("/plist/dict")
	require.NotNil(t, dict)

	keys := dict.SelectElements("key")
	require.Len(t, keys, 3)
	assert.Equal(t, "autohide", keys[0].Text())
	assert.Equal(t, "orientation", keys[1].Text())
	assert.Equal(t, "tilesize", keys[2].Text())

	children := dict.ChildElements()
	require.Len(t, children, 6)
	assert.Equal(t, "true", children[1].Tag)
	assert.Equal(t, "string", children[3].Tag)
	assert.Equal(t, "bottom", children[3].Text())
	assert.Equal(t, "integer", children[5].Tag)
	assert.Equal(t, "48", children[5].Text())
}

func TestTree_PlistArrays(t *testing.T) {
	tree, err := modules.Aggregate(modules.Fragment{Name: "homebrew", Settings: map[string]interface{}{
		"homebrew": map[string]interface{}{
			"casks": []interface{}{"ghostty", "zed"},
			"ratio": 1.5,
		},
	}})
	require.NoError(t, err)

	out, err := tree.Plist("homebrew")
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	strs := doc.FindElements("/plist/dict/array/string")
	require.Len(t, strs, 2)
	assert.Equal(t, "ghostty", strs[0].Text())
	assert.Equal(t, "1.5", doc.FindElement("/plist/dict/real").Text())
}

func TestTree_PlistWholeFloatsStayReal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "dock.toml"), `
[system.defaults.dock]
autohide-time-modifier = 1.0
autohide-delay = 0.0
tilesize = 48
`)
	fragments, err := modules.LoadFragments(dir, nil)
	require.NoError(t, err)
	tree, err := modules.Aggregate(fragments...)
	require.NoError(t, err)

	out, err := tree.Plist("system.defaults.dock")
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	children := doc.FindElement("/plist/dict").ChildElements()
	require.Len(t, children, 6)
	assert.Equal(t, "autohide-delay", children[0].Text())
	assert.Equal(t, "real", children[1].Tag)
	assert.Equal(t, "0", children[1].Text())
	assert.Equal(t, "autohide-time-modifier", children[2].Text())
	assert.Equal(t, "real", children[3].Tag)
	assert.Equal(t, "1", children[3].Text())
	assert.Equal(t, "integer", children[5].Tag)
	assert.Equal(t, "48", children[5].Text())
}

func TestTree_PlistMissingPrefix(t *testing.T) {
	tree, err := modules.Aggregate(sampleFragments()...)
	require.NoError(t, err)

	_, err = tree.Plist("system.defaults.finder")
	assert.Error(t, err)
}

package reference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartenum/internal/smartenum"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

const statesYAML = `
name: us_states
ignore_case: true
items:
  - {name: Texas, value: 48, abbreviation: TX}
  - {name: Ohio, value: 39, abbreviation: OH, valid_from: "1803-03-01"}
  - {name: Maine, value: 23, code: ME}
`

const prioritiesTOML = `
[[items]]
name = "High"
value = 3
abbreviation = "H"

[[items]]
name = "Low"
value = 1
abbreviation = "L"
`

func TestLoadEnumCatalog(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "states.yaml", statesYAML)
	writeFile(t, dir, "priority.toml", prioritiesTOML)
	writeFile(t, dir, "README.md", "not a catalog")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	cat, err := LoadEnumCatalog(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"priority", "us_states"}, cat.Names())

	states, ok := cat.Lookup("us_states")
	require.True(t, ok)
	assert.Equal(t, smartenum.Uninitialized, states.State())
	assert.True(t, states.IgnoreCase())

	m, err := states.FromAbbreviation("oh")
	require.NoError(t, err)
	assert.Equal(t, "Ohio", m.Name())
	assert.Equal(t, 39, m.Value())
	item, ok := m.(Item)
	require.True(t, ok)
	assert.Equal(t, "1803-03-01", item.ValidFrom)

	// code читается как аббревиатура
	m, err = states.FromAbbreviation("ME")
	require.NoError(t, err)
	assert.Equal(t, "Maine", m.Name())

	prio, ok := cat.Lookup("PRIORITY")
	require.True(t, ok)
	assert.False(t, prio.IgnoreCase())
	_, err = prio.FromAbbreviation("h")
	assert.ErrorIs(t, err, smartenum.ErrNotFound)
	m, ok = prio.TryFromAbbreviation("h", true)
	require.True(t, ok)
	assert.Equal(t, "High", m.Name())
}

func TestLoadEnumCatalog_Errors(t *testing.T) {
	t.Run("missing dir", func(t *testing.T) {
		_, err := LoadEnumCatalog(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})
	t.Run("bad yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "bad.yml", "items: [unterminated")
		_, err := LoadEnumCatalog(dir)
		assert.ErrorContains(t, err, "bad.yml")
	})
	t.Run("duplicate catalog name", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.yaml", "name: same\nitems: [{name: A, value: 1, abbreviation: A}]\n")
		writeFile(t, dir, "b.yaml", "name: same\nitems: [{name: B, value: 2, abbreviation: B}]\n")
		_, err := LoadEnumCatalog(dir)
		assert.ErrorContains(t, err, `duplicate catalog "same"`)
	})
}

func TestCatalogValidate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.yaml", "items: [{name: A, value: 1, abbreviation: A}]\n")
	writeFile(t, dir, "dup.yaml", "items: [{name: A, value: 1, abbreviation: x}, {name: B, value: 2, abbreviation: X}]\n")
	writeFile(t, dir, "empty.yaml", "items: []\n")

	cat, err := LoadEnumCatalog(dir)
	require.NoError(t, err)

	issues := cat.Validate()
	require.Len(t, issues, 2)
	assert.Equal(t, "dup", issues[0].Catalog)
	assert.Equal(t, "duplicate_abbreviation", issues[0].Code)
	assert.Equal(t, "empty", issues[1].Catalog)
	assert.Equal(t, "empty_family", issues[1].Code)

	ok, _ := cat.Lookup("ok")
	assert.Equal(t, smartenum.Ready, ok.State())
}

func TestCatalogLookup_Ambiguous(t *testing.T) {
	cat := make(Catalog)
	mk := func(name string) smartenum.View {
		return EnumDirectory{Name: name, Items: []EnumItem{{Name: "A", Value: 1, Abbreviation: "A"}}}.Family().View()
	}
	require.NoError(t, cat.Add(mk("Colors")))
	require.NoError(t, cat.Add(mk("COLORS")))
	assert.Error(t, cat.Add(mk("Colors")))

	_, ok := cat.Lookup("colors")
	assert.False(t, ok)
	v, ok := cat.Lookup("COLORS")
	require.True(t, ok)
	assert.Equal(t, "COLORS", v.Name())
	_, ok = cat.Lookup("")
	assert.False(t, ok)
}

func TestIssueCode(t *testing.T) {
	assert.Equal(t, "duplicate_name", IssueCode(smartenum.ErrDuplicateName))
	assert.Equal(t, "init_failed", IssueCode(assert.AnError))
}

func TestCatalogLookup_SimpleFolding(t *testing.T) {
	cat := make(Catalog)
	require.NoError(t, cat.Add(EnumDirectory{
		Name:  "Straße",
		Items: []EnumItem{{Name: "A", Value: 1, Abbreviation: "A"}},
	}.Family().View()))

	v, ok := cat.Lookup("STRAẞE")
	require.True(t, ok)
	assert.Equal(t, "Straße", v.Name())

	_, ok = cat.Lookup("STRASSE")
	assert.False(t, ok)
}

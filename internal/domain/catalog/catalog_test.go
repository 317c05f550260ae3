package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ContainsBath(t *testing.T) {
	c := Default()

	s, err := c.Get("bath")
	require.NoError(t, err)
	assert.Equal(t, Service{ID: "bath", Name: "Banho", Price: 50.0}, s)
	assert.NotEmpty(t, c.List())
}

func TestGet_Unknown(t *testing.T) {
	_, err := Default().Get("spa-day")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParse_Custom(t *testing.T) {
	c, err := Parse([]byte(`
[[services]]
id = "x"
name = " Xampu "
price = 12.5

[[services]]
id = "y"
name = "Ypsilon"
price = 0
`))
	require.NoError(t, err)

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Xampu", list[0].Name)
	assert.Equal(t, "y", list[1].ID)
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"duplicate": `
[[services]]
id = "a"
name = "A"
price = 1
[[services]]
id = "a"
name = "B"
price = 2
`,
		"missing name":   "[[services]]\nid = \"a\"\nprice = 1\n",
		"negative price": "[[services]]\nid = \"a\"\nname = \"A\"\nprice = -1\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(raw))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestParse_BadTOML(t *testing.T) {
	_, err := Parse([]byte("[[services]\n"))
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[services]]\nid = \"z\"\nname = \"Zen\"\nprice = 9.99\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	s, err := c.Get("z")
	require.NoError(t, err)
	assert.InDelta(t, 9.99, s.Price, 1e-9)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestList_ReturnsCopy(t *testing.T) {
	c := Default()
	list := c.List()
	list[0].Name = "mutated"
	assert.NotEqual(t, "mutated", c.List()[0].Name)
}

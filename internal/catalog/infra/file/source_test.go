package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/storefront-llm/internal/catalog/domain"
)

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJSON(t *testing.T) {
	path := writeCatalog(t, "products.json", `{
		"products": [
			{"image": "https://img/lamp.png", "name": "Desk Lamp", "price": "$9.99", "subtitle": "Warm light"},
			{"image": "https://img/mug.png", "name": "Mug", "price": "$4.50", "subtitle": "Ceramic"}
		]
	}`)

	products, err := NewSource(path).Load()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, domain.Product{
		Image:    "https://img/lamp.png",
		Name:     "Desk Lamp",
		Price:    "$9.99",
		Subtitle: "Warm light",
	}, products[0])
	assert.Equal(t, "Mug", products[1].Name)
}

func TestLoadYAML(t *testing.T) {
	path := writeCatalog(t, "products.yaml", `
products:
  - image: https://img/lamp.png
    name: Desk Lamp
    price: "$9.99"
    subtitle: Warm light
`)

	products, err := NewSource(path).Load()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Desk Lamp", products[0].Name)
	assert.Equal(t, "$9.99", products[0].Price)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewSource(filepath.Join(t.TempDir(), "nope.json")).Load()
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeCatalog(t, "products.json", `{"products": [`)
		_, err := NewSource(path).Load()
		assert.Error(t, err)
	})
}

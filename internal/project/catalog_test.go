package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/FloorCalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	cat, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Len(t, cat.Products, len(model.DefaultCatalog().Products))

	_, err = os.Stat(path)
	assert.NoError(t, err, "default catalog should be written on first load")
}

func TestSaveAndLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	cat := model.Catalog{Products: []model.FlooringProduct{
		model.NewFlooringProduct("Slate", model.MaterialTile, 7.10, 8.0),
	}}
	require.NoError(t, SaveCatalog(path, cat))

	loaded, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, cat, loaded)
}

func TestLoadCatalogInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte("[1,2"), 0644))

	_, err := LoadCatalog(path)
	assert.Error(t, err)
}

func TestImportCatalogMerges(t *testing.T) {
	existing := model.Catalog{Products: []model.FlooringProduct{
		{ID: "a", Name: "Oak", Material: model.MaterialHardwood},
	}}
	importPath := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, SaveCatalog(importPath, model.Catalog{Products: []model.FlooringProduct{
		{ID: "a", Name: "Oak duplicate", Material: model.MaterialHardwood},
		{ID: "b", Name: "Cork", Material: model.Material("cork")},
		{ID: "c", Name: "Sisal", Material: model.MaterialCarpet},
	}}))

	merged, added, err := ImportCatalog(importPath, existing)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	require.Len(t, merged.Products, 2)
	assert.Equal(t, "Oak", merged.Products[0].Name)
	assert.Equal(t, "Sisal", merged.Products[1].Name)
}

func TestImportCatalogMissingFile(t *testing.T) {
	existing := model.DefaultCatalog()
	merged, added, err := ImportCatalog(filepath.Join(t.TempDir(), "none.json"), existing)
	assert.Error(t, err)
	assert.Zero(t, added)
	assert.Equal(t, existing, merged)
}

package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/FloorCalc/internal/model"
)

// DefaultCatalogPath returns the default file path for the product catalog.
// This is located at ~/.floorcalc/catalog.json.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// SaveCatalog writes the catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, cat model.Catalog) error {
	return writeJSON(path, cat)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat := model.DefaultCatalog()
			if saveErr := SaveCatalog(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return model.Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}
	var cat model.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return model.Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return cat, nil
}

// ImportCatalog reads a catalog from a user-specified JSON file and merges
// it into existing. Products whose ID is already present are skipped, as are
// products with an unknown material.
func ImportCatalog(path string, existing model.Catalog) (model.Catalog, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, 0, fmt.Errorf("failed to read catalog: %w", err)
	}
	var imported model.Catalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, 0, fmt.Errorf("failed to parse catalog: %w", err)
	}
	merged, added := MergeCatalog(existing, imported)
	return merged, added, nil
}

// MergeCatalog appends the products of imported that existing lacks and
// reports how many were added.
func MergeCatalog(existing, imported model.Catalog) (model.Catalog, int) {
	ids := make(map[string]bool, len(existing.Products))
	for _, p := range existing.Products {
		ids[p.ID] = true
	}

	added := 0
	for _, p := range imported.Products {
		if ids[p.ID] || !p.Material.Valid() {
			continue
		}
		existing.Products = append(existing.Products, p)
		ids[p.ID] = true
		added++
	}
	return existing, added
}

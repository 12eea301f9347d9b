package model

import "github.com/google/uuid"

// FlooringProduct is a saved flooring product whose price and package size
// can be copied into a room.
type FlooringProduct struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Material        Material `json:"material"`
	CostPerUnit     float64  `json:"cost_per_unit"`    // price per area unit
	PackageCoverage float64  `json:"package_coverage"` // area per box
}

// NewFlooringProduct creates a new FlooringProduct with a generated ID.
func NewFlooringProduct(name string, material Material, costPerUnit, packageCoverage float64) FlooringProduct {
	return FlooringProduct{
		ID:              uuid.New().String()[:8],
		Name:            name,
		Material:        material,
		CostPerUnit:     costPerUnit,
		PackageCoverage: packageCoverage,
	}
}

// ApplyToRoom copies this product's material, price and package size into the room.
func (fp FlooringProduct) ApplyToRoom(r *Room) {
	r.Material = fp.Material
	r.CostPerUnit = fp.CostPerUnit
	r.PackageCoverage = fp.PackageCoverage
}

// Catalog holds the user's saved flooring products.
type Catalog struct {
	Products []FlooringProduct `json:"products"`
}

// DefaultCatalog returns a catalog populated with common retail products.
func DefaultCatalog() Catalog {
	return Catalog{
		Products: []FlooringProduct{
			NewFlooringProduct("Porcelain Tile 12x24", MaterialTile, 3.50, 15.5),
			NewFlooringProduct("Ceramic Tile 12x12", MaterialTile, 1.99, 10.76),
			NewFlooringProduct("Oak Hardwood 3/4\"", MaterialHardwood, 6.25, 20.0),
			NewFlooringProduct("Laminate 8mm", MaterialLaminate, 2.29, 23.91),
			NewFlooringProduct("Luxury Vinyl Plank", MaterialVinyl, 2.79, 23.64),
			NewFlooringProduct("Berber Carpet", MaterialCarpet, 1.85, 0),
		},
	}
}

// FindByID returns a pointer to the product with the given ID, or nil.
func (c *Catalog) FindByID(id string) *FlooringProduct {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first product with the given name, or nil.
func (c *Catalog) FindByName(name string) *FlooringProduct {
	for i := range c.Products {
		if c.Products[i].Name == name {
			return &c.Products[i]
		}
	}
	return nil
}

// Names returns the product names for UI dropdowns.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Products))
	for i, p := range c.Products {
		names[i] = p.Name
	}
	return names
}

// ForMaterial returns the products of the given material.
func (c *Catalog) ForMaterial(m Material) []FlooringProduct {
	var out []FlooringProduct
	for _, p := range c.Products {
		if p.Material == m {
			out = append(out, p)
		}
	}
	return out
}

package models

// ProductVariant represents a purchasable SKU of a product
type ProductVariant struct {
	ID                int     `json:"id"`
	Price             float64 `json:"price"`
	InventoryQuantity int     `json:"inventory_quantity"`
}

// Product represents a product as reported by the downstream catalog
type Product struct {
	ID       int              `json:"id"`
	Title    string           `json:"title"`
	Variants []ProductVariant `json:"variants"`
}

// FirstVariant returns the product's first variant, which the catalog
// treats as the default purchasable unit.
func (p *Product) FirstVariant() (*ProductVariant, bool) {
	if len(p.Variants) == 0 {
		return nil, false
	}
	return &p.Variants[0], true
}

// VariantByID returns the variant with the given id
func (p *Product) VariantByID(variantID int) (*ProductVariant, bool) {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i], true
		}
	}
	return nil, false
}

package models

// CartLine represents one variant entry in the shopping cart.
// Title and unit price are snapshotted when the line is added and are
// not refreshed on later reads.
type CartLine struct {
	ProductID int     `json:"product_id"`
	VariantID int     `json:"variant_id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Cart represents a shopping cart held entirely in the client's cookie.
// Lines are ordered by insertion and keyed by variant id; a line with
// quantity zero never exists, it is removed instead.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// FindLine returns the index of the line with the given variant id
func (c *Cart) FindLine(variantID int) (int, bool) {
	for i := range c.Lines {
		if c.Lines[i].VariantID == variantID {
			return i, true
		}
	}
	return 0, false
}

// Clone returns a deep copy of the cart. Cart operations mutate a copy
// so a failed precondition leaves the caller's cart untouched.
func (c *Cart) Clone() *Cart {
	clone := &Cart{}
	if len(c.Lines) > 0 {
		clone.Lines = make([]CartLine, len(c.Lines))
		copy(clone.Lines, c.Lines)
	}
	return clone
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalQuantity returns the number of units across all lines
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// LocalCart is the gateway-local cart variant: a plain mapping from
// product id to quantity with no snapshot data and no inventory checks.
type LocalCart map[int]int

// Clone returns a copy of the local cart
func (c LocalCart) Clone() LocalCart {
	clone := make(LocalCart, len(c))
	for id, qty := range c {
		clone[id] = qty
	}
	return clone
}

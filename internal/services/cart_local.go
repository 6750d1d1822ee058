package services

import (
	"context"
	"fmt"

	"commerce-gateway/internal/models"
)

// LocalCartService implements the gateway-local cart: a bare mapping
// from product id to quantity. Add only verifies the product exists in
// the catalog; there is no inventory cap on quantities.
type LocalCartService struct {
	catalog ProductCatalog
}

// NewLocalCartService creates a new local cart service
func NewLocalCartService(catalog ProductCatalog) *LocalCartService {
	return &LocalCartService{catalog: catalog}
}

// Add increments the product's quantity by one, inserting it at
// quantity one if absent. The catalog must confirm the id resolves.
func (s *LocalCartService) Add(ctx context.Context, cart models.LocalCart, productID int) (models.LocalCart, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: %d", models.ErrInvalidProductID, productID)
	}

	if _, err := s.catalog.GetProductByID(ctx, productID); err != nil {
		return nil, err
	}

	updated := cart.Clone()
	updated[productID]++
	return updated, nil
}

// Remove deletes the product's entry from the cart
func (s *LocalCartService) Remove(cart models.LocalCart, productID int) (models.LocalCart, error) {
	if _, ok := cart[productID]; !ok {
		return nil, models.ErrLineNotFound
	}

	updated := cart.Clone()
	delete(updated, productID)
	return updated, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"commerce-gateway/internal/models"
)

// CartService implements the delegated cart: every line snapshots the
// product's title, price and variant id at add-time, and quantity
// increases are checked against the catalog's live inventory count.
//
// All operations work on a copy of the cart and return the copy only on
// success, so a failed precondition never changes what the caller
// persists. Quantities already stored are not re-validated when
// inventory changes elsewhere; that staleness window is accepted.
type CartService struct {
	catalog ProductCatalog
}

// NewCartService creates a new cart service
func NewCartService(catalog ProductCatalog) *CartService {
	return &CartService{catalog: catalog}
}

// Add puts one unit of the product's default variant into the cart.
// If the variant is already present its quantity grows by one, capped
// at the catalog's current inventory.
func (s *CartService) Add(ctx context.Context, cart *models.Cart, productID int) (*models.Cart, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: %d", models.ErrInvalidProductID, productID)
	}

	product, err := s.catalog.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	variant, ok := product.FirstVariant()
	if !ok {
		return nil, fmt.Errorf("%w: product %d has no variants", models.ErrProductNotFound, productID)
	}

	if variant.InventoryQuantity <= 0 {
		return nil, models.ErrOutOfStock
	}

	updated := cart.Clone()
	if i, found := updated.FindLine(variant.ID); found {
		if updated.Lines[i].Quantity >= variant.InventoryQuantity {
			return nil, models.ErrInsufficientStock
		}
		updated.Lines[i].Quantity++
		return updated, nil
	}

	updated.Lines = append(updated.Lines, models.CartLine{
		ProductID: product.ID,
		VariantID: variant.ID,
		Title:     product.Title,
		UnitPrice: variant.Price,
		Quantity:  1,
	})
	return updated, nil
}

// Remove deletes the line with the given variant id
func (s *CartService) Remove(cart *models.Cart, variantID int) (*models.Cart, error) {
	i, found := cart.FindLine(variantID)
	if !found {
		return nil, models.ErrLineNotFound
	}

	updated := cart.Clone()
	updated.Lines = append(updated.Lines[:i], updated.Lines[i+1:]...)
	return updated, nil
}

// IncrementByOne raises the line's quantity by one after re-checking
// the catalog's current inventory for that line's product.
func (s *CartService) IncrementByOne(ctx context.Context, cart *models.Cart, variantID int) (*models.Cart, error) {
	i, found := cart.FindLine(variantID)
	if !found {
		return nil, models.ErrLineNotFound
	}

	product, err := s.catalog.GetProductByID(ctx, cart.Lines[i].ProductID)
	if err != nil {
		return nil, err
	}

	variant, ok := product.VariantByID(variantID)
	if !ok {
		return nil, fmt.Errorf("%w: variant %d no longer exists", models.ErrProductNotFound, variantID)
	}

	if cart.Lines[i].Quantity >= variant.InventoryQuantity {
		return nil, models.ErrInsufficientStock
	}

	updated := cart.Clone()
	updated.Lines[i].Quantity++
	return updated, nil
}

// DecrementByOne lowers the line's quantity by one, removing the line
// entirely when the quantity would reach zero. No catalog call is made.
func (s *CartService) DecrementByOne(cart *models.Cart, variantID int) (*models.Cart, error) {
	i, found := cart.FindLine(variantID)
	if !found {
		return nil, models.ErrLineNotFound
	}

	updated := cart.Clone()
	if updated.Lines[i].Quantity <= 1 {
		updated.Lines = append(updated.Lines[:i], updated.Lines[i+1:]...)
	} else {
		updated.Lines[i].Quantity--
	}
	return updated, nil
}

// IsStockError reports whether the error is a business-rule stock rejection
func IsStockError(err error) bool {
	return errors.Is(err, models.ErrOutOfStock) || errors.Is(err, models.ErrInsufficientStock)
}

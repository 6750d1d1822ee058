package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"commerce-gateway/internal/models"
)

// CatalogConfig represents downstream product catalog configuration
type CatalogConfig struct {
	BaseURL string
}

// CatalogService talks to the downstream Shopify-backed product service.
// The HTTP client is injected and shared across requests; it owns the
// connection pool and the per-call timeout.
type CatalogService struct {
	config CatalogConfig
	client *http.Client
}

// NewCatalogService creates a new catalog client
func NewCatalogService(config CatalogConfig, client *http.Client) *CatalogService {
	return &CatalogService{
		config: config,
		client: client,
	}
}

// GetProductByID fetches a single product. A downstream 404 maps to
// ErrProductNotFound; transport failures and non-success statuses map to
// ErrCatalogUnavailable so the handler can tell the two cases apart.
func (s *CatalogService) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	url := fmt.Sprintf("%s/products/%d", strings.TrimRight(s.config.BaseURL, "/"), id)

	body, err := s.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, fmt.Errorf("%w: failed to decode product response: %s", models.ErrCatalogUnavailable, err)
	}

	return &product, nil
}

// ListProducts fetches the full product list from the downstream service
func (s *CatalogService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	url := strings.TrimRight(s.config.BaseURL, "/") + "/products"

	body, err := s.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var products []*models.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("%w: failed to decode product list: %s", models.ErrCatalogUnavailable, err)
	}

	return products, nil
}

// SearchProducts fetches the full list and filters it in memory. The
// downstream service has no search endpoint, so filtering happens here.
func (s *CatalogService) SearchProducts(ctx context.Context, filters ProductSearchFilters) ([]*models.Product, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(products, filters), nil
}

// get performs a GET against the downstream catalog and returns the body
func (s *CatalogService) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %s", models.ErrCatalogUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, models.ErrProductNotFound
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", models.ErrCatalogUnavailable, resp.StatusCode)
	}
}

// FilterProducts applies search filters to an in-memory product list
func FilterProducts(products []*models.Product, filters ProductSearchFilters) []*models.Product {
	query := strings.ToLower(strings.TrimSpace(filters.Query))

	matched := make([]*models.Product, 0, len(products))
	for _, product := range products {
		if query != "" && !strings.Contains(strings.ToLower(product.Title), query) {
			continue
		}

		variant, ok := product.FirstVariant()
		if !ok {
			continue
		}

		if filters.PriceMin != nil && variant.Price < *filters.PriceMin {
			continue
		}
		if filters.PriceMax != nil && variant.Price > *filters.PriceMax {
			continue
		}
		if filters.InStockOnly && variant.InventoryQuantity <= 0 {
			continue
		}

		matched = append(matched, product)
	}

	return matched
}

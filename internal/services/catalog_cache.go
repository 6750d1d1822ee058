package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"commerce-gateway/internal/models"
)

const productListCacheKey = "catalog:products"

// CachedCatalog wraps a ProductCatalog with a Redis cache for the
// read-only browse path. Single-product lookups bypass the cache:
// cart stock checks must see live inventory.
type CachedCatalog struct {
	origin ProductCatalog
	rdb    *redis.Client
	ttl    time.Duration
}

// NewCachedCatalog creates a caching catalog decorator
func NewCachedCatalog(origin ProductCatalog, rdb *redis.Client, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{
		origin: origin,
		rdb:    rdb,
		ttl:    ttl,
	}
}

// GetProductByID always goes to the origin catalog
func (c *CachedCatalog) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	return c.origin.GetProductByID(ctx, id)
}

// ListProducts returns the cached product list when present, falling
// back to the origin on a miss. Cache failures degrade to origin reads.
func (c *CachedCatalog) ListProducts(ctx context.Context) ([]*models.Product, error) {
	cached, err := c.rdb.Get(ctx, productListCacheKey).Result()
	if err == nil {
		var products []*models.Product
		if err := json.Unmarshal([]byte(cached), &products); err == nil {
			return products, nil
		}
		// Corrupt cache entry, fall through to origin
	} else if err != redis.Nil {
		log.Printf("Warning: product cache read failed: %v", err)
	}

	products, err := c.origin.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		if err := c.rdb.Set(ctx, productListCacheKey, data, c.ttl).Err(); err != nil {
			log.Printf("Warning: product cache write failed: %v", err)
		}
	}

	return products, nil
}

// SearchProducts filters the (possibly cached) product list in memory
func (c *CachedCatalog) SearchProducts(ctx context.Context, filters ProductSearchFilters) ([]*models.Product, error) {
	products, err := c.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(products, filters), nil
}

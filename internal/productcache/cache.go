// Package productcache puts a Redis read-through cache in front of the product catalog.
package productcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source cache.go -destination cache_mock.go -package productcache

// Catalog is the product reader the cache wraps.
type Catalog interface {
	Create(ctx context.Context, arg domain.CreateProductParams) (domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Product, error)
	ActiveByRiskLevel(ctx context.Context, level domain.RiskLevel, createdAfter time.Time, limit int32) ([]domain.Product, error)
	CountActiveByRiskLevel(ctx context.Context, level domain.RiskLevel, createdAfter time.Time) (int64, error)
	List(ctx context.Context, arg domain.ListProductsParams) ([]domain.Product, error)
}

// CachedCatalog caches single product lookups.
//
// Windowed and filtered queries depend on the current time or user input and
// go straight to the primary catalog.
type CachedCatalog struct {
	primary Catalog
	rdb     *redis.Client
	ttl     time.Duration
}

// New creates a cached wrapper around the primary catalog.
func New(primary Catalog, rdb *redis.Client, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{
		primary: primary,
		rdb:     rdb,
		ttl:     ttl,
	}
}

// Create writes to the primary catalog and caches the new product.
func (c *CachedCatalog) Create(ctx context.Context, arg domain.CreateProductParams) (domain.Product, error) {
	p, err := c.primary.Create(ctx, arg)
	if err != nil {
		return p, err
	}

	c.cacheProduct(ctx, p)

	return p, nil
}

// Get checks Redis first and falls back to the primary catalog.
func (c *CachedCatalog) Get(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	l := zerolog.Ctx(ctx)

	data, err := c.rdb.Get(ctx, productKey(id)).Bytes()
	if err == nil {
		var p domain.Product
		if err := json.Unmarshal(data, &p); err == nil {
			return p, nil
		}

		l.Warn().Str("product_id", id.String()).Msg("dropping undecodable product cache entry")

		if err := c.invalidate(ctx, id); err != nil {
			l.Warn().Err(err).Str("product_id", id.String()).Msg("product cache delete failed")
		}
	} else if err != redis.Nil {
		l.Warn().Err(err).Str("product_id", id.String()).Msg("product cache read failed")
	}

	p, err := c.primary.Get(ctx, id)
	if err != nil {
		return p, err
	}

	c.cacheProduct(ctx, p)

	return p, nil
}

// ActiveByRiskLevel is not cached.
func (c *CachedCatalog) ActiveByRiskLevel(ctx context.Context, level domain.RiskLevel, createdAfter time.Time, limit int32) ([]domain.Product, error) {
	return c.primary.ActiveByRiskLevel(ctx, level, createdAfter, limit)
}

// CountActiveByRiskLevel is not cached.
func (c *CachedCatalog) CountActiveByRiskLevel(ctx context.Context, level domain.RiskLevel, createdAfter time.Time) (int64, error) {
	return c.primary.CountActiveByRiskLevel(ctx, level, createdAfter)
}

// List is not cached.
func (c *CachedCatalog) List(ctx context.Context, arg domain.ListProductsParams) ([]domain.Product, error) {
	return c.primary.List(ctx, arg)
}

// invalidate drops the cached copy of the product.
func (c *CachedCatalog) invalidate(ctx context.Context, id uuid.UUID) error {
	return c.rdb.Del(ctx, productKey(id)).Err()
}

func (c *CachedCatalog) cacheProduct(ctx context.Context, p domain.Product) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, productKey(p.ID), data, c.ttl).Err(); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("product_id", p.ID.String()).Msg("product cache write failed")
	}
}

func productKey(id uuid.UUID) string { return "product:" + id.String() }

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/QuantumLuke/QuantumShopsBE/models"
)

const productTTL = 10 * time.Minute

// ProductCache is a read-through cache for product-by-id lookups. Writes to
// the catalog invalidate the cached entry.
type ProductCache struct {
	rdb    *RedisClient
	prefix string
}

func NewProductCache(rdb *RedisClient) *ProductCache {
	return &ProductCache{rdb: rdb, prefix: "product:"}
}

func (pc *ProductCache) key(id uint) string {
	return fmt.Sprintf("%s%d", pc.prefix, id)
}

// Get returns the cached product, or (nil, nil) on a cache miss.
func (pc *ProductCache) Get(ctx context.Context, id uint) (*models.Product, error) {
	raw, err := pc.rdb.Client().Get(ctx, pc.key(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := json.Unmarshal([]byte(raw), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (pc *ProductCache) Set(ctx context.Context, product *models.Product) error {
	raw, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return pc.rdb.Client().Set(ctx, pc.key(product.ID), raw, productTTL).Err()
}

func (pc *ProductCache) Invalidate(ctx context.Context, id uint) error {
	return pc.rdb.Client().Del(ctx, pc.key(id)).Err()
}

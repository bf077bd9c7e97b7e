package cache

import (
	"fmt"
	"valens/internal/domain"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
)

// RistrettoPriceCache keeps two kinds of entries per coin address: the last
// known price and the handle of an in-flight refresh. CleanBatch drops both
// so the next read goes back to the database.
type RistrettoPriceCache struct {
	cache *ristretto.Cache
}

func NewPriceCache(maxItems int64) (*RistrettoPriceCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create price cache failed: %w", err)
	}
	return &RistrettoPriceCache{cache: c}, nil
}

func (c *RistrettoPriceCache) GetPrice(address string) (domain.CoinPrice, bool) {
	if v, ok := c.cache.Get(priceKey(address)); ok {
		price, ok := v.(domain.CoinPrice)
		return price, ok
	}
	return domain.CoinPrice{}, false
}

func (c *RistrettoPriceCache) SetPrice(address string, price domain.CoinPrice) {
	c.cache.Set(priceKey(address), price, 1)
}

func (c *RistrettoPriceCache) GetRefreshID(address string) (uuid.UUID, bool) {
	if v, ok := c.cache.Get(refreshKey(address)); ok {
		id, ok := v.(uuid.UUID)
		return id, ok
	}
	return uuid.Nil, false
}

func (c *RistrettoPriceCache) SetRefreshID(address string, refreshID uuid.UUID) {
	c.cache.Set(refreshKey(address), refreshID, 1)
}

func (c *RistrettoPriceCache) CleanBatch(addresses []string) {
	for _, address := range addresses {
		c.cache.Del(priceKey(address))
		c.cache.Del(refreshKey(address))
	}
}

func (c *RistrettoPriceCache) Close() { c.cache.Close() }

func priceKey(address string) string   { return "price:" + address }
func refreshKey(address string) string { return "refresh:" + address }

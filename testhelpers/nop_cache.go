package testhelpers

import (
	"context"
	"time"

	"github.com/amikaross/rails-engine/internal/models"
)

// NopCache always misses
type NopCache struct{}

func (NopCache) GetItem(ctx context.Context, itemID int64) (*models.Item, error) { return nil, nil }

func (NopCache) SetItem(ctx context.Context, item *models.Item, ttl time.Duration) error { return nil }

func (NopCache) DeleteItem(ctx context.Context, itemID int64) error { return nil }

func (NopCache) GetMerchant(ctx context.Context, merchantID int64) (*models.Merchant, error) {
	return nil, nil
}

func (NopCache) SetMerchant(ctx context.Context, merchant *models.Merchant, ttl time.Duration) error {
	return nil
}

func (NopCache) InvalidateAll(ctx context.Context) error { return nil }

func (NopCache) Ping(ctx context.Context) error { return nil }

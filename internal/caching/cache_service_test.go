package caching

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amikaross/rails-engine/internal/models"
)

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "rails_engine:item:42", itemKey(42))
	assert.Equal(t, "rails_engine:merchant:7", merchantKey(7))
}

// TestRedisCacheService needs a local Redis; it skips when none is reachable
func TestRedisCacheService(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis unavailable: %v", err)
	}

	cache := NewCacheServiceFromClient(client)
	require.NoError(t, cache.InvalidateAll(ctx))

	t.Run("item miss then hit", func(t *testing.T) {
		item, err := cache.GetItem(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, item)

		require.NoError(t, cache.SetItem(ctx, &models.Item{ID: 1, Name: "Ring", UnitPrice: 9.5, MerchantID: 3}, time.Minute))

		item, err = cache.GetItem(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Ring", item.Name)
		assert.Equal(t, 9.5, item.UnitPrice)
	})

	t.Run("delete item", func(t *testing.T) {
		require.NoError(t, cache.DeleteItem(ctx, 1))
		item, err := cache.GetItem(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("merchant round trip and invalidate", func(t *testing.T) {
		require.NoError(t, cache.SetMerchant(ctx, &models.Merchant{ID: 2, Name: "Taco Bell"}, time.Minute))
		require.NoError(t, cache.InvalidateAll(ctx))

		merchant, err := cache.GetMerchant(ctx, 2)
		require.NoError(t, err)
		assert.Nil(t, merchant)
	})
}

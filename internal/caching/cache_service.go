package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/amikaross/rails-engine/internal/logger"
	"github.com/amikaross/rails-engine/internal/models"
)

const keyPrefix = "rails_engine"

type CacheService interface {
	// Item caching
	GetItem(ctx context.Context, itemID int64) (*models.Item, error)
	SetItem(ctx context.Context, item *models.Item, ttl time.Duration) error
	DeleteItem(ctx context.Context, itemID int64) error

	// Merchant caching
	GetMerchant(ctx context.Context, merchantID int64) (*models.Merchant, error)
	SetMerchant(ctx context.Context, merchant *models.Merchant, ttl time.Duration) error

	InvalidateAll(ctx context.Context) error
	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client redis.UniversalClient
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// accept redis://host:port as well as host:port
	parsedAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.GetLogger().Warn("Redis ping failed on initialization", zap.Error(err), zap.String("address", parsedAddr))
	}

	return NewCacheServiceFromClient(client)
}

func NewCacheServiceFromClient(client redis.UniversalClient) CacheService {
	return &redisCacheService{client: client}
}

func itemKey(itemID int64) string {
	return fmt.Sprintf("%s:item:%d", keyPrefix, itemID)
}

func merchantKey(merchantID int64) string {
	return fmt.Sprintf("%s:merchant:%d", keyPrefix, merchantID)
}

func (r *redisCacheService) GetItem(ctx context.Context, itemID int64) (*models.Item, error) {
	var item models.Item
	found, err := r.getJSON(ctx, itemKey(itemID), &item)
	if err != nil || !found {
		return nil, err
	}
	return &item, nil
}

func (r *redisCacheService) SetItem(ctx context.Context, item *models.Item, ttl time.Duration) error {
	return r.setJSON(ctx, itemKey(item.ID), item, ttl)
}

func (r *redisCacheService) DeleteItem(ctx context.Context, itemID int64) error {
	return r.client.Del(ctx, itemKey(itemID)).Err()
}

func (r *redisCacheService) GetMerchant(ctx context.Context, merchantID int64) (*models.Merchant, error) {
	var merchant models.Merchant
	found, err := r.getJSON(ctx, merchantKey(merchantID), &merchant)
	if err != nil || !found {
		return nil, err
	}
	return &merchant, nil
}

func (r *redisCacheService) SetMerchant(ctx context.Context, merchant *models.Merchant, ttl time.Duration) error {
	return r.setJSON(ctx, merchantKey(merchant.ID), merchant, ttl)
}

func (r *redisCacheService) InvalidateAll(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, keyPrefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) > 0 {
		return r.client.Del(ctx, keys...).Err()
	}
	return nil
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// getJSON reports a cache miss as (false, nil)
func (r *redisCacheService) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (r *redisCacheService) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/amikaross/rails-engine/internal/common"
	"github.com/amikaross/rails-engine/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMerchantService_GetByIDCachesLookups(t *testing.T) {
	repo := new(MockMerchantRepository)
	cache := new(MockCache)
	service := NewMerchantService(repo, cache, 5*time.Minute)

	merchant := &models.Merchant{ID: 1, Name: "Schroeder-Jerde"}
	cache.On("GetMerchant", mock.Anything, int64(1)).Return(nil, nil).Once()
	repo.On("GetByID", mock.Anything, int64(1)).Return(merchant, nil).Once()
	cache.On("SetMerchant", mock.Anything, merchant, 5*time.Minute).Return(nil).Once()

	got, err := service.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Schroeder-Jerde", got.Name)

	cache.On("GetMerchant", mock.Anything, int64(1)).Return(merchant, nil).Once()
	got, err = service.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Same(t, merchant, got)

	repo.AssertNumberOfCalls(t, "GetByID", 1)
	cache.AssertExpectations(t)
}

func TestMerchantService_Resolve(t *testing.T) {
	repo := new(MockMerchantRepository)
	cache := new(MockCache)
	service := NewMerchantService(repo, cache, time.Minute)

	t.Run("non numeric id", func(t *testing.T) {
		_, err := service.Resolve(context.Background(), "seven")
		require.Error(t, err)
		assert.True(t, common.IsNotFound(err))
		assert.Equal(t, "Couldn't find Merchant with 'id'=seven", err.Error())
	})

	t.Run("unknown id", func(t *testing.T) {
		cache.On("GetMerchant", mock.Anything, int64(12)).Return(nil, nil).Once()
		repo.On("GetByID", mock.Anything, int64(12)).Return(nil, common.NewNotFoundError("Merchant", int64(12))).Once()

		_, err := service.Resolve(context.Background(), " 12 ")
		assert.True(t, common.IsNotFound(err))
	})

	repo.AssertExpectations(t)
}

func TestMerchantService_List(t *testing.T) {
	repo := new(MockMerchantRepository)
	service := NewMerchantService(repo, new(MockCache), time.Minute)

	repo.On("List", mock.Anything).Return([]*models.Merchant{{ID: 1}, {ID: 2}}, nil).Once()

	merchants, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, merchants, 2)
}

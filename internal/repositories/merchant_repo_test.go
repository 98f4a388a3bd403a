package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/amikaross/rails-engine/internal/common"

	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerchantRepo(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	ctx := context.Background()
	now := time.Now()
	columns := []string{"id", "name", "created_at", "updated_at"}

	t.Run("GetByID", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(merchantGetByIDSQL)).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(1), "Turing School", now, now))

		merchant, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Turing School", merchant.Name)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(merchantGetByIDSQL)).
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByID(ctx, 99)
		assert.True(t, common.IsNotFound(err))
		assert.Equal(t, "Couldn't find Merchant with 'id'=99", err.Error())
	})

	t.Run("SearchByName ordered by name", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(merchantSearchByNameSQL)).
			WithArgs("%ring%").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(2), "Ring World", now, now).
				AddRow(int64(1), "Turing School", now, now))

		merchants, err := repo.SearchByName(ctx, "ring")
		require.NoError(t, err)
		require.Len(t, merchants, 2)
		assert.Equal(t, "Ring World", merchants[0].Name)
		assert.Equal(t, "Turing School", merchants[1].Name)
	})

	t.Run("List", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(merchantListSQL)).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(1), "Taco Bell", now, now))

		merchants, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, merchants, 1)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

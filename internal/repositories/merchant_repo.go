package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/amikaross/rails-engine/internal/common"
	"github.com/amikaross/rails-engine/internal/models"

	"github.com/jackc/pgx/v5"
)

const (
	merchantColumns = `id, name, created_at, updated_at`

	merchantGetByIDSQL = `
		SELECT ` + merchantColumns + `
		FROM merchants
		WHERE id = $1
	`
	merchantListSQL = `
		SELECT ` + merchantColumns + `
		FROM merchants
		ORDER BY id
	`
	merchantSearchByNameSQL = `
		SELECT ` + merchantColumns + `
		FROM merchants
		WHERE name ILIKE $1
		ORDER BY name, id
	`
)

type MerchantRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Merchant, error)
	List(ctx context.Context) ([]*models.Merchant, error)
	SearchByName(ctx context.Context, name string) ([]*models.Merchant, error)
}

type merchantRepo struct {
	db DBTX
}

func NewMerchantRepo(db DBTX) MerchantRepository {
	return &merchantRepo{db: db}
}

func (r *merchantRepo) GetByID(ctx context.Context, id int64) (*models.Merchant, error) {
	merchant := &models.Merchant{}
	err := r.db.QueryRow(ctx, merchantGetByIDSQL, id).Scan(&merchant.ID, &merchant.Name, &merchant.CreatedAt, &merchant.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Merchant", id)
		}
		return nil, fmt.Errorf("get merchant %d: %w", id, err)
	}
	return merchant, nil
}

func (r *merchantRepo) List(ctx context.Context) ([]*models.Merchant, error) {
	return r.queryMerchants(ctx, merchantListSQL)
}

// SearchByName matches a case-insensitive substring, ordered by name
func (r *merchantRepo) SearchByName(ctx context.Context, name string) ([]*models.Merchant, error) {
	return r.queryMerchants(ctx, merchantSearchByNameSQL, containsPattern(name))
}

func (r *merchantRepo) queryMerchants(ctx context.Context, query string, args ...any) ([]*models.Merchant, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	merchants := []*models.Merchant{}
	for rows.Next() {
		merchant := &models.Merchant{}
		if err := rows.Scan(&merchant.ID, &merchant.Name, &merchant.CreatedAt, &merchant.UpdatedAt); err != nil {
			return nil, err
		}
		merchants = append(merchants, merchant)
	}
	return merchants, rows.Err()
}

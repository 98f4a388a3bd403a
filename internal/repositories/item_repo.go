package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amikaross/rails-engine/internal/common"
	"github.com/amikaross/rails-engine/internal/models"

	"github.com/jackc/pgx/v5"
)

const (
	itemColumns = `id, name, description, unit_price, merchant_id, created_at, updated_at`

	itemCreateSQL = `
		INSERT INTO items (name, description, unit_price, merchant_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	itemGetByIDSQL = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE id = $1
	`
	itemUpdateSQL = `
		UPDATE items
		SET name = $1, description = $2, unit_price = $3, merchant_id = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at
	`
	itemDeleteSQL = `
		DELETE FROM items
		WHERE id = $1
		RETURNING ` + itemColumns + `
	`
	itemListSQL = `
		SELECT ` + itemColumns + `
		FROM items
		ORDER BY id
	`
	itemListByMerchantSQL = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE merchant_id = $1
		ORDER BY id
	`
	itemSearchByNameSQL = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE name ILIKE $1
		ORDER BY name, id
	`
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id int64) (*models.Item, error)
	List(ctx context.Context) ([]*models.Item, error)
	ListByMerchant(ctx context.Context, merchantID int64) ([]*models.Item, error)
	SearchByName(ctx context.Context, name string) ([]*models.Item, error)
	SearchByPrice(ctx context.Context, minPrice, maxPrice *float64) ([]*models.Item, error)
	WithTx(tx pgx.Tx) ItemRepository
}

type itemRepo struct {
	db DBTX
}

func NewItemRepo(db DBTX) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) WithTx(tx pgx.Tx) ItemRepository {
	return &itemRepo{db: tx}
}

func (r *itemRepo) Create(ctx context.Context, item *models.Item) error {
	err := r.db.QueryRow(ctx, itemCreateSQL, item.Name, item.Description, item.UnitPrice, item.MerchantID).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (r *itemRepo) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, itemGetByIDSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Item", id)
		}
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return item, nil
}

func (r *itemRepo) Update(ctx context.Context, item *models.Item) error {
	err := r.db.QueryRow(ctx, itemUpdateSQL, item.Name, item.Description, item.UnitPrice, item.MerchantID, item.ID).
		Scan(&item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.NewNotFoundError("Item", item.ID)
		}
		return fmt.Errorf("update item %d: %w", item.ID, err)
	}
	return nil
}

// Delete removes the item row and returns what was deleted. Join rows must
// already be gone.
func (r *itemRepo) Delete(ctx context.Context, id int64) (*models.Item, error) {
	item, err := scanItem(r.db.QueryRow(ctx, itemDeleteSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Item", id)
		}
		return nil, fmt.Errorf("delete item %d: %w", id, err)
	}
	return item, nil
}

func (r *itemRepo) List(ctx context.Context) ([]*models.Item, error) {
	return r.queryItems(ctx, itemListSQL)
}

func (r *itemRepo) ListByMerchant(ctx context.Context, merchantID int64) ([]*models.Item, error) {
	return r.queryItems(ctx, itemListByMerchantSQL, merchantID)
}

// SearchByName matches a case-insensitive substring, ordered by name
func (r *itemRepo) SearchByName(ctx context.Context, name string) ([]*models.Item, error) {
	return r.queryItems(ctx, itemSearchByNameSQL, containsPattern(name))
}

// SearchByPrice filters on exclusive bounds; a nil bound is not applied
func (r *itemRepo) SearchByPrice(ctx context.Context, minPrice, maxPrice *float64) ([]*models.Item, error) {
	query, args := buildPriceSearch(minPrice, maxPrice)
	return r.queryItems(ctx, query, args...)
}

func buildPriceSearch(minPrice, maxPrice *float64) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	if minPrice != nil {
		args = append(args, *minPrice)
		conditions = append(conditions, fmt.Sprintf("unit_price > $%d", len(args)))
	}
	if maxPrice != nil {
		args = append(args, *maxPrice)
		conditions = append(conditions, fmt.Sprintf("unit_price < $%d", len(args)))
	}

	query := `SELECT ` + itemColumns + ` FROM items`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY name, id`
	return query, args
}

func (r *itemRepo) queryItems(ctx context.Context, query string, args ...any) ([]*models.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanItem(row pgx.Row) (*models.Item, error) {
	item := &models.Item{}
	if err := row.Scan(&item.ID, &item.Name, &item.Description, &item.UnitPrice, &item.MerchantID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	return item, nil
}

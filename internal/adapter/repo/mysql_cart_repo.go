package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/entity"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/usecase"
	"github.com/shopspring/decimal"
)

type MySQLCartRepo struct{ db *sql.DB }

func NewMySQLCartRepo(db *sql.DB) *MySQLCartRepo { return &MySQLCartRepo{db: db} }

func (r *MySQLCartRepo) GetByUser(ctx context.Context, userID string) (*entity.Cart, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id,user_id,total FROM carts WHERE user_id=?`, userID)
	var cart entity.Cart
	err := row.Scan(&cart.ID, &cart.UserID, &cart.Total)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, usecase.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	// insertion order keeps the display order stable
	rows, err := r.db.QueryContext(ctx, `
SELECT id,product_id,quantity FROM cart_items WHERE cart_id=? ORDER BY created_at, id`, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	return &cart, rows.Err()
}

func (r *MySQLCartRepo) Create(ctx context.Context, cart *entity.Cart) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO carts (id,user_id,total,created_at,updated_at)
VALUES (?,?,?,NOW(),NOW())`, cart.ID, cart.UserID, cart.Total)
	return err
}

func (r *MySQLCartRepo) InsertItem(ctx context.Context, cartID string, item entity.CartItem) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO cart_items (id,cart_id,product_id,quantity,created_at)
VALUES (?,?,?,?,NOW())`, item.ID, cartID, item.ProductID, item.Quantity)
	return err
}

// UpdateItemQuantity does not treat zero affected rows as an error: MySQL
// reports 0 when the new quantity equals the stored one, and the service
// already verified the line exists.
func (r *MySQLCartRepo) UpdateItemQuantity(ctx context.Context, cartID, itemID string, quantity int) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE cart_items SET quantity=? WHERE cart_id=? AND id=?`, quantity, cartID, itemID)
	return err
}

func (r *MySQLCartRepo) DeleteItem(ctx context.Context, cartID, itemID string) error {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM cart_items WHERE cart_id=? AND id=?`, cartID, itemID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *MySQLCartRepo) DeleteAllItems(ctx context.Context, cartID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id=?`, cartID)
	return err
}

func (r *MySQLCartRepo) SaveTotal(ctx context.Context, cartID string, total decimal.Decimal) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE carts SET total=?, updated_at=NOW() WHERE id=?`, total, cartID)
	return err
}

var _ usecase.CartRepo = (*MySQLCartRepo)(nil)

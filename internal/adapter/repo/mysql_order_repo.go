package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/entity"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/usecase"
)

type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

func (r *MySQLOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
INSERT INTO orders (id,user_id,customer_name,customer_email,total,status,created_at)
VALUES (?,?,?,?,?,?,?)`,
		order.ID, order.UserID, order.CustomerName, order.CustomerEmail,
		order.Total, order.Status, order.CreatedAt)
	if err != nil {
		tx.Rollback()
		return err
	}

	// batch insert the line snapshots
	itemQuery := `INSERT INTO order_items (order_id,product_id,name,price,quantity) VALUES `
	var values []interface{}
	for _, item := range order.Items {
		itemQuery += "(?,?,?,?,?),"
		values = append(values, order.ID, item.ProductID, item.Name, item.Price, item.Quantity)
	}
	itemQuery = itemQuery[:len(itemQuery)-1]

	if _, err := tx.ExecContext(ctx, itemQuery, values...); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *MySQLOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id,user_id,customer_name,customer_email,total,status,created_at
FROM orders WHERE id=?`, id)
	var order entity.Order
	err := row.Scan(&order.ID, &order.UserID, &order.CustomerName, &order.CustomerEmail,
		&order.Total, &order.Status, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, usecase.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MySQLOrderRepo) ListByUser(ctx context.Context, userID string, limit int) ([]entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,user_id,customer_name,customer_email,total,status,created_at
FROM orders WHERE user_id=? ORDER BY created_at DESC, id DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []entity.Order{}
	for rows.Next() {
		var order entity.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.CustomerName, &order.CustomerEmail,
			&order.Total, &order.Status, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := r.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *MySQLOrderRepo) loadItems(ctx context.Context, order *entity.Order) error {
	rows, err := r.db.QueryContext(ctx, `
SELECT product_id,name,price,quantity FROM order_items WHERE order_id=? ORDER BY id`, order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)

package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/entity"
	"github.com/TajwarSaiyeed/nexora-e-commerce/internal/usecase"
)

type MySQLProductRepo struct{ db *sql.DB }

func NewMySQLProductRepo(db *sql.DB) *MySQLProductRepo { return &MySQLProductRepo{db: db} }

func (r *MySQLProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,name,price,description,category,image,stock,created_at,updated_at
FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Category,
			&p.Image, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *MySQLProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id,name,price,description,category,image,stock,created_at,updated_at
FROM products WHERE id=?`, id)
	var p entity.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Category,
		&p.Image, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, usecase.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

var _ usecase.ProductRepo = (*MySQLProductRepo)(nil)

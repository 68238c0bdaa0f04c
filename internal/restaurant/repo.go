// File: internal/restaurant/repo.go
// Package restaurant provides the restaurant/menu read model used at checkout
// and its PostgreSQL and MongoDB repositories.
package restaurant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/food-orders/internal/db"
)

var (
	ErrNotFound = errors.New("restaurant not found")
)

type Repository interface {
	// GetWithMenus returns the restaurant with its menu collection populated.
	GetWithMenus(ctx context.Context, id string) (*Restaurant, error)
	Create(ctx context.Context, r *Restaurant) error
}

type PGRepo struct{ db db.Pool }

func NewPGRepo(pool db.Pool) *PGRepo { return &PGRepo{db: pool} }

func (r *PGRepo) GetWithMenus(ctx context.Context, id string) (*Restaurant, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var out Restaurant
	err := r.db.QueryRow(ctx, `
		SELECT id, restaurant_name, city, country, delivery_time, cuisines, image_url, created_at, updated_at
		FROM restaurants WHERE id=$1
	`, id).Scan(&out.ID, &out.Name, &out.City, &out.Country, &out.DeliveryTime, &out.Cuisines, &out.ImageURL, &out.CreatedAt, &out.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get restaurant: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price::text, image
		FROM menus WHERE restaurant_id=$1
		ORDER BY created_at, name
	`, id)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			m     MenuItem
			price string
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &price, &m.Image); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		if m.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("menu %s price %q: %w", m.ID, price, err)
		}
		out.Menus = append(out.Menus, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *PGRepo) Create(ctx context.Context, rest *Restaurant) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		INSERT INTO restaurants (id, restaurant_name, city, country, delivery_time, cuisines, image_url, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NOW(),NOW())
	`, rest.ID, rest.Name, rest.City, rest.Country, rest.DeliveryTime, rest.Cuisines, rest.ImageURL); err != nil {
		return fmt.Errorf("insert restaurant: %w", err)
	}

	for _, m := range rest.Menus {
		if _, err := tx.Exec(ctx, `
			INSERT INTO menus (id, restaurant_id, name, description, price, image, created_at)
			VALUES ($1,$2,$3,$4,$5::numeric,$6,NOW())
		`, m.ID, rest.ID, m.Name, m.Description, m.Price.String(), m.Image); err != nil {
			return fmt.Errorf("insert menu %s: %w", m.ID, err)
		}
	}
	return tx.Commit(ctx)
}

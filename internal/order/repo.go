// File: internal/order/repo.go
// Package order provides the order model and its PostgreSQL and MongoDB
// repositories.
package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MikeMC777/food-orders/internal/db"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	// ListByUser returns the user's orders, newest first, with user and
	// restaurant resolved. An empty result is a non-nil empty slice.
	ListByUser(ctx context.Context, userID string) ([]Populated, error)
}

type PGRepo struct{ db db.Pool }

func NewPGRepo(pool db.Pool) *PGRepo { return &PGRepo{db: pool} }

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	details, err := json.Marshal(o.DeliveryDetails)
	if err != nil {
		return fmt.Errorf("encode delivery details: %w", err)
	}
	items, err := json.Marshal(o.CartItems)
	if err != nil {
		return fmt.Errorf("encode cart items: %w", err)
	}

	now := time.Now().UTC()
	if _, err := r.db.Exec(ctx, `
		INSERT INTO orders (id, user_id, restaurant_id, delivery_details, cart_items, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4::jsonb,$5::jsonb,$6,$7,$7)
	`, o.ID, o.UserID, o.RestaurantID, string(details), string(items), string(o.Status), now); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	o.CreatedAt, o.UpdatedAt = now, now
	return nil
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Populated, error) {
	out := make([]Populated, 0)
	if _, err := uuid.Parse(userID); err != nil {
		return out, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT o.id, o.status, o.delivery_details::text, o.cart_items::text, o.created_at, o.updated_at,
		       u.id, u.fullname, u.email, u.contact, u.address, u.city, u.country, u.profile_picture, u.admin, u.created_at, u.updated_at,
		       r.id, r.restaurant_name, r.city, r.country, r.delivery_time, r.cuisines, r.image_url, r.created_at, r.updated_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p              Populated
			status         string
			details, items string
		)
		u, rest := &p.User, &p.Restaurant
		if err := rows.Scan(
			&p.ID, &status, &details, &items, &p.CreatedAt, &p.UpdatedAt,
			&u.ID, &u.Fullname, &u.Email, &u.Contact, &u.Address, &u.City, &u.Country, &u.ProfilePicture, &u.Admin, &u.CreatedAt, &u.UpdatedAt,
			&rest.ID, &rest.Name, &rest.City, &rest.Country, &rest.DeliveryTime, &rest.Cuisines, &rest.ImageURL, &rest.CreatedAt, &rest.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		p.Status = Status(status)
		if err := json.Unmarshal([]byte(details), &p.DeliveryDetails); err != nil {
			return nil, fmt.Errorf("decode delivery details of %s: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(items), &p.CartItems); err != nil {
			return nil, fmt.Errorf("decode cart items of %s: %w", p.ID, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

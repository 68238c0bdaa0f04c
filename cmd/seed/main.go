// Command seed creates a demo user and restaurant in the configured store and
// prints a token for calling the order API as that user.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/MikeMC777/food-orders/internal/auth"
	"github.com/MikeMC777/food-orders/internal/config"
	"github.com/MikeMC777/food-orders/internal/restaurant"
	"github.com/MikeMC777/food-orders/internal/store"
	"github.com/MikeMC777/food-orders/internal/user"
)

func main() {
	app := &cli.App{
		Name:  "seed",
		Usage: "create a demo user and restaurant and print a token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Value: "demo@example.com", Usage: "demo user email"},
			&cli.StringFlag{Name: "password", Value: "demo1234", Usage: "demo user password"},
			&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour, Usage: "token lifetime"},
		},
		Action: seed,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("[seed] %v", err)
	}
}

func seed(c *cli.Context) error {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	ctx, cancel := context.WithTimeout(c.Context, 30*time.Second)
	defer cancel()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	u, err := ensureUser(ctx, st.Users, c.String("email"), c.String("password"))
	if err != nil {
		return fmt.Errorf("user: %w", err)
	}

	rest := demoRestaurant()
	if err := st.Restaurants.Create(ctx, rest); err != nil {
		return fmt.Errorf("restaurant: %w", err)
	}

	tok, err := auth.Sign([]byte(cfg.JWTSecret), u.ID, c.Duration("ttl"))
	if err != nil {
		return fmt.Errorf("token: %w", err)
	}

	fmt.Printf("user:       %s (%s)\n", u.ID, u.Email)
	fmt.Printf("restaurant: %s\n", rest.ID)
	for _, m := range rest.Menus {
		fmt.Printf("  menu %s  %-10s %s\n", m.ID, m.Name, m.Price.StringFixed(2))
	}
	fmt.Printf("token:      %s\n", tok)
	return nil
}

var errWrongPassword = errors.New("user exists with a different password")

// ensureUser creates the demo user, or reuses it when the email is taken and
// the password matches.
func ensureUser(ctx context.Context, users user.Repository, email, password string) (*user.User, error) {
	hash, err := user.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &user.User{
		ID:           uuid.NewString(),
		Fullname:     "Demo Customer",
		Email:        email,
		PasswordHash: hash,
		Contact:      "+255700000000",
		Address:      "Plot 4, Sokoine Road",
		City:         "Arusha",
		Country:      "Tanzania",
	}
	err = users.Create(ctx, u)
	if errors.Is(err, user.ErrAlreadyExist) {
		existing, err := users.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if !user.CheckPassword(existing.PasswordHash, password) {
			return nil, errWrongPassword
		}
		return existing, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func demoRestaurant() *restaurant.Restaurant {
	return &restaurant.Restaurant{
		ID:           uuid.NewString(),
		Name:         "Mama Pilau",
		City:         "Arusha",
		Country:      "Tanzania",
		DeliveryTime: 30,
		Cuisines:     []string{"Swahili", "Indian"},
		ImageURL:     "https://images.example.com/mama-pilau.jpg",
		Menus: []restaurant.MenuItem{
			{ID: uuid.NewString(), Name: "Pilau", Description: "Spiced rice with beef", Price: decimal.RequireFromString("12.50"), Image: "https://images.example.com/pilau.jpg"},
			{ID: uuid.NewString(), Name: "Chapati", Description: "Layered flatbread", Price: decimal.RequireFromString("1.50"), Image: "https://images.example.com/chapati.jpg"},
			{ID: uuid.NewString(), Name: "Chai", Description: "Spiced milk tea", Price: decimal.RequireFromString("1.00"), Image: "https://images.example.com/chai.jpg"},
		},
	}
}

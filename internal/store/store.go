package store

import (
	"context"
	"fmt"
	"log"

	"github.com/MikeMC777/food-orders/internal/config"
	"github.com/MikeMC777/food-orders/internal/db"
	"github.com/MikeMC777/food-orders/internal/order"
	"github.com/MikeMC777/food-orders/internal/restaurant"
	"github.com/MikeMC777/food-orders/internal/user"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Store bundles the repositories of one backend.
type Store struct {
	Users       user.Repository
	Restaurants restaurant.Repository
	Orders      order.Repository
	Close       func()
}

// Open connects to the backend selected by cfg.StoreDriver and prepares its
// schema: migrations for postgres, indexes for mongo.
func Open(ctx context.Context, cfg config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case DriverPostgres:
		return openPostgres(ctx, cfg.PostgresDSN)
	case DriverMongo:
		return openMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want %s or %s)", cfg.StoreDriver, DriverPostgres, DriverMongo)
	}
}

func openPostgres(ctx context.Context, dsn string) (*Store, error) {
	if err := db.RunMigrations(dsn); err != nil {
		return nil, err
	}
	pool, err := db.NewPool(ctx, dsn)
	if err != nil {
		return nil, err
	}
	log.Printf("[db] connected to postgres")
	return &Store{
		Users:       user.NewPGRepo(pool),
		Restaurants: restaurant.NewPGRepo(pool),
		Orders:      order.NewPGRepo(pool),
		Close:       pool.Close,
	}, nil
}

func openMongo(ctx context.Context, uri, database string) (*Store, error) {
	mdb, err := db.ConnectMongo(ctx, uri, database)
	if err != nil {
		return nil, err
	}
	users := user.NewMongoRepo(mdb)
	orders := order.NewMongoRepo(mdb)
	if err := users.CreateIndexes(ctx); err != nil {
		_ = mdb.Client().Disconnect(ctx)
		return nil, err
	}
	if err := orders.CreateIndexes(ctx); err != nil {
		_ = mdb.Client().Disconnect(ctx)
		return nil, err
	}
	log.Printf("[db] connected to mongo database %s", database)
	return &Store{
		Users:       users,
		Restaurants: restaurant.NewMongoRepo(mdb),
		Orders:      orders,
		Close: func() {
			if err := mdb.Client().Disconnect(context.Background()); err != nil {
				log.Printf("[db] mongo disconnect: %v", err)
			}
		},
	}, nil
}

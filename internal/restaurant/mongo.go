package restaurant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDoc is the stored shape of a restaurant; menus are referenced by id.
type MongoDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"restaurantName"`
	City         string    `bson:"city"`
	Country      string    `bson:"country"`
	DeliveryTime int       `bson:"deliveryTime"`
	Cuisines     []string  `bson:"cuisines"`
	ImageURL     string    `bson:"imageUrl"`
	Menus        []string  `bson:"menus"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func (d MongoDoc) Restaurant() Restaurant {
	return Restaurant{
		ID:           d.ID,
		Name:         d.Name,
		City:         d.City,
		Country:      d.Country,
		DeliveryTime: d.DeliveryTime,
		Cuisines:     d.Cuisines,
		ImageURL:     d.ImageURL,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type menuDoc struct {
	ID           string               `bson:"_id"`
	RestaurantID string               `bson:"restaurant"`
	Name         string               `bson:"name"`
	Description  string               `bson:"description"`
	Price        primitive.Decimal128 `bson:"price"`
	Image        string               `bson:"image"`
}

type MongoRepo struct {
	restaurants *mongo.Collection
	menus       *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		restaurants: db.Collection("restaurants"),
		menus:       db.Collection("menus"),
	}
}

func (r *MongoRepo) GetWithMenus(ctx context.Context, id string) (*Restaurant, error) {
	var doc MongoDoc
	err := r.restaurants.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	out := doc.Restaurant()
	if len(doc.Menus) == 0 {
		return &out, nil
	}

	cur, err := r.menus.Find(ctx, bson.M{"_id": bson.M{"$in": doc.Menus}})
	if err != nil {
		return nil, fmt.Errorf("failed to find menus: %w", err)
	}
	var menus []menuDoc
	if err := cur.All(ctx, &menus); err != nil {
		return nil, fmt.Errorf("failed to decode menus: %w", err)
	}
	byID := make(map[string]menuDoc, len(menus))
	for _, m := range menus {
		byID[m.ID] = m
	}
	// $in does not keep the stored menu order.
	for _, id := range doc.Menus {
		m, ok := byID[id]
		if !ok {
			continue
		}
		price, err := decimal.NewFromString(m.Price.String())
		if err != nil {
			return nil, fmt.Errorf("menu %s price %q: %w", m.ID, m.Price.String(), err)
		}
		out.Menus = append(out.Menus, MenuItem{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Price:       price,
			Image:       m.Image,
		})
	}
	return &out, nil
}

func (r *MongoRepo) Create(ctx context.Context, rest *Restaurant) error {
	now := time.Now().UTC()
	if rest.CreatedAt.IsZero() {
		rest.CreatedAt = now
	}
	rest.UpdatedAt = now

	ids := make([]string, 0, len(rest.Menus))
	docs := make([]interface{}, 0, len(rest.Menus))
	for _, m := range rest.Menus {
		price, err := primitive.ParseDecimal128(m.Price.String())
		if err != nil {
			return fmt.Errorf("menu %s price: %w", m.ID, err)
		}
		ids = append(ids, m.ID)
		docs = append(docs, menuDoc{
			ID:           m.ID,
			RestaurantID: rest.ID,
			Name:         m.Name,
			Description:  m.Description,
			Price:        price,
			Image:        m.Image,
		})
	}
	if len(docs) > 0 {
		if _, err := r.menus.InsertMany(ctx, docs); err != nil {
			return fmt.Errorf("failed to insert menus: %w", err)
		}
	}

	_, err := r.restaurants.InsertOne(ctx, MongoDoc{
		ID:           rest.ID,
		Name:         rest.Name,
		City:         rest.City,
		Country:      rest.Country,
		DeliveryTime: rest.DeliveryTime,
		Cuisines:     rest.Cuisines,
		ImageURL:     rest.ImageURL,
		Menus:        ids,
		CreatedAt:    rest.CreatedAt,
		UpdatedAt:    rest.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to insert restaurant: %w", err)
	}
	return nil
}

package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MikeMC777/food-orders/internal/restaurant"
	"github.com/MikeMC777/food-orders/internal/user"
)

type cartItemDoc struct {
	MenuID   string               `bson:"menuId"`
	Name     string               `bson:"name"`
	Image    string               `bson:"image"`
	Price    primitive.Decimal128 `bson:"price"`
	Quantity int                  `bson:"quantity"`
}

type orderDoc struct {
	ID              string          `bson:"_id"`
	User            string          `bson:"user"`
	Restaurant      string          `bson:"restaurant"`
	DeliveryDetails DeliveryDetails `bson:"deliveryDetails"`
	CartItems       []cartItemDoc   `bson:"cartItems"`
	Status          Status          `bson:"status"`
	CreatedAt       time.Time       `bson:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt"`
}

type populatedDoc struct {
	orderDoc      `bson:",inline"`
	UserDoc       user.User           `bson:"userDoc"`
	RestaurantDoc restaurant.MongoDoc `bson:"restaurantDoc"`
}

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{collection: db.Collection("orders")}
}

func (r *MongoRepo) Create(ctx context.Context, o *Order) error {
	items := make([]cartItemDoc, 0, len(o.CartItems))
	for _, it := range o.CartItems {
		price, err := primitive.ParseDecimal128(it.Price.String())
		if err != nil {
			return fmt.Errorf("cart item %s price: %w", it.MenuID, err)
		}
		items = append(items, cartItemDoc{
			MenuID:   it.MenuID,
			Name:     it.Name,
			Image:    it.Image,
			Price:    price,
			Quantity: it.Quantity,
		})
	}

	now := time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, orderDoc{
		ID:              o.ID,
		User:            o.UserID,
		Restaurant:      o.RestaurantID,
		DeliveryDetails: o.DeliveryDetails,
		CartItems:       items,
		Status:          o.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	o.CreatedAt, o.UpdatedAt = now, now
	return nil
}

func (r *MongoRepo) ListByUser(ctx context.Context, userID string) ([]Populated, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user": userID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{"from": "users", "localField": "user", "foreignField": "_id", "as": "userDoc"}}},
		{{Key: "$unwind", Value: bson.M{"path": "$userDoc", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{"from": "restaurants", "localField": "restaurant", "foreignField": "_id", "as": "restaurantDoc"}}},
		{{Key: "$unwind", Value: bson.M{"path": "$restaurantDoc", "preserveNullAndEmptyArrays": true}}},
	}

	cur, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}
	var docs []populatedDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	out := make([]Populated, 0, len(docs))
	for _, d := range docs {
		p := Populated{
			ID:              d.ID,
			User:            d.UserDoc,
			Restaurant:      d.RestaurantDoc.Restaurant(),
			DeliveryDetails: d.DeliveryDetails,
			CartItems:       make([]CartItem, 0, len(d.CartItems)),
			Status:          d.Status,
			CreatedAt:       d.CreatedAt,
			UpdatedAt:       d.UpdatedAt,
		}
		for _, it := range d.CartItems {
			price, err := decimal.NewFromString(it.Price.String())
			if err != nil {
				return nil, fmt.Errorf("order %s item %s price: %w", d.ID, it.MenuID, err)
			}
			p.CartItems = append(p.CartItems, CartItem{
				MenuID:   it.MenuID,
				Name:     it.Name,
				Image:    it.Image,
				Price:    price,
				Quantity: it.Quantity,
			})
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *MongoRepo) CreateIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create order indexes: %w", err)
	}
	return nil
}

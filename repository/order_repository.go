package repository

import (
	"context"
	"time"

	"marketplace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository defines order persistence for checkout, polling and the
// settlement webhook.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	MarkPaid(ctx context.Context, id string) error
}

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = mongo.ErrNoDocuments

type mongoOrderRepo struct {
	collection *mongo.Collection
}

func NewMongoOrderRepo(db *mongo.Database) OrderRepository {
	return &mongoOrderRepo{collection: db.Collection("orders")}
}

func (r *mongoOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, order)
	return err
}

func (r *mongoOrderRepo) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// MarkPaid is idempotent: re-marking a paid order leaves it paid.
func (r *mongoOrderRepo) MarkPaid(ctx context.Context, id string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"_isPaid": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

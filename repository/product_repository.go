package repository

import (
	"context"

	"marketplace/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductRepository defines the product reads checkout needs.
type ProductRepository interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Product, error)
}

type mongoProductRepo struct {
	collection *mongo.Collection
}

func NewMongoProductRepo(db *mongo.Database) ProductRepository {
	return &mongoProductRepo{collection: db.Collection("products")}
}

func (r *mongoProductRepo) FindByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	filter := bson.M{"_id": bson.M{"$in": ids}}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

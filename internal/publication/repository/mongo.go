package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickpost/publisher/internal/publication"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo stores publications in a MongoDB collection keyed by _id.
type MongoRepo struct {
	col *mongo.Collection
}

// NewMongoRepo wraps col and ensures the createdAt index used by List.
func NewMongoRepo(ctx context.Context, col *mongo.Collection) (*MongoRepo, error) {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}
	if _, err := col.Indexes().CreateOne(ctx, idx); err != nil {
		return nil, fmt.Errorf("create publications index: %w", err)
	}
	return &MongoRepo{col: col}, nil
}

func (m *MongoRepo) Create(ctx context.Context, p *publication.Publication) error {
	if _, err := m.col.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert publication: %w", err)
	}
	return nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*publication.Publication, error) {
	var p publication.Publication
	if err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoRepo) List(ctx context.Context, limit int) ([]*publication.Publication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*publication.Publication{}
	for cur.Next(ctx) {
		var p publication.Publication
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

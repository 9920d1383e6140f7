package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type kvDoc struct {
	ID    string `bson:"_id"`
	Value []byte `bson:"value"`
}

// Mongo keeps one document per storage key in a single collection.
type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(ctx context.Context, uri string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Mongo{coll: client.Database("savora").Collection("kv")}, nil
}

func (m *Mongo) Get(ctx context.Context, key string) ([]byte, error) {
	var doc kvDoc
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.Value, nil
}

func (m *Mongo) Set(ctx context.Context, key string, value []byte) error {
	_, err := m.coll.UpdateOne(
		ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (m *Mongo) Del(ctx context.Context, key string) error {
	_, err := m.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

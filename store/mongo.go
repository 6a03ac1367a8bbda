package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo is the MongoDB-backed Store.
type Mongo struct {
	name string
	db   *mongo.Database
}

// Connect dials the database and verifies the connection with a ping.
// On failure it still returns a usable *Mongo whose operations report
// ErrUnavailable, so the API can keep serving and surface the outage
// through the diagnostics endpoint.
func Connect(ctx context.Context, uri, name string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return &Mongo{name: name}, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return &Mongo{name: name}, err
	}
	return &Mongo{name: name, db: client.Database(name)}, nil
}

func (s *Mongo) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if s.db == nil {
		return "", ErrUnavailable
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("store assigned a non-ObjectID identifier")
	}
	return oid.Hex(), nil
}

func (s *Mongo) Find(ctx context.Context, collection string, filter any, limit int64, out any) error {
	if s.db == nil {
		return ErrUnavailable
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func (s *Mongo) FindOne(ctx context.Context, collection string, filter any, out any) error {
	if s.db == nil {
		return ErrUnavailable
	}
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *Mongo) UpdateOne(ctx context.Context, collection string, filter any, update any) error {
	if s.db == nil {
		return ErrUnavailable
	}
	_, err := s.db.Collection(collection).UpdateOne(ctx, filter, update)
	return err
}

func (s *Mongo) Collections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *Mongo) Name() string {
	return s.name
}

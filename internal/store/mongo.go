package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"agenda/internal/model"
)

// CollectionName is the MongoDB collection holding agenda items.
const CollectionName = "agendaItem"

// MongoStore keeps items as documents keyed by _id. Reads return documents
// in natural order.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

// NewMongoStore connects to uri and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(CollectionName),
	}, nil
}

func (s *MongoStore) Save(ctx context.Context, item model.AgendaItem) error {
	if !item.HasID() {
		return errMissingID
	}
	_, err := s.coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: item.ID}},
		item,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) FindAll(ctx context.Context) ([]model.AgendaItem, error) {
	return s.find(ctx, bson.D{})
}

func (s *MongoStore) FindByDay(ctx context.Context, day string) ([]model.AgendaItem, error) {
	return s.find(ctx, bson.D{{Key: "day", Value: day}})
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (model.AgendaItem, error) {
	var it model.AgendaItem
	err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&it)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.AgendaItem{}, ErrNotFound
	}
	if err != nil {
		return model.AgendaItem{}, err
	}
	return it, nil
}

// DropAll drops the whole collection; the driver ignores a missing namespace.
func (s *MongoStore) DropAll(ctx context.Context) error {
	return s.coll.Drop(ctx)
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

func (s *MongoStore) find(ctx context.Context, filter bson.D) ([]model.AgendaItem, error) {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := []model.AgendaItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.AgendaItem{}
	}
	return items, nil
}

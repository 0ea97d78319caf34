package store

import (
	"carcommerce/models"
	"context"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	carCollection      = "car"
	cartItemCollection = "cartitem"
	orderCollection    = "order"
)

// Mongo implements Store on top of a Mongo database handle.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

func (m *Mongo) insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	result, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

func (m *Mongo) InsertCar(ctx context.Context, car models.Car) (string, error) {
	return m.insert(ctx, carCollection, car)
}

func (m *Mongo) ListCars(ctx context.Context) ([]models.Car, error) {
	cursor, err := m.db.Collection(carCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var cars []models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

func (m *Mongo) GetCar(ctx context.Context, id string) (models.Car, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Car{}, ErrInvalidID
	}
	var car models.Car
	err = m.db.Collection(carCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&car)
	if err == mongo.ErrNoDocuments {
		return models.Car{}, ErrNotFound
	}
	if err != nil {
		return models.Car{}, err
	}
	return car, nil
}

func (m *Mongo) CountCars(ctx context.Context) (int64, error) {
	return m.db.Collection(carCollection).CountDocuments(ctx, bson.M{})
}

func (m *Mongo) InsertCartItem(ctx context.Context, item models.CartItem) (string, error) {
	return m.insert(ctx, cartItemCollection, item)
}

func (m *Mongo) FindCartItems(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	cursor, err := m.db.Collection(cartItemCollection).Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (m *Mongo) DeleteCartItems(ctx context.Context, sessionID string) (int64, error) {
	result, err := m.db.Collection(cartItemCollection).DeleteMany(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (m *Mongo) InsertOrder(ctx context.Context, order models.Order) (string, error) {
	return m.insert(ctx, orderCollection, order)
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.db.Client().Ping(ctx, nil)
}

func (m *Mongo) ListCollections(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.M{})
}

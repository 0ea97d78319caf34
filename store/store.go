package store

import (
	"carcommerce/models"
	"context"
)

// Store is the document-store surface the handlers depend on. It is injected
// into every handler so the Mongo implementation can be swapped for an
// in-memory one under test.
type Store interface {
	InsertCar(ctx context.Context, car models.Car) (string, error)
	ListCars(ctx context.Context) ([]models.Car, error)
	GetCar(ctx context.Context, id string) (models.Car, error)
	CountCars(ctx context.Context) (int64, error)

	InsertCartItem(ctx context.Context, item models.CartItem) (string, error)
	FindCartItems(ctx context.Context, sessionID string) ([]models.CartItem, error)
	DeleteCartItems(ctx context.Context, sessionID string) (int64, error)

	InsertOrder(ctx context.Context, order models.Order) (string, error)

	Ping(ctx context.Context) error
	ListCollections(ctx context.Context) ([]string, error)
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Car struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Brand       string             `bson:"brand" json:"brand"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ModelURL    string             `bson:"modelUrl,omitempty" json:"modelUrl,omitempty"`
	InStock     bool               `bson:"in_stock" json:"in_stock"`
}

func (car Car) Validate() *ValidationError {
	if car.Title == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if car.Brand == "" {
		return &ValidationError{Field: "brand", Message: "brand is required"}
	}
	if car.Price < 0 {
		return &ValidationError{Field: "price", Message: "price must not be negative"}
	}
	return nil
}

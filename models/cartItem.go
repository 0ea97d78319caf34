package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID string             `bson:"session_id" json:"session_id"`
	ProductID string             `bson:"product_id" json:"product_id"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

// CartLine is a cart item joined to its car for display. Product is nil when
// the stored product reference no longer resolves.
type CartLine struct {
	ID       string `json:"id"`
	Product  *Car   `json:"product"`
	Quantity int    `json:"quantity"`
}

func (item CartItem) Validate() *ValidationError {
	if item.SessionID == "" {
		return &ValidationError{Field: "session_id", Message: "session_id is required"}
	}
	if item.ProductID == "" {
		return &ValidationError{Field: "product_id", Message: "product_id is required"}
	}
	if item.Quantity < 1 || item.Quantity > 10 {
		return &ValidationError{Field: "quantity", Message: "quantity must be between 1 and 10"}
	}
	return nil
}

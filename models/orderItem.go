package models

// OrderItem is a denormalized snapshot of one cart line at checkout time,
// decoupled from later catalog changes. Product is nil when the cart line
// referenced a car that could not be resolved.
type OrderItem struct {
	Product  *Car    `bson:"product" json:"product"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Subtotal float64 `bson:"subtotal" json:"subtotal"`
}

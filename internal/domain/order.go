package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type OrderItem struct {
	ProductID       primitive.ObjectID `bson:"product" json:"product"`
	Quantity        int64              `bson:"quantity" json:"quantity"`
	PriceAtPurchase float64            `bson:"priceAtPurchase" json:"priceAtPurchase"`
}

// Order is an immutable snapshot: item prices are captured at creation time and
// never recomputed.
type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail   string             `bson:"userEmail" json:"userEmail"`
	Items       []OrderItem        `bson:"items" json:"items"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
}

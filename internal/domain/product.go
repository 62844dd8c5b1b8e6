package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	Price          float64            `bson:"price" json:"price"`
	Category       string             `bson:"category" json:"category"`
	Image          string             `bson:"image" json:"image"`
	Promotion      int64              `bson:"promotion" json:"promotion"`
	Views          int64              `bson:"views" json:"views"`
	PurchasesCount int64              `bson:"purchasesCount" json:"purchasesCount"`
	CommentsCount  int64              `bson:"commentsCount" json:"commentsCount"`
	CreatedAt      int64              `bson:"createdAt" json:"createdAt"`
}

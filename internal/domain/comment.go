package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID primitive.ObjectID `bson:"product" json:"product"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Content   string             `bson:"content" json:"content"`
	Rating    int64              `bson:"rating" json:"rating"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}

package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ExternalID     string               `bson:"externalId" json:"externalId"`
	Name           string               `bson:"name" json:"name"`
	Email          string               `bson:"email" json:"email"`
	HashedPassword string               `bson:"hashedPassword" json:"-"`
	Role           string               `bson:"role" json:"role"`
	Favorites      []primitive.ObjectID `bson:"favorites" json:"favorites"`
	RecentlyViewed []primitive.ObjectID `bson:"recentlyViewed" json:"recentlyViewed"`
}

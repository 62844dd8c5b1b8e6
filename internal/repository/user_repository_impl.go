package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/thanha17/online-shop/internal/domain"
	"github.com/thanha17/online-shop/pkg/errs"
)

const recentlyViewedCap = 20

type MongoDBUserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepositoryImpl{db: db}
}

// GetUserByEmail returns a zero-value user with a nil error when no account
// exists for the email.
func (r *MongoDBUserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (res domain.User, err error) {
	err = r.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&res)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return res, nil
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByEmail").Msg("")

		return res, errs.ErrInternalServer
	}

	return
}

func (r *MongoDBUserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("users").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBUserRepositoryImpl) GetUsers(ctx context.Context) (data []domain.User, err error) {
	cursor, err := r.db.Collection("users").Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBUserRepositoryImpl) AddFavorite(ctx context.Context, email string, productID primitive.ObjectID) (err error) {
	update := bson.M{"$addToSet": bson.M{"favorites": productID}}

	result, err := r.db.Collection("users").UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddFavorite").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrAccountNotFound
	}

	return
}

func (r *MongoDBUserRepositoryImpl) RemoveFavorite(ctx context.Context, email string, productID primitive.ObjectID) (err error) {
	update := bson.M{"$pull": bson.M{"favorites": productID}}

	result, err := r.db.Collection("users").UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "RemoveFavorite").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrAccountNotFound
	}

	return
}

// PushRecentlyViewed prepends the product, de-duplicating any earlier
// occurrence and keeping at most the 20 most recent entries.
func (r *MongoDBUserRepositoryImpl) PushRecentlyViewed(ctx context.Context, email string, productID primitive.ObjectID) (err error) {
	filter := bson.M{"email": email}

	_, err = r.db.Collection("users").UpdateOne(ctx, filter, bson.M{"$pull": bson.M{"recentlyViewed": productID}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PushRecentlyViewed").Msg("")
		return
	}

	update := bson.M{
		"$push": bson.M{
			"recentlyViewed": bson.M{
				"$each":     bson.A{productID},
				"$position": 0,
				"$slice":    recentlyViewedCap,
			},
		},
	}

	_, err = r.db.Collection("users").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PushRecentlyViewed").Msg("")
		return
	}

	return
}

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

type MongoDBCartRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewCartRepository(db *mongo.Database) CartRepository {
	return &MongoDBCartRepositoryImpl{db: db}
}

func (r *MongoDBCartRepositoryImpl) GetCartByEmail(ctx context.Context, email string) (cart domain.Cart, err error) {
	err = r.db.Collection("carts").FindOne(ctx, bson.M{"userEmail": email}).Decode(&cart)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return cart, errs.ErrCartNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCartByEmail").Msg("")

		return cart, err
	}

	return cart, nil
}

func (r *MongoDBCartRepositoryImpl) AddCart(ctx context.Context, data domain.Cart) (cart domain.Cart, err error) {
	if data.Items == nil {
		data.Items = []domain.CartItem{}
	}

	result, err := r.db.Collection("carts").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCart").Msg("")
		return
	}

	data.ID = result.InsertedID.(primitive.ObjectID)

	return data, nil
}

// UpdateCartItems persists the whole cart document.
func (r *MongoDBCartRepositoryImpl) UpdateCartItems(ctx context.Context, cart domain.Cart) (err error) {
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}

	update := bson.M{"$set": bson.M{"items": cart.Items}}

	result, err := r.db.Collection("carts").UpdateOne(ctx, bson.M{"_id": cart.ID}, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateCartItems").Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrCartNotFound
	}

	return
}

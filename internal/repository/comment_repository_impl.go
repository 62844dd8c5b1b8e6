package repository

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thanha17/online-shop/internal/domain"
)

type MongoDBCommentRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewCommentRepository(db *mongo.Database) CommentRepository {
	return &MongoDBCommentRepositoryImpl{db: db}
}

func (r *MongoDBCommentRepositoryImpl) AddComment(ctx context.Context, data domain.Comment) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("comments").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddComment").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBCommentRepositoryImpl) GetCommentsByProductID(ctx context.Context, productID primitive.ObjectID) (data []domain.Comment, err error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection("comments").Find(ctx, bson.M{"product": productID}, findOptions)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCommentsByProductID").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCommentsByProductID").Msg("")
		return
	}

	return data, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thanha17/online-shop/internal/domain"
	pkgdto "github.com/thanha17/online-shop/pkg/dto"
	"github.com/thanha17/online-shop/pkg/errs"
)

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error) {
	findOptions := options.Find()
	if filter.Limit != 0 && filter.Page != 0 {
		findOptions.SetSkip((filter.Page - 1) * filter.Limit)
		findOptions.SetLimit(filter.Limit)
	}

	cursor, err := r.db.Collection("products").Find(ctx, bson.D{}, findOptions)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) CountProducts(ctx context.Context) (count int64, err error) {
	count, err = r.db.Collection("products").CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
		return
	}

	return
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrProductNotFound
	}

	filter := bson.D{{Key: "_id", Value: productID}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrProductNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")

		return product, err
	}

	return product, nil
}

// searchQuery builds the direct-store filter: case-insensitive substring match
// on name, exact category, inclusive price range, promotion >= 1.
func searchQuery(filter pkgdto.SearchFilter) bson.M {
	query := bson.M{}

	if filter.Keyword != "" {
		query["name"] = bson.M{"$regex": filter.Keyword, "$options": "i"}
	}

	if filter.Category != "" {
		query["category"] = filter.Category
	}

	if filter.MinPrice != nil || filter.MaxPrice != nil {
		priceRange := bson.M{}
		if filter.MinPrice != nil {
			priceRange["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			priceRange["$lte"] = *filter.MaxPrice
		}
		query["price"] = priceRange
	}

	if filter.PromotionOnly() {
		query["promotion"] = bson.M{"$gte": 1}
	}

	return query
}

var sortOptions = map[string]bson.D{
	"priceAsc":  {{Key: "price", Value: 1}},
	"priceDesc": {{Key: "price", Value: -1}},
	"views":     {{Key: "views", Value: -1}},
	"newest":    {{Key: "createdAt", Value: -1}},
}

func (r *MongoDBProductRepositoryImpl) SearchProducts(ctx context.Context, filter pkgdto.SearchFilter) (data []domain.Product, count int64, err error) {
	query := searchQuery(filter)

	findOptions := options.Find()
	if sort, ok := sortOptions[filter.SortBy]; ok {
		findOptions.SetSort(sort)
	}
	if filter.Limit != 0 && filter.Page != 0 {
		findOptions.SetSkip((filter.Page - 1) * filter.Limit)
		findOptions.SetLimit(filter.Limit)
	}

	cursor, err := r.db.Collection("products").Find(ctx, query, findOptions)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SearchProducts").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SearchProducts").Msg("")
		return
	}

	count, err = r.db.Collection("products").CountDocuments(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SearchProducts").Msg("")
		return
	}

	return data, count, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Product, err error) {
	cursor, err := r.db.Collection("products").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsByIDs").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsByIDs").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductsByIDsFiltered(ctx context.Context, ids []string, filter pkgdto.SearchFilter) (data []domain.Product, err error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("invalid ID format: %v", err)
		}
		objectIDs = append(objectIDs, objectID)
	}

	// Re-apply the category/price/promotion filters so that stale index hits
	// never leak into the result.
	query := searchQuery(filter)
	delete(query, "name")
	query["_id"] = bson.M{"$in": objectIDs}

	cursor, err := r.db.Collection("products").Find(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsByIDsFiltered").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsByIDsFiltered").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetSimilarProducts(ctx context.Context, category string, excludeID primitive.ObjectID, limit int64) (data []domain.Product, err error) {
	query := bson.M{
		"category": category,
		"_id":      bson.M{"$ne": excludeID},
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "purchasesCount", Value: -1}, {Key: "views", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.db.Collection("products").Find(ctx, query, findOptions)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSimilarProducts").Msg("")
		return
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetSimilarProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) IncrementViews(ctx context.Context, id primitive.ObjectID) (err error) {
	return r.incrementCounter(ctx, id, bson.M{"$inc": bson.M{"views": 1}}, "IncrementViews")
}

func (r *MongoDBProductRepositoryImpl) IncrementPurchases(ctx context.Context, id primitive.ObjectID, quantity int64) (err error) {
	return r.incrementCounter(ctx, id, bson.M{"$inc": bson.M{"purchasesCount": quantity}}, "IncrementPurchases")
}

func (r *MongoDBProductRepositoryImpl) IncrementComments(ctx context.Context, id primitive.ObjectID) (err error) {
	return r.incrementCounter(ctx, id, bson.M{"$inc": bson.M{"commentsCount": 1}}, "IncrementComments")
}

func (r *MongoDBProductRepositoryImpl) incrementCounter(ctx context.Context, id primitive.ObjectID, update bson.M, component string) (err error) {
	result, err := r.db.Collection("products").UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", component).Msg("")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrProductNotFound
	}

	return
}

package repository

import (
	"context"

	"github.com/online-shopping/catalog-service/internal/domain"
	pkgdto "github.com/online-shopping/catalog-service/pkg/dto"
	"github.com/online-shopping/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// caseInsensitive makes string comparisons ignore case without a regex scan.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (err error) {
	_, err = r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrConflict
		}
		return
	}

	return
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")

		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductsByCategory(ctx context.Context, categoryName string) (data []domain.Product, err error) {
	filter := bson.D{{Key: "category.name", Value: categoryName}}
	opts := options.Find().SetCollation(caseInsensitive)

	cursor, err := r.db.Collection("products").Find(ctx, filter, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsByCategory").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsByCategory").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, filter pkgdto.ProductFilter) (data []domain.Product, err error) {
	opts := options.Find().
		SetSort(bson.D{{Key: filter.SortBy, Value: 1}}).
		SetSkip(int64(filter.PageNo) * int64(filter.PageSize)).
		SetLimit(int64(filter.PageSize))

	cursor, err := r.db.Collection("products").Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}

	result, err := r.db.Collection("products").ReplaceOne(ctx, filter, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	result, err := r.db.Collection("products").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return
}

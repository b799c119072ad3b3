package repository

import (
	"context"

	"github.com/online-shopping/catalog-service/internal/domain"
	"github.com/online-shopping/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBCategoryRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoDBCategoryRepositoryImpl{db: db}
}

func (r *MongoDBCategoryRepositoryImpl) GetCategoryByName(ctx context.Context, name string) (category domain.Category, err error) {
	filter := bson.D{{Key: "name", Value: name}}

	err = r.db.Collection("categories").FindOne(ctx, filter).Decode(&category)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return category, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCategoryByName").Msg("")

		return category, err
	}

	return category, nil
}

// AddCategory relies on the unique name index: a concurrent insert of the
// same name surfaces as a duplicate-key error, not a second record.
func (r *MongoDBCategoryRepositoryImpl) AddCategory(ctx context.Context, data domain.Category) (err error) {
	_, err = r.db.Collection("categories").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCategory").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrConflict
		}
		return
	}

	return
}

package repository

import (
	"context"

	"github.com/online-shopping/catalog-service/internal/domain"
	"github.com/online-shopping/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoDBUserRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewUserRepository(db *mongo.Database) UserRepository {
	return &MongoDBUserRepositoryImpl{db: db}
}

func (r *MongoDBUserRepositoryImpl) GetUserByID(ctx context.Context, id string) (user domain.User, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("user_info").FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errs.ErrNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUserByID").Msg("")

		return user, err
	}

	return user, nil
}

func (r *MongoDBUserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (err error) {
	_, err = r.db.Collection("user_info").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddUser").Msg("")
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrConflict
		}
		return
	}

	return
}

func (r *MongoDBUserRepositoryImpl) GetUsers(ctx context.Context) (data []domain.User, err error) {
	cursor, err := r.db.Collection("user_info").Find(ctx, bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetUsers").Msg("")
		return
	}

	return data, nil
}

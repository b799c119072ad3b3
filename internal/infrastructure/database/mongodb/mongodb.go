package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ConnectToMongoDB(uri string, dbName string) (*mongo.Database, error) {
	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		return nil, err
	}

	err = client.Ping(context.TODO(), nil)
	if err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	if err := ensureIndexes(context.TODO(), db); err != nil {
		return nil, err
	}

	return db, nil
}

// ensureIndexes creates the collection indexes on startup. The unique index
// on categories.name is what turns concurrent duplicate inserts into
// duplicate-key errors instead of silent double writes.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("products").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "name", Value: 1},
			{Key: "brand", Value: 1},
			{Key: "category.name", Value: 1},
		},
		Options: options.Index().SetName("name_brand_category_index"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("categories").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("category_name_index").SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("user_info").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("user_name_index"),
	})

	return err
}

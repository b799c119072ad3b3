package main

import (
	"fmt"
	"log"

	"github.com/online-shopping/catalog-service/config"
	"github.com/online-shopping/catalog-service/internal/app"
	"github.com/online-shopping/catalog-service/internal/infrastructure/database/mongodb"
	"github.com/online-shopping/catalog-service/internal/infrastructure/message-queue/kafka"
)

func main() {
	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	producer, err := kafka.CreateKafkaProducer(config)
	if err != nil {
		log.Fatalf("Failed to connect to the message broker: %v", err)
	}
	defer producer.Close()

	server := app.App{
		DB:        db,
		Config:    config,
		Publisher: producer,
	}

	server.Start()
}

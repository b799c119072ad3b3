package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort   string
	MetricsPort   string
	Environment   string
	MongoDBConfig MongoDBConfig
	KafkaConfig   KafkaConfig
	TracingConfig TracingConfig
}

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type TracingConfig struct {
	CollectorHost string
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "catalog_service"
	}

	if brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION")); err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	return &conf
}

package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client

// InitDB connects the process-wide Mongo client. Called once from main;
// the client is safe for concurrent use and is never torn down mid-process.
func InitDB() {
	mongoURI := os.Getenv("MONGODB_URL")
	if mongoURI == "" {
		log.Fatal("❌ [InitDB] MONGODB_URL not found in environment variables")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(mongoURI).
		SetServerSelectionTimeout(60 * time.Second).
		SetConnectTimeout(60 * time.Second)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("❌ [InitDB] Error connecting to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("❌ [InitDB] MongoDB ping failed: %v", err)
	}
	log.Println("✅ [InitDB] Connected to MongoDB")

	Client = client
}

// OpenCollection returns a handle in the "snp" database.
func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ [OpenCollection] MongoDB Client is not initialized. Call InitDB() first.")
	}
	return client.Database("snp").Collection(collectionName)
}

//go:build ignore

// This script seeds a local MongoDB with sample workers and events for
// manual testing of the search endpoints.
// Run with: go run scripts/seed_data.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var workers = []struct {
	FullName string
	Email    string
	Phone    string
}{
	{"John Smith", "john.smith@example.com", "+31612345001"},
	{"Johnny Appleseed", "johnny@example.com", "+31612345002"},
	{"Jane Doe", "jane.doe@example.com", "+31612345003"},
	{"Pete Johnson", "pete.johnson@example.com", "+31612345004"},
	{"Maria Garcia", "maria.garcia@example.com", "+31612345005"},
	{"Ahmed Hassan", "ahmed.hassan@example.com", "+31612345006"},
	{"Li Wei", "li.wei@example.com", "+31612345007"},
	{"Anna Kowalski", "anna.kowalski@example.com", "+31612345008"},
}

func main() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("MONGODB_DATABASE")
	if dbName == "" {
		dbName = "checkin_service"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to MongoDB: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(dbName)
	now := time.Now()

	for _, w := range workers {
		doc := bson.M{
			"_id":        primitive.NewObjectID(),
			"full_name":  w.FullName,
			"email":      w.Email,
			"phone":      w.Phone,
			"active":     true,
			"created_at": now,
			"updated_at": now,
		}
		if _, err := db.Collection("workers").InsertOne(ctx, doc); err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", w.Email, err)
			continue
		}
		fmt.Printf("Seeded worker %s\n", w.FullName)
	}

	event := bson.M{
		"_id":        primitive.NewObjectID(),
		"name":       "Summer Festival",
		"location":   "Main Hall",
		"starts_at":  now.Add(-time.Hour),
		"ends_at":    now.Add(8 * time.Hour),
		"created_at": now,
	}
	if _, err := db.Collection("events").InsertOne(ctx, event); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding event: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Seeded event Summer Festival")
	fmt.Println()
	fmt.Println("Try: curl 'http://localhost:8080/api/workers/search?q=john'")
}

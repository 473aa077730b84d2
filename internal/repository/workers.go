// Package repository provides data access for workers.
package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/checkin-service/internal/domain/model"
)

// ErrDuplicateEmail is returned when a worker's email is already registered.
var ErrDuplicateEmail = errors.New("worker email already registered")

// WorkerRepository provides methods for worker operations.
type WorkerRepository struct {
	collection *mongo.Collection
}

// NewWorkerRepository creates a new worker repository.
func NewWorkerRepository(db *MongoDB) *WorkerRepository {
	return &WorkerRepository{
		collection: db.Workers,
	}
}

// Search returns up to limit active workers whose full name, email, or
// phone contains the term, case-insensitively. No ordering is guaranteed;
// the lookup core re-ranks the rows.
func (r *WorkerRepository) Search(ctx context.Context, term string, limit int) ([]model.Worker, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	filter := bson.M{
		"active": true,
		"$or": []bson.M{
			{"full_name": pattern},
			{"email": pattern},
			{"phone": pattern},
		},
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workers []model.Worker
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

// Create inserts a new worker, filling in timestamps and the generated ID.
func (r *WorkerRepository) Create(ctx context.Context, worker *model.Worker) error {
	now := time.Now()
	worker.ID = primitive.NewObjectID()
	worker.Active = true
	worker.CreatedAt = now
	worker.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, worker)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

// GetByID returns the worker with the given ID, or nil if absent.
func (r *WorkerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Worker, error) {
	var worker model.Worker
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&worker)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

// List returns workers sorted by creation time, newest first.
func (r *WorkerRepository) List(ctx context.Context, limit, skip int) ([]model.Worker, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if skip > 0 {
		opts.SetSkip(int64(skip))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var workers []model.Worker
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, err
	}
	return workers, nil
}

// Deactivate marks a worker inactive so they drop out of search results.
func (r *WorkerRepository) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	return err
}

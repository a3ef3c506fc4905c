package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/ashrovy/records-api/internal/model"
)

// TaskRepo persists per-user tasks with the same {_id, userId} scoping
// as notes.
type TaskRepo struct {
	coll *mongo.Collection
}

func NewTaskRepo(db *mongo.Database) *TaskRepo {
	return &TaskRepo{coll: db.Collection("tasks")}
}

// ListForUser returns all of a user's tasks, newest first.
func (r *TaskRepo) ListForUser(ctx context.Context, userID string) ([]model.Task, error) {
	cur, err := r.coll.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	tasks := make([]model.Task, 0)
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetForUser fetches one task owned by the user.
func (r *TaskRepo) GetForUser(ctx context.Context, taskID, userID string) (model.Task, error) {
	var t model.Task
	oid, err := objectID(taskID)
	if err != nil {
		return t, err
	}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid, "userId": userID}).Decode(&t)
	return t, notFound(err)
}

// Create inserts a task, stamping timestamps and returning the stored record.
func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	now := nowUTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return model.Task{}, err
	}
	t.ID = res.InsertedID.(bson.ObjectID)
	return t, nil
}

// UpdateForUser applies a partial $set to a task owned by the user.
func (r *TaskRepo) UpdateForUser(ctx context.Context, taskID, userID string, set bson.M) (model.Task, error) {
	var t model.Task
	oid, err := objectID(taskID)
	if err != nil {
		return t, err
	}
	set["updatedAt"] = nowUTC()
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	return t, notFound(err)
}

// DeleteForUser removes a task owned by the user.
func (r *TaskRepo) DeleteForUser(ctx context.Context, taskID, userID string) (model.Task, error) {
	var t model.Task
	oid, err := objectID(taskID)
	if err != nil {
		return t, err
	}
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid, "userId": userID}).Decode(&t)
	return t, notFound(err)
}

package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/query"
)

// TodoRepo persists public todos.
type TodoRepo struct {
	coll *mongo.Collection
}

func NewTodoRepo(db *mongo.Database) *TodoRepo {
	return &TodoRepo{coll: db.Collection("todos")}
}

// List returns one page of todos matching the parsed query.
func (r *TodoRepo) List(ctx context.Context, q query.ListQuery) (Page[model.Todo], error) {
	return ListPage[model.Todo](ctx, r.coll, q)
}

// GetByID fetches a todo by path id.
func (r *TodoRepo) GetByID(ctx context.Context, todoID string) (model.Todo, error) {
	var t model.Todo
	oid, err := objectID(todoID)
	if err != nil {
		return t, err
	}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&t)
	return t, notFound(err)
}

// Create inserts a todo, stamping timestamps and returning the stored record.
func (r *TodoRepo) Create(ctx context.Context, t model.Todo) (model.Todo, error) {
	now := nowUTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return model.Todo{}, err
	}
	t.ID = res.InsertedID.(bson.ObjectID)
	return t, nil
}

// Update applies a partial $set and returns the updated todo.
func (r *TodoRepo) Update(ctx context.Context, todoID string, set bson.M) (model.Todo, error) {
	var t model.Todo
	oid, err := objectID(todoID)
	if err != nil {
		return t, err
	}
	set["updatedAt"] = nowUTC()
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&t)
	return t, notFound(err)
}

// Delete removes a todo by id, returning the removed record.
func (r *TodoRepo) Delete(ctx context.Context, todoID string) (model.Todo, error) {
	var t model.Todo
	oid, err := objectID(todoID)
	if err != nil {
		return t, err
	}
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&t)
	return t, notFound(err)
}

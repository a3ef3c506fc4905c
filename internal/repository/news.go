package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/query"
)

// NewsRepo persists authenticated news posts. Unlike notes and tasks,
// reads and deletes are not owner-scoped at the store level; the handler
// checks ownership and answers 403 for a foreign delete.
type NewsRepo struct {
	coll *mongo.Collection
}

func NewNewsRepo(db *mongo.Database) *NewsRepo {
	return &NewsRepo{coll: db.Collection("news")}
}

// List returns one page of news matching the parsed query. Callers add
// the userId scope to q.Filter before calling.
func (r *NewsRepo) List(ctx context.Context, q query.ListQuery) (Page[model.News], error) {
	return ListPage[model.News](ctx, r.coll, q)
}

// GetByID fetches a post by id regardless of owner.
func (r *NewsRepo) GetByID(ctx context.Context, newsID string) (model.News, error) {
	var n model.News
	oid, err := objectID(newsID)
	if err != nil {
		return n, err
	}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&n)
	return n, notFound(err)
}

// Create inserts a post, stamping timestamps and returning the stored record.
func (r *NewsRepo) Create(ctx context.Context, n model.News) (model.News, error) {
	now := nowUTC()
	n.CreatedAt = now
	n.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, n)
	if err != nil {
		return model.News{}, err
	}
	n.ID = res.InsertedID.(bson.ObjectID)
	return n, nil
}

// Delete removes a post by id, returning the removed record.
func (r *NewsRepo) Delete(ctx context.Context, newsID string) (model.News, error) {
	var n model.News
	oid, err := objectID(newsID)
	if err != nil {
		return n, err
	}
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&n)
	return n, notFound(err)
}

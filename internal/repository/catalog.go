package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/ashrovy/records-api/internal/query"
)

// CatalogRepo provides CRUD for an ownerless public resource. One
// instantiation per catalog collection; the handler layer supplies
// validated field documents so the repo stays shape-agnostic.
type CatalogRepo[T any] struct {
	coll *mongo.Collection
}

func NewCatalogRepo[T any](db *mongo.Database, collection string) *CatalogRepo[T] {
	return &CatalogRepo[T]{coll: db.Collection(collection)}
}

// List returns one page of documents matching the parsed query.
func (r *CatalogRepo[T]) List(ctx context.Context, q query.ListQuery) (Page[T], error) {
	return ListPage[T](ctx, r.coll, q)
}

// GetByID fetches a document by path id.
func (r *CatalogRepo[T]) GetByID(ctx context.Context, id string) (T, error) {
	var doc T
	oid, err := objectID(id)
	if err != nil {
		return doc, err
	}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	return doc, notFound(err)
}

// Insert stores a validated field document, stamping createdAt/updatedAt,
// and returns the stored record.
func (r *CatalogRepo[T]) Insert(ctx context.Context, fields bson.M) (T, error) {
	var doc T
	now := nowUTC()
	fields["createdAt"] = now
	fields["updatedAt"] = now

	res, err := r.coll.InsertOne(ctx, fields)
	if err != nil {
		return doc, err
	}
	err = r.coll.FindOne(ctx, bson.M{"_id": res.InsertedID}).Decode(&doc)
	return doc, notFound(err)
}

// Update applies a partial $set document and returns the updated record.
func (r *CatalogRepo[T]) Update(ctx context.Context, id string, set bson.M) (T, error) {
	var doc T
	oid, err := objectID(id)
	if err != nil {
		return doc, err
	}
	set["updatedAt"] = nowUTC()
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	return doc, notFound(err)
}

// Delete removes a document by id, returning the removed record so the
// handler can distinguish a miss.
func (r *CatalogRepo[T]) Delete(ctx context.Context, id string) (T, error) {
	var doc T
	oid, err := objectID(id)
	if err != nil {
		return doc, err
	}
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	return doc, notFound(err)
}

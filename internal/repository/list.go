package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/ashrovy/records-api/internal/query"
)

// Page is the envelope returned by paginated list reads: metadata computed
// against the unpaginated filter plus one page of matching documents.
type Page[T any] struct {
	query.PageMeta
	Items []T `json:"items"`
}

// ListPage runs a filtered, sorted, paginated read against a collection.
// The total is counted before skip/limit are applied; perPage is not
// capped. Store errors are wrapped with the collection name.
func ListPage[T any](ctx context.Context, coll *mongo.Collection, q query.ListQuery) (Page[T], error) {
	total, err := coll.CountDocuments(ctx, q.Filter)
	if err != nil {
		return Page[T]{}, fmt.Errorf("count %s: %w", coll.Name(), err)
	}

	opts := options.Find().
		SetSort(q.Sort()).
		SetSkip(q.Skip()).
		SetLimit(int64(q.PerPage))
	cur, err := coll.Find(ctx, q.Filter, opts)
	if err != nil {
		return Page[T]{}, fmt.Errorf("find %s: %w", coll.Name(), err)
	}

	items := make([]T, 0, q.PerPage)
	if err := cur.All(ctx, &items); err != nil {
		return Page[T]{}, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}

	return Page[T]{
		PageMeta: query.NewPageMeta(total, q.Page, q.PerPage),
		Items:    items,
	}, nil
}

// objectID converts a path id into an ObjectID. Malformed ids behave like
// missing documents.
func objectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, ErrNotFound
	}
	return oid, nil
}

// nowUTC returns the current time at BSON datetime precision, so that a
// stored document round-trips deep-equal.
func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func notFound(err error) error {
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

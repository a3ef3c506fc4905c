package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/ashrovy/records-api/internal/model"
)

// NoteRepo persists per-user notes. Every read and mutation filters on
// {_id, userId}, so another user's note is indistinguishable from a
// missing one.
type NoteRepo struct {
	coll *mongo.Collection
}

func NewNoteRepo(db *mongo.Database) *NoteRepo {
	return &NoteRepo{coll: db.Collection("notes")}
}

// ListForUser returns all of a user's notes, most recently updated first.
func (r *NoteRepo) ListForUser(ctx context.Context, userID string) ([]model.Note, error) {
	cur, err := r.coll.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	notes := make([]model.Note, 0)
	if err := cur.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetForUser fetches one note owned by the user.
func (r *NoteRepo) GetForUser(ctx context.Context, noteID, userID string) (model.Note, error) {
	var n model.Note
	oid, err := objectID(noteID)
	if err != nil {
		return n, err
	}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid, "userId": userID}).Decode(&n)
	return n, notFound(err)
}

// Create inserts a note, stamping timestamps and returning the stored record.
func (r *NoteRepo) Create(ctx context.Context, n model.Note) (model.Note, error) {
	now := nowUTC()
	n.CreatedAt = now
	n.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, n)
	if err != nil {
		return model.Note{}, err
	}
	n.ID = res.InsertedID.(bson.ObjectID)
	return n, nil
}

// UpdateForUser applies a partial $set to a note owned by the user.
func (r *NoteRepo) UpdateForUser(ctx context.Context, noteID, userID string, set bson.M) (model.Note, error) {
	var n model.Note
	oid, err := objectID(noteID)
	if err != nil {
		return n, err
	}
	set["updatedAt"] = nowUTC()
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "userId": userID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&n)
	return n, notFound(err)
}

// DeleteForUser removes a note owned by the user, returning the removed
// record so a miss surfaces as ErrNotFound.
func (r *NoteRepo) DeleteForUser(ctx context.Context, noteID, userID string) (model.Note, error) {
	var n model.Note
	oid, err := objectID(noteID)
	if err != nil {
		return n, err
	}
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid, "userId": userID}).Decode(&n)
	return n, notFound(err)
}

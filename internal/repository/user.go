package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ashrovy/records-api/internal/model"
)

// UserRepo persists user records and the per-user refresh-token slot.
type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection("users")}
}

// Create inserts a user and fills in its id and timestamps. The unique
// email index turns duplicate inserts into ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	now := nowUTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailExists
		}
		return err
	}
	u.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

// GetByEmail fetches a user by normalized (lowercased) email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	return u, notFound(err)
}

// GetByID fetches a user by path id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	oid, err := objectID(id)
	if err != nil {
		return u, err
	}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	return u, notFound(err)
}

// GetByRefreshToken finds the user currently holding the presented
// refresh token. At most one user can match at any time.
func (r *UserRepo) GetByRefreshToken(ctx context.Context, token string) (model.User, error) {
	var u model.User
	err := r.coll.FindOne(ctx, bson.M{"refreshToken": token}).Decode(&u)
	return u, notFound(err)
}

// SetRefreshToken overwrites the user's refresh-token slot. This is the
// rotation point: whatever token was stored before becomes invalid.
func (r *UserRepo) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"refreshToken": token, "updatedAt": nowUTC()}},
	)
	return err
}

// ClearRefreshToken unsets the slot on whichever user holds the token.
// A no-op when nothing matches, so logout stays idempotent.
func (r *UserRepo) ClearRefreshToken(ctx context.Context, token string) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"refreshToken": token},
		bson.M{"$unset": bson.M{"refreshToken": ""}},
	)
	return err
}

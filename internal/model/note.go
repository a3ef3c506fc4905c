package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Note is a per-user record; every read and mutation is scoped by UserID.
type Note struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string        `bson:"userId" json:"userId"`
	Title     string        `bson:"title" json:"title"`
	Content   string        `bson:"content" json:"content"`
	Tags      []string      `bson:"tags" json:"tags"`
	Archived  bool          `bson:"archived" json:"archived"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// News is an authenticated per-user post. UserID and TypeAccount are
// stamped from the caller at creation time and never updated.
type News struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string        `bson:"userId" json:"userId"`
	TypeAccount AccountType   `bson:"typeAccount" json:"typeAccount"`
	Title       string        `bson:"title" json:"title"`
	Content     string        `bson:"content" json:"content"`
	Tags        []string      `bson:"tags" json:"tags"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

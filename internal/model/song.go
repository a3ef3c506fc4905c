package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Song is a public catalog record.
type Song struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string        `bson:"title" json:"title"`
	Artist          string        `bson:"artist" json:"artist"`
	Album           string        `bson:"album" json:"album"`
	Genre           string        `bson:"genre" json:"genre"`
	ReleaseYear     int           `bson:"releaseYear" json:"releaseYear"`
	DurationSeconds int           `bson:"durationSeconds" json:"durationSeconds"`
	Label           string        `bson:"label,omitempty" json:"label,omitempty"`
	Language        string        `bson:"language" json:"language"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

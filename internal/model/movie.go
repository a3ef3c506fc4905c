package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Movie is a public catalog record. Rating is optional and constrained
// to [0,10] at the API boundary.
type Movie struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string        `bson:"title" json:"title"`
	Director        string        `bson:"director" json:"director"`
	Genre           string        `bson:"genre" json:"genre"`
	ReleaseYear     int           `bson:"releaseYear" json:"releaseYear"`
	Rating          *float64      `bson:"rating,omitempty" json:"rating,omitempty"`
	DurationMinutes int           `bson:"durationMinutes" json:"durationMinutes"`
	Language        string        `bson:"language" json:"language"`
	Summary         string        `bson:"summary,omitempty" json:"summary,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

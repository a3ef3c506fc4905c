package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Lesson levels accepted on create and update.
var LessonLevels = []string{"beginner", "intermediate", "advanced"}

// Lesson is a public catalog record.
type Lesson struct {
	ID              bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string        `bson:"title" json:"title"`
	Subject         string        `bson:"subject" json:"subject"`
	Level           string        `bson:"level" json:"level"`
	DurationMinutes int           `bson:"durationMinutes" json:"durationMinutes"`
	Teacher         string        `bson:"teacher" json:"teacher"`
	PublishedAt     time.Time     `bson:"publishedAt" json:"publishedAt"`
	Summary         string        `bson:"summary,omitempty" json:"summary,omitempty"`
	CreatedAt       time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updatedAt" json:"updatedAt"`
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Student is a public catalog record. GPA is constrained to [0,4] at the
// API boundary and defaults to 0.
type Student struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName  string        `bson:"firstName" json:"firstName"`
	LastName   string        `bson:"lastName" json:"lastName"`
	Major      string        `bson:"major" json:"major"`
	CohortYear int           `bson:"cohortYear" json:"cohortYear"`
	GPA        float64       `bson:"gpa" json:"gpa"`
	Enrolled   bool          `bson:"enrolled" json:"enrolled"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updatedAt"`
}

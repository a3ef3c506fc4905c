package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Todo priorities accepted on create and update.
const (
	TodoPriorityLow    = "low"
	TodoPriorityMedium = "medium"
	TodoPriorityHigh   = "high"
)

// TodoPriorities lists the allowed priority literals in declaration order.
var TodoPriorities = []string{TodoPriorityLow, TodoPriorityMedium, TodoPriorityHigh}

// Todo is a public, ownerless record with full CRUD.
type Todo struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Completed   bool          `bson:"completed" json:"completed"`
	Priority    string        `bson:"priority" json:"priority"`
	DueDate     *time.Time    `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	Category    string        `bson:"category" json:"category"`
	Tags        []string      `bson:"tags" json:"tags"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Task statuses accepted on create and update.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in-progress"
	TaskStatusDone       = "done"
)

// TaskStatuses lists the allowed status literals in declaration order.
var TaskStatuses = []string{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}

// Task is a per-user record scoped by UserID on every operation.
type Task struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string        `bson:"userId" json:"userId"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Status      string        `bson:"status" json:"status"`
	DueDate     *time.Time    `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

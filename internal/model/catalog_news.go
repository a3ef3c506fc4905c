package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CatalogNews categories accepted on create and update.
var CatalogNewsCategories = []string{
	"technology",
	"business",
	"health",
	"lifestyle",
	"science",
	"entertainment",
}

// CatalogNews is a public, ownerless news record, distinct from the
// authenticated News resource.
type CatalogNews struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title"`
	Summary     string        `bson:"summary" json:"summary"`
	Source      string        `bson:"source" json:"source"`
	Category    string        `bson:"category" json:"category"`
	PublishedAt time.Time     `bson:"publishedAt" json:"publishedAt"`
	URL         string        `bson:"url,omitempty" json:"url,omitempty"`
	Tags        []string      `bson:"tags" json:"tags"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

package handler

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/query"
	"github.com/ashrovy/records-api/internal/repository"
)

// The tags filter matches any array element, which is what an equality
// regex against an array field does in MongoDB.
var catalogNewsFilterFields = []query.FilterField{
	{Key: "title", Type: query.FieldString},
	{Key: "category", Type: query.FieldString},
	{Key: "source", Type: query.FieldString},
	{Key: "tags", Type: query.FieldString},
}

func NewCatalogNewsResource(db *mongo.Database) *CatalogResource[model.CatalogNews] {
	return &CatalogResource[model.CatalogNews]{
		Label:        "News article",
		Repo:         repository.NewCatalogRepo[model.CatalogNews](db, "catalog_news"),
		FilterFields: catalogNewsFilterFields,
		BuildCreate:  buildCatalogNewsCreate,
		BuildUpdate:  buildCatalogNewsUpdate,
	}
}

func buildCatalogNewsCreate(body map[string]any) (bson.M, error) {
	title, err := query.RequireString(body["title"], "title")
	if err != nil {
		return nil, err
	}
	summary, err := query.RequireString(body["summary"], "summary")
	if err != nil {
		return nil, err
	}
	source, err := query.RequireString(body["source"], "source")
	if err != nil {
		return nil, err
	}
	category, err := query.RequireEnum(body["category"], "category", model.CatalogNewsCategories)
	if err != nil {
		return nil, err
	}
	publishedAt, err := query.RequireDate(body["publishedAt"], "publishedAt")
	if err != nil {
		return nil, err
	}

	tags := query.Tags(body["tags"])
	if tags == nil {
		tags = []string{}
	}

	doc := bson.M{
		"title":       title,
		"summary":     summary,
		"source":      source,
		"category":    category,
		"publishedAt": publishedAt,
		"tags":        tags,
	}
	if url := query.OptionalString(body["url"]); url != "" {
		doc["url"] = url
	}
	return doc, nil
}

func buildCatalogNewsUpdate(body map[string]any) (bson.M, error) {
	set := bson.M{}
	if _, ok := body["title"]; ok {
		title, err := query.RequireString(body["title"], "title")
		if err != nil {
			return nil, err
		}
		set["title"] = title
	}
	if _, ok := body["summary"]; ok {
		summary, err := query.RequireString(body["summary"], "summary")
		if err != nil {
			return nil, err
		}
		set["summary"] = summary
	}
	if _, ok := body["source"]; ok {
		source, err := query.RequireString(body["source"], "source")
		if err != nil {
			return nil, err
		}
		set["source"] = source
	}
	if _, ok := body["category"]; ok {
		category, err := query.RequireEnum(body["category"], "category", model.CatalogNewsCategories)
		if err != nil {
			return nil, err
		}
		set["category"] = category
	}
	if _, ok := body["publishedAt"]; ok {
		publishedAt, err := query.RequireDate(body["publishedAt"], "publishedAt")
		if err != nil {
			return nil, err
		}
		set["publishedAt"] = publishedAt
	}
	if _, ok := body["url"]; ok {
		if url := query.OptionalString(body["url"]); url != "" {
			set["url"] = url
		}
	}
	if _, ok := body["tags"]; ok {
		if tags := query.Tags(body["tags"]); tags != nil {
			set["tags"] = tags
		}
	}
	return set, nil
}

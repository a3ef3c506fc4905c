package handler

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/query"
	"github.com/ashrovy/records-api/internal/repository"
)

var movieFilterFields = []query.FilterField{
	{Key: "title", Type: query.FieldString},
	{Key: "director", Type: query.FieldString},
	{Key: "genre", Type: query.FieldString},
	{Key: "language", Type: query.FieldString},
	{Key: "releaseYear", Type: query.FieldNumber},
	{Key: "rating", Type: query.FieldNumber},
}

func NewMovieResource(db *mongo.Database) *CatalogResource[model.Movie] {
	return &CatalogResource[model.Movie]{
		Label:        "Movie",
		Repo:         repository.NewCatalogRepo[model.Movie](db, "movies"),
		FilterFields: movieFilterFields,
		BuildCreate:  buildMovieCreate,
		BuildUpdate:  buildMovieUpdate,
	}
}

func buildMovieCreate(body map[string]any) (bson.M, error) {
	title, err := query.RequireString(body["title"], "title")
	if err != nil {
		return nil, err
	}
	director, err := query.RequireString(body["director"], "director")
	if err != nil {
		return nil, err
	}
	genre, err := query.RequireString(body["genre"], "genre")
	if err != nil {
		return nil, err
	}
	releaseYear, err := query.RequirePositiveNumber(body["releaseYear"], "releaseYear")
	if err != nil {
		return nil, err
	}
	rating, err := query.OptionalNumberInRange(body["rating"], "rating", 0, 10)
	if err != nil {
		return nil, err
	}
	durationMinutes, err := query.RequirePositiveNumber(body["durationMinutes"], "durationMinutes")
	if err != nil {
		return nil, err
	}

	language := query.OptionalString(body["language"])
	if language == "" {
		language = "English"
	}

	doc := bson.M{
		"title":           title,
		"director":        director,
		"genre":           genre,
		"releaseYear":     int(releaseYear),
		"durationMinutes": int(durationMinutes),
		"language":        language,
	}
	if rating != nil {
		doc["rating"] = *rating
	}
	if summary := query.OptionalString(body["summary"]); summary != "" {
		doc["summary"] = summary
	}
	return doc, nil
}

func buildMovieUpdate(body map[string]any) (bson.M, error) {
	set := bson.M{}
	if _, ok := body["title"]; ok {
		title, err := query.RequireString(body["title"], "title")
		if err != nil {
			return nil, err
		}
		set["title"] = title
	}
	if _, ok := body["director"]; ok {
		director, err := query.RequireString(body["director"], "director")
		if err != nil {
			return nil, err
		}
		set["director"] = director
	}
	if _, ok := body["genre"]; ok {
		genre, err := query.RequireString(body["genre"], "genre")
		if err != nil {
			return nil, err
		}
		set["genre"] = genre
	}
	if _, ok := body["releaseYear"]; ok {
		releaseYear, err := query.RequirePositiveNumber(body["releaseYear"], "releaseYear")
		if err != nil {
			return nil, err
		}
		set["releaseYear"] = int(releaseYear)
	}
	if _, ok := body["rating"]; ok {
		rating, err := query.OptionalNumberInRange(body["rating"], "rating", 0, 10)
		if err != nil {
			return nil, err
		}
		if rating != nil {
			set["rating"] = *rating
		}
	}
	if _, ok := body["durationMinutes"]; ok {
		durationMinutes, err := query.RequirePositiveNumber(body["durationMinutes"], "durationMinutes")
		if err != nil {
			return nil, err
		}
		set["durationMinutes"] = int(durationMinutes)
	}
	if _, ok := body["language"]; ok {
		if language := query.OptionalString(body["language"]); language != "" {
			set["language"] = language
		}
	}
	if _, ok := body["summary"]; ok {
		if summary := query.OptionalString(body["summary"]); summary != "" {
			set["summary"] = summary
		}
	}
	return set, nil
}

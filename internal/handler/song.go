package handler

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/query"
	"github.com/ashrovy/records-api/internal/repository"
)

var songFilterFields = []query.FilterField{
	{Key: "title", Type: query.FieldString},
	{Key: "artist", Type: query.FieldString},
	{Key: "genre", Type: query.FieldString},
	{Key: "language", Type: query.FieldString},
	{Key: "label", Type: query.FieldString},
	{Key: "releaseYear", Type: query.FieldNumber},
}

func NewSongResource(db *mongo.Database) *CatalogResource[model.Song] {
	return &CatalogResource[model.Song]{
		Label:        "Song",
		Repo:         repository.NewCatalogRepo[model.Song](db, "songs"),
		FilterFields: songFilterFields,
		BuildCreate:  buildSongCreate,
		BuildUpdate:  buildSongUpdate,
	}
}

func buildSongCreate(body map[string]any) (bson.M, error) {
	title, err := query.RequireString(body["title"], "title")
	if err != nil {
		return nil, err
	}
	artist, err := query.RequireString(body["artist"], "artist")
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
	durationSeconds, err := query.RequirePositiveNumber(body["durationSeconds"], "durationSeconds")
	if err != nil {
		return nil, err
	}

	language := query.OptionalString(body["language"])
	if language == "" {
		language = "English"
	}

	doc := bson.M{
		"title":           title,
		"artist":          artist,
		"album":           query.OptionalString(body["album"]),
		"genre":           genre,
		"releaseYear":     int(releaseYear),
		"durationSeconds": int(durationSeconds),
		"language":        language,
	}
	if label := query.OptionalString(body["label"]); label != "" {
		doc["label"] = label
	}
	return doc, nil
}

func buildSongUpdate(body map[string]any) (bson.M, error) {
	set := bson.M{}
	if _, ok := body["title"]; ok {
		title, err := query.RequireString(body["title"], "title")
		if err != nil {
			return nil, err
		}
		set["title"] = title
	}
	if _, ok := body["artist"]; ok {
		artist, err := query.RequireString(body["artist"], "artist")
		if err != nil {
			return nil, err
		}
		set["artist"] = artist
	}
	if _, ok := body["album"]; ok {
		set["album"] = query.OptionalString(body["album"])
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
	if _, ok := body["durationSeconds"]; ok {
		durationSeconds, err := query.RequirePositiveNumber(body["durationSeconds"], "durationSeconds")
		if err != nil {
			return nil, err
		}
		set["durationSeconds"] = int(durationSeconds)
	}
	if _, ok := body["label"]; ok {
		if label := query.OptionalString(body["label"]); label != "" {
			set["label"] = label
		}
	}
	if _, ok := body["language"]; ok {
		if language := query.OptionalString(body["language"]); language != "" {
			set["language"] = language
		}
	}
	return set, nil
}

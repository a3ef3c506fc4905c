package handler

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/query"
	"github.com/ashrovy/records-api/internal/repository"
)

var lessonFilterFields = []query.FilterField{
	{Key: "title", Type: query.FieldString},
	{Key: "subject", Type: query.FieldString},
	{Key: "level", Type: query.FieldString},
	{Key: "teacher", Type: query.FieldString},
	{Key: "durationMinutes", Type: query.FieldNumber},
}

func NewLessonResource(db *mongo.Database) *CatalogResource[model.Lesson] {
	return &CatalogResource[model.Lesson]{
		Label:        "Lesson",
		Repo:         repository.NewCatalogRepo[model.Lesson](db, "lessons"),
		FilterFields: lessonFilterFields,
		BuildCreate:  buildLessonCreate,
		BuildUpdate:  buildLessonUpdate,
	}
}

func buildLessonCreate(body map[string]any) (bson.M, error) {
	title, err := query.RequireString(body["title"], "title")
	if err != nil {
		return nil, err
	}
	subject, err := query.RequireString(body["subject"], "subject")
	if err != nil {
		return nil, err
	}
	level, err := query.OptionalEnum(body["level"], "level", model.LessonLevels)
	if err != nil {
		return nil, err
	}
	if level == "" {
		level = "beginner"
	}
	durationMinutes, err := query.RequirePositiveNumber(body["durationMinutes"], "durationMinutes")
	if err != nil {
		return nil, err
	}
	teacher, err := query.RequireString(body["teacher"], "teacher")
	if err != nil {
		return nil, err
	}
	publishedAt, err := query.RequireDate(body["publishedAt"], "publishedAt")
	if err != nil {
		return nil, err
	}

	doc := bson.M{
		"title":           title,
		"subject":         subject,
		"level":           level,
		"durationMinutes": int(durationMinutes),
		"teacher":         teacher,
		"publishedAt":     publishedAt,
	}
	if summary := query.OptionalString(body["summary"]); summary != "" {
		doc["summary"] = summary
	}
	return doc, nil
}

func buildLessonUpdate(body map[string]any) (bson.M, error) {
	set := bson.M{}
	if _, ok := body["title"]; ok {
		title, err := query.RequireString(body["title"], "title")
		if err != nil {
			return nil, err
		}
		set["title"] = title
	}
	if _, ok := body["subject"]; ok {
		subject, err := query.RequireString(body["subject"], "subject")
		if err != nil {
			return nil, err
		}
		set["subject"] = subject
	}
	if _, ok := body["level"]; ok {
		level, err := query.RequireEnum(body["level"], "level", model.LessonLevels)
		if err != nil {
			return nil, err
		}
		set["level"] = level
	}
	if _, ok := body["durationMinutes"]; ok {
		durationMinutes, err := query.RequirePositiveNumber(body["durationMinutes"], "durationMinutes")
		if err != nil {
			return nil, err
		}
		set["durationMinutes"] = int(durationMinutes)
	}
	if _, ok := body["teacher"]; ok {
		teacher, err := query.RequireString(body["teacher"], "teacher")
		if err != nil {
			return nil, err
		}
		set["teacher"] = teacher
	}
	if _, ok := body["publishedAt"]; ok {
		publishedAt, err := query.RequireDate(body["publishedAt"], "publishedAt")
		if err != nil {
			return nil, err
		}
		set["publishedAt"] = publishedAt
	}
	if _, ok := body["summary"]; ok {
		if summary := query.OptionalString(body["summary"]); summary != "" {
			set["summary"] = summary
		}
	}
	return set, nil
}

package handler

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/query"
	"github.com/ashrovy/records-api/internal/repository"
)

var studentFilterFields = []query.FilterField{
	{Key: "firstName", Type: query.FieldString},
	{Key: "lastName", Type: query.FieldString},
	{Key: "major", Type: query.FieldString},
	{Key: "cohortYear", Type: query.FieldNumber},
	{Key: "gpa", Type: query.FieldNumber},
	{Key: "enrolled", Type: query.FieldBoolean},
}

func NewStudentResource(db *mongo.Database) *CatalogResource[model.Student] {
	return &CatalogResource[model.Student]{
		Label:        "Student",
		Repo:         repository.NewCatalogRepo[model.Student](db, "students"),
		FilterFields: studentFilterFields,
		BuildCreate:  buildStudentCreate,
		BuildUpdate:  buildStudentUpdate,
	}
}

func buildStudentCreate(body map[string]any) (bson.M, error) {
	firstName, err := query.RequireString(body["firstName"], "firstName")
	if err != nil {
		return nil, err
	}
	lastName, err := query.RequireString(body["lastName"], "lastName")
	if err != nil {
		return nil, err
	}
	major, err := query.RequireString(body["major"], "major")
	if err != nil {
		return nil, err
	}
	cohortYear, err := query.RequirePositiveNumber(body["cohortYear"], "cohortYear")
	if err != nil {
		return nil, err
	}
	gpa, err := query.OptionalNumberInRange(body["gpa"], "gpa", 0, 4)
	if err != nil {
		return nil, err
	}
	enrolled, err := query.OptionalBool(body["enrolled"], "enrolled")
	if err != nil {
		return nil, err
	}

	doc := bson.M{
		"firstName":  firstName,
		"lastName":   lastName,
		"major":      major,
		"cohortYear": int(cohortYear),
		"gpa":        float64(0),
		"enrolled":   true,
	}
	if gpa != nil {
		doc["gpa"] = *gpa
	}
	if enrolled != nil {
		doc["enrolled"] = *enrolled
	}
	return doc, nil
}

func buildStudentUpdate(body map[string]any) (bson.M, error) {
	set := bson.M{}
	if _, ok := body["firstName"]; ok {
		firstName, err := query.RequireString(body["firstName"], "firstName")
		if err != nil {
			return nil, err
		}
		set["firstName"] = firstName
	}
	if _, ok := body["lastName"]; ok {
		lastName, err := query.RequireString(body["lastName"], "lastName")
		if err != nil {
			return nil, err
		}
		set["lastName"] = lastName
	}
	if _, ok := body["major"]; ok {
		major, err := query.RequireString(body["major"], "major")
		if err != nil {
			return nil, err
		}
		set["major"] = major
	}
	if _, ok := body["cohortYear"]; ok {
		cohortYear, err := query.RequirePositiveNumber(body["cohortYear"], "cohortYear")
		if err != nil {
			return nil, err
		}
		set["cohortYear"] = int(cohortYear)
	}
	if _, ok := body["gpa"]; ok {
		gpa, err := query.OptionalNumberInRange(body["gpa"], "gpa", 0, 4)
		if err != nil {
			return nil, err
		}
		if gpa != nil {
			set["gpa"] = *gpa
		}
	}
	if _, ok := body["enrolled"]; ok {
		enrolled, err := query.OptionalBool(body["enrolled"], "enrolled")
		if err != nil {
			return nil, err
		}
		if enrolled != nil {
			set["enrolled"] = *enrolled
		}
	}
	return set, nil
}

package handler

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/query"
	"github.com/ashrovy/records-api/internal/repository"
)

var carFilterFields = []query.FilterField{
	{Key: "make", Type: query.FieldString},
	{Key: "model", Type: query.FieldString},
	{Key: "color", Type: query.FieldString},
	{Key: "fuelType", Type: query.FieldString},
	{Key: "year", Type: query.FieldNumber},
	{Key: "price", Type: query.FieldNumber},
}

func NewCarResource(db *mongo.Database) *CatalogResource[model.Car] {
	return &CatalogResource[model.Car]{
		Label:        "Car",
		Repo:         repository.NewCatalogRepo[model.Car](db, "cars"),
		FilterFields: carFilterFields,
		BuildCreate:  buildCarCreate,
		BuildUpdate:  buildCarUpdate,
	}
}

func buildCarCreate(body map[string]any) (bson.M, error) {
	carMake, err := query.RequireString(body["make"], "make")
	if err != nil {
		return nil, err
	}
	carModel, err := query.RequireString(body["model"], "model")
	if err != nil {
		return nil, err
	}
	year, err := query.RequirePositiveNumber(body["year"], "year")
	if err != nil {
		return nil, err
	}
	color, err := query.RequireString(body["color"], "color")
	if err != nil {
		return nil, err
	}
	price, err := query.RequirePositiveNumber(body["price"], "price")
	if err != nil {
		return nil, err
	}
	mileage, err := query.OptionalPositiveNumber(body["mileage"], "mileage")
	if err != nil {
		return nil, err
	}
	fuelType, err := query.RequireEnum(body["fuelType"], "fuelType", model.CarFuelTypes)
	if err != nil {
		return nil, err
	}

	doc := bson.M{
		"make":     carMake,
		"model":    carModel,
		"year":     int(year),
		"color":    color,
		"price":    price,
		"mileage":  float64(0),
		"fuelType": fuelType,
	}
	if mileage != nil {
		doc["mileage"] = *mileage
	}
	if description := query.OptionalString(body["description"]); description != "" {
		doc["description"] = description
	}
	return doc, nil
}

func buildCarUpdate(body map[string]any) (bson.M, error) {
	set := bson.M{}
	if _, ok := body["make"]; ok {
		carMake, err := query.RequireString(body["make"], "make")
		if err != nil {
			return nil, err
		}
		set["make"] = carMake
	}
	if _, ok := body["model"]; ok {
		carModel, err := query.RequireString(body["model"], "model")
		if err != nil {
			return nil, err
		}
		set["model"] = carModel
	}
	if _, ok := body["year"]; ok {
		year, err := query.RequirePositiveNumber(body["year"], "year")
		if err != nil {
			return nil, err
		}
		set["year"] = int(year)
	}
	if _, ok := body["color"]; ok {
		color, err := query.RequireString(body["color"], "color")
		if err != nil {
			return nil, err
		}
		set["color"] = color
	}
	if _, ok := body["price"]; ok {
		price, err := query.RequirePositiveNumber(body["price"], "price")
		if err != nil {
			return nil, err
		}
		set["price"] = price
	}
	if _, ok := body["mileage"]; ok {
		mileage, err := query.OptionalPositiveNumber(body["mileage"], "mileage")
		if err != nil {
			return nil, err
		}
		if mileage != nil {
			set["mileage"] = *mileage
		}
	}
	if _, ok := body["fuelType"]; ok {
		fuelType, err := query.RequireEnum(body["fuelType"], "fuelType", model.CarFuelTypes)
		if err != nil {
			return nil, err
		}
		set["fuelType"] = fuelType
	}
	if _, ok := body["description"]; ok {
		if description := query.OptionalString(body["description"]); description != "" {
			set["description"] = description
		}
	}
	return set, nil
}

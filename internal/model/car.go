package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Car fuel types accepted on create and update.
var CarFuelTypes = []string{"gasoline", "diesel", "electric", "hybrid"}

// Car is a public catalog record.
type Car struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Make        string        `bson:"make" json:"make"`
	Model       string        `bson:"model" json:"model"`
	Year        int           `bson:"year" json:"year"`
	Color       string        `bson:"color" json:"color"`
	Price       float64       `bson:"price" json:"price"`
	Mileage     float64       `bson:"mileage" json:"mileage"`
	FuelType    string        `bson:"fuelType" json:"fuelType"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

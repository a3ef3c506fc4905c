package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/ashrovy/records-api/internal/query"
)

func TestBuildSongCreate(t *testing.T) {
	doc, err := buildSongCreate(map[string]any{
		"title":           "Paranoid Android",
		"artist":          "Radiohead",
		"genre":           "rock",
		"releaseYear":     float64(1997),
		"durationSeconds": float64(387),
	})
	require.NoError(t, err)

	assert.Equal(t, "Paranoid Android", doc["title"])
	assert.Equal(t, 1997, doc["releaseYear"])
	assert.Equal(t, 387, doc["durationSeconds"])
	assert.Equal(t, "English", doc["language"])
	assert.Equal(t, "", doc["album"])
	assert.NotContains(t, doc, "label")
}

func TestBuildSongCreateMissingField(t *testing.T) {
	_, err := buildSongCreate(map[string]any{"title": "Untitled"})
	require.Error(t, err)

	var ve *query.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "artist", ve.Field)
}

func TestBuildSongUpdateEmptyBody(t *testing.T) {
	set, err := buildSongUpdate(map[string]any{"producer": "ignored"})
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestBuildCarCreateDefaults(t *testing.T) {
	doc, err := buildCarCreate(map[string]any{
		"make":     "Toyota",
		"model":    "Corolla",
		"year":     float64(2020),
		"color":    "silver",
		"price":    float64(18500),
		"fuelType": "hybrid",
	})
	require.NoError(t, err)

	assert.Equal(t, float64(0), doc["mileage"])
	assert.Equal(t, "hybrid", doc["fuelType"])
	assert.NotContains(t, doc, "description")
}

func TestBuildCarUpdateRejectsBadFuelType(t *testing.T) {
	_, err := buildCarUpdate(map[string]any{"fuelType": "steam"})
	require.Error(t, err)
	assert.Equal(t, "fuelType must be one of: gasoline, diesel, electric, hybrid", err.Error())
}

func TestBuildMovieCreateRatingRange(t *testing.T) {
	base := map[string]any{
		"title":           "Arrival",
		"director":        "Villeneuve",
		"genre":           "sci-fi",
		"releaseYear":     float64(2016),
		"durationMinutes": float64(116),
	}

	doc, err := buildMovieCreate(base)
	require.NoError(t, err)
	assert.NotContains(t, doc, "rating")

	base["rating"] = float64(8.5)
	doc, err = buildMovieCreate(base)
	require.NoError(t, err)
	assert.Equal(t, 8.5, doc["rating"])

	base["rating"] = float64(10.5)
	_, err = buildMovieCreate(base)
	require.Error(t, err)
	assert.Equal(t, "rating must be between 0 and 10", err.Error())
}

func TestBuildStudentCreateDefaults(t *testing.T) {
	doc, err := buildStudentCreate(map[string]any{
		"firstName":  "Ada",
		"lastName":   "Lovelace",
		"major":      "mathematics",
		"cohortYear": float64(2024),
	})
	require.NoError(t, err)

	assert.Equal(t, float64(0), doc["gpa"])
	assert.Equal(t, true, doc["enrolled"])
}

func TestBuildStudentUpdate(t *testing.T) {
	set, err := buildStudentUpdate(map[string]any{
		"gpa":      float64(3.9),
		"enrolled": false,
	})
	require.NoError(t, err)
	assert.Equal(t, 3.9, set["gpa"])
	assert.Equal(t, false, set["enrolled"])

	_, err = buildStudentUpdate(map[string]any{"gpa": float64(4.5)})
	require.Error(t, err)
}

func TestBuildLessonCreate(t *testing.T) {
	doc, err := buildLessonCreate(map[string]any{
		"title":           "Goroutines",
		"subject":         "programming",
		"durationMinutes": float64(45),
		"teacher":         "R. Pike",
		"publishedAt":     "2024-06-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "beginner", doc["level"])
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), doc["publishedAt"])
}

func TestBuildCatalogNewsCreate(t *testing.T) {
	doc, err := buildCatalogNewsCreate(map[string]any{
		"title":       "Go 1.24 released",
		"summary":     "Release notes roundup",
		"source":      "go.dev",
		"category":    "technology",
		"publishedAt": "2025-02-11T09:00:00Z",
		"tags":        []any{"go", "release"},
	})
	require.NoError(t, err)

	assert.Equal(t, "technology", doc["category"])
	assert.Equal(t, []string{"go", "release"}, doc["tags"])
	assert.NotContains(t, doc, "url")
}

func TestBuildCatalogNewsCreateBadCategory(t *testing.T) {
	_, err := buildCatalogNewsCreate(map[string]any{
		"title":       "x",
		"summary":     "y",
		"source":      "z",
		"category":    "sports",
		"publishedAt": "2025-02-11",
	})
	require.Error(t, err)

	var ve *query.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "category", ve.Field)
}

func TestBuildersProduceBsonM(t *testing.T) {
	doc, err := buildSongCreate(map[string]any{
		"title":           "a",
		"artist":          "b",
		"genre":           "c",
		"releaseYear":     float64(2000),
		"durationSeconds": float64(10),
	})
	require.NoError(t, err)
	assert.IsType(t, bson.M{}, doc)
}

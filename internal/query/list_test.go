package query

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var testFields = []FilterField{
	{Key: "title", Type: FieldString},
	{Key: "releaseYear", Type: FieldNumber},
	{Key: "enrolled", Type: FieldBoolean},
}

func TestParseListDefaults(t *testing.T) {
	q := ParseList(url.Values{}, testFields)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PerPage)
	assert.Equal(t, "createdAt", q.SortField)
	assert.Equal(t, -1, q.SortOrder)
	assert.Empty(t, q.Filter)
}

func TestParseListInvalidPaginationFallsBack(t *testing.T) {
	values := url.Values{
		"page":    {"0"},
		"perPage": {"-5"},
		"title":   {"go"},
	}
	q := ParseList(values, testFields)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PerPage)
	assert.Equal(t, bson.M{"$regex": "go", "$options": "i"}, q.Filter["title"])
}

func TestParseListFilterTypes(t *testing.T) {
	values := url.Values{
		"title":       {"dune"},
		"releaseYear": {"2021"},
		"enrolled":    {"false"},
	}
	q := ParseList(values, testFields)

	assert.Equal(t, bson.M{"$regex": "dune", "$options": "i"}, q.Filter["title"])
	assert.Equal(t, float64(2021), q.Filter["releaseYear"])
	assert.Equal(t, false, q.Filter["enrolled"])
}

func TestParseListDropsUninterpretableValues(t *testing.T) {
	values := url.Values{
		"releaseYear": {"soon"},
		"enrolled":    {"maybe"},
	}
	q := ParseList(values, testFields)

	assert.NotContains(t, q.Filter, "releaseYear")
	assert.NotContains(t, q.Filter, "enrolled")
}

func TestParseListIgnoresUndeclaredKeys(t *testing.T) {
	values := url.Values{
		"director": {"nolan"},
		"$where":   {"1"},
	}
	q := ParseList(values, testFields)

	assert.Empty(t, q.Filter)
}

func TestParseListSortOrder(t *testing.T) {
	q := ParseList(url.Values{"sortField": {"price"}, "sortOrder": {"asc"}}, nil)
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, q.Sort())

	q = ParseList(url.Values{"sortOrder": {"descending"}}, nil)
	assert.Equal(t, -1, q.SortOrder)
}

func TestListQuerySkip(t *testing.T) {
	q := ParseList(url.Values{"page": {"3"}, "perPage": {"25"}}, nil)
	assert.Equal(t, int64(50), q.Skip())
}

func TestParseTodos(t *testing.T) {
	values := url.Values{
		"completed": {"true"},
		"priority":  {"high"},
		"category":  {"work"},
		"title":     {"report"},
		"tag":       {"urgent"},
	}
	q := ParseTodos(values)

	assert.Equal(t, true, q.Filter["completed"])
	assert.Equal(t, "high", q.Filter["priority"])
	assert.Equal(t, bson.M{"$regex": "work", "$options": "i"}, q.Filter["category"])
	assert.Equal(t, bson.M{"$regex": "report", "$options": "i"}, q.Filter["title"])
	assert.Equal(t, "urgent", q.Filter["tags"])
}

func TestParseTodosDueRange(t *testing.T) {
	values := url.Values{
		"dueBefore": {"2024-12-31"},
		"dueAfter":  {"2024-01-01"},
	}
	q := ParseTodos(values)

	due, ok := q.Filter["dueDate"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), due["$lte"])
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), due["$gte"])
}

func TestParseTodosBadDueDateIgnored(t *testing.T) {
	q := ParseTodos(url.Values{"dueBefore": {"whenever"}})
	assert.NotContains(t, q.Filter, "dueDate")
}

func TestParseNews(t *testing.T) {
	q := ParseNews(url.Values{"title": {"launch"}, "tag": {"go"}})

	assert.Equal(t, bson.M{"$regex": "launch", "$options": "i"}, q.Filter["title"])
	assert.Equal(t, "go", q.Filter["tags"])
}

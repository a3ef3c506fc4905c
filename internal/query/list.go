package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// FieldType declares how a filterable field's query value is interpreted.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldNumber  FieldType = "number"
	FieldBoolean FieldType = "boolean"
)

// FilterField declares one query parameter a resource accepts as a filter.
// Parameters not declared here are never consulted.
type FilterField struct {
	Key  string
	Type FieldType
}

const (
	defaultPage      = 1
	defaultPerPage   = 10
	defaultSortField = "createdAt"
)

// ListQuery is the normalized outcome of parsing a list request's query
// string: effective pagination, sort, and a MongoDB filter document.
type ListQuery struct {
	Page      int
	PerPage   int
	SortField string
	SortOrder int // 1 ascending, -1 descending
	Filter    bson.M
}

// Sort returns the query's sort specification as a bson document.
func (q ListQuery) Sort() bson.D {
	return bson.D{{Key: q.SortField, Value: q.SortOrder}}
}

// Skip returns the number of documents to skip for the requested page.
func (q ListQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.PerPage)
}

func firstValue(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

// positiveInt parses raw as a positive integer, falling back (never
// erroring) on anything non-positive or non-numeric.
func positiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) || parsed <= 0 {
		return fallback
	}
	return int(parsed)
}

func parsePagination(values url.Values) ListQuery {
	sortField := firstValue(values, "sortField")
	if sortField == "" {
		sortField = defaultSortField
	}
	sortOrder := -1
	if firstValue(values, "sortOrder") == "asc" {
		sortOrder = 1
	}
	return ListQuery{
		Page:      positiveInt(firstValue(values, "page"), defaultPage),
		PerPage:   positiveInt(firstValue(values, "perPage"), defaultPerPage),
		SortField: sortField,
		SortOrder: sortOrder,
		Filter:    bson.M{},
	}
}

// ParseList normalizes a raw query-parameter bag against a declared set of
// filterable fields. Invalid pagination values fall back to defaults, and
// filter values that cannot be interpreted are silently dropped.
func ParseList(values url.Values, fields []FilterField) ListQuery {
	q := parsePagination(values)

	for _, f := range fields {
		raw := firstValue(values, f.Key)
		if raw == "" {
			continue
		}
		switch f.Type {
		case FieldString:
			q.Filter[f.Key] = bson.M{"$regex": raw, "$options": "i"}
		case FieldNumber:
			parsed, err := strconv.ParseFloat(raw, 64)
			if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
				continue
			}
			q.Filter[f.Key] = parsed
		case FieldBoolean:
			switch strings.ToLower(raw) {
			case "true":
				q.Filter[f.Key] = true
			case "false":
				q.Filter[f.Key] = false
			}
		}
	}
	return q
}

// ParseTodos parses the todo list query. The filter shape is fixed rather
// than declared: completed (exact), priority (exact), category and title
// (substring), tag (array element match), and dueBefore/dueAfter combined
// into a single range on dueDate.
func ParseTodos(values url.Values) ListQuery {
	q := parsePagination(values)

	switch firstValue(values, "completed") {
	case "true":
		q.Filter["completed"] = true
	case "false":
		q.Filter["completed"] = false
	}
	if priority := firstValue(values, "priority"); priority != "" {
		q.Filter["priority"] = priority
	}
	if category := firstValue(values, "category"); category != "" {
		q.Filter["category"] = bson.M{"$regex": category, "$options": "i"}
	}
	if title := firstValue(values, "title"); title != "" {
		q.Filter["title"] = bson.M{"$regex": title, "$options": "i"}
	}
	if tag := firstValue(values, "tag"); tag != "" {
		q.Filter["tags"] = tag
	}

	due := bson.M{}
	if before, ok := parseDate(firstValue(values, "dueBefore")); ok {
		due["$lte"] = before
	}
	if after, ok := parseDate(firstValue(values, "dueAfter")); ok {
		due["$gte"] = after
	}
	if len(due) > 0 {
		q.Filter["dueDate"] = due
	}
	return q
}

// ParseNews parses the authenticated news list query: title substring and
// tag element match. The caller scopes the filter to its own user id.
func ParseNews(values url.Values) ListQuery {
	q := parsePagination(values)

	if title := firstValue(values, "title"); title != "" {
		q.Filter["title"] = bson.M{"$regex": title, "$options": "i"}
	}
	if tag := firstValue(values, "tag"); tag != "" {
		q.Filter["tags"] = tag
	}
	return q
}

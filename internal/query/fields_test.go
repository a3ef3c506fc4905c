package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireString(t *testing.T) {
	got, err := RequireString("  hello  ", "title")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = RequireString(nil, "title")
	require.Error(t, err)
	assert.Equal(t, "title is required", err.Error())

	_, err = RequireString("   ", "title")
	require.Error(t, err)

	_, err = RequireString(42, "title")
	require.Error(t, err)
}

func TestRequireNumber(t *testing.T) {
	got, err := RequireNumber(42.5, "price")
	require.NoError(t, err)
	assert.Equal(t, 42.5, got)

	got, err = RequireNumber("  19.99 ", "price")
	require.NoError(t, err)
	assert.Equal(t, 19.99, got)

	_, err = RequireNumber(true, "price")
	require.Error(t, err)
	assert.Equal(t, "price must be a valid number", err.Error())

	_, err = RequireNumber("", "price")
	require.Error(t, err)
}

func TestRequirePositiveNumber(t *testing.T) {
	_, err := RequirePositiveNumber(0, "year")
	require.Error(t, err)
	assert.Equal(t, "year must be greater than zero", err.Error())

	_, err = RequirePositiveNumber(-3, "year")
	require.Error(t, err)

	got, err := RequirePositiveNumber(2020, "year")
	require.NoError(t, err)
	assert.Equal(t, float64(2020), got)
}

func TestOptionalPositiveNumber(t *testing.T) {
	got, err := OptionalPositiveNumber(nil, "mileage")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = OptionalPositiveNumber("", "mileage")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = OptionalPositiveNumber(12000.0, "mileage")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 12000.0, *got)

	_, err = OptionalPositiveNumber(-1, "mileage")
	require.Error(t, err)
}

func TestNumberInRange(t *testing.T) {
	got, err := RequireNumberInRange(3.5, "gpa", 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 3.5, got)

	_, err = RequireNumberInRange(4.2, "gpa", 0, 4)
	require.Error(t, err)
	assert.Equal(t, "gpa must be between 0 and 4", err.Error())

	ptr, err := OptionalNumberInRange(nil, "rating", 0, 10)
	require.NoError(t, err)
	assert.Nil(t, ptr)

	_, err = OptionalNumberInRange(11, "rating", 0, 10)
	require.Error(t, err)
}

func TestEnum(t *testing.T) {
	allowed := []string{"low", "medium", "high"}

	got, err := RequireEnum(" medium ", "priority", allowed)
	require.NoError(t, err)
	assert.Equal(t, "medium", got)

	_, err = RequireEnum("urgent", "priority", allowed)
	require.Error(t, err)
	assert.Equal(t, "priority must be one of: low, medium, high", err.Error())

	got, err = OptionalEnum(nil, "priority", allowed)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = OptionalEnum("urgent", "priority", allowed)
	require.Error(t, err)
}

func TestRequireDate(t *testing.T) {
	got, err := RequireDate("2024-03-05", "publishedAt")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = RequireDate("2024-03-05T10:30:00Z", "publishedAt")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC), got)

	_, err = RequireDate(nil, "publishedAt")
	require.Error(t, err)
	assert.Equal(t, "publishedAt is required", err.Error())

	_, err = RequireDate("not-a-date", "publishedAt")
	require.Error(t, err)
	assert.Equal(t, "publishedAt must be a valid date", err.Error())
}

func TestOptionalBool(t *testing.T) {
	got, err := OptionalBool(nil, "enrolled")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = OptionalBool(true, "enrolled")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, *got)

	got, err = OptionalBool("FALSE", "enrolled")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, *got)

	_, err = OptionalBool("yes", "enrolled")
	require.Error(t, err)
	assert.Equal(t, "enrolled must be true or false", err.Error())
}

func TestTags(t *testing.T) {
	assert.Equal(t, []string{"go", "web"}, Tags([]any{"go", " web "}))
	assert.Equal(t, []string{"a", "b"}, Tags("a, b,"))
	assert.Equal(t, []string{"solo"}, Tags([]string{"solo", "  "}))
	assert.Nil(t, Tags(nil))
	assert.Nil(t, Tags(42))
	assert.Nil(t, Tags(""))
}

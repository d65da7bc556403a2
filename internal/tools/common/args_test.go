package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredString(t *testing.T) {
	args := map[string]interface{}{
		"title": "A Post",
		"count": float64(3),
		"empty": "",
	}

	value, err := RequiredString(args, "title")
	require.NoError(t, err)
	assert.Equal(t, "A Post", value)

	_, err = RequiredString(args, "missing")
	require.Error(t, err)

	_, err = RequiredString(args, "empty")
	require.Error(t, err)

	_, err = RequiredString(args, "count")
	require.Error(t, err)
}

func TestOptionalString(t *testing.T) {
	args := map[string]interface{}{"query": "kubernetes"}

	assert.Equal(t, "kubernetes", OptionalString(args, "query"))
	assert.Empty(t, OptionalString(args, "missing"))
	assert.Empty(t, OptionalString(map[string]interface{}{"query": 7}, "query"))
}

func TestOptionalInt(t *testing.T) {
	args := map[string]interface{}{
		"limit": float64(25),
		"exact": 10,
		"text":  "nope",
	}

	assert.Equal(t, 25, OptionalInt(args, "limit", 20))
	assert.Equal(t, 10, OptionalInt(args, "exact", 20))
	assert.Equal(t, 20, OptionalInt(args, "missing", 20))
	assert.Equal(t, 20, OptionalInt(args, "text", 20))
}

func TestRequiredInt(t *testing.T) {
	value, err := RequiredInt(map[string]interface{}{"score": float64(7)}, "score")
	require.NoError(t, err)
	assert.Equal(t, 7, value)

	_, err = RequiredInt(map[string]interface{}{}, "score")
	require.Error(t, err)
}

func TestValidateMaxLength(t *testing.T) {
	assert.NoError(t, ValidateMaxLength("title", "short", 10))
	assert.Error(t, ValidateMaxLength("title", "this is too long", 10))
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("url", "https://example.com/post"))
	assert.NoError(t, ValidateURL("url", "http://example.com"))
	assert.Error(t, ValidateURL("url", "not-a-url"))
	assert.Error(t, ValidateURL("url", "/relative/path"))
	assert.Error(t, ValidateURL("url", "mailto:"))
}

func TestValidateIntRange(t *testing.T) {
	assert.NoError(t, ValidateIntRange("score", 1, 1, 10))
	assert.NoError(t, ValidateIntRange("score", 10, 1, 10))
	assert.Error(t, ValidateIntRange("score", 0, 1, 10))
	assert.Error(t, ValidateIntRange("score", 11, 1, 10))
}

package tools

import (
	"testing"

	"github.com/secopslabs/soar-mcp-go/internal/soar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireString(t *testing.T) {
	args := map[string]interface{}{
		"id":     "523",
		"num":    float64(523),
		"blank":  "  ",
		"object": map[string]interface{}{},
	}

	v, err := RequireString(args, "id")
	require.NoError(t, err)
	assert.Equal(t, "523", v)

	v, err = RequireString(args, "num")
	require.NoError(t, err)
	assert.Equal(t, "523", v)

	_, err = RequireString(args, "blank")
	assert.EqualError(t, err, "blank parameter is required")

	_, err = RequireString(args, "missing")
	assert.EqualError(t, err, "missing parameter is required")

	_, err = RequireString(args, "object")
	assert.Error(t, err)
}

func TestGetBool(t *testing.T) {
	v, present, err := GetBool(map[string]interface{}{"b": true}, "b")
	require.NoError(t, err)
	assert.True(t, present)
	assert.True(t, v)

	v, present, err = GetBool(map[string]interface{}{"b": "false"}, "b")
	require.NoError(t, err)
	assert.True(t, present)
	assert.False(t, v)

	_, present, err = GetBool(map[string]interface{}{}, "b")
	require.NoError(t, err)
	assert.False(t, present)

	_, _, err = GetBool(map[string]interface{}{"b": "maybe"}, "b")
	assert.Error(t, err)
}

func TestGetStringSlice(t *testing.T) {
	v, err := GetStringSlice(map[string]interface{}{"l": []interface{}{"a", "b"}}, "l")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, v)

	v, err = GetStringSlice(map[string]interface{}{"l": "a, b,,c"}, "l")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, v)

	v, err = GetStringSlice(map[string]interface{}{}, "l")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = GetStringSlice(map[string]interface{}{"l": []interface{}{"a", 1.0}}, "l")
	assert.Error(t, err)
}

func TestRequireStringSlice(t *testing.T) {
	v, err := RequireStringSlice(map[string]interface{}{"l": []interface{}{}}, "l")
	require.NoError(t, err)
	assert.Equal(t, []string{}, v)

	v, err = RequireStringSlice(map[string]interface{}{"l": []interface{}{"g1"}}, "l")
	require.NoError(t, err)
	assert.Equal(t, []string{"g1"}, v)

	_, err = RequireStringSlice(map[string]interface{}{}, "l")
	assert.EqualError(t, err, "l parameter is required")

	_, err = RequireStringSlice(map[string]interface{}{"l": 3.0}, "l")
	assert.Error(t, err)
}

func TestGetTargetEntities(t *testing.T) {
	args := map[string]interface{}{
		"target_entities": []interface{}{
			map[string]interface{}{"identifier": "10.0.0.1", "entity_type": "ADDRESS"},
		},
	}
	v, err := GetTargetEntities(args, "target_entities")
	require.NoError(t, err)
	assert.Equal(t, []soar.TargetEntity{{Identifier: "10.0.0.1", EntityType: "ADDRESS"}}, v)

	v, err = GetTargetEntities(map[string]interface{}{}, "target_entities")
	require.NoError(t, err)
	assert.Empty(t, v)

	_, err = GetTargetEntities(map[string]interface{}{"target_entities": "10.0.0.1"}, "target_entities")
	assert.Error(t, err)
}

func TestGetInt(t *testing.T) {
	n, err := GetInt(map[string]interface{}{"n": float64(20)}, "n", 5)
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	n, err = GetInt(map[string]interface{}{}, "n", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = GetInt(map[string]interface{}{"n": "x"}, "n", 5)
	assert.Error(t, err)
}

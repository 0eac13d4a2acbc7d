//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPA_ZeroValueIsUndefined(t *testing.T) {
	var g GPA
	assert.False(t, g.IsDefined())
	assert.Equal(t, UndefinedGPA, g)

	_, ok := g.Float64()
	assert.False(t, ok)
}

func TestGPA_String(t *testing.T) {
	assert.Equal(t, "4.20", GPAFromHundredths(420).String())
	assert.Equal(t, "0.00", GPAFromHundredths(0).String())
	assert.Equal(t, "5.00", GPAFromHundredths(500).String())
	assert.Equal(t, "3.07", GPAFromHundredths(307).String())
	assert.Equal(t, "undefined", UndefinedGPA.String())
}

func TestGPA_JSON(t *testing.T) {
	type wrapper struct {
		GPA GPA `json:"gpa"`
	}

	data, err := json.Marshal(wrapper{GPA: GPAFromHundredths(420)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"gpa": 4.20}`, string(data))
	assert.Contains(t, string(data), "4.20")

	data, err = json.Marshal(wrapper{GPA: UndefinedGPA})
	require.NoError(t, err)
	assert.JSONEq(t, `{"gpa": null}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"gpa": 3.5}`), &w))
	assert.Equal(t, 350, w.GPA.Hundredths())
	assert.True(t, w.GPA.IsDefined())

	require.NoError(t, json.Unmarshal([]byte(`{"gpa": null}`), &w))
	assert.False(t, w.GPA.IsDefined())

	assert.Error(t, json.Unmarshal([]byte(`{"gpa": "high"}`), &w))
}

func TestGPA_ZeroIsNotUndefined(t *testing.T) {
	assert.NotEqual(t, UndefinedGPA, GPAFromHundredths(0))
	v, ok := GPAFromHundredths(0).Float64()
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestGPA_UnmarshalRejectsOutOfScale(t *testing.T) {
	var g GPA
	for _, raw := range []string{"-0.05", "-1", "5.01", "12"} {
		err := json.Unmarshal([]byte(raw), &g)
		require.Error(t, err, raw)
		assert.Contains(t, err.Error(), "between 0.00 and 5.00")
	}

	require.NoError(t, json.Unmarshal([]byte("5"), &g))
	assert.Equal(t, "5.00", g.String())
	require.NoError(t, json.Unmarshal([]byte("0"), &g))
	assert.Equal(t, "0.00", g.String())
}

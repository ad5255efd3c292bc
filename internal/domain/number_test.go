package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberAcceptsNumbersAndNumericStrings(t *testing.T) {
	cases := []struct {
		in   string
		want Number
	}{
		{`150`, 150},
		{`2.5`, 2.5},
		{`"150"`, 150},
		{`"2.5"`, 2.5},
		{`null`, 0},
	}
	for _, tc := range cases {
		var n Number
		require.NoError(t, json.Unmarshal([]byte(tc.in), &n), "input %s", tc.in)
		assert.Equal(t, tc.want, n, "input %s", tc.in)
	}
}

func TestNumberRejectsNonNumericStrings(t *testing.T) {
	var n Number
	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &n))
}

func TestNumberMarshalsAsPlainNumber(t *testing.T) {
	out, err := json.Marshal(struct {
		Calories Number `json:"calories"`
	}{Calories: 412})
	require.NoError(t, err)
	assert.JSONEq(t, `{"calories":412}`, string(out))
}

func TestNumberInsideNutrition(t *testing.T) {
	var n Nutrition
	require.NoError(t, json.Unmarshal([]byte(`{"calories":"2800","protein":180,"carbs":300.5,"fat":"90"}`), &n))
	assert.Equal(t, Number(2800), n.Calories)
	assert.Equal(t, Number(180), n.Protein)
	assert.Equal(t, Number(300.5), n.Carbs)
	assert.Equal(t, Number(90), n.Fat)
}

package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumeric_Filled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    Numeric
		want bool
	}{
		{"absent", Numeric{}, false},
		{"number", NumberValue(12), true},
		{"number zero", NumberValue(0), false},
		{"text", TextValue("$1,200"), true},
		{"text zero", TextValue("0"), true},
		{"blank text", TextValue("   "), false},
		{"empty text", TextValue(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.n.Filled())
		})
	}
}

func TestNumeric_Raw(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Numeric{}.Raw())
	assert.Equal(t, "75000000", NumberValue(75_000_000).Raw())
	assert.Equal(t, "2.5", NumberValue(2.5).Raw())
	assert.Equal(t, "$75,000,000", TextValue("$75,000,000").Raw())
}

func TestNumeric_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantZero bool
		wantNum  float64
		isNum    bool
		wantText string
		isText   bool
	}{
		{name: "null", input: `null`, wantZero: true},
		{name: "number", input: `1200000`, wantNum: 1200000, isNum: true},
		{name: "string", input: `"$1,200,000"`, wantText: "$1,200,000", isText: true},
		{name: "bool", input: `true`, wantZero: true},
		{name: "object", input: `{"a":1}`, wantZero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var n Numeric
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.wantZero, n.IsZero())
			num, isNum := n.Number()
			assert.Equal(t, tt.isNum, isNum)
			if isNum {
				assert.InDelta(t, tt.wantNum, num, 0.0001)
			}
			text, isText := n.Text()
			assert.Equal(t, tt.isText, isText)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestNumeric_MarshalKeepsKind(t *testing.T) {
	t.Parallel()

	type wrapper struct {
		A Numeric `json:"a,omitzero"`
		B Numeric `json:"b,omitzero"`
		C Numeric `json:"c,omitzero"`
	}
	out, err := json.Marshal(wrapper{A: NumberValue(5), B: TextValue("5")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":5,"b":"5"}`, string(out))
}

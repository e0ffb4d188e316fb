package selx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want []Option
	}{
		{
			name: "atomic string",
			raw:  "Paris",
			want: []Option{{Label: "Paris", Value: "Paris"}},
		},
		{
			name: "atomic int",
			raw:  42,
			want: []Option{{Label: "42", Value: 42}},
		},
		{
			name: "sequence of atomics",
			raw:  []any{"Paris", "Berlin"},
			want: []Option{
				{Label: "Paris", Value: "Paris"},
				{Label: "Berlin", Value: "Berlin"},
			},
		},
		{
			name: "typed string slice",
			raw:  []string{"Red", "Green"},
			want: []Option{
				{Label: "Red", Value: "Red"},
				{Label: "Green", Value: "Green"},
			},
		},
		{
			name: "pairs",
			raw: []any{
				[]any{"Paris", []float64{48.85, 2.35}},
				[]any{"Berlin", []float64{52.52, 13.40}},
			},
			want: []Option{
				{Label: "Paris", Value: []float64{48.85, 2.35}},
				{Label: "Berlin", Value: []float64{52.52, 13.40}},
			},
		},
		{
			name: "labeled map with value",
			raw:  []any{map[string]any{"label": "Paris", "value": 1}},
			want: []Option{{Label: "Paris", Value: 1}},
		},
		{
			name: "labeled map without value defaults to label",
			raw:  []any{map[string]any{"label": "Paris"}},
			want: []Option{{Label: "Paris", Value: "Paris"}},
		},
		{
			name: "ordered entries preserve input order",
			raw:  []Entry{{Key: "Red", Value: 1}, {Key: "Yellow", Value: 2}},
			want: []Option{
				{Label: "Red", Value: 1},
				{Label: "Yellow", Value: 2},
			},
		},
		{
			name: "bare map sorted by key",
			raw:  map[string]any{"Yellow": 2, "Red": 1},
			want: []Option{
				{Label: "Red", Value: 1},
				{Label: "Yellow", Value: 2},
			},
		},
		{
			name: "option passthrough",
			raw:  []Option{{Label: "Rome", Value: 7}},
			want: []Option{{Label: "Rome", Value: 7}},
		},
		{
			name: "numeric pair label is stringified",
			raw:  []any{[]any{7, "seven"}},
			want: []Option{{Label: "7", Value: "seven"}},
		},
		{
			name: "nil raw",
			raw:  nil,
			want: nil,
		},
		{
			name: "duplicates by value are preserved",
			raw:  []any{"a", "a"},
			want: []Option{
				{Label: "a", Value: "a"},
				{Label: "a", Value: "a"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRejectsMalformedBatch(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{"pair with one element", []any{[]any{"Paris"}}},
		{"pair with three elements", []any{[]any{"a", "b", "c"}}},
		{"map element without label key", []any{map[string]any{"name": "x"}}},
		{"nil element", []any{"ok", nil}},
		{"unsupported element type", []any{struct{ X int }{1}}},
		{"empty option label", []Option{{Label: "", Value: 1}}},
		{"empty entry key", []Entry{{Key: "", Value: 1}}},
		{"unprintable pair label", []any{[]any{map[string]any{}, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw)
			require.Error(t, err)
			assert.Nil(t, got, "a malformed entry must reject the entire batch")
			var shapeErr *InvalidOptionShapeError
			assert.ErrorAs(t, err, &shapeErr)
		})
	}
}

func TestNormalizeAllOrNothingReportsIndex(t *testing.T) {
	_, err := Normalize([]any{"good", "also good", []any{"half a pair"}})
	var shapeErr *InvalidOptionShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 2, shapeErr.Index)
}

func TestSerializedValue(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want string
	}{
		{"string passes through", Option{Label: "x", Value: "plain"}, "plain"},
		{"int is JSON", Option{Label: "x", Value: 7}, "7"},
		{"coordinates are JSON", Option{Label: "Paris", Value: []float64{48.85, 2.35}}, "[48.85,2.35]"},
		{"map is JSON", Option{Label: "x", Value: map[string]any{"a": 1}}, `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.opt.SerializedValue()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSerializedValueFailure(t *testing.T) {
	_, err := Option{Label: "bad", Value: make(chan int)}.SerializedValue()
	require.Error(t, err)
}

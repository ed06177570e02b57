package analytics

import (
	"encoding/json"
	"math"
	"testing"
)

func TestToNum_NullishInputs(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"empty string", ""},
		{"whitespace", "   "},
		{"garbage string", "not-a-number"},
		{"struct", struct{}{}},
		{"slice", []int{1, 2}},
		{"map", map[string]int{"a": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToNum(tt.input); got != 0 {
				t.Errorf("ToNum(%v) = %v, want 0", tt.input, got)
			}
		})
	}
}

func TestToNum_NumericInputs(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"float64", 12.5, 12.5},
		{"int", 42, 42},
		{"int64", int64(9000000000), 9000000000},
		{"numeric string", "123.45", 123.45},
		{"numeric string with spaces", " 7 ", 7},
		{"negative string", "-3.5", -3.5},
		{"scientific notation", "1e3", 1000},
		{"json.Number", json.Number("88"), 88},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToNum(tt.input); got != tt.want {
				t.Errorf("ToNum(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestToNum_NonFiniteNeverEscapes(t *testing.T) {
	inputs := []any{math.NaN(), math.Inf(1), math.Inf(-1), "NaN", "Inf", "-Inf"}
	for _, in := range inputs {
		got := ToNum(in)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("ToNum(%v) leaked a non-finite value: %v", in, got)
		}
		if got != 0 {
			t.Errorf("ToNum(%v) = %v, want 0", in, got)
		}
	}
}

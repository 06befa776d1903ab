package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{30, "30"},
		{0.2, "0.2"},
		{-5, "-5"},
		{1.0 / 3, "0.3333333333333333"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{123456789012, "123456789012"},
		{math.Inf(1), "Infinity"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatNumber(tt.in))
	}
}

func TestFixed(t *testing.T) {
	assert.Equal(t, "3.1416", fixed4(math.Pi))
	assert.Equal(t, "0.0000", fixed4(math.Copysign(0, -1)))
	assert.Equal(t, "2.50", fixed2(2.5))
}

func TestOrdinal(t *testing.T) {
	tests := map[int64]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 102: "102nd"}
	for n, want := range tests {
		assert.Equal(t, want, ordinal(n))
	}
}

func TestFallbackSpeech(t *testing.T) {
	assert.Equal(t,
		`I couldn't find results for "cats". I currently support math calculations and limited on-device search. Try a math problem like 50 * 50, or search for users.`,
		FallbackSpeech("cats"))
}

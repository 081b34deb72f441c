package footprint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name        string
		value       float64
		maxFraction int
		want        string
	}{
		{name: "two fraction digits minimum", value: 20, maxFraction: 4, want: "20,00"},
		{name: "thousands separator", value: 1234.5, maxFraction: 2, want: "1.234,50"},
		{name: "max fraction digits", value: 0.1234567, maxFraction: 4, want: "0,1235"},
		{name: "six fraction digits", value: 0.123456, maxFraction: 6, want: "0,123456"},
		{name: "nan renders as zero", value: math.NaN(), maxFraction: 2, want: "0,00"},
		{name: "inf renders as zero", value: math.Inf(1), maxFraction: 2, want: "0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.value, tt.maxFraction))
		})
	}
}

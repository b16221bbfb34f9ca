package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"whole dollars", 3, 300},
		{"with cents", 4.5, 450},
		{"rounds up", 0.125, 13},
		{"float artifacts", 19.99, 1999},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToMinorUnits(tt.amount))
		})
	}
}

func TestToMajorUnits(t *testing.T) {
	assert.Equal(t, 4.5, ToMajorUnits(450))
	assert.Equal(t, 0.01, ToMajorUnits(1))
	assert.Equal(t, float64(0), ToMajorUnits(0))
}

func TestRoundTrip(t *testing.T) {
	for _, amount := range []float64{3, 4.5, 19.99, 0.01, 1234.56} {
		assert.Equal(t, amount, ToMajorUnits(ToMinorUnits(amount)))
	}
}

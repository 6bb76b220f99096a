package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name     string
		lat1     float64
		lon1     float64
		lat2     float64
		lon2     float64
		expected float64
	}{
		{name: "same point", lat1: 10.0, lon1: 106.0, lat2: 10.0, lon2: 106.0, expected: 0},
		{name: "one degree longitude at equator", lat1: 0, lon1: 0, lat2: 0, lon2: 1, expected: 111.2},
		{name: "one degree latitude", lat1: 0, lon1: 0, lat2: 1, lon2: 0, expected: 111.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2))
		})
	}
}

func TestCalculateDistanceSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{10.0, 106.0, 10.5, 106.5},
		{53.9, 27.56, 52.1, 23.75},
		{-33.87, 151.21, 40.71, -74.0},
	}

	for _, p := range pairs {
		forward := CalculateDistance(p[0], p[1], p[2], p[3])
		backward := CalculateDistance(p[2], p[3], p[0], p[1])
		assert.Equal(t, forward, backward)
	}
}

func TestCalculateDistanceRounding(t *testing.T) {
	// Result must always carry at most one decimal place
	d := CalculateDistance(10.0, 106.0, 10.5, 106.5)
	assert.Equal(t, float64(int(d*10))/10, d)
	assert.Greater(t, d, 5.0)
}

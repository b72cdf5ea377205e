package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForPoints(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		expected int
	}{
		{name: "Zero points is level 1", points: 0, expected: 1},
		{name: "Single point is level 1", points: 1, expected: 1},
		{name: "Exactly 100 points stays level 1", points: 100, expected: 1},
		{name: "101 points reaches level 2", points: 101, expected: 2},
		{name: "200 points is level 2", points: 200, expected: 2},
		{name: "250 points is level 3", points: 250, expected: 3},
		{name: "901 points is level 10", points: 901, expected: 10},
		{name: "Level is capped at 10", points: 25000, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ForPoints(tt.points))
		})
	}
}

func TestForPointsMonotonic(t *testing.T) {
	prev := ForPoints(0)
	for points := 1; points <= 1200; points++ {
		lvl := ForPoints(points)
		assert.GreaterOrEqual(t, lvl, prev)
		assert.GreaterOrEqual(t, lvl, Min)
		assert.LessOrEqual(t, lvl, Max)
		prev = lvl
	}
}

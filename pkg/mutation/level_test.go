package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	testCases := []struct {
		distance int
		want     Level
	}{
		{0, Identical},
		{1, Low},
		{5, Low},
		{6, Medium},
		{8, Medium},
		{9, High},
		{1000, High},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, Classify(tc.distance), "distance %d", tc.distance)
	}
}

func TestLevelLabels(t *testing.T) {
	assert.Equal(t, "Identical", Identical.String())
	assert.Equal(t, "Medium", Medium.String())
	assert.Equal(t, "High", High.String())
	assert.Equal(t, "Unknown", Level(42).String())

	assert.Equal(t, "Identical", Identical.Description())
	assert.Equal(t, "Different (Medium Mutation)", Medium.Description())
	assert.Equal(t, "Highly Different (High Mutation)", High.Description())
}

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoints(t *testing.T) {
	assert.Equal(t, "0", Points(0))
	assert.Equal(t, "2,000", Points(2000))
	assert.Equal(t, "1,234,567", Points(1234567))
}

func TestMultiplier(t *testing.T) {
	assert.Equal(t, "x1.00", Multiplier(1))
	assert.Equal(t, "x1.15", Multiplier(1.15))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[#####-----]", ProgressBar(5, 10, 10))
	assert.Equal(t, "[##########]", ProgressBar(99, 10, 10))
	assert.Equal(t, "[---]", ProgressBar(-1, 0, 1))
}

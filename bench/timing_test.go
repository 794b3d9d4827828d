package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTiming(t *testing.T) {
	var tm Timing
	assert.Equal(t, time.Duration(0), tm.Mean())
	assert.Equal(t, time.Duration(0), tm.StdDev())

	for _, d := range []time.Duration{2, 4, 4, 4, 5, 5, 7, 9} {
		tm.Add(d * time.Millisecond)
	}
	assert.Equal(t, 8, tm.Len())
	assert.Equal(t, 5*time.Millisecond, tm.Mean())
	assert.Equal(t, 2*time.Millisecond, tm.StdDev())
	assert.Equal(t, 2*time.Millisecond, tm.Min())
	assert.Equal(t, 9*time.Millisecond, tm.Max())
}

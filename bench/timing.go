package bench

import (
	"math"
	"time"
)

// Timing accumulates the duration of repeated runs of one phase.
type Timing struct {
	samples []time.Duration
}

// Add records one sample.
func (t *Timing) Add(d time.Duration) {
	t.samples = append(t.samples, d)
}

// Len returns the number of samples.
func (t *Timing) Len() int { return len(t.samples) }

// Mean returns the arithmetic mean of the samples.
func (t *Timing) Mean() time.Duration {
	if len(t.samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range t.samples {
		sum += float64(s)
	}
	return time.Duration(sum / float64(len(t.samples)))
}

// StdDev returns the population standard deviation of the samples.
func (t *Timing) StdDev() time.Duration {
	if len(t.samples) == 0 {
		return 0
	}
	mu := float64(t.Mean())
	var acc float64
	for _, s := range t.samples {
		acc += math.Pow(float64(s)-mu, 2)
	}
	return time.Duration(math.Sqrt(acc / float64(len(t.samples))))
}

// Min returns the fastest sample.
func (t *Timing) Min() time.Duration {
	var fastest time.Duration
	for i, s := range t.samples {
		if i == 0 || s < fastest {
			fastest = s
		}
	}
	return fastest
}

// Max returns the slowest sample.
func (t *Timing) Max() time.Duration {
	var slowest time.Duration
	for _, s := range t.samples {
		if s > slowest {
			slowest = s
		}
	}
	return slowest
}

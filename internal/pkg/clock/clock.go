// Package clock abstracts wall time so search timings can be tested
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-skill-simulator/internal/pkg/clock Clock

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// New returns the system clock
func New() Clock {
	return systemClock{}
}

// Since is the time elapsed on c since start
func Since(c Clock, start time.Time) time.Duration {
	return c.Now().Sub(start)
}

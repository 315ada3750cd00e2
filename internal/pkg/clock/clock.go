// Package clock supplies the time source used to stamp new sessions
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/reliquary-api/internal/pkg/clock Clock

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC
type System struct{}

// Now returns the current UTC time
func (System) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock
func New() Clock {
	return System{}
}

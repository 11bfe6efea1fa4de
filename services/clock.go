package services

import "time"

// Clock abstracts time so the rate limiter and form banners can be driven
// by a fake clock in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock
var SystemClock Clock = systemClock{}

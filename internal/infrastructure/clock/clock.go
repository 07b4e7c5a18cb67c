package clock

import (
	"time"

	"fundtracker/internal/usecase/interfaces"
)

// System is the wall clock. Usecases take interfaces.IClock so tests can
// pin time, in particular around the progress reporting window.

type System struct{}

var _ interfaces.IClock = (*System)(nil)

func NewSystem() *System {
	return &System{}
}

func (System) Now() time.Time {
	return time.Now()
}

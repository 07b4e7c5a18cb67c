package interfaces

import "time"

// IClock is the injected time source, so time-gated rules (reporting
// window, suspension stamps) stay testable.

type IClock interface {
	Now() time.Time
}

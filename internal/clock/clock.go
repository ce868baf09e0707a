package clock

import (
	"time"

	"go.uber.org/fx"
)

// Clock supplies the shared UTC timestamp for a provisioning call. Every row
// written within one call carries the same instant read once from the clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func NewSystem() Clock {
	return systemClock{}
}

var Module = fx.Module("clock",
	fx.Provide(NewSystem),
)

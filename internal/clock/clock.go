package clock

import "time"

// Malaysia runs a single fixed offset with no daylight saving, so a fixed
// zone avoids a tzdata dependency on minimal kiosk images.
var Malaysia = time.FixedZone("MYT", 8*60*60)

// Clock supplies the current local time for session timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a Clock pinned to Malaysia time (UTC+8).
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().In(Malaysia)
}

package components

import "time"

// Cooldown gates an ability on the time since it was last used.
type Cooldown struct {
	LastUsed time.Duration
	Duration time.Duration
	Used     bool
}

// Ready is true when the ability was never used or now-LastUsed >= Duration.
func (c Cooldown) Ready(now time.Duration) bool {
	return !c.Used || now-c.LastUsed >= c.Duration
}

// Trigger starts the cooldown at now.
func (c *Cooldown) Trigger(now time.Duration) {
	c.LastUsed = now
	c.Used = true
}

// RemainingFraction is 1 right after use and 0 once ready.
func (c Cooldown) RemainingFraction(now time.Duration) float64 {
	if c.Ready(now) || c.Duration <= 0 {
		return 0
	}
	return 1 - float64(now-c.LastUsed)/float64(c.Duration)
}

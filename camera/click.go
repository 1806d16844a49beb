package camera

import (
	"time"
)

// ClickGuard tells a click from the release of a drag with movement.
// Clicks are suppressed for Duration after such a release.
type ClickGuard struct {
	Now      func() time.Time
	Duration time.Duration

	deadline time.Time
	moved    bool
}

const defaultClickGuardDuration = 100 * time.Millisecond

func (c *ClickGuard) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *ClickGuard) Move() {
	c.moved = true
}

func (c *ClickGuard) DragStart() {
	c.moved = false
}

func (c *ClickGuard) DragEnd() {
	d := c.Duration
	if d <= 0 {
		d = defaultClickGuardDuration
	}
	c.deadline = c.now().Add(d)
}

func (c *ClickGuard) Click() bool {
	return c.deadline.IsZero() || !c.moved || c.deadline.Before(c.now())
}

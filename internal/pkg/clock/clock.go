// Package clock stamps import and roll-session times. Everything it hands
// out is UTC so stored records compare equal across backends.
package clock

import "time"

// Clock reports the current instant
type Clock interface {
	Now() time.Time
}

// Real reads the system clock
type Real struct{}

// Now returns the current time in UTC
func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns the system clock
func New() Clock {
	return &Real{}
}

// Fixed reports At until it is moved with Advance. It is not safe for
// concurrent mutation.
type Fixed struct {
	At time.Time
}

// Now returns the fixed instant
func (c *Fixed) Now() time.Time {
	return c.At
}

// Advance moves the fixed instant forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.At = c.At.Add(d)
}

package clock

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ISODateLayout is the calendar day format used as the key of every dated entity
const ISODateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// Clock is the mutable "today" cursor of the simulation.
// Every mutation notifies all current subscribers once, after the new value is set.
type Clock struct {
	mu          sync.Mutex
	today       time.Time
	wallClock   func() time.Time
	subscribers map[int]func()
	nextSubID   int
}

func New(wallClock func() time.Time) *Clock {
	if wallClock == nil {
		wallClock = time.Now
	}
	return &Clock{
		today:       wallClock(),
		wallClock:   wallClock,
		subscribers: make(map[int]func()),
	}
}

// NewAt creates a clock already set to the given day (local time, midnight)
func NewAt(isoDate string) (*Clock, error) {
	c := New(nil)
	t, err := ParseISODate(isoDate)
	if err != nil {
		return nil, err
	}
	c.today = t
	return c, nil
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.today
}

func (c *Clock) NowISODate() string {
	return c.Now().Format(ISODateLayout)
}

func (c *Clock) SetDate(t time.Time) {
	c.mutate(func() {
		c.today = t
	})
}

func (c *Clock) SetFromISODate(s string) error {
	t, err := ParseISODate(s)
	if err != nil {
		return err
	}
	c.SetDate(t)
	return nil
}

// AdvanceDay moves today by exactly one calendar day, keeping the local time of day.
func (c *Clock) AdvanceDay() {
	c.mutate(func() {
		c.today = c.today.AddDate(0, 0, 1)
	})
}

// Reset sets today back to the real wall clock date.
func (c *Clock) Reset() {
	c.mutate(func() {
		c.today = c.wallClock()
	})
}

// Subscribe registers fn to be called after every mutation.
// The returned func removes the subscription; calling it more than once is a no-op.
func (c *Clock) Subscribe(fn func()) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

func (c *Clock) mutate(update func()) {
	c.mu.Lock()
	update()
	// map iteration order is random, subscribers must not rely on ordering
	subs := make([]func(), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	// called outside the lock so subscribers can read the clock
	for _, fn := range subs {
		fn()
	}
}

func ParseISODate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISODateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w [%s]: %w", ErrInvalidDate, s, err)
	}
	return t, nil
}

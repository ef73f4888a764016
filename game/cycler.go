package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
)

const (
	left  = -1
	right = 1
)

// Cycler yields seat indices 0..n-1 round-robin and can change direction.
type Cycler struct {
	n         int
	current   int
	direction int
	turn      int
}

// NewCycler starts on the last seat so that the first Next yields 0.
func NewCycler(n int) (*Cycler, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w cycler size %d", consts.ErrorsInvalidPlayerCount, n)
	}
	return &Cycler{
		n:         n,
		current:   n - 1,
		direction: right,
	}, nil
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Len() int {
	return c.n
}

// Turn counts the calls to Next so far.
func (c *Cycler) Turn() int {
	return c.turn
}

func (c *Cycler) Reversed() bool {
	return c.direction == left
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	c.turn++
	return c.current
}

// Peek returns the index Next would yield without moving.
func (c *Cycler) Peek() int {
	next := (c.current + c.direction) % c.n
	if next < 0 {
		next += c.n
	}
	return next
}

// Reverse flips the direction. Before the first turn the position moves to
// seat 0 so that the next turn goes to the last seat, as if the game had
// started in the other direction.
func (c *Cycler) Reverse() {
	if c.turn == 0 {
		c.current = 0
		if c.direction == left {
			c.current = c.n - 1
		}
	}
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

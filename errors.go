package orrery

import "fmt"

// CollisionError carries the first pair of bodies (by index, i<j)
// found to be overlapping during a force evaluation or the stage-0
// check of RK4. It is never surfaced past the driver: the driver
// resolves it via the collision resolver and retries the step.
type CollisionError struct {
	I, J int
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("bodies %d and %d collided", e.I, e.J)
}

// ErrTooFewBodies is returned (never panicked on) by Start when fewer
// than two bodies are present, and by a step whose collision merge
// leaves fewer than two bodies.
var ErrTooFewBodies = fmt.Errorf("at least two bodies are required")

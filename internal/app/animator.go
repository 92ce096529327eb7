// internal/app/animator.go
package app

import (
	"time"

	"go-astar-grid/pkg/spline"
)

// Animator reveals a smoothed path one point per delay. It is driven by the
// frame loop and owns no timer of its own.
type Animator struct {
	seq     *spline.Sequence
	delay   float64 // секунды
	elapsed float64
}

// NewAnimator creates an idle animator. A zero delay reveals everything at once.
func NewAnimator(delay time.Duration) *Animator {
	return &Animator{
		seq:   spline.NewSequence(nil),
		delay: delay.Seconds(),
	}
}

// Start replays points from the beginning.
func (a *Animator) Start(points []spline.Point) {
	a.seq = spline.NewSequence(points)
	a.elapsed = 0
	if a.delay <= 0 {
		a.seq.Finish()
	}
}

// Replay rewinds the current points.
func (a *Animator) Replay() {
	a.seq.Rewind()
	a.elapsed = 0
	if a.delay <= 0 {
		a.seq.Finish()
	}
}

// Update advances the animation by deltaTime seconds.
func (a *Animator) Update(deltaTime float64) {
	if a.seq.Done() {
		return
	}
	a.elapsed += deltaTime
	for a.elapsed >= a.delay && !a.seq.Done() {
		a.seq.Next()
		a.elapsed -= a.delay
	}
}

// Visible returns the points revealed so far.
func (a *Animator) Visible() []spline.Point { return a.seq.Visible() }

// Animating is true while points remain hidden.
func (a *Animator) Animating() bool { return !a.seq.Done() }

// Stop hides everything.
func (a *Animator) Stop() { a.Start(nil) }

package service

import "time"

// Animator drives a timed animation curve. It stands in for the UI
// framework's animation primitive, which cannot fail under normal
// operation.
type Animator interface {
	// Animate invokes frame with linear progress in [0,1] until duration
	// elapses, then calls done(true). The returned cancel function stops
	// the run: a canceled run delivers no further frames and calls
	// done(false). Callbacks for one run are never invoked concurrently.
	Animate(duration time.Duration, frame func(progress float64), done func(completed bool)) (cancel func())
}

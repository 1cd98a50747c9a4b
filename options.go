package notify

import "time"

// Option configures a Toasts collection.
type Option func(*Toasts)

// WithAnchor sets where toasts appear.
func WithAnchor(anchor Anchor) Option {
	return func(ts *Toasts) { ts.anchor = anchor }
}

// WithReverse makes new toasts go to the head of the stack instead of the tail.
func WithReverse(reverse bool) Option {
	return func(ts *Toasts) { ts.reverse = reverse }
}

// WithSpacing sets the gap between adjacent toasts. A negative spacing makes
// toasts overlap like a fanned deck.
func WithSpacing(spacing float32) Option {
	return func(ts *Toasts) { ts.spacing = spacing }
}

// WithMargin sets the distance from the screen edges to the stack.
func WithMargin(margin Vec2) Option {
	return func(ts *Toasts) { ts.margin = margin }
}

// WithPadding sets the distance from a toast's edges to its contents.
func WithPadding(padding Vec2) Option {
	return func(ts *Toasts) {
		ts.padding = Vec2{X: maxf(padding.X, 0), Y: maxf(padding.Y, 0)}
	}
}

// WithSpeed sets the animation speed in units of full slides per second.
// Non-positive speeds are ignored.
func WithSpeed(speed float32) Option {
	return func(ts *Toasts) {
		if speed > 0 {
			ts.speed = speed
		}
	}
}

// WithShadow draws a drop-shadow behind every toast.
func WithShadow(s Shadow) Option {
	return func(ts *Toasts) { ts.shadow = &s }
}

// WithoutShadow removes the drop-shadow.
func WithoutShadow() Option {
	return func(ts *Toasts) { ts.shadow = nil }
}

// WithFont sets the default caption font.
func WithFont(font FontSpec) Option {
	return func(ts *Toasts) { ts.font = font }
}

// WithDefaultDuration sets the duration given to new toasts. Zero or
// negative means new toasts never expire.
func WithDefaultDuration(d time.Duration) Option {
	return func(ts *Toasts) {
		if d < 0 {
			notifyLogger.Warn("negative default toast duration, toasts will not expire", "duration", d)
			d = 0
		}
		ts.duration = d
	}
}

// WithPauseOnHover stops the countdown of a toast while the pointer is over it.
func WithPauseOnHover(pause bool) Option {
	return func(ts *Toasts) { ts.pauseOnHover = pause }
}

// WithMaxWidth wraps captions wider than maxWidth. Zero disables wrapping.
func WithMaxWidth(maxWidth float32) Option {
	return func(ts *Toasts) { ts.maxWidth = maxf(maxWidth, 0) }
}

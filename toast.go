package notify

import (
	"time"

	"github.com/google/uuid"
)

// DefaultDuration is how long a toast idles before it expires, unless the
// collection or the toast says otherwise.
const DefaultDuration = 3500 * time.Millisecond

// Initial box size, used for the very first slide-in offset before the
// first measurement replaces it.
const (
	initialToastWidth  float32 = 180
	initialToastHeight float32 = 34
)

// State is the animation state of a toast.
type State uint8

const (
	StateAppear      State = iota // Sliding in
	StateIdle                     // Settled, counting down
	StateDisappear                // Sliding out
	StateDisappeared              // Terminal; removed on the next retain pass
)

// Appearing returns true if the toast is appearing.
func (s State) Appearing() bool { return s == StateAppear }

// Idling returns true if the toast is idling.
func (s State) Idling() bool { return s == StateIdle }

// Disappearing returns true if the toast is disappearing.
func (s State) Disappearing() bool { return s == StateDisappear }

// Disappeared returns true if the toast has disappeared.
func (s State) Disappeared() bool { return s == StateDisappeared }

func (s State) String() string {
	switch s {
	case StateAppear:
		return "appear"
	case StateIdle:
		return "idle"
	case StateDisappear:
		return "disappear"
	case StateDisappeared:
		return "disappeared"
	default:
		return "unknown"
	}
}

// Toast is a single notification.
//
// Toasts are created through a Toasts collection, which owns them. The
// *Toast returned by Toasts.Add and friends is meant for chaining setters
// right away; do not keep it across frames.
type Toast struct {
	id      uuid.UUID
	caption string
	level   Level
	font    *FontSpec

	// Seconds. Only meaningful when expires is true.
	initial   float32
	remaining float32
	expires   bool

	closable        bool
	showProgressBar bool

	// Last measured box, and the caller's floor for it.
	width, height       float32
	minWidth, minHeight float32

	state State
	value float32 // 0 = off-screen, 1 = settled
}

func newToast(caption string, level Level) *Toast {
	t := &Toast{
		id:              uuid.New(),
		caption:         caption,
		level:           level,
		closable:        true,
		showProgressBar: true,
		width:           initialToastWidth,
		height:          initialToastHeight,
		state:           StateAppear,
	}
	t.SetDuration(DefaultDuration)
	return t
}

// NewBasic creates a closable toast without an icon.
func NewBasic(caption string) *Toast { return newToast(caption, None) }

// NewInfo creates a closable info toast.
func NewInfo(caption string) *Toast { return newToast(caption, Info) }

// NewWarning creates a closable warning toast.
func NewWarning(caption string) *Toast { return newToast(caption, Warning) }

// NewSuccess creates a closable success toast.
func NewSuccess(caption string) *Toast { return newToast(caption, Success) }

// NewError creates an error toast. Error toasts are not closable by default.
func NewError(caption string) *Toast {
	return newToast(caption, Error).SetClosable(false)
}

// NewCustom creates a closable toast drawn with a caller-supplied glyph and color.
func NewCustom(caption, glyph string, color uint32) *Toast {
	return newToast(caption, Custom(glyph, color))
}

// ID returns the toast's identity, stable for its whole lifetime.
func (t *Toast) ID() uuid.UUID { return t.id }

// Caption returns the toast text.
func (t *Toast) Caption() string { return t.caption }

// Level returns the toast level.
func (t *Toast) Level() Level { return t.level }

// State returns the current animation state.
func (t *Toast) State() State { return t.state }

// Value returns the animation progress, 0 hidden to 1 settled.
func (t *Toast) Value() float32 { return t.value }

// Size returns the last measured box.
func (t *Toast) Size() Vec2 { return Vec2{X: t.width, Y: t.height} }

// Closable reports whether the dismiss cross is drawn and interactive.
func (t *Toast) Closable() bool { return t.closable }

// SetCaption replaces the toast text.
func (t *Toast) SetCaption(caption string) *Toast {
	t.caption = caption
	return t
}

// SetLevel changes the level of the toast.
func (t *Toast) SetLevel(level Level) *Toast {
	t.level = level
	return t
}

// SetFont overrides the caption font. It takes precedence over the
// collection's font.
func (t *Toast) SetFont(font FontSpec) *Toast {
	t.font = &font
	return t
}

// SetClosable sets whether the user can close the toast.
func (t *Toast) SetClosable(closable bool) *Toast {
	t.closable = closable
	return t
}

// SetShowProgressBar sets whether the remaining time is drawn under the toast.
func (t *Toast) SetShowProgressBar(show bool) *Toast {
	t.showProgressBar = show
	return t
}

// SetDuration sets how long the toast idles before it expires and restarts
// the countdown. Zero or negative durations mean the toast never expires;
// negative values are logged since they are almost certainly a bug.
func (t *Toast) SetDuration(d time.Duration) *Toast {
	if d < 0 {
		notifyLogger.Warn("negative toast duration, toast will not expire",
			"duration", d, "caption", t.caption)
	}
	if d <= 0 {
		t.expires = false
		t.initial, t.remaining = 0, 0
		return t
	}
	secs := float32(d.Seconds())
	t.expires = true
	t.initial, t.remaining = secs, secs
	return t
}

// SetNoExpiry makes the toast stay until it is dismissed.
func (t *Toast) SetNoExpiry() *Toast {
	return t.SetDuration(0)
}

// SetWidth sets a minimum width for the toast box.
func (t *Toast) SetWidth(width float32) *Toast {
	t.minWidth = maxf(width, 0)
	t.width = maxf(t.width, t.minWidth)
	return t
}

// SetHeight sets a minimum height for the toast box.
func (t *Toast) SetHeight(height float32) *Toast {
	t.minHeight = maxf(height, 0)
	t.height = maxf(t.height, t.minHeight)
	return t
}

// Remaining returns the time left before expiry. ok is false for toasts that
// never expire.
func (t *Toast) Remaining() (d time.Duration, ok bool) {
	if !t.expires {
		return 0, false
	}
	return time.Duration(float64(maxf(t.remaining, 0)) * float64(time.Second)), true
}

// Progress returns the fraction of the duration still left, in [0, 1].
// Toasts that never expire report 1.
func (t *Toast) Progress() float32 {
	if !t.expires || t.initial <= 0 {
		return 1
	}
	return clampf(t.remaining/t.initial, 0, 1)
}

// Dismiss starts the disappear animation. The toast is removed once the
// animation completes. Dismissing a toast that is already leaving does nothing.
func (t *Toast) Dismiss() {
	if t.state == StateDisappear || t.state == StateDisappeared {
		return
	}
	t.state = StateDisappear
}

// countDown advances the expiry timer by dt seconds while idling and starts
// the disappear animation once it runs out. It reports whether the timer is
// still running.
func (t *Toast) countDown(dt float32) bool {
	if !t.expires || t.state != StateIdle {
		return false
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.remaining = 0
		t.state = StateDisappear
	}
	return true
}

// animate advances the slide animation by step and applies the state
// transitions. It reports whether the toast is still moving.
func (t *Toast) animate(step float32) bool {
	switch t.state {
	case StateAppear:
		t.value += step
		if t.value >= 1 {
			t.value = 1
			t.state = StateIdle
		}
		return true
	case StateDisappear:
		t.value -= step
		if t.value <= 0 {
			t.value = 0
			t.state = StateDisappeared
		}
		return true
	default:
		return false
	}
}

// CalcAnchoredRect returns the toast's box for the stack cursor pos. The box
// grows away from the anchored edges: leftward for right anchors, upward for
// bottom anchors, and centred on pos for middle anchors.
func (t *Toast) CalcAnchoredRect(pos Vec2, anchor Anchor) Rect {
	x := pos.X
	switch {
	case anchor.isMiddle():
		x -= t.width / 2
	case !anchor.isLeft():
		x -= t.width
	}
	y := pos.Y
	if !anchor.IsTop() {
		y -= t.height
	}
	return Rect{X: x, Y: y, W: t.width, H: t.height}
}

// AdjustNextPos moves the stack cursor past this toast.
func (t *Toast) AdjustNextPos(pos *Vec2, anchor Anchor, spacing float32) {
	if anchor.IsTop() {
		pos.Y += t.height + spacing
	} else {
		pos.Y -= t.height + spacing
	}
}

// EaseInCubic is the slide-in timing curve 1-(1-x)^3.
func EaseInCubic(x float32) float32 {
	inv := 1 - x
	return 1 - inv*inv*inv
}

// slideOffset is how far the toast is pushed off its settled position.
func (t *Toast) slideOffset() float32 {
	return t.width * (1 - EaseInCubic(t.value))
}

package notify

import (
	"time"

	"github.com/google/uuid"
)

// captionMargin is the horizontal gap between the caption and the icon or
// the dismiss cross.
const captionMargin float32 = 10

// Toasts is the notification collector. Create it once, add toasts whenever,
// and call Show once per frame.
//
// Toasts is not safe for concurrent use; it belongs to the render loop.
type Toasts struct {
	toasts []*Toast

	anchor       Anchor
	margin       Vec2
	spacing      float32
	padding      Vec2
	reverse      bool
	speed        float32
	shadow       *Shadow
	font         FontSpec
	duration     time.Duration
	pauseOnHover bool
	maxWidth     float32

	// Set when a press dismissed a toast; cleared once the button is up so
	// that one press closes at most one toast.
	held bool
}

// New creates an empty collection anchored to the top-right corner.
func New(opts ...Option) *Toasts {
	ts := &Toasts{
		anchor:   TopRight,
		margin:   Vec2{X: SpaceMD, Y: SpaceMD},
		spacing:  SpaceMD,
		padding:  Vec2{X: 10, Y: 10},
		speed:    4,
		font:     DefaultFont,
		duration: DefaultDuration,
	}
	ts.Configure(opts...)
	return ts
}

// Configure applies options. Call it between frames.
func (ts *Toasts) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(ts)
	}
}

// Anchor returns the corner the stack is attached to.
func (ts *Toasts) Anchor() Anchor { return ts.anchor }

// Len returns the number of toasts, including ones still animating out.
func (ts *Toasts) Len() int { return len(ts.toasts) }

// IsEmpty reports whether there is nothing to show.
func (ts *Toasts) IsEmpty() bool { return len(ts.toasts) == 0 }

// Held reports whether a press has already dismissed a toast and the button
// has not been released yet.
func (ts *Toasts) Held() bool { return ts.held }

// Add takes ownership of t and puts it on the stack: at the tail, or at the
// head when the collection is reversed. The returned pointer is for chaining
// setters immediately.
func (ts *Toasts) Add(t *Toast) *Toast {
	if t == nil {
		return nil
	}
	if ts.reverse {
		ts.toasts = append(ts.toasts, nil)
		copy(ts.toasts[1:], ts.toasts)
		ts.toasts[0] = t
	} else {
		ts.toasts = append(ts.toasts, t)
	}
	notifyLogger.Debug("toast added",
		"id", t.id,
		"level", t.level.Kind(),
		"count", len(ts.toasts))
	return t
}

func (ts *Toasts) add(t *Toast) *Toast {
	return ts.Add(t.SetDuration(ts.duration))
}

// Basic adds a toast without an icon.
func (ts *Toasts) Basic(caption string) *Toast { return ts.add(NewBasic(caption)) }

// Info adds an info toast.
func (ts *Toasts) Info(caption string) *Toast { return ts.add(NewInfo(caption)) }

// Warning adds a warning toast.
func (ts *Toasts) Warning(caption string) *Toast { return ts.add(NewWarning(caption)) }

// Success adds a success toast.
func (ts *Toasts) Success(caption string) *Toast { return ts.add(NewSuccess(caption)) }

// Error adds an error toast. It is not closable unless the caller says so.
func (ts *Toasts) Error(caption string) *Toast { return ts.add(NewError(caption)) }

// Custom adds a toast drawn with a caller-supplied glyph and color.
func (ts *Toasts) Custom(caption, glyph string, color uint32) *Toast {
	return ts.add(NewCustom(caption, glyph, color))
}

func leaving(t *Toast) bool {
	return t.state == StateDisappear || t.state == StateDisappeared
}

// DismissOldest dismisses the first toast in stack order that is not
// already leaving.
func (ts *Toasts) DismissOldest() {
	for _, t := range ts.toasts {
		if !leaving(t) {
			t.Dismiss()
			return
		}
	}
}

// DismissLatest dismisses the last toast in stack order that is not
// already leaving.
func (ts *Toasts) DismissLatest() {
	for i := len(ts.toasts) - 1; i >= 0; i-- {
		if t := ts.toasts[i]; !leaving(t) {
			t.Dismiss()
			return
		}
	}
}

// DismissAll dismisses every toast.
func (ts *Toasts) DismissAll() {
	for _, t := range ts.toasts {
		t.Dismiss()
	}
}

// Dismiss dismisses the toast with the given id. It returns false if no such
// toast is in the collection.
func (ts *Toasts) Dismiss(id uuid.UUID) bool {
	for _, t := range ts.toasts {
		if t.id == id {
			t.Dismiss()
			return true
		}
	}
	return false
}

// Clear drops every toast immediately, skipping the disappear animation.
func (ts *Toasts) Clear() {
	clear(ts.toasts)
	ts.toasts = ts.toasts[:0]
}

// toastLayout holds the measured pieces of one toast for one frame.
type toastLayout struct {
	caption   TextLayout
	icon      TextLayout
	iconColor uint32
	hasIcon   bool
	crossSize float32
}

func (l toastLayout) iconSpan() float32 {
	if !l.hasIcon || l.icon.Size.X <= 0 {
		return 0
	}
	return l.icon.Size.X + captionMargin
}

func (l toastLayout) crossSpan() float32 {
	if l.crossSize <= 0 {
		return 0
	}
	return captionMargin + l.crossSize
}

// measure shapes the caption and glyphs of t and resizes it to fit them.
func (ts *Toasts) measure(t *Toast, m TextMeasurer, theme Theme) toastLayout {
	font := ts.font
	if t.font != nil {
		font = *t.font
	}

	var l toastLayout
	l.caption = m.Measure(t.caption, font, ts.maxWidth)

	// Icon and cross scale with one caption row, not the whole block.
	var lineH float32
	if n := l.caption.LineCount(); n > 0 {
		lineH = l.caption.Size.Y / float32(n)
	}
	glyphFont := FontSpec{Family: font.Family, Size: lineH}

	if glyph, color, ok := t.level.Icon(theme); ok && lineH > 0 {
		l.icon = m.Measure(glyph, glyphFont, 0)
		l.iconColor = color
		l.hasIcon = true
	}
	if t.closable {
		l.crossSize = lineH
	}

	contentH := maxf(l.caption.Size.Y, maxf(l.icon.Size.Y, l.crossSize))
	t.width = maxf(ts.padding.X*2+l.iconSpan()+l.caption.Size.X+l.crossSpan(), t.minWidth)
	t.height = maxf(contentH+ts.padding.Y*2, t.minHeight)
	return l
}

// crossRect is the dismiss hit box inside the toast box r.
func (ts *Toasts) crossRect(r Rect, l toastLayout) Rect {
	return Rect{
		X: r.X + r.W - ts.padding.X - l.crossSize,
		Y: r.Y + (r.H-l.crossSize)/2,
		W: l.crossSize,
		H: l.crossSize,
	}
}

func drawCross(p Painter, r Rect, color uint32) {
	inner := r.Shrink(r.W * 0.2)
	thickness := maxf(1, r.W*0.12)
	p.Line(inner.Min(), inner.Max(), thickness, color)
	p.Line(Vec2{X: inner.X + inner.W, Y: inner.Y}, Vec2{X: inner.X, Y: inner.Y + inner.H}, thickness, color)
}

// Show runs one frame: advances timers and animations, lays out and draws
// every toast, handles dismiss clicks, drops toasts that finished leaving,
// and asks for a repaint while anything is still moving.
func (ts *Toasts) Show(f *Frame) {
	if f == nil {
		return
	}

	f.repaint = false
	pos := ts.anchor.ScreenCorner(f.ScreenSize, ts.margin)

	if f.primaryReleased() {
		ts.held = false
	}

	p := f.painter()
	m := f.measurer()
	theme := f.Theme
	dt := maxf(f.DeltaTime, 0)
	hover, hovering := f.hoverPos()
	press, pressed := f.pressOrigin()

	update := false
	for _, t := range ts.toasts {
		if t.state == StateDisappeared {
			continue
		}

		l := ts.measure(t, m, theme)

		// Only this toast slides; the cursor for the rest of the stack does not.
		offset := t.slideOffset() * ts.anchor.AnimSide()
		pos.X += offset
		rect := t.CalcAnchoredRect(pos, ts.anchor)
		pos.X -= offset

		paused := ts.pauseOnHover && hovering && rect.Contains(hover)
		if !paused && t.countDown(dt) {
			update = true
		}

		if ts.shadow != nil {
			p.Shadow(rect, theme.Rounding, *ts.shadow)
		}
		p.FillRect(rect, theme.Rounding, theme.Background)

		if l.hasIcon {
			p.Text(rect.Min().Add(Vec2{X: ts.padding.X, Y: (rect.H - l.icon.Size.Y) / 2}), l.icon, l.iconColor)
		}
		p.Text(rect.Min().Add(Vec2{X: ts.padding.X + l.iconSpan(), Y: (rect.H - l.caption.Size.Y) / 2}), l.caption, theme.Foreground)

		if t.closable && l.crossSize > 0 {
			cross := ts.crossRect(rect, l)
			drawCross(p, cross, theme.crossColor(hovering && cross.Contains(hover)))

			if pressed && !ts.held && !leaving(t) && cross.Contains(press) {
				t.Dismiss()
				ts.held = true
				notifyLogger.Debug("toast dismissed by click", "id", t.id)
			}
		}

		if t.expires && t.showProgressBar && !leaving(t) {
			y := rect.Y + rect.H
			p.Line(Vec2{X: rect.X, Y: y}, Vec2{X: rect.X + rect.W*t.Progress(), Y: y},
				theme.ProgressThickness, theme.progressColor())
		}

		t.AdjustNextPos(&pos, ts.anchor, ts.spacing)

		if t.animate(dt * ts.speed) {
			update = true
		}
	}

	ts.retain()

	// A press and its release can land in the same frame.
	if !f.primaryDown() {
		ts.held = false
	}

	if update {
		f.RequestRepaint()
	}
}

// retain drops disappeared toasts, keeping the order of the rest.
func (ts *Toasts) retain() {
	kept := ts.toasts[:0]
	for _, t := range ts.toasts {
		if t.state == StateDisappeared {
			notifyLogger.Debug("toast removed", "id", t.id)
			continue
		}
		kept = append(kept, t)
	}
	clear(ts.toasts[len(kept):])
	ts.toasts = kept
}

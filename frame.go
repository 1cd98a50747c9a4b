package notify

// Frame is the host handle passed to Toasts.Show once per frame.
// Input, ScreenSize, DeltaTime and Theme are read-only snapshots;
// Painter receives the overlay's draw calls. A Frame may be reused across
// frames; Show clears its repaint request before running.
type Frame struct {
	Input      *InputState
	ScreenSize Vec2    // Bottom-right corner of the screen rect
	DeltaTime  float32 // Seconds since the previous frame
	Theme      Theme

	Painter  Painter
	Measurer TextMeasurer

	// OnRepaint, if set, is called when the overlay needs another frame.
	OnRepaint func()

	repaint bool
}

// RequestRepaint asks the host to schedule another frame.
func (f *Frame) RequestRepaint() {
	if !f.repaint && f.OnRepaint != nil {
		f.OnRepaint()
	}
	f.repaint = true
}

// RepaintRequested reports whether anything asked for another frame.
func (f *Frame) RepaintRequested() bool {
	return f.repaint
}

func (f *Frame) hoverPos() (Vec2, bool) {
	return f.Input.HoverPos()
}

// pressOrigin returns where the primary button went down, only on the frame
// of the press.
func (f *Frame) pressOrigin() (Vec2, bool) {
	if f.Input == nil || !f.Input.MouseClicked(MouseButtonLeft) {
		return Vec2{}, false
	}
	return f.Input.PressOrigin(MouseButtonLeft)
}

func (f *Frame) primaryDown() bool {
	return f.Input != nil && f.Input.MouseDown(MouseButtonLeft)
}

func (f *Frame) primaryReleased() bool {
	return f.Input != nil && f.Input.MouseReleased(MouseButtonLeft)
}

// painter returns the frame's painter, or a no-op one.
func (f *Frame) painter() Painter {
	if f.Painter == nil {
		return nopPainter{}
	}
	return f.Painter
}

// measurer returns the frame's measurer, or the fixed-pitch fallback.
func (f *Frame) measurer() TextMeasurer {
	if f.Measurer == nil {
		return NewMonoMeasurer()
	}
	return f.Measurer
}

type nopPainter struct{}

func (nopPainter) FillRect(Rect, float32, uint32) {}
func (nopPainter) Line(Vec2, Vec2, float32, uint32) {}
func (nopPainter) Text(Vec2, TextLayout, uint32) {}
func (nopPainter) Shadow(Rect, float32, Shadow) {}

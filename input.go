package notify

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// InputState holds the pointer snapshot for the current frame.
// This is typically populated by the application from GLFW or similar.
type InputState struct {
	// Pointer position. Only meaningful while PointerInside is true.
	MouseX, MouseY float32
	PointerInside  bool

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Where each button went down; kept while it is held and through the
	// frame it is released on.
	pressOrigin    [MouseButtonCount]Vec2
	hasPressOrigin [MouseButtonCount]bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset clears per-frame input state.
// Call this once the frame has been consumed, after Toasts.Show and before
// the next batch of events. Overlay.End calls it for you.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
		s.mouseUp[i] = false
		if !s.mouseDown[i] {
			s.hasPressOrigin[i] = false
		}
	}
}

// SetMousePos sets the pointer position and marks the pointer as present.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
	s.PointerInside = true
}

// ClearMousePos marks the pointer as having left the window.
func (s *InputState) ClearMousePos() {
	s.PointerInside = false
}

// SetMouseButton sets mouse button state. A fresh press records the current
// pointer position as the press origin; the next Reset after the release
// forgets it.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
		s.pressOrigin[button] = Vec2{X: s.MouseX, Y: s.MouseY}
		s.hasPressOrigin[button] = s.PointerInside
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just clicked (pressed this frame).
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was just released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// HoverPos returns the pointer position if the pointer is over the window.
func (s *InputState) HoverPos() (Vec2, bool) {
	if s == nil || !s.PointerInside {
		return Vec2{}, false
	}
	return Vec2{X: s.MouseX, Y: s.MouseY}, true
}

// PressOrigin returns where the button went down. It is reported on every
// frame the button stays held and on the frame it is released.
func (s *InputState) PressOrigin(button MouseButton) (Vec2, bool) {
	if s == nil || button < 0 || button >= MouseButtonCount {
		return Vec2{}, false
	}
	return s.pressOrigin[button], s.hasPressOrigin[button]
}

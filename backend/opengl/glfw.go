package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/notify"
)

// GLFWInputAdapter adapts GLFW pointer input to notify.InputState.
type GLFWInputAdapter struct {
	window   *glfw.Window
	input    *notify.InputState
	lastTime float64
}

// NewGLFWInputAdapter creates a new GLFW input adapter. It installs the
// window's mouse button, cursor position and cursor enter callbacks.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window:   window,
		input:    notify.NewInputState(),
		lastTime: glfw.GetTime(),
	}

	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetCursorEnterCallback(adapter.cursorEnterCallback)

	return adapter
}

// Update samples the cursor. Call it after glfw.PollEvents.
// Button edges delivered by the callbacks are kept until the frame is
// consumed: notify.Overlay.End resets them, and hosts driving
// notify.Toasts.Show directly call EndFrame after Show.
func (a *GLFWInputAdapter) Update() *notify.InputState {
	if a.window.GetAttrib(glfw.Hovered) == glfw.True {
		x, y := a.window.GetCursorPos()
		a.input.SetMousePos(float32(x), float32(y))
	} else {
		a.input.ClearMousePos()
	}

	return a.input
}

// EndFrame clears the per-frame button edges.
func (a *GLFWInputAdapter) EndFrame() {
	a.input.Reset()
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *notify.InputState {
	return a.input
}

// DeltaTime returns the seconds elapsed since the previous call.
func (a *GLFWInputAdapter) DeltaTime() float32 {
	now := glfw.GetTime()
	dt := now - a.lastTime
	a.lastTime = now
	return float32(dt)
}

// DisplaySize returns the framebuffer size as a screen rect corner.
func (a *GLFWInputAdapter) DisplaySize() notify.Vec2 {
	w, h := a.window.GetFramebufferSize()
	return notify.Vec2{X: float32(w), Y: float32(h)}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func (a *GLFWInputAdapter) cursorEnterCallback(w *glfw.Window, entered bool) {
	if !entered {
		a.input.ClearMousePos()
	}
}

// glfwMouseButton maps GLFW mouse buttons to notify mouse buttons.
func glfwMouseButton(button glfw.MouseButton) notify.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return notify.MouseButtonLeft
	case glfw.MouseButtonRight:
		return notify.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return notify.MouseButtonMiddle
	default:
		return -1
	}
}

package notify

import "fmt"

// Renderer draws a finished DrawList. backend/opengl provides one.
type Renderer interface {
	Render(dl *DrawList) error
	Resize(width, height int)
}

// FontUploader is implemented by renderers that can turn an AtlasFont's
// pixels into a texture.
type FontUploader interface {
	UploadFont(f *AtlasFont) error
}

// Overlay drives a Toasts collection against a Renderer: it owns the frame
// handle, the draw list and the font, so hosts without their own painter
// only need to forward input.
type Overlay struct {
	renderer  Renderer
	toasts    *Toasts
	theme     Theme
	font      Font
	measurer  TextMeasurer
	onRepaint func()

	frame   Frame
	dl      *DrawList
	repaint bool
}

// OverlayOption configures an Overlay.
type OverlayOption func(*Overlay)

// WithTheme sets the overlay theme.
func WithTheme(theme Theme) OverlayOption {
	return func(o *Overlay) { o.theme = theme }
}

// WithOverlayFont draws and measures captions with f.
func WithOverlayFont(f Font) OverlayOption {
	return func(o *Overlay) { o.font = f }
}

// WithMeasurer overrides the text measurer. By default captions are measured
// with the overlay font.
func WithMeasurer(m TextMeasurer) OverlayOption {
	return func(o *Overlay) { o.measurer = m }
}

// WithRepaintHook is called whenever the overlay needs another frame.
func WithRepaintHook(fn func()) OverlayOption {
	return func(o *Overlay) { o.onRepaint = fn }
}

// NewOverlay creates an overlay that renders toasts through renderer.
// A nil toasts creates a default collection. Without WithOverlayFont the
// bundled 7x13 atlas is used, uploaded through the renderer if it can.
func NewOverlay(renderer Renderer, toasts *Toasts, opts ...OverlayOption) (*Overlay, error) {
	if toasts == nil {
		toasts = New()
	}
	o := &Overlay{
		renderer: renderer,
		toasts:   toasts,
		theme:    DefaultTheme(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.font == nil {
		atlas, err := NewDefaultAtlasFont()
		if err != nil {
			return nil, fmt.Errorf("default font atlas: %w", err)
		}
		if up, ok := renderer.(FontUploader); ok {
			if err := up.UploadFont(atlas); err != nil {
				return nil, fmt.Errorf("upload font atlas: %w", err)
			}
		}
		o.font = atlas
	}
	if o.measurer == nil {
		o.measurer = FontMeasurer{Font: o.font, Wrap: WrapModeAuto}
	}
	return o, nil
}

// Toasts returns the collection the overlay shows.
func (o *Overlay) Toasts() *Toasts { return o.toasts }

// Theme returns the current theme.
func (o *Overlay) Theme() Theme { return o.theme }

// SetTheme changes the theme from the next frame on.
func (o *Overlay) SetTheme(theme Theme) { o.theme = theme }

// Begin starts a new frame and returns its handle.
// Toasts may be added between Begin and End.
func (o *Overlay) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Frame {
	o.dl = AcquireDrawList()
	o.dl.SetFont(o.font)

	o.frame = Frame{
		Input:      input,
		ScreenSize: displaySize,
		DeltaTime:  deltaTime,
		Theme:      o.theme,
		Painter:    o.dl,
		Measurer:   o.measurer,
		OnRepaint:  o.onRepaint,
	}
	return &o.frame
}

// End shows the toasts, clears the frame's per-frame input edges and
// renders the frame.
func (o *Overlay) End() error {
	if o.dl == nil {
		return nil
	}
	defer func() {
		ReleaseDrawList(o.dl)
		o.dl = nil
	}()

	o.toasts.Show(&o.frame)
	o.repaint = o.frame.RepaintRequested()
	if o.frame.Input != nil {
		o.frame.Input.Reset()
	}
	o.dl.Finalize()

	if len(o.dl.VtxBuffer) == 0 || o.renderer == nil {
		return nil
	}
	if err := o.renderer.Render(o.dl); err != nil {
		return fmt.Errorf("render toasts: %w", err)
	}
	return nil
}

// NeedsRepaint reports whether the last frame left animations or countdowns
// running. Hosts that render on demand should schedule another frame.
func (o *Overlay) NeedsRepaint() bool { return o.repaint }

// Resize notifies the renderer of a display size change.
func (o *Overlay) Resize(width, height int) {
	if o.renderer != nil {
		o.renderer.Resize(width, height)
	}
}

// Command gen renders toast stacks with sample captions, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/notify"
	"github.com/go-theft-auto/notify/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single toast screenshot to capture.
type screenshot struct {
	name   string               // filename without extension
	width  int                  // viewport width
	height int                  // viewport height
	theme  notify.Theme         // overlay theme
	opts   []notify.Option      // collection options
	fill   func(*notify.Toasts) // adds the toasts to show
	frames int                  // frames to render (0 = default 60)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("notify renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// The hidden window stays at 800x600, larger than every screenshot, so
	// only the projection changes.
	renderer.Resize(s.width, s.height)

	// Fresh overlay per screenshot to avoid state leaking between captures.
	toasts := notify.New(s.opts...)
	ov, err := notify.NewOverlay(renderer, toasts, notify.WithTheme(s.theme))
	if err != nil {
		return err
	}
	s.fill(toasts)

	frames := 60
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := notify.Vec2{X: float32(s.width), Y: float32(s.height)}
		ov.Begin(notify.NewInputState(), displaySize, 1.0/60.0)
		if err := ov.End(); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func allLevels(ts *notify.Toasts) {
	ts.Info("Saved game loaded")
	ts.Success("Mission passed!")
	ts.Warning("Wanted level increased")
	ts.Error("Vehicle destroyed")
	ts.Basic("Press TAB to open the map")
}

func buildScreenshots() []screenshot {
	shadow := notify.Shadow{Offset: notify.Vec2{X: 2, Y: 3}, Blur: 8, Color: notify.RGBA(0, 0, 0, 120)}

	return []screenshot{
		{
			name: "toasts_default", width: 480, height: 320,
			theme: notify.DefaultTheme(),
			fill:  allLevels,
		},
		{
			name: "toasts_light_bottom_left", width: 480, height: 320,
			theme: notify.LightTheme(),
			opts:  []notify.Option{notify.WithAnchor(notify.BottomLeft), notify.WithShadow(shadow)},
			fill:  allLevels,
		},
		{
			name: "toasts_gta_top_middle", width: 480, height: 240,
			theme: notify.GTATheme(),
			opts:  []notify.Option{notify.WithAnchor(notify.TopMiddle)},
			fill: func(ts *notify.Toasts) {
				ts.Custom("Respect +", "*", notify.RGB(255, 200, 0))
				ts.Info("New safehouse available")
			},
		},
		{
			name: "toasts_wrapped", width: 420, height: 240,
			theme: notify.DefaultTheme(),
			opts:  []notify.Option{notify.WithMaxWidth(220), notify.WithAnchor(notify.BottomRight)},
			fill: func(ts *notify.Toasts) {
				ts.Warning("Long captions wrap at the configured maximum width and the toast grows to fit every line.").
					SetNoExpiry()
			},
		},
	}
}

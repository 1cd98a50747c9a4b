// Example demonstrates a toast overlay on top of a plain GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -config toasts.yaml
//
// Keys: I/W/E/S/B add an info, warning, error, success or basic toast;
// O and L dismiss the oldest or latest; C dismisses all; V toggles debug logs.
// Click the cross on a toast to close it.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/notify"
	"github.com/go-theft-auto/notify/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "notify example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML toast config")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(path string) ([]notify.Option, notify.Theme, error) {
	theme := notify.DefaultTheme()
	if path == "" {
		return nil, theme, nil
	}
	cfg, err := notify.LoadConfig(path)
	if err != nil {
		return nil, theme, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, theme, fmt.Errorf("config options: %w", err)
	}
	theme, err = cfg.Theme(theme)
	if err != nil {
		return nil, theme, fmt.Errorf("config theme: %w", err)
	}
	return opts, theme, nil
}

func run(configPath string) error {
	opts, theme, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("notify renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	toasts := notify.New(opts...)
	ov, err := notify.NewOverlay(renderer, toasts, notify.WithTheme(theme))
	if err != nil {
		return fmt.Errorf("notify overlay: %w", err)
	}

	verbose := false
	count := 0
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		count++
		switch key {
		case glfw.KeyI:
			toasts.Info(fmt.Sprintf("Info #%d", count))
		case glfw.KeyW:
			toasts.Warning(fmt.Sprintf("Warning #%d", count))
		case glfw.KeyE:
			toasts.Error(fmt.Sprintf("Error #%d\nError toasts cannot be closed", count))
		case glfw.KeyS:
			toasts.Success(fmt.Sprintf("Success #%d", count)).SetNoExpiry()
		case glfw.KeyB:
			toasts.Basic(fmt.Sprintf("Basic #%d", count)).SetShowProgressBar(false)
		case glfw.KeyO:
			toasts.DismissOldest()
		case glfw.KeyL:
			toasts.DismissLatest()
		case glfw.KeyC:
			toasts.DismissAll()
		case glfw.KeyV:
			verbose = !verbose
			notify.SetVerbose(verbose)
		}
	})
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		ov.Resize(w, h)
	})

	toasts.Info("Press I, W, E, S or B to add a toast")

	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		size := inputAdapter.DisplaySize()
		gl.Viewport(0, 0, int32(size.X), int32(size.Y))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ov.Begin(input, size, inputAdapter.DeltaTime())
		if err := ov.End(); err != nil {
			return fmt.Errorf("notify render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

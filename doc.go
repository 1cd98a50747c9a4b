/*
Package notify draws toast notifications on top of an immediate-mode frame.

# Overview

A Toasts collection holds the pending notifications. The host adds toasts
whenever it likes and calls Show exactly once per frame. Show advances each
toast's countdown and slide animation, stacks the toasts from a screen
corner, draws them through a Painter, closes a toast whose cross was pressed,
and drops toasts that finished sliding out. Nothing is retained between
frames except the toasts themselves.

# Quick Start

With the bundled OpenGL backend:

	renderer, _ := opengl.NewRenderer(1920, 1080)
	input := opengl.NewGLFWInputAdapter(window)

	toasts := notify.New(notify.WithAnchor(notify.BottomRight))
	ov, _ := notify.NewOverlay(renderer, toasts, notify.WithTheme(notify.GTATheme()))

	toasts.Success("Mission passed!")
	toasts.Error("Vehicle destroyed").SetClosable(true)

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    ov.Begin(input.Update(), input.DisplaySize(), input.DeltaTime())
	    // ... draw the scene ...
	    ov.End()
	    window.SwapBuffers()
	}

Hosts with their own renderer build a Frame instead and pass it to Show:

	f := &notify.Frame{
	    Input:      input,
	    ScreenSize: notify.Vec2{X: w, Y: h},
	    DeltaTime:  dt,
	    Theme:      notify.DefaultTheme(),
	    Painter:    myPainter,
	    Measurer:   myMeasurer,
	    OnRepaint:  scheduleFrame,
	}
	toasts.Show(f)
	input.Reset() // clear click and release edges once the frame is consumed

# Toast Lifecycle

	Appear ──value reaches 1──▶ Idle ──countdown ends──▶ Disappear ──value reaches 0──▶ Disappeared
	   │                         │                          ▲
	   └──────── Dismiss ────────┴──────────────────────────┘

The slide offset is width * (1 - EaseInCubic(value)), pushed toward the
anchored edge. Toasts without an expiry idle until dismissed. A toast is
removed at the end of the frame on which it reaches Disappeared.

# Dismissing

  - Clicking a closable toast's cross. Only the frame of the press counts,
    and one press closes at most one toast; a toast sliding under a held
    pointer is not closed until the button is released and pressed again.
  - DismissOldest, DismissLatest and DismissAll, or Dismiss with a toast ID.
  - Clear removes everything immediately without animating.

Error toasts are not closable by default.

# Options

	WithAnchor(a)            Corner or edge the stack grows from
	WithReverse(true)        New toasts go to the head of the stack
	WithSpacing(px)          Gap between toasts (negative overlaps them)
	WithMargin(v)            Distance from the screen edges
	WithPadding(v)           Distance from the toast edge to its contents
	WithSpeed(s)             Slides per second
	WithDefaultDuration(d)   Lifetime of new toasts (0 = never expire)
	WithPauseOnHover(true)   Freeze the countdown under the pointer
	WithMaxWidth(px)         Wrap long captions
	WithFont(spec)           Caption font
	WithShadow(s)            Drop-shadow behind each toast

The same settings can be loaded from YAML with LoadConfig, then turned into
options with Config.Options and a theme with Config.Theme.

# Logging

Debug logs (toast added, dismissed, removed) go to stderr through log/slog
and are off by default. Enable them with SetVerbose(true).
*/
package notify

package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"anima/internal/input"
	"anima/internal/profiling"
	"anima/internal/scene"

	"github.com/rs/zerolog"
)

// Window is the part of a GLFW window the loop drives
type Window interface {
	ShouldClose() bool
	SwapBuffers()
	GetFramebufferSize() (width, height int)
}

// FrameRenderer draws one frame of the scene
type FrameRenderer interface {
	Render(dt float32)
	Dispose()
}

// FrameSink receives captured frames in record mode
type FrameSink interface {
	CaptureFrame(img image.Image) error
	Finalize(ctx context.Context) (string, error)
}

// Controls reports viewer key presses once per frame
type Controls interface {
	JustPressed(action input.Action) bool
	PostUpdate()
}

// Config selects the loop mode. A nil Sink runs live.
type Config struct {
	FPS       int
	MaxFrames int
	Sink      FrameSink
	// Step is the frame duration. Zero derives it from FPS.
	Step time.Duration

	// Grab reads back the rendered frame; required with a Sink.
	Grab func(width, height int) *image.RGBA
	// PollEvents pumps window events once per frame.
	PollEvents func()
	// Controls is optional.
	Controls Controls
}

// App owns the render loop and the lifetime of the scene's GPU resources.
type App struct {
	window   Window
	renderer FrameRenderer
	scene    *scene.Scene
	cfg      Config
	log      zerolog.Logger

	frames      int
	paused      bool
	quit        bool
	cleanupOnce sync.Once
}

func New(window Window, r FrameRenderer, s *scene.Scene, cfg Config, log zerolog.Logger) (*App, error) {
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	if cfg.Sink != nil && cfg.Grab == nil {
		return nil, errors.New("record mode needs a frame grabber")
	}
	if cfg.Step <= 0 {
		cfg.Step = time.Second / time.Duration(cfg.FPS)
	}
	if cfg.PollEvents == nil {
		cfg.PollEvents = func() {}
	}
	return &App{window: window, renderer: r, scene: s, cfg: cfg, log: log}, nil
}

// Frames returns the number of frames rendered so far
func (a *App) Frames() int {
	return a.frames
}

// Run renders until the window closes, ctx is cancelled or, in record mode, the frame
// budget is reached. Cleanup always runs before Run returns.
func (a *App) Run(ctx context.Context) error {
	defer a.Cleanup()
	if a.cfg.Sink != nil {
		return a.runRecord(ctx)
	}
	return a.runLive(ctx)
}

func (a *App) runLive(ctx context.Context) error {
	limiter := NewFrameLimiter(a.cfg.FPS)
	budget := a.cfg.Step
	last := time.Now()

	for !a.done(ctx) {
		profiling.ResetFrame()
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now
		if a.paused {
			dt = 0
		}

		a.frame(dt)
		profiling.ReportSlowFrame(a.log, a.frames, time.Since(now), budget)
		limiter.Wait()
	}
	a.log.Info().Int("frames", a.frames).Msg("render loop stopped")
	return nil
}

func (a *App) runRecord(ctx context.Context) error {
	dt := float32(a.cfg.Step.Seconds())

	for !a.done(ctx) && (a.cfg.MaxFrames <= 0 || a.frames < a.cfg.MaxFrames) {
		profiling.ResetFrame()

		w, h := a.window.GetFramebufferSize()
		a.cfg.PollEvents()
		a.renderer.Render(dt)

		var img *image.RGBA
		func() {
			defer profiling.Track("app.grab")()
			img = a.cfg.Grab(w, h)
		}()
		a.window.SwapBuffers()
		a.handleControls()

		if err := a.cfg.Sink.CaptureFrame(img); err != nil {
			return fmt.Errorf("capture frame %d: %w", a.frames, err)
		}
		a.frames++

		ev := a.log.Info()
		if a.cfg.MaxFrames > 0 {
			ev = ev.Float64("progress", float64(a.frames)/float64(a.cfg.MaxFrames)*100)
		}
		ev.Int("frame", a.frames).Msg("frame recorded")
	}

	// an interrupted recording still produces a video of what was captured
	output, err := a.cfg.Sink.Finalize(context.WithoutCancel(ctx))
	if err != nil {
		return fmt.Errorf("finalize video: %w", err)
	}
	a.log.Info().Str("output", output).Int("frames", a.frames).Msg("rendering complete")
	return nil
}

func (a *App) frame(dt float32) {
	a.cfg.PollEvents()
	a.renderer.Render(dt)
	func() {
		defer profiling.Track("app.swap")()
		a.window.SwapBuffers()
	}()
	a.frames++
	a.handleControls()
}

func (a *App) handleControls() {
	c := a.cfg.Controls
	if c == nil {
		return
	}
	defer c.PostUpdate()

	if c.JustPressed(input.ActionQuit) {
		a.quit = true
	}
	// pausing only freezes the live clock, recorded frames always advance by 1/fps
	if c.JustPressed(input.ActionPause) && a.cfg.Sink == nil {
		a.paused = !a.paused
		a.log.Info().Bool("paused", a.paused).Msg("animation toggled")
	}
	if c.JustPressed(input.ActionProfile) {
		a.log.Info().Int("frame", a.frames).Str("top", profiling.TopN(5)).Msg("frame timings")
	}
}

func (a *App) done(ctx context.Context) bool {
	return a.quit || ctx.Err() != nil || a.window.ShouldClose()
}

// Cleanup releases the scene's buffers, the renderer and the window exactly once.
// It is safe to call from a signal handler and again after Run.
func (a *App) Cleanup() {
	a.cleanupOnce.Do(func() {
		a.scene.Cleanup()
		a.renderer.Dispose()
		if d, ok := a.window.(interface{ Destroy() }); ok {
			d.Destroy()
		}
		a.log.Debug().Msg("cleanup done")
	})
}

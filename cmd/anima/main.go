package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"anima/internal/app"
	"anima/internal/config"
	"anima/internal/graphics"
	"anima/internal/graphics/renderables/pbr"
	"anima/internal/graphics/renderer"
	"anima/internal/input"
	"anima/internal/logging"
	"anima/internal/recorder"
	"anima/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configDir := pflag.String("config", ".", "directory containing "+config.FileName)
	if err := config.BindFlags(pflag.CommandLine); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	pflag.Parse()

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logging.Setup(config.LogLevel(), os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if pc := config.Profile(); pc.Enabled {
		p := profile.Start(profileMode(pc.Mode), profile.ProfilePath(pc.Path), profile.NoShutdownHook)
		closer.Bind(p.Stop)
	}

	// fail before opening a window when the scene is broken
	s, err := scene.LoadFile(config.ScenePath(),
		scene.WithLogger(logging.Component(log, "genesis")),
		scene.WithSeed(config.Seed()),
	)
	if err != nil {
		log.Error().Err(err).Msg("could not load scene")
		closer.Exit(1)
	}
	if err := s.Validate(); err != nil {
		log.Error().Err(err).Str("scene", config.ScenePath()).Msg("scene cannot be rendered")
		closer.Exit(1)
	}
	log.Info().Int("objects", len(s.Objects)).Int("lights", len(s.Lights)).Msg("scene loaded")

	if err := run(log, s); err != nil {
		log.Error().Err(err).Msg("render failed")
		closer.Exit(1)
	}
	closer.Close()
}

func run(log zerolog.Logger, s *scene.Scene) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	wc := config.Window()
	rc := config.Record()

	window, err := setupWindow(wc, rc.Enabled)
	if err != nil {
		return err
	}
	if err := gl.Init(); err != nil {
		window.Destroy()
		return fmt.Errorf("init gl: %w", err)
	}
	log.Debug().Str("version", gl.GoStr(gl.GetString(gl.VERSION))).Msg("opengl ready")

	fbw, fbh := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(s, fbw, fbh,
		pbr.New(config.ShadersDir(), graphics.GLUploader{}, logging.Component(log, "pbr")),
	)
	if err != nil {
		window.Destroy()
		return fmt.Errorf("init renderer: %w", err)
	}
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		r.SetViewport(width, height)
	})

	controls := input.NewManager()
	controls.Attach(window)

	cfg := app.Config{
		FPS:        config.FPS(),
		Step:       config.FrameDuration(),
		PollEvents: glfw.PollEvents,
		Controls:   controls,
	}
	if rc.Enabled {
		rec, err := recorder.New(wc.Width, wc.Height, config.FPS(), rc.FramesDir, rc.OutputDir,
			recorder.WithLogger(logging.Component(log, "recorder")))
		if err != nil {
			r.Dispose()
			window.Destroy()
			return err
		}
		cfg.Sink = rec
		cfg.MaxFrames = rc.MaxFrames
		cfg.Grab = graphics.ReadFrame
	}

	a, err := app.New(window, r, s, cfg, logging.Component(log, "app"))
	if err != nil {
		r.Dispose()
		window.Destroy()
		return err
	}

	// a signal cancels the loop and waits for it to release GL resources on this thread
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	closer.Bind(func() {
		cancel()
		<-stopped
	})

	err = a.Run(ctx)
	close(stopped)
	return err
}

func setupWindow(wc config.WindowConfig, offscreen bool) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, 4)
	if offscreen {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(wc.Width, wc.Height, wc.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(0)

	return window, nil
}

func profileMode(mode string) func(*profile.Profile) {
	switch mode {
	case "mem":
		return profile.MemProfile
	case "allocs":
		return profile.MemProfileAllocs
	case "trace":
		return profile.TraceProfile
	default:
		return profile.CPUProfile
	}
}

// glint - Terminal Ray Tracer
// Render a reflective sphere scene in your terminal, or to an image file.
//
// Controls:
//
//	W/S   - Move forward/back
//	A/D   - Strafe left/right
//	T     - Toggle the sphere tower
//	L     - Cycle light position
//	R     - Reset camera
//	Esc   - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/glint/pkg/render"
	"github.com/taigrr/glint/pkg/scene"
)

// moveImpulse is the velocity, in world units per frame, added per key press.
const moveImpulse = 0.1

var (
	width           = flag.Int("width", 640, "Frame width in pixels (with -o)")
	height          = flag.Int("height", 480, "Frame height in pixels (with -o)")
	maxDepth        = flag.Int("depth", 5, "Maximum mirror bounces")
	shadowFactor    = flag.Float64("shadow", 0.05, "Brightness kept in shadow (0-1)")
	workers         = flag.Int("workers", 0, "Render goroutine limit (0 = one per row)")
	parallelShadows = flag.Bool("parallel-shadows", false, "Test shadow rays against primitives concurrently")
	outputPath      = flag.String("o", "", "Render one frame to this file (.png, .bmp, .tiff) and exit")
	targetFPS       = flag.Int("fps", 30, "Target FPS")
	debug           = flag.Bool("debug", false, "Enable debug logging")
	logPath         = flag.String("log", "", "Write logs to this file")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "glint - Terminal Ray Tracer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: glint [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  W/S         - Move forward/back\n")
		fmt.Fprintf(os.Stderr, "  A/D         - Strafe left/right\n")
		fmt.Fprintf(os.Stderr, "  T           - Toggle sphere tower\n")
		fmt.Fprintf(os.Stderr, "  L           - Cycle light position\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset camera\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// configFromFlags maps the command line onto a scene configuration.
func configFromFlags() (scene.Config, error) {
	cfg := scene.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.MaxDepth = *maxDepth
	cfg.ShadowFactor = float32(*shadowFactor)
	cfg.Workers = *workers
	cfg.ParallelShadows = *parallelShadows
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid options: %w", err)
	}
	if *targetFPS <= 0 {
		return cfg, fmt.Errorf("invalid options: fps must be positive, got %d", *targetFPS)
	}
	return cfg, nil
}

// newLogger picks the log destination. The interactive viewer owns the
// terminal, so without -log it stays silent.
func newLogger(interactive bool) (render.Logger, io.Closer, error) {
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		return render.NewLoggerTo(f, f, "glint", *debug), f, nil
	}
	if interactive {
		return render.NewNopLogger(), io.NopCloser(nil), nil
	}
	return render.NewDefaultLogger("glint", *debug), io.NopCloser(nil), nil
}

func run() error {
	cfg, err := configFromFlags()
	if err != nil {
		return err
	}

	interactive := *outputPath == ""
	log, closer, err := newLogger(interactive)
	if err != nil {
		return err
	}
	defer closer.Close()

	if !interactive {
		return renderToFile(cfg, *outputPath, log)
	}
	return runInteractive(cfg, log)
}

// renderToFile renders a single frame at the configured size and saves it.
func renderToFile(cfg scene.Config, path string, log render.Logger) error {
	s := buildDemo(cfg).scene
	cam := newCamera(cfg.Width)
	cam.SetLogger(log)

	start := time.Now()
	fb := cam.RenderFramebuffer(s, render.ViewportFromConfig(cfg))
	if err := fb.SaveImage(path); err != nil {
		return fmt.Errorf("save frame: %w", err)
	}
	log.Infof("wrote %s (%dx%d, %d primitives, depth %d) in %s",
		path, fb.Width, fb.Height, s.Len(), cfg.MaxDepth, time.Since(start).Round(time.Millisecond))
	return nil
}

func runInteractive(cfg scene.Config, log render.Logger) error {
	// Create terminal
	term := uv.DefaultTerminal()

	termWidth, termHeight, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		if err := term.Shutdown(context.Background()); err != nil {
			log.Warnf("shutdown terminal: %v", err)
		}
	}()

	presenter := render.NewTerminalPresenter(term, termWidth, termHeight)
	if err := presenter.Resize(termWidth, termHeight); err != nil {
		return fmt.Errorf("resize terminal: %w", err)
	}

	d := buildDemo(cfg)
	s := d.scene
	vp := presenter.Viewport()
	cam := newCamera(vp.Width)
	cam.SetLogger(log)
	motion := NewMotion(*targetFPS)
	log.Infof("interactive %dx%d, %d primitives", vp.Width, vp.Height, s.Len())

	// Context for clean shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ticker := time.NewTicker(time.Second / time.Duration(*targetFPS))
	defer ticker.Stop()

	events := term.Events()
	dirty := true
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				if err := presenter.Resize(ev.Width, ev.Height); err != nil {
					return fmt.Errorf("resize terminal: %w", err)
				}
				vp = presenter.Viewport()
				refocus(cam, vp.Width)
				log.Debugf("resized to %dx%d", vp.Width, vp.Height)
				dirty = true

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c"):
					return nil
				case ev.MatchString("w", "up"):
					motion.Impulse(0, moveImpulse)
				case ev.MatchString("s", "down"):
					motion.Impulse(0, -moveImpulse)
				case ev.MatchString("a", "left"):
					motion.Impulse(-moveImpulse, 0)
				case ev.MatchString("d", "right"):
					motion.Impulse(moveImpulse, 0)
				case ev.MatchString("t"):
					shown := d.ToggleTower()
					log.Debugf("tower shown=%t, %d primitives", shown, s.Len())
					dirty = true
				case ev.MatchString("l"):
					l := d.NextLight()
					log.Debugf("light at %v", l.Position)
					dirty = true
				case ev.MatchString("r"):
					motion.Reset()
					cam.Position = cameraStart
					cam.Direction = newCamera(vp.Width).Direction
					dirty = true
				}
			}

		case <-ticker.C:
			if motion.Apply(cam) {
				dirty = true
			}
			if !dirty {
				continue
			}
			fb, err := render.FramebufferFromPixels(vp.Width, vp.Height, cam.Render(s, vp))
			if err != nil {
				return fmt.Errorf("render frame: %w", err)
			}
			if err := presenter.Present(fb); err != nil {
				return fmt.Errorf("present frame: %w", err)
			}
			dirty = false
		}
	}
}

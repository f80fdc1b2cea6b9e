// Package viewer implements the fullscreen morph viewer's main loop.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/pointmorph/internal/config"
	"github.com/Faultbox/pointmorph/internal/engine/audio"
	"github.com/Faultbox/pointmorph/internal/engine/camera"
	"github.com/Faultbox/pointmorph/internal/engine/input"
	"github.com/Faultbox/pointmorph/internal/engine/renderer"
	"github.com/Faultbox/pointmorph/internal/engine/window"
	"github.com/Faultbox/pointmorph/internal/logger"
	"github.com/Faultbox/pointmorph/internal/morph"
	"github.com/Faultbox/pointmorph/internal/scene"
)

// AppName is shown in the window title next to the model title.
const AppName = "PointMorph"

// Background is the clear color of the viewer.
var Background = [3]float32{1, 1, 1}

// Viewer is the main viewer instance.
type Viewer struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	audio    *audio.Manager
	log      *zap.Logger
}

// New creates the window, renderer, scene and audio.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
	}

	v.log.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("particles", cfg.Morph.ParticleCount),
	)

	var err error
	v.scene, err = scene.New(cfg, morph.NewSystemClock(), logger.Named("scene"))
	if err != nil {
		return nil, fmt.Errorf("create scene: %w", err)
	}

	// Create window (this also creates OpenGL context)
	v.window, err = window.New(window.Config{
		Title:      Title(v.scene.Title()),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	dw, dh := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		Background: Background,
	}, camera.Default())
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	v.input = input.New()

	if cfg.Audio.Enabled {
		v.audio = audio.New(cfg.Audio, &cfg.Morph, logger.Named("audio"))
		if err := v.audio.Init(); err != nil {
			// Sound is optional, carry on without it.
			v.log.Warn("audio unavailable", zap.Error(err))
			v.audio = nil
		} else {
			v.scene.AddListener(v.audio)
		}
	}

	v.log.Info("viewer initialized")
	return v, nil
}

// Title formats the window title for a model.
func Title(model string) string {
	return fmt.Sprintf("%s - %s", AppName, model)
}

// Frame collects what the renderer needs from the scene.
func Frame(s *scene.Scene) renderer.Frame {
	st := s.Style()
	return renderer.Frame{
		Positions: s.Positions(),
		Model:     s.ModelMatrix(),
		Style: renderer.PointStyle{
			Color:   st.Color,
			Size:    st.Size,
			Opacity: st.Opacity,
		},
	}
}

// Run starts the main loop. It returns when the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()
	title := v.scene.Title()

	v.log.Info("starting main loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		// 2. Advance the animation
		if err := v.scene.Update(); err != nil {
			return fmt.Errorf("update: %w", err)
		}
		if t := v.scene.Title(); t != title {
			title = t
			v.window.SetTitle(Title(t))
		}

		// 3. Render and present
		v.renderer.Draw(Frame(v.scene))
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Stringer("phase", v.scene.Phase()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Action {
		case input.ActionQuit:
			v.running = false
		case input.ActionResize:
			v.renderer.Resize(v.window.DrawableSize())
		case input.ActionPrev:
			v.advance(morph.Prev)
		case input.ActionNext:
			v.advance(morph.Next)
		}
	}
}

func (v *Viewer) advance(dir morph.Direction) {
	if err := v.scene.Advance(dir); err != nil {
		v.log.Warn("advance", zap.Stringer("direction", dir), zap.Error(err))
	}
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.audio != nil {
		v.audio.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

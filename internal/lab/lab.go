// Package lab implements the interactive morph lab: the particle cloud
// rendered offscreen inside an ImGui window next to a control panel.
package lab

import (
	"errors"
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/pointmorph/internal/config"
	"github.com/Faultbox/pointmorph/internal/engine/audio"
	"github.com/Faultbox/pointmorph/internal/engine/ui"
	"github.com/Faultbox/pointmorph/internal/engine/view"
	"github.com/Faultbox/pointmorph/internal/logger"
	"github.com/Faultbox/pointmorph/internal/morph"
	"github.com/Faultbox/pointmorph/internal/scene"
	"github.com/Faultbox/pointmorph/internal/viewer"
)

// Layout dimensions
const (
	panelWidth      = float32(320)
	statusBarHeight = float32(30)
)

// fileOp is a file picker action.
type fileOp int

const (
	opSaveAs fileOp = iota
	opLoad
)

// fileRequest is a path picked in a file dialog, waiting for the main
// thread.
type fileRequest struct {
	op   fileOp
	path string
}

// App is the lab application state.
type App struct {
	config  *config.Config
	clock   morph.Clock
	backend *ui.Backend
	scene   *scene.Scene
	view    *view.PointCloudView
	panel   *ui.ControlPanel
	audio   *audio.Manager
	log     *zap.Logger

	title string

	// File dialog results (dialogs run off the main thread)
	pendingFiles chan fileRequest
}

// New creates the window, scene and offscreen view.
func New(cfg *config.Config) (*App, error) {
	app := &App{
		config:       cfg,
		clock:        morph.NewSystemClock(),
		log:          logger.Named("lab"),
		pendingFiles: make(chan fileRequest, 1),
	}

	var err error
	app.scene, err = scene.New(cfg, app.clock, logger.Named("scene"))
	if err != nil {
		return nil, fmt.Errorf("create scene: %w", err)
	}
	app.title = app.scene.Title()

	app.backend, err = ui.NewBackend(viewer.Title(app.title)+" Lab", cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, err
	}

	app.view, err = view.New(int32(cfg.Graphics.Width), int32(cfg.Graphics.Height), logger.Named("render"))
	if err != nil {
		return nil, fmt.Errorf("create view: %w", err)
	}
	app.view.Background = viewer.Background

	app.panel = ui.NewControlPanel(app.scene)
	app.panel.OnSave = app.save
	app.panel.OnSaveAs = func() { app.openFileDialog(opSaveAs) }
	app.panel.OnLoad = func() { app.openFileDialog(opLoad) }

	if cfg.Audio.Enabled {
		app.audio = audio.New(cfg.Audio, &cfg.Morph, logger.Named("audio"))
		if err := app.audio.Init(); err != nil {
			app.log.Warn("audio unavailable", zap.Error(err))
			app.audio = nil
		} else {
			app.scene.AddListener(app.audio)
			app.panel.SetAudio(app.audio)
		}
	}

	app.log.Info("lab initialized", zap.Int("particles", app.scene.ParticleCount()))
	return app, nil
}

// Run starts the render loop. It returns when the window is closed.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// Close releases GPU and audio resources.
func (app *App) Close() {
	app.log.Info("closing lab")
	if app.audio != nil {
		app.audio.Close()
	}
	if app.view != nil {
		app.view.Destroy()
	}
}

func (app *App) save() error {
	path, err := app.config.Save()
	if err != nil {
		return err
	}
	app.log.Info("settings saved", zap.String("path", path))
	return nil
}

// openFileDialog shows a YAML file picker without blocking the render
// loop. The chosen path is handled by the next frame.
func (app *App) openFileDialog(op fileOp) {
	go func() {
		b := dialog.File().Filter("YAML", "yaml", "yml")
		var (
			path string
			err  error
		)
		if op == opSaveAs {
			path, err = b.Title("Save settings as").Save()
		} else {
			path, err = b.Title("Load settings").Load()
		}
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				app.log.Warn("file dialog", zap.Error(err))
			}
			return
		}
		select {
		case app.pendingFiles <- fileRequest{op: op, path: path}:
		default:
			app.log.Warn("file request dropped, another is pending", zap.String("path", path))
		}
	}()
}

// handleFileRequests applies a picked path on the main thread.
func (app *App) handleFileRequests() {
	select {
	case req := <-app.pendingFiles:
		var err error
		if req.op == opSaveAs {
			err = app.config.SaveTo(req.path)
		} else {
			err = app.loadConfig(req.path)
		}
		if err != nil {
			app.log.Error("settings file", zap.String("path", req.path), zap.Error(err))
			app.panel.SetStatus(err.Error())
			return
		}
		app.log.Info("settings file", zap.String("path", req.path))
		app.panel.SetStatus("Settings: " + req.path)
	default:
	}
}

// loadConfig replaces the running settings with the file at path. The
// models are rebuilt from the new config. On error nothing changes.
// Graphics settings only apply on the next start.
func (app *App) loadConfig(path string) error {
	loaded, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	// The config is swapped in place: the audio manager holds a pointer
	// to its morph section.
	previous := *app.config
	*app.config = *loaded
	s, err := scene.New(app.config, app.clock, logger.Named("scene"))
	if err != nil {
		*app.config = previous
		return fmt.Errorf("applying %s: %w", path, err)
	}

	if app.audio != nil {
		s.AddListener(app.audio)
		app.audio.SetMasterVolume(float64(app.config.Audio.Volume))
	}
	app.scene = s
	app.panel.SetScene(s)
	return nil
}

func (app *App) render() {
	app.handleFileRequests()
	app.handleKeys()

	if err := app.scene.Update(); err != nil {
		app.log.Error("update", zap.Error(err))
	}
	if t := app.scene.Title(); t != app.title {
		app.title = t
		app.backend.SetWindowTitle(viewer.Title(t) + " Lab")
	}

	workPos, workSize := ui.Viewport()
	contentHeight := workSize.Y - statusBarHeight
	viewWidth := workSize.X - panelWidth

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(viewWidth, contentHeight))
	if imgui.BeginV("Cloud", nil, flags|imgui.WindowFlagsNoScrollbar) {
		app.renderCloud()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+viewWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, contentHeight))
	if imgui.BeginV("Controls", nil, flags) {
		app.panel.Render()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X, workPos.Y+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, statusBarHeight))
	statusFlags := flags | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("##StatusBar", nil, statusFlags) {
		imgui.Text(fmt.Sprintf("%s | %d particles | %s | %.0f FPS",
			app.scene.Title(),
			app.scene.ParticleCount(),
			app.scene.Phase(),
			imgui.CurrentIO().Framerate(),
		))
	}
	imgui.End()
}

func (app *App) renderCloud() {
	avail := imgui.ContentRegionAvail()
	w, h := int32(avail.X), int32(avail.Y)
	if w <= 0 || h <= 0 {
		return
	}
	if fw, fh := app.view.Size(); fw != w || fh != h {
		app.view.Resize(w, h)
	}

	textureID := app.view.Render(viewer.Frame(app.scene))

	// Display rendered texture (flip V for OpenGL)
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
	bg := viewer.Background
	imgui.ImageWithBgV(
		*texRef,
		imgui.NewVec2(avail.X, avail.Y),
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(bg[0], bg[1], bg[2], 1),
		imgui.NewVec4(1, 1, 1, 1),
	)
}

func (app *App) handleKeys() {
	if imgui.CurrentIO().WantTextInput() {
		return
	}
	switch {
	case ui.IsKeyPressed(imgui.KeyLeftArrow):
		app.advance(morph.Prev)
	case ui.IsKeyPressed(imgui.KeyRightArrow):
		app.advance(morph.Next)
	}
}

func (app *App) advance(dir morph.Direction) {
	if err := app.scene.Advance(dir); err != nil {
		app.log.Warn("advance", zap.Stringer("direction", dir), zap.Error(err))
	}
	app.panel.Sync()
}

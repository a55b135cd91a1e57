// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"path"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/aquadrift/internal/application/replay"
	"github.com/younwookim/aquadrift/internal/application/scene"
	"github.com/younwookim/aquadrift/internal/application/state"
	"github.com/younwookim/aquadrift/internal/application/system"
	"github.com/younwookim/aquadrift/internal/domain/entity"
	"github.com/younwookim/aquadrift/internal/infrastructure/asset"
	"github.com/younwookim/aquadrift/internal/infrastructure/config"
	"github.com/younwookim/aquadrift/internal/infrastructure/watch"
)

// Colors for rendering
var (
	colorWater    = color.RGBA{12, 40, 72, 255}
	colorRock     = color.RGBA{70, 78, 96, 255}
	colorHazard   = color.RGBA{200, 50, 50, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorDebugBG  = color.RGBA{0, 0, 0, 180}
	colorDebugBox = color.RGBA{255, 255, 0, 90}
)

// LevelLoader rebuilds the current level from disk
type LevelLoader func() *entity.Level

// Options configures the optional features of the scene
type Options struct {
	// LevelName is the level file path, used to match watcher events and
	// stored in recordings.
	LevelName string
	// LoadLevel rebuilds the level on hot reload. Reload is off when nil.
	LoadLevel LevelLoader
	// Watcher delivers changed level files. May be nil.
	Watcher *watch.Watcher
	// Bindings are the keys to poll. Defaults are used when nil.
	Bindings system.Bindings
	// RecordPath enables input recording to this file.
	RecordPath string
	// Replay plays recorded input instead of the keyboard.
	Replay *replay.ReplayData
}

// Playing is the main gameplay scene
type Playing struct {
	config    *config.GameConfig
	state     state.GameState
	prevState state.GameState

	sim         *system.Simulation
	animator    *system.Animator
	inputSystem *system.InputSystem
	breath      *breather
	frame       system.AnimFrame

	screenW    int
	screenH    int
	feetOffset int
	dt         float64
	debug      bool

	levelName string
	loadLevel LevelLoader
	watcher   *watch.Watcher

	// Input recording
	recorder       *Recorder
	recordFilename string

	replayer *replay.Replayer
}

// New creates a new Playing scene on level.
// It fails when clips does not cover every animation state.
func New(cfg *config.GameConfig, clips *asset.Registry, level *entity.Level, opts Options) (*Playing, error) {
	animator, err := system.NewAnimator(clips, cfg.Physics.Animation)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		config:         cfg,
		state:          state.StatePlaying,
		sim:            system.NewSimulation(cfg.Physics, cfg.Entities, level),
		animator:       animator,
		inputSystem:    system.NewInputSystem(opts.Bindings),
		breath:         newBreather(cfg.Physics.Feedback.Breathing),
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		feetOffset:     cfg.Entities.Player.FeetOffset,
		dt:             1.0 / float64(cfg.Physics.Display.Framerate),
		levelName:      opts.LevelName,
		loadLevel:      opts.LoadLevel,
		watcher:        opts.Watcher,
		recordFilename: opts.RecordPath,
	}

	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.state = state.StateReplaying
		log.Printf("Replaying %d frames (level: %s)", p.replayer.TotalFrames(), p.replayer.Level())
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" && p.replayer == nil {
		p.recorder = NewRecorder(opts.LevelName, p.dt)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	return p, nil
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {}

// OnExit saves any pending recording (implements scene.Scene)
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.pollWatcher()

	input := p.inputSystem.GetInput()
	if input[system.ActionDebug].Pressed {
		p.debug = !p.debug
	}

	switch p.state {
	case state.StatePlaying:
		if input[system.ActionPause].Pressed {
			p.pause()
			return nil, nil
		}
		// F5: Save recording manually
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
			p.saveRecording()
		}
		frame := input.Frame()
		if p.recorder != nil {
			p.recorder.RecordFrame(frame)
		}
		p.step(frame, dt)

	case state.StateReplaying:
		if input[system.ActionPause].Pressed {
			p.pause()
			return nil, nil
		}
		p.stepReplay(dt)

	case state.StatePaused:
		if input[system.ActionPause].Pressed {
			p.state = p.prevState
		}

	case state.StateReplayDone:
		if input[system.ActionPause].Pressed {
			return nil, scene.ErrQuit
		}
	}

	return nil, nil // nil = stay on this scene
}

// Step advances the world by one tick of the given input.
// Exported for headless drivers and tests.
func (p *Playing) Step(in entity.InputFrame, dt float64) {
	p.step(in, dt)
}

func (p *Playing) step(in entity.InputFrame, dt float64) {
	p.sim.Step(in, dt)

	snap := p.sim.Snapshot()
	p.frame = p.animator.Update(dt, snap)

	m := p.sim.Player().Movement
	moving := in.MoveX != 0 || in.MoveY != 0
	p.breath.Update(dt, !moving && !m.IsDashing && !m.IsWallCrouch)
}

func (p *Playing) stepReplay(fallback float64) {
	in, ok := p.replayer.GetInput()
	if !ok {
		p.state = state.StateReplayDone
		log.Printf("Replay finished after %d frames", p.replayer.TotalFrames())
		return
	}
	p.step(in, p.replayer.DT(fallback))
	if p.replayer.Done() {
		p.state = state.StateReplayDone
		log.Printf("Replay finished after %d frames", p.replayer.TotalFrames())
	}
}

func (p *Playing) pause() {
	p.prevState = p.state
	p.state = state.StatePaused
}

// pollWatcher reloads the level when its file changed on disk
// and logs any watcher failure
func (p *Playing) pollWatcher() {
	if p.watcher == nil {
		return
	}
	for err := p.watcher.PollError(); err != nil; err = p.watcher.PollError() {
		log.Printf("Level watcher: %v", err)
	}
	if p.loadLevel == nil {
		return
	}
	for {
		changed, ok := p.watcher.Poll()
		if !ok {
			return
		}
		if !watch.IsLevelFile(changed) || filepath.Base(changed) != path.Base(p.levelName) {
			continue
		}
		p.Reload()
		log.Printf("Level reloaded: %s", changed)
	}
}

// Reload rebuilds the level and respawns the diver
func (p *Playing) Reload() {
	if p.loadLevel == nil {
		return
	}
	p.sim.Reload(p.loadLevel())
	p.breath.reset()
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// State returns the current scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Simulation returns the running simulation
func (p *Playing) Simulation() *system.Simulation {
	return p.sim
}

// Frame returns the animation frame selected on the last tick
func (p *Playing) Frame() system.AnimFrame {
	return p.frame
}

// Debug reports whether the debug overlay is shown
func (p *Playing) Debug() bool {
	return p.debug
}

// Camera returns the top-left world position of the view, centred on the diver
func (p *Playing) Camera() (int, int) {
	cx, cy := p.sim.Player().Center()
	return cameraOffset(cx, cy, p.screenW, p.screenH)
}

func cameraOffset(cx, cy float64, screenW, screenH int) (int, int) {
	return int(math.Round(cx - float64(screenW)/2)), int(math.Round(cy - float64(screenH)/2))
}

// spritePosition returns where the frame's top-left corner is drawn on screen
func (p *Playing) spritePosition(camX, camY int) (int, int) {
	player := p.sim.Player()
	x := int(player.X) - camX
	y := int(player.Y) - camY + p.breath.Offset() + p.feetOffset
	return x - p.frame.OffsetX, y - p.frame.OffsetY
}

// DebugLines returns the overlay text
func (p *Playing) DebugLines() []string {
	player := p.sim.Player()
	m := player.Movement
	return []string{
		fmt.Sprintf("state=%s mode=%s", p.frame.State, m.Mode()),
		fmt.Sprintf("pos=(%.1f,%.1f) vx=%.2f vy=%.2f", player.X, player.Y, m.VX, m.VY),
		fmt.Sprintf("cling_side=%d ground=%t wall_l=%t wall_r=%t", m.StickSide, m.OnGround, m.WallLeft, m.WallRight),
		fmt.Sprintf("kick_timer=%.2f lockout=%.2f", m.WallKickTimer, m.WallKickLockout),
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorWater)

	camX, camY := p.Camera()

	p.drawLevel(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)

	if p.debug {
		p.drawDebug(screen, camX, camY)
	}
	p.drawUI(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawLevel(screen *ebiten.Image, camX, camY int) {
	level := p.sim.Level()
	ts := float64(level.TileSize)
	for _, tile := range level.Solids {
		x := tile.X - float64(camX)
		y := tile.Y - float64(camY)
		if x+ts < 0 || y+ts < 0 || x > float64(p.screenW) || y > float64(p.screenH) {
			continue
		}
		ebitenutil.DrawRect(screen, x, y, ts, ts, colorRock)
	}
	for _, hz := range level.Hazards {
		ebitenutil.DrawRect(screen, hz.X-float64(camX), hz.Y-float64(camY), hz.W, hz.H, colorHazard)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY int) {
	x, y := p.spritePosition(camX, camY)

	if p.frame.Image == nil {
		player := p.sim.Player()
		ebitenutil.DrawRect(screen, float64(x), float64(y), player.W, player.H, colorPlayer)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(p.frame.Image, op)
}

func (p *Playing) drawDebug(screen *ebiten.Image, camX, camY int) {
	player := p.sim.Player()
	ebitenutil.DrawRect(screen, player.X-float64(camX), player.Y-float64(camY), player.W, player.H, colorDebugBox)

	lines := p.DebugLines()
	ebitenutil.DrawRect(screen, 10, 10, 420, float64(len(lines)*16+10), colorDebugBG)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 15, 15+i*16)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	status := "WASD/Arrows: Swim | K/Z: Jump | Space: Dash | J: Shoot | F3: Debug | ESC: Pause"
	switch {
	case p.replayer != nil && p.state == state.StateReplayDone:
		status = fmt.Sprintf("REPLAY DONE (%d frames) | ESC: Quit", p.replayer.TotalFrames())
	case p.replayer != nil:
		status = fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
	case p.recorder != nil:
		status = fmt.Sprintf("REC %d | F5: Save | %s", p.recorder.FrameCount(), status)
	}
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-20)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

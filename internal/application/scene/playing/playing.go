// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/coinhop/internal/application/replay"
	"github.com/younwookim/coinhop/internal/application/scene"
	"github.com/younwookim/coinhop/internal/application/state"
	"github.com/younwookim/coinhop/internal/application/system"
	"github.com/younwookim/coinhop/internal/domain/entity"
	"github.com/younwookim/coinhop/internal/infrastructure/config"
)

// ReloadFunc re-reads configuration after a watched file changed
type ReloadFunc func() (*config.GameConfig, *config.LevelConfig, error)

// Options configures optional Playing features
type Options struct {
	// RecordPath enables input recording when not empty
	RecordPath string

	// Changes is polled once per frame and returns the name of a changed
	// config file, or "" if nothing changed
	Changes func() string
	Reload  ReloadFunc
}

// hud mirrors the values shown on screen. It is fed by controller callbacks.
type hud struct {
	score   int
	lives   int
	message string
}

// Playing is the main gameplay scene
type Playing struct {
	config   *config.GameConfig
	levelCfg *config.LevelConfig

	world       *system.World
	state       state.GameState
	inputSystem *system.InputSystem
	hud         hud

	coinBobs []*coinBob
	colors   palette

	screenW int
	screenH int

	changes func() string
	reload  ReloadFunc

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene
func New(cfg *config.GameConfig, levelCfg *config.LevelConfig, opts Options) (*Playing, error) {
	p := &Playing{
		state:          state.StatePlaying,
		inputSystem:    system.NewInputSystem(),
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		changes:        opts.Changes,
		reload:         opts.Reload,
		recordFilename: opts.RecordPath,
	}

	if err := p.build(cfg, levelCfg); err != nil {
		return nil, err
	}

	if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(levelCfg.ID)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	return p, nil
}

// build creates the world for a level and wires the HUD callbacks
func (p *Playing) build(cfg *config.GameConfig, levelCfg *config.LevelConfig) error {
	level, err := system.LoadLevel(levelCfg, cfg)
	if err != nil {
		return fmt.Errorf("failed to build level %q: %w", levelCfg.ID, err)
	}

	controller := system.NewPlayerController(cfg.Physics)
	player := system.NewPlayerAt(level, cfg.Entities.Player)

	controller.OnScoreChanged = func(score int) { p.hud.score = score }
	controller.OnLivesChanged = func(lives int) { p.hud.lives = lives }
	controller.OnGameOver = func() { p.hud.message = "Game Over" }
	controller.OnEnemyDefeated = func(e *entity.Enemy) {
		log.Printf("Defeated %s at (%.0f, %.0f)", e.Behavior, e.X, e.Y)
	}

	p.config = cfg
	p.levelCfg = levelCfg
	p.world = system.NewWorld(level, player, controller)
	p.hud = hud{score: player.Score, lives: player.Lives}
	p.colors = newPalette(cfg.Entities, level.Background)
	p.coinBobs = newCoinBobs(len(level.Coins), cfg.Entities.Coin)
	return nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.changes != nil {
		if name := p.changes(); name != "" {
			p.hotReload(name)
		}
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	var input system.InputState
	if p.state.Simulating() {
		input = p.inputSystem.GetInput()
	}
	p.tick(dt, input, p.inputSystem.GetMenuInput())

	return nil, nil // nil = stay on this scene
}

// tick runs one frame of the round state machine with already-read input
func (p *Playing) tick(dt float64, input system.InputState, menu system.MenuInput) {
	switch p.state {
	case state.StatePlaying:
		if menu.Pause {
			p.state = p.state.Next(state.EventPause)
			return
		}
		p.updatePlaying(dt, input)
	case state.StatePaused:
		if menu.Pause {
			p.state = p.state.Next(state.EventPause)
		}
	case state.StateGameOver, state.StateLevelComplete:
		if menu.Restart {
			p.restart()
		}
	}
}

func (p *Playing) updatePlaying(dt float64, input system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	res := p.world.Step(dt, input)
	for _, bob := range p.coinBobs {
		bob.update(dt)
	}

	switch {
	case res.GameOver:
		p.state = p.state.Next(state.EventGameOver)
		log.Printf("Game over: score %d after %d frames", p.world.Player.Score, p.world.Frame)
	case res.LevelComplete:
		p.state = p.state.Next(state.EventLevelComplete)
		p.hud.message = "Level Complete!"
		log.Printf("Level complete: score %d after %d frames", p.world.Player.Score, p.world.Frame)
	default:
		return
	}

	// Auto-save recording when the round ends
	if p.recorder != nil {
		p.saveRecording()
	}
}

func (p *Playing) restart() {
	p.world.Reset()
	p.state = p.state.Next(state.EventRestart)
	p.hud.message = ""
	for _, bob := range p.coinBobs {
		bob.reset()
	}
	if p.recorder != nil {
		p.recorder = replay.NewRecorder(p.levelCfg.ID)
	}
}

// hotReload rebuilds the round from freshly loaded config.
// On failure the current round keeps running.
func (p *Playing) hotReload(name string) {
	if p.reload == nil {
		return
	}

	cfg, levelCfg, err := p.reload()
	if err != nil {
		log.Printf("Reload after %s change failed: %v", name, err)
		return
	}
	if err := p.build(cfg, levelCfg); err != nil {
		log.Printf("Reload after %s change failed: %v", name, err)
		return
	}

	p.state = state.StatePlaying
	if p.recorder != nil {
		p.recorder = replay.NewRecorder(levelCfg.ID)
	}
	p.screenW = cfg.Physics.Display.ScreenWidth
	p.screenH = cfg.Physics.Display.ScreenHeight
	log.Printf("Reloaded config after %s change", name)
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// State returns the current round state
func (p *Playing) State() state.GameState {
	return p.state
}

// World returns the simulated world
func (p *Playing) World() *system.World {
	return p.world
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.FrameCount() > 0 {
		p.saveRecording()
	}
}

// Layout returns the logical screen size
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

package flycam

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Marker tags entities controlled by the fly camera systems.
const Marker scene.Marker = "flycam"

// Plugin adds first-person fly camera behavior to an engine: cursor grab toggling,
// keyboard movement and mouse or keyboard look for every entity carrying Marker.
type Plugin interface {
	engine.Plugin

	// Settings returns the shared settings read by the systems each tick.
	// Hosts may change them at any time, before or after Build.
	//
	// Returns:
	//   - Settings: the settings store
	Settings() Settings

	// LookMode returns the active look mode.
	//
	// Returns:
	//   - LookMode: the look mode
	LookMode() LookMode

	// SetLookMode switches the look mode; it takes effect on the next tick.
	//
	// Parameters:
	//   - mode: the new look mode
	SetLookMode(mode LookMode)
}

type plugin struct {
	settings Settings
	lookMode atomic.Int32

	// Overrides from options, written into settings once every option ran.
	movement *MovementSettings
	bindings *KeyBindings

	spawnCamera    bool
	spawnTransform common.Transform
	initialGrab    bool

	initialGrabDone atomic.Bool

	app    engine.App
	logger *zap.Logger
}

var _ Plugin = &plugin{}

// DefaultSpawnTransform is where NewPlugin spawns its camera: at (-2, 5, 5) looking at the origin.
//
// Returns:
//   - common.Transform: the spawn transform
func DefaultSpawnTransform() common.Transform {
	return common.NewTransform(-2, 5, 5).LookingAt(mgl32.Vec3{0, 0, 0}, common.WorldUp)
}

// NewPlugin creates a fly camera plugin that spawns one camera at startup.
//
// Parameters:
//   - options: functional options to configure the plugin
//
// Returns:
//   - Plugin: the plugin, ready to pass to engine.AddPlugin
func NewPlugin(options ...PluginBuilderOption) Plugin {
	return newPlugin(true, options)
}

// NewNoCameraPlugin creates a fly camera plugin that spawns nothing; the host creates entities
// carrying Marker. With WithInitialGrab the cursor is grabbed when the first such entity appears.
//
// Parameters:
//   - options: functional options to configure the plugin
//
// Returns:
//   - Plugin: the plugin, ready to pass to engine.AddPlugin
func NewNoCameraPlugin(options ...PluginBuilderOption) Plugin {
	return newPlugin(false, options)
}

func newPlugin(spawnCamera bool, options []PluginBuilderOption) *plugin {
	p := &plugin{
		settings:       NewDefaultSettings(),
		spawnCamera:    spawnCamera,
		spawnTransform: DefaultSpawnTransform(),
		logger:         zap.NewNop(),
	}
	p.lookMode.Store(int32(LookModePointer))
	for _, opt := range options {
		opt(p)
	}
	if p.movement != nil {
		p.settings.SetMovement(*p.movement)
	}
	if p.bindings != nil {
		p.settings.SetKeyBindings(*p.bindings)
	}
	return p
}

func (p *plugin) Build(app engine.App) {
	p.app = app
	p.logger = app.Logger().Named("flycam")

	if p.spawnCamera {
		app.AddStartupSystem("flycam.setup_player", p.setupPlayer)
		if p.initialGrab {
			app.AddStartupSystem("flycam.initial_grab_cursor", p.initialGrabCursor)
		}
	} else if p.initialGrab {
		app.AddSystem("flycam.initial_grab_on_flycam_spawn", p.initialGrabOnFlyCamSpawn)
	}

	app.AddSystem("flycam.cursor_grab", p.cursorGrab)
	app.AddSystem("flycam.player_move", p.playerMove)
	app.AddSystem("flycam.player_look", p.playerLook)

	p.logger.Info("fly camera plugin registered",
		zap.Bool("spawn_camera", p.spawnCamera),
		zap.Bool("initial_grab", p.initialGrab),
		zap.Stringer("look_mode", p.LookMode()),
	)
}

func (p *plugin) Settings() Settings {
	return p.settings
}

func (p *plugin) LookMode() LookMode {
	return LookMode(p.lookMode.Load())
}

func (p *plugin) SetLookMode(mode LookMode) {
	p.lookMode.Store(int32(mode))
}

// setupPlayer spawns the controlled camera.
func (p *plugin) setupPlayer() {
	e := p.app.World().Spawn(p.spawnTransform, Marker)
	p.logger.Debug("fly camera spawned",
		zap.Uint64("entity", e.ID()),
		zap.Float32s("translation", p.spawnTransform.Translation[:]),
	)
}

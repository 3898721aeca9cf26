package engine

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/Carmen-Shannon/oxy-flycam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"go.uber.org/zap"
)

// App is the registration surface handed to plugins. It exposes the shared world, input and
// primary window, and accepts systems run once at startup or once per tick.
type App interface {
	// World returns the entity registry.
	//
	// Returns:
	//   - scene.World: the world
	World() scene.World

	// Input returns the per-tick input view.
	//
	// Returns:
	//   - input.Reader: the input reader
	Input() input.Reader

	// PrimaryWindow returns the cursor surface of the primary window.
	//
	// Returns:
	//   - window.Cursor: the primary window
	//   - error: window.ErrNoPrimaryWindow if none is attached or it has closed
	PrimaryWindow() (window.Cursor, error)

	// Logger returns the engine logger.
	//
	// Returns:
	//   - *zap.Logger: the logger (never nil)
	Logger() *zap.Logger

	// AddStartupSystem registers a function run once before the first tick, in registration order.
	// Must not be called from within a system.
	//
	// Parameters:
	//   - name: a label used in logs
	//   - fn: the system
	AddStartupSystem(name string, fn func())

	// AddSystem registers a function run every tick, in registration order.
	// Must not be called from within a system.
	//
	// Parameters:
	//   - name: a label used in logs
	//   - fn: the system, receiving the tick's elapsed seconds
	AddSystem(name string, fn func(deltaTime float32))
}

// Plugin bundles resources and systems that are registered together.
type Plugin interface {
	// Build registers the plugin's systems on the app.
	//
	// Parameters:
	//   - app: the app to register on
	Build(app App)
}

// Engine is the main entry point for the engine.
// It owns the world and input state, drives registered systems at a fixed tick rate and
// runs the window message loop.
type Engine interface {
	App

	// Window returns the underlying platform window, or nil if the engine runs headless
	// or on a host that only provides a cursor surface.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// InputState returns the writable input state, for hosts that feed input themselves.
	//
	// Returns:
	//   - *input.State: the input state
	InputState() *input.State

	// AddPlugin builds a plugin against this engine.
	//
	// Parameters:
	//   - p: the plugin to add
	AddPlugin(p Plugin)

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	//
	// Parameters:
	//   - fps: target frames per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers a function called each tick after all systems ran.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// Step runs one tick synchronously: startup systems on the first call, then it snapshots
	// input presses and added-entity trackers, runs every system and finally the tick callback.
	// Presses and additions arriving mid-tick are reported on the next tick.
	// Run calls Step from its tick goroutine; hosts with their own loop call it directly.
	//
	// Parameters:
	//   - deltaTime: elapsed seconds since the previous tick
	Step(deltaTime float32)

	// Run starts the tick loop and the window message loop (blocks until the window closes).
	Run()

	// Quit signals all engine goroutines to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// namedSystem pairs a system with its log label.
type namedSystem struct {
	name string
	tick func(deltaTime float32)
	once func()
}

// engine implements the Engine interface.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window  window.Window
	primary window.Cursor

	world  scene.World
	input  *input.State
	logger *zap.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)

	// stepMu serializes Step; system lists are only modified while holding it.
	stepMu         sync.Mutex
	started        bool
	startupSystems []namedSystem
	systems        []namedSystem
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// When a window is supplied its key and mouse motion callbacks are wired to the engine's input state.
//
// Parameters:
//   - options: functional options for engine configuration (window, tick rate, logger, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		running:          false,
		wg:               sync.WaitGroup{},
		logger:           zap.NewNop(),
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.world == nil {
		e.world = scene.NewWorld()
	}
	if e.input == nil {
		e.input = input.NewState()
	}
	e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))

	if e.window != nil {
		e.window.SetKeyDownCallback(e.input.KeyDown)
		e.window.SetKeyUpCallback(e.input.KeyUp)
		e.window.SetMouseMotionCallback(e.input.MouseMoved)
		// Key releases are not delivered while unfocused; drop held keys so none stick.
		e.window.SetFocusCallback(func(focused bool) {
			if !focused {
				e.input.Reset()
			}
		})
	}

	return e
}

func (e *engine) World() scene.World {
	return e.world
}

func (e *engine) Input() input.Reader {
	return e.input
}

func (e *engine) InputState() *input.State {
	return e.input
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Logger() *zap.Logger {
	return e.logger
}

func (e *engine) PrimaryWindow() (window.Cursor, error) {
	if e.primary == nil {
		return nil, window.ErrNoPrimaryWindow
	}
	if r, ok := e.primary.(interface{ IsRunning() bool }); ok && !r.IsRunning() {
		return nil, window.ErrNoPrimaryWindow
	}
	return e.primary, nil
}

func (e *engine) AddPlugin(p Plugin) {
	p.Build(e)
}

func (e *engine) AddStartupSystem(name string, fn func()) {
	e.stepMu.Lock()
	defer e.stepMu.Unlock()
	e.startupSystems = append(e.startupSystems, namedSystem{name: name, once: fn})
}

func (e *engine) AddSystem(name string, fn func(deltaTime float32)) {
	e.stepMu.Lock()
	defer e.stepMu.Unlock()
	e.systems = append(e.systems, namedSystem{name: name, tick: fn})
}

func (e *engine) Step(deltaTime float32) {
	e.stepMu.Lock()
	defer e.stepMu.Unlock()

	if !e.started {
		e.started = true
		for _, s := range e.startupSystems {
			e.logger.Debug("running startup system", zap.String("system", s.name))
			s.once()
		}
	}

	e.input.BeginTick()
	e.world.AdvanceTrackers()

	for _, s := range e.systems {
		s.tick(deltaTime)
	}

	if e.tickCallback != nil {
		e.tickCallback(deltaTime)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}
}

func (e *engine) Run() {
	e.running = true
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	}
	e.wg.Wait()
}

// Quit signals all engine goroutines to stop and shuts down the engine.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running = false
		close(e.quitChannel)
	})
}

// handle launches the tick and quit goroutines.
// Each goroutine is tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleQuit()
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Calls Step at the configured tick rate and listens for dynamic rate changes
// via tickRateChannel. Exits when the quit channel is closed.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	// Recover from panics inside the tick goroutine to avoid crashing the whole process.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("tick goroutine recovered from panic", zap.Any("panic", r))
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.Step(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the WaitGroup.
func (e *engine) handleQuit() {
	defer e.wg.Done()
	<-e.quitChannel
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in frames per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	if e.running {
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	} else {
		e.engineTickRate = newRate
	}
}

// SetTickCallback registers the function called each engine tick after all systems.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.stepMu.Lock()
	defer e.stepMu.Unlock()
	e.tickCallback = callback
}

// Package ebitenhost drives an engine from an ebiten game loop instead of a glfw window.
// Ebiten owns the window; the host forwards its keyboard and cursor input into the engine and
// exposes ebiten's cursor mode as the engine's primary window.
package ebitenhost

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-flycam/engine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Host implements ebiten.Game and steps an engine once per ebiten update.
type Host struct {
	engine engine.Engine
	cursor *cursor
	logger *zap.Logger

	title         string
	width, height int
	tps           int

	draw       func(screen *ebiten.Image)
	engineOpts []engine.EngineBuilderOption

	keyBuf       []ebiten.Key
	lastX, lastY int
	hasLast      bool

	quit atomic.Bool
}

var _ ebiten.Game = &Host{}

// New creates a host and the engine it drives. The engine's primary window is the ebiten window.
//
// Parameters:
//   - options: functional options to configure the host
//
// Returns:
//   - *Host: the host
func New(options ...HostOption) *Host {
	h := &Host{
		logger: zap.NewNop(),
		title:  "Fly Camera",
		width:  1280,
		height: 720,
		tps:    60,
		keyBuf: make([]ebiten.Key, 0, 8),
	}
	for _, opt := range options {
		opt(h)
	}
	h.cursor = newCursor(h.width, h.height)

	opts := append([]engine.EngineBuilderOption{engine.WithLogger(h.logger)}, h.engineOpts...)
	opts = append(opts, engine.WithPrimaryWindow(h.cursor))
	h.engine = engine.NewEngine(opts...)
	return h
}

// Engine returns the driven engine, for adding plugins and systems.
//
// Returns:
//   - engine.Engine: the engine
func (h *Host) Engine() engine.Engine {
	return h.engine
}

// Run opens the ebiten window and blocks until it closes or Quit is called.
//
// Returns:
//   - error: any error from ebiten
func (h *Host) Run() error {
	ebiten.SetWindowTitle(h.title)
	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(h.tps)
	h.logger.Info("starting ebiten host", zap.String("title", h.title), zap.Int("tps", h.tps))
	return ebiten.RunGame(h)
}

// Quit makes the next Update end the game loop.
func (h *Host) Quit() {
	h.quit.Store(true)
}

// Update forwards this frame's input and steps the engine one tick.
func (h *Host) Update() error {
	if h.quit.Load() {
		return ebiten.Termination
	}

	h.keyBuf = inpututil.AppendJustPressedKeys(h.keyBuf[:0])
	h.pressKeys(h.keyBuf)
	h.keyBuf = inpututil.AppendJustReleasedKeys(h.keyBuf[:0])
	h.releaseKeys(h.keyBuf)

	x, y := ebiten.CursorPosition()
	h.moveCursor(x, y)

	h.engine.Step(1 / float32(ebiten.TPS()))
	return nil
}

// Draw calls the draw callback, if any.
func (h *Host) Draw(screen *ebiten.Image) {
	if h.draw != nil {
		h.draw(screen)
	}
}

// Layout keeps the logical screen equal to the window size and records it for look scaling.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.cursor.setSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (h *Host) pressKeys(keys []ebiten.Key) {
	in := h.engine.InputState()
	for _, ek := range keys {
		if k, ok := EngineKey(ek); ok {
			in.KeyDown(k)
		}
	}
}

func (h *Host) releaseKeys(keys []ebiten.Key) {
	in := h.engine.InputState()
	for _, ek := range keys {
		if k, ok := EngineKey(ek); ok {
			in.KeyUp(k)
		}
	}
}

// moveCursor converts absolute cursor positions into motion deltas. The first sample after a
// cursor mode change only sets the reference point, so the jump from capturing is not reported.
func (h *Host) moveCursor(x, y int) {
	if h.cursor.takeChanged() {
		h.hasLast = false
	}
	if h.hasLast && (x != h.lastX || y != h.lastY) {
		h.engine.InputState().MouseMoved(float32(x-h.lastX), float32(y-h.lastY))
	}
	h.lastX, h.lastY = x, y
	h.hasLast = true
}

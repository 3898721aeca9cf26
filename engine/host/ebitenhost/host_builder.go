package ebitenhost

import (
	"github.com/Carmen-Shannon/oxy-flycam/engine"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// HostOption is a functional option for configuring a Host.
type HostOption func(*Host)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the title
//
// Returns:
//   - HostOption: option function to apply
func WithTitle(title string) HostOption {
	return func(h *Host) {
		h.title = title
	}
}

// WithSize sets the initial window size.
//
// Parameters:
//   - width, height: size in pixels
//
// Returns:
//   - HostOption: option function to apply
func WithSize(width, height int) HostOption {
	return func(h *Host) {
		h.width = width
		h.height = height
	}
}

// WithTPS sets ebiten's ticks per second, which is also the engine step rate.
//
// Parameters:
//   - tps: ticks per second (values <= 0 keep the default of 60)
//
// Returns:
//   - HostOption: option function to apply
func WithTPS(tps int) HostOption {
	return func(h *Host) {
		if tps > 0 {
			h.tps = tps
		}
	}
}

// WithDraw sets the per-frame draw callback.
//
// Parameters:
//   - fn: receives the screen image
//
// Returns:
//   - HostOption: option function to apply
func WithDraw(fn func(screen *ebiten.Image)) HostOption {
	return func(h *Host) {
		h.draw = fn
	}
}

// WithLogger sets the host and engine logger.
//
// Parameters:
//   - logger: the zap logger (nil keeps the no-op default)
//
// Returns:
//   - HostOption: option function to apply
func WithLogger(logger *zap.Logger) HostOption {
	return func(h *Host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithEngineOptions passes extra options to the engine. The primary window is always the host.
//
// Parameters:
//   - opts: engine options
//
// Returns:
//   - HostOption: option function to apply
func WithEngineOptions(opts ...engine.EngineBuilderOption) HostOption {
	return func(h *Host) {
		h.engineOpts = append(h.engineOpts, opts...)
	}
}

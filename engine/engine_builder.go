package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"go.uber.org/zap"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Duration(float64(time.Second) / fps)
	}
}

// WithWindow sets the platform window. The window also becomes the primary window and its
// input callbacks feed the engine's input state.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
		if w != nil {
			e.primary = w
		}
	}
}

// WithPrimaryWindow sets the primary window's cursor surface without a platform window, for
// hosts that own their window and feed input through InputState.
//
// Parameters:
//   - c: the cursor surface
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPrimaryWindow(c window.Cursor) EngineBuilderOption {
	return func(e *engine) {
		e.primary = c
	}
}

// WithWorld sets the entity registry instead of creating a default one.
//
// Parameters:
//   - w: the world
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWorld(w scene.World) EngineBuilderOption {
	return func(e *engine) {
		e.world = w
	}
}

// WithInputState sets the input state instead of creating a default one.
//
// Parameters:
//   - s: the input state
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithInputState(s *input.State) EngineBuilderOption {
	return func(e *engine) {
		e.input = s
	}
}

// WithLogger sets the engine logger.
//
// Parameters:
//   - logger: the zap logger (nil keeps the no-op default)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *zap.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

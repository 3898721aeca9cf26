package flycam

import "github.com/Carmen-Shannon/oxy-flycam/common"

// PluginBuilderOption is a functional option for configuring a Plugin.
type PluginBuilderOption func(*plugin)

// WithLookMode sets the initial look mode (pointer by default).
//
// Parameters:
//   - mode: the look mode
//
// Returns:
//   - PluginBuilderOption: option function to apply
func WithLookMode(mode LookMode) PluginBuilderOption {
	return func(p *plugin) {
		p.lookMode.Store(int32(mode))
	}
}

// WithInitialGrab grabs the cursor once without waiting for the toggle key: at startup for
// NewPlugin, when the first fly camera appears for NewNoCameraPlugin.
//
// Parameters:
//   - enabled: true to grab initially
//
// Returns:
//   - PluginBuilderOption: option function to apply
func WithInitialGrab(enabled bool) PluginBuilderOption {
	return func(p *plugin) {
		p.initialGrab = enabled
	}
}

// WithSettings shares an existing settings store, e.g. one kept up to date by a config watcher.
// WithMovementSettings and WithKeyBindings are written into this store regardless of option order.
//
// Parameters:
//   - s: the settings store (nil is ignored)
//
// Returns:
//   - PluginBuilderOption: option function to apply
func WithSettings(s Settings) PluginBuilderOption {
	return func(p *plugin) {
		if s != nil {
			p.settings = s
		}
	}
}

// WithMovementSettings overrides the default movement settings. The last one given wins.
//
// Parameters:
//   - m: the movement settings
//
// Returns:
//   - PluginBuilderOption: option function to apply
func WithMovementSettings(m MovementSettings) PluginBuilderOption {
	return func(p *plugin) {
		p.movement = &m
	}
}

// WithKeyBindings overrides the default key bindings. The last one given wins.
//
// Parameters:
//   - b: the key bindings
//
// Returns:
//   - PluginBuilderOption: option function to apply
func WithKeyBindings(b KeyBindings) PluginBuilderOption {
	return func(p *plugin) {
		p.bindings = &b
	}
}

// WithSpawnTransform sets where NewPlugin spawns its camera. Ignored by NewNoCameraPlugin.
//
// Parameters:
//   - t: the spawn transform
//
// Returns:
//   - PluginBuilderOption: option function to apply
func WithSpawnTransform(t common.Transform) PluginBuilderOption {
	return func(p *plugin) {
		p.spawnTransform = t
	}
}

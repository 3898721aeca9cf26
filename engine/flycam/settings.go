package flycam

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-flycam/common"
)

// MovementSettings holds mouse sensitivity and movement speed.
type MovementSettings struct {
	// MouseSensitivity scales pointer deltas; the product with the window scale is in degrees.
	MouseSensitivity float32 `yaml:"mouse_sensitivity" toml:"mouse_sensitivity"`

	// KeyboardSensitivity scales look-key rotation per second; the product with the window scale is in degrees.
	KeyboardSensitivity float32 `yaml:"keyboard_sensitivity" toml:"keyboard_sensitivity"`

	// MoveSpeed is the linear speed in world units per second.
	MoveSpeed float32 `yaml:"move_speed" toml:"move_speed"`
}

// DefaultMovementSettings returns the default sensitivities and speed.
//
// Returns:
//   - MovementSettings: mouse 0.00012, keyboard 0.05, speed 12
func DefaultMovementSettings() MovementSettings {
	return MovementSettings{
		MouseSensitivity:    0.00012,
		KeyboardSensitivity: 0.05,
		MoveSpeed:           12,
	}
}

// KeyBindings maps each fly camera action to a key.
// Several actions may share a key; a held key then triggers only the first matching action
// in declaration order.
type KeyBindings struct {
	MoveForward      common.Key
	MoveBackward     common.Key
	MoveLeft         common.Key
	MoveRight        common.Key
	MoveAscend       common.Key
	MoveDescend      common.Key
	ToggleGrabCursor common.Key
	LookLeft         common.Key
	LookRight        common.Key
	LookUp           common.Key
	LookDown         common.Key
}

// DefaultKeyBindings returns WASD movement, Space/Left Shift for ascend/descend,
// Escape to toggle the cursor grab and the arrow keys to look.
//
// Returns:
//   - KeyBindings: the default bindings
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		MoveForward:      common.KeyW,
		MoveBackward:     common.KeyS,
		MoveLeft:         common.KeyA,
		MoveRight:        common.KeyD,
		MoveAscend:       common.KeySpace,
		MoveDescend:      common.KeyLeftShift,
		ToggleGrabCursor: common.KeyEsc,
		LookLeft:         common.KeyLeft,
		LookRight:        common.KeyRight,
		LookUp:           common.KeyUp,
		LookDown:         common.KeyDown,
	}
}

// Settings is the shared, host-mutable configuration of the fly camera systems.
// Systems read a snapshot once per tick; writes from other goroutines take effect on the next tick.
type Settings interface {
	// Movement returns a snapshot of the movement settings.
	//
	// Returns:
	//   - MovementSettings: the current settings
	Movement() MovementSettings

	// SetMovement replaces the movement settings.
	//
	// Parameters:
	//   - m: the new settings
	SetMovement(m MovementSettings)

	// UpdateMovement applies fn to the movement settings under the write lock.
	//
	// Parameters:
	//   - fn: function mutating the settings in place
	UpdateMovement(fn func(m *MovementSettings))

	// KeyBindings returns a snapshot of the key bindings.
	//
	// Returns:
	//   - KeyBindings: the current bindings
	KeyBindings() KeyBindings

	// SetKeyBindings replaces the key bindings.
	//
	// Parameters:
	//   - b: the new bindings
	SetKeyBindings(b KeyBindings)

	// UpdateKeyBindings applies fn to the key bindings under the write lock.
	//
	// Parameters:
	//   - fn: function mutating the bindings in place
	UpdateKeyBindings(fn func(b *KeyBindings))
}

type settingsImpl struct {
	mu       *sync.RWMutex
	movement MovementSettings
	bindings KeyBindings
}

var _ Settings = &settingsImpl{}

// NewSettings creates Settings holding the given values.
//
// Parameters:
//   - movement: initial movement settings
//   - bindings: initial key bindings
//
// Returns:
//   - Settings: the settings store
func NewSettings(movement MovementSettings, bindings KeyBindings) Settings {
	return &settingsImpl{
		mu:       &sync.RWMutex{},
		movement: movement,
		bindings: bindings,
	}
}

// NewDefaultSettings creates Settings holding the default movement settings and key bindings.
//
// Returns:
//   - Settings: the settings store
func NewDefaultSettings() Settings {
	return NewSettings(DefaultMovementSettings(), DefaultKeyBindings())
}

func (s *settingsImpl) Movement() MovementSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.movement
}

func (s *settingsImpl) SetMovement(m MovementSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.movement = m
}

func (s *settingsImpl) UpdateMovement(fn func(m *MovementSettings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.movement)
}

func (s *settingsImpl) KeyBindings() KeyBindings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bindings
}

func (s *settingsImpl) SetKeyBindings(b KeyBindings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings = b
}

func (s *settingsImpl) UpdateKeyBindings(fn func(b *KeyBindings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.bindings)
}

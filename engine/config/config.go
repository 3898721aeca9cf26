// Package config loads fly camera and host settings from YAML or TOML files and keeps a live
// plugin in sync with them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/flycam"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither YAML nor TOML.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrUnknownKey is returned when a binding names a key that ParseKey does not recognize.
	ErrUnknownKey = errors.New("unknown key name")

	// ErrUnknownLookMode is returned for look modes other than "pointer" and "keyboard".
	ErrUnknownLookMode = errors.New("unknown look mode")
)

// File is the on-disk configuration.
type File struct {
	Movement    flycam.MovementSettings `yaml:"movement" toml:"movement"`
	Bindings    BindingsConfig          `yaml:"bindings" toml:"bindings"`
	LookMode    string                  `yaml:"look_mode" toml:"look_mode"`
	InitialGrab bool                    `yaml:"initial_grab" toml:"initial_grab"`
	TickRate    float64                 `yaml:"tick_rate" toml:"tick_rate"`
	Logging     LoggingConfig           `yaml:"logging" toml:"logging"`
	Window      WindowConfig            `yaml:"window" toml:"window"`
}

// BindingsConfig names the key bound to each action, e.g. "W", "Space", "ShiftLeft", "ArrowUp".
type BindingsConfig struct {
	MoveForward      string `yaml:"move_forward" toml:"move_forward"`
	MoveBackward     string `yaml:"move_backward" toml:"move_backward"`
	MoveLeft         string `yaml:"move_left" toml:"move_left"`
	MoveRight        string `yaml:"move_right" toml:"move_right"`
	MoveAscend       string `yaml:"move_ascend" toml:"move_ascend"`
	MoveDescend      string `yaml:"move_descend" toml:"move_descend"`
	ToggleGrabCursor string `yaml:"toggle_grab_cursor" toml:"toggle_grab_cursor"`
	LookLeft         string `yaml:"look_left" toml:"look_left"`
	LookRight        string `yaml:"look_right" toml:"look_right"`
	LookUp           string `yaml:"look_up" toml:"look_up"`
	LookDown         string `yaml:"look_down" toml:"look_down"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // console or json
}

type WindowConfig struct {
	Title  string `yaml:"title" toml:"title"`
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
}

// Load reads a configuration file, choosing the decoder by extension (.yaml, .yml or .toml).
// Values absent from the file keep their defaults. Key names and the look mode are validated.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - *File: the configuration
//   - error: read, parse or validation failure
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	f, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes configuration data in the format named by ext (".yaml", ".yml" or ".toml").
//
// Parameters:
//   - data: the encoded configuration
//   - ext: the file extension selecting the decoder
//
// Returns:
//   - *File: the configuration
//   - error: parse or validation failure
func Parse(data []byte, ext string) (*File, error) {
	f := defaults()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	f.normalize()

	if _, err := f.KeyBindings(); err != nil {
		return nil, err
	}
	if _, err := f.Look(); err != nil {
		return nil, err
	}
	return f, nil
}

func defaults() *File {
	b := flycam.DefaultKeyBindings()
	return &File{
		Movement: flycam.DefaultMovementSettings(),
		Bindings: BindingsConfig{
			MoveForward:      b.MoveForward.String(),
			MoveBackward:     b.MoveBackward.String(),
			MoveLeft:         b.MoveLeft.String(),
			MoveRight:        b.MoveRight.String(),
			MoveAscend:       b.MoveAscend.String(),
			MoveDescend:      b.MoveDescend.String(),
			ToggleGrabCursor: b.ToggleGrabCursor.String(),
			LookLeft:         b.LookLeft.String(),
			LookRight:        b.LookRight.String(),
			LookUp:           b.LookUp.String(),
			LookDown:         b.LookDown.String(),
		},
		LookMode:    flycam.LookModePointer.String(),
		InitialGrab: true,
		TickRate:    60,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Window: WindowConfig{
			Title:  "Fly Camera",
			Width:  1280,
			Height: 720,
		},
	}
}

// normalize restores defaults for fields a file explicitly left empty.
func (f *File) normalize() {
	d := defaults()
	f.LookMode = common.Coalesce(strings.ToLower(strings.TrimSpace(f.LookMode)), d.LookMode)
	f.TickRate = common.Coalesce(f.TickRate, d.TickRate)
	f.Logging.Level = common.Coalesce(f.Logging.Level, d.Logging.Level)
	f.Logging.Format = common.Coalesce(f.Logging.Format, d.Logging.Format)
	f.Window.Title = common.Coalesce(f.Window.Title, d.Window.Title)
	f.Window.Width = common.Coalesce(f.Window.Width, d.Window.Width)
	f.Window.Height = common.Coalesce(f.Window.Height, d.Window.Height)
}

// KeyBindings resolves the configured key names.
//
// Returns:
//   - flycam.KeyBindings: the resolved bindings
//   - error: ErrUnknownKey naming the first unresolvable action
func (f *File) KeyBindings() (flycam.KeyBindings, error) {
	var out flycam.KeyBindings
	fields := []struct {
		action string
		name   string
		dst    *common.Key
	}{
		{"move_forward", f.Bindings.MoveForward, &out.MoveForward},
		{"move_backward", f.Bindings.MoveBackward, &out.MoveBackward},
		{"move_left", f.Bindings.MoveLeft, &out.MoveLeft},
		{"move_right", f.Bindings.MoveRight, &out.MoveRight},
		{"move_ascend", f.Bindings.MoveAscend, &out.MoveAscend},
		{"move_descend", f.Bindings.MoveDescend, &out.MoveDescend},
		{"toggle_grab_cursor", f.Bindings.ToggleGrabCursor, &out.ToggleGrabCursor},
		{"look_left", f.Bindings.LookLeft, &out.LookLeft},
		{"look_right", f.Bindings.LookRight, &out.LookRight},
		{"look_up", f.Bindings.LookUp, &out.LookUp},
		{"look_down", f.Bindings.LookDown, &out.LookDown},
	}
	for _, field := range fields {
		k, ok := common.ParseKey(field.name)
		if !ok {
			return flycam.KeyBindings{}, fmt.Errorf("%w: %s = %q", ErrUnknownKey, field.action, field.name)
		}
		*field.dst = k
	}
	return out, nil
}

// Look resolves the configured look mode.
//
// Returns:
//   - flycam.LookMode: the look mode
//   - error: ErrUnknownLookMode if the name is not recognized
func (f *File) Look() (flycam.LookMode, error) {
	switch strings.ToLower(f.LookMode) {
	case flycam.LookModePointer.String(), "mouse":
		return flycam.LookModePointer, nil
	case flycam.LookModeKeyboard.String():
		return flycam.LookModeKeyboard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLookMode, f.LookMode)
	}
}

// PluginOptions converts the file into options for flycam.NewPlugin or flycam.NewNoCameraPlugin.
//
// Returns:
//   - []flycam.PluginBuilderOption: movement, bindings, look mode and initial grab
//   - error: validation failure
func (f *File) PluginOptions() ([]flycam.PluginBuilderOption, error) {
	bindings, err := f.KeyBindings()
	if err != nil {
		return nil, err
	}
	mode, err := f.Look()
	if err != nil {
		return nil, err
	}
	return []flycam.PluginBuilderOption{
		flycam.WithMovementSettings(f.Movement),
		flycam.WithKeyBindings(bindings),
		flycam.WithLookMode(mode),
		flycam.WithInitialGrab(f.InitialGrab),
	}, nil
}

// Target is what a reloaded configuration is applied to. flycam.Plugin satisfies it.
type Target interface {
	Settings() flycam.Settings
	SetLookMode(mode flycam.LookMode)
}

// Apply pushes movement settings, key bindings and look mode into a running plugin.
// Nothing is applied if validation fails.
//
// Parameters:
//   - t: the plugin to update
//
// Returns:
//   - error: validation failure
func (f *File) Apply(t Target) error {
	bindings, err := f.KeyBindings()
	if err != nil {
		return err
	}
	mode, err := f.Look()
	if err != nil {
		return err
	}
	s := t.Settings()
	s.SetMovement(f.Movement)
	s.SetKeyBindings(bindings)
	t.SetLookMode(mode)
	return nil
}

package common

import (
	"strconv"
	"strings"
)

// Key is a virtual key code for cross-platform input handling.
// Values match GLFW key codes, which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type Key uint32

const (
	KeyW     Key = 87 // W key (ASCII)
	KeyA     Key = 65 // A key (ASCII)
	KeyS     Key = 83 // S key (ASCII)
	KeyD     Key = 68 // D key (ASCII)
	KeyQ     Key = 81 // Q key (ASCII)
	KeyE     Key = 69 // E key (ASCII)
	KeyB     Key = 66 // B key (ASCII)
	KeyC     Key = 67 // C key (ASCII)
	KeyF     Key = 70 // F key (ASCII)
	KeyG     Key = 71 // G key (ASCII)
	KeyL     Key = 76 // L key (ASCII)
	KeyM     Key = 77 // M key (ASCII)
	KeyR     Key = 82 // R key (ASCII)
	KeyT     Key = 84 // T key (ASCII)
	KeyV     Key = 86 // V key (ASCII)
	KeyX     Key = 88 // X key (ASCII)
	KeyZ     Key = 90 // Z key (ASCII)
	KeySpace Key = 32 // Spacebar (ASCII)

	Key0 Key = 48 // 0 key (ASCII)
	Key1 Key = 49 // 1 key (ASCII)
	Key2 Key = 50 // 2 key (ASCII)
	Key3 Key = 51 // 3 key (ASCII)
	Key4 Key = 52 // 4 key (ASCII)
	Key5 Key = 53 // 5 key (ASCII)
	Key6 Key = 54 // 6 key (ASCII)
	Key7 Key = 55 // 7 key (ASCII)
	Key8 Key = 56 // 8 key (ASCII)
	Key9 Key = 57 // 9 key (ASCII)
)

// Additional non-printable keys
const (
	KeyEsc        Key = 256 // Escape key (GLFW)
	KeyEnter      Key = 257 // Enter key (GLFW)
	KeyTab        Key = 258 // Tab key (GLFW)
	KeyBackspace  Key = 259 // Backspace key (GLFW)
	KeyRight      Key = 262 // Right arrow (GLFW)
	KeyLeft       Key = 263 // Left arrow (GLFW)
	KeyDown       Key = 264 // Down arrow (GLFW)
	KeyUp         Key = 265 // Up arrow (GLFW)
	KeyLeftShift  Key = 340 // Left Shift (GLFW)
	KeyLeftCtrl   Key = 341 // Left Control (GLFW)
	KeyLeftAlt    Key = 342 // Left Alt (GLFW)
	KeyRightShift Key = 344 // Right Shift (GLFW)
	KeyRightCtrl  Key = 345 // Right Control (GLFW)
	KeyRightAlt   Key = 346 // Right Alt (GLFW)
)

// keyNames holds the canonical name of every non-alphanumeric key.
// Letters and digits are named by their ASCII character.
var keyNames = map[Key]string{
	KeySpace:      "Space",
	KeyEsc:        "Escape",
	KeyEnter:      "Enter",
	KeyTab:        "Tab",
	KeyBackspace:  "Backspace",
	KeyRight:      "ArrowRight",
	KeyLeft:       "ArrowLeft",
	KeyDown:       "ArrowDown",
	KeyUp:         "ArrowUp",
	KeyLeftShift:  "ShiftLeft",
	KeyLeftCtrl:   "ControlLeft",
	KeyLeftAlt:    "AltLeft",
	KeyRightShift: "ShiftRight",
	KeyRightCtrl:  "ControlRight",
	KeyRightAlt:   "AltRight",
}

// keyAliases maps alternate spellings accepted by ParseKey to their key.
var keyAliases = map[string]Key{
	"esc":   KeyEsc,
	"shift": KeyLeftShift,
	"ctrl":  KeyLeftCtrl,
	"alt":   KeyLeftAlt,
	"up":    KeyUp,
	"down":  KeyDown,
	"left":  KeyLeft,
	"right": KeyRight,
}

// String returns the canonical name of the key, e.g. "W", "Space" or "ShiftLeft".
// Unknown codes are rendered as "Key(<code>)".
//
// Returns:
//   - string: the key name
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if (k >= 'A' && k <= 'Z') || (k >= '0' && k <= '9') {
		return string(rune(k))
	}
	return "Key(" + strconv.FormatUint(uint64(k), 10) + ")"
}

// ParseKey resolves a key name into its Key code. Matching is case-insensitive and accepts
// canonical names ("ArrowUp"), single letters or digits ("w", "7"), "Key"-prefixed letters
// ("KeyW") and a few short aliases ("esc", "shift").
//
// Parameters:
//   - name: the key name to resolve
//
// Returns:
//   - Key: the resolved key
//   - bool: false if the name does not match any known key
func ParseKey(name string) (Key, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, false
	}
	lower := strings.ToLower(trimmed)
	for k, n := range keyNames {
		if strings.ToLower(n) == lower {
			return k, true
		}
	}
	if k, ok := keyAliases[lower]; ok {
		return k, true
	}

	single := strings.TrimPrefix(strings.TrimPrefix(lower, "key"), "digit")
	if len(single) == 1 {
		c := single[0]
		switch {
		case c >= 'a' && c <= 'z':
			return Key(c - 'a' + 'A'), true
		case c >= '0' && c <= '9':
			return Key(c), true
		}
	}
	return 0, false
}

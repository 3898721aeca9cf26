package window

import "errors"

// ErrNoPrimaryWindow is returned when a system asks for the primary window and none is
// available (not yet created, already closed, or ambiguous).
var ErrNoPrimaryWindow = errors.New("primary window not found")

// CursorGrabMode describes whether the system pointer is confined to the window.
type CursorGrabMode int

const (
	// CursorGrabNone leaves the pointer free to leave the window.
	CursorGrabNone CursorGrabMode = iota
	// CursorGrabConfined captures the pointer inside the window and reports relative motion.
	CursorGrabConfined
	// CursorGrabLocked pins the pointer in place. Platforms without a distinct locked mode
	// treat it as confined.
	CursorGrabLocked
)

// String returns a readable name for the grab mode.
func (m CursorGrabMode) String() string {
	switch m {
	case CursorGrabNone:
		return "none"
	case CursorGrabConfined:
		return "confined"
	case CursorGrabLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// Cursor is the pointer-capture and size surface of a window. It is the narrow view of a
// window consumed by input controllers, and is implemented by Window as well as by other hosts.
type Cursor interface {
	// CursorGrabMode returns the current pointer grab mode.
	//
	// Returns:
	//   - CursorGrabMode: the current grab mode
	CursorGrabMode() CursorGrabMode

	// SetCursorGrabMode requests a new pointer grab mode.
	//
	// Parameters:
	//   - mode: the grab mode to apply
	SetCursorGrabMode(mode CursorGrabMode)

	// CursorVisible reports whether the pointer is drawn over the window.
	//
	// Returns:
	//   - bool: true if the pointer is visible
	CursorVisible() bool

	// SetCursorVisible shows or hides the pointer.
	//
	// Parameters:
	//   - visible: true to show the pointer
	SetCursorVisible(visible bool)

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

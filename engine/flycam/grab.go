package flycam

import (
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"go.uber.org/zap"
)

// ToggleGrabCursor flips the window between a free, visible pointer and a confined, hidden one.
// Any grab mode other than CursorGrabNone is treated as grabbed and released.
//
// Parameters:
//   - c: the window cursor to toggle
func ToggleGrabCursor(c window.Cursor) {
	switch c.CursorGrabMode() {
	case window.CursorGrabNone:
		c.SetCursorGrabMode(window.CursorGrabConfined)
		c.SetCursorVisible(false)
	default:
		c.SetCursorGrabMode(window.CursorGrabNone)
		c.SetCursorVisible(true)
	}
}

// IsGrabbed reports whether the cursor is captured by the window.
//
// Parameters:
//   - c: the window cursor
//
// Returns:
//   - bool: true unless the grab mode is CursorGrabNone
func IsGrabbed(c window.Cursor) bool {
	return c.CursorGrabMode() != window.CursorGrabNone
}

// cursorGrab toggles the grab when the bound key was pressed this tick.
func (p *plugin) cursorGrab(_ float32) {
	win, err := p.app.PrimaryWindow()
	if err != nil {
		p.warnNoWindow("cursor_grab", err)
		return
	}
	if p.app.Input().JustPressed(p.settings.KeyBindings().ToggleGrabCursor) {
		ToggleGrabCursor(win)
		p.logger.Debug("cursor grab toggled", zap.Stringer("grab_mode", win.CursorGrabMode()))
	}
}

// initialGrabCursor grabs the cursor once at startup.
func (p *plugin) initialGrabCursor() {
	win, err := p.app.PrimaryWindow()
	if err != nil {
		p.warnNoWindow("initial_grab_cursor", err)
		return
	}
	ToggleGrabCursor(win)
}

// initialGrabOnFlyCamSpawn grabs the cursor on the first tick in which a fly camera was added.
// The hook is spent after its first attempt, even if the window was missing.
func (p *plugin) initialGrabOnFlyCamSpawn(_ float32) {
	if p.initialGrabDone.Load() {
		return
	}
	if len(p.app.World().Added(Marker)) == 0 {
		return
	}
	p.initialGrabDone.Store(true)
	p.initialGrabCursor()
}

// warnNoWindow logs the single recoverable failure of the fly camera systems.
func (p *plugin) warnNoWindow(system string, err error) {
	p.logger.Warn("primary window not found, skipping tick",
		zap.String("system", system),
		zap.Error(err),
	)
}

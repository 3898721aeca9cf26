package ebitenhost

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"github.com/hajimehoshi/ebiten/v2"
)

// cursor implements window.Cursor on top of ebiten's global cursor mode.
type cursor struct {
	mu *sync.Mutex

	grabMode window.CursorGrabMode
	visible  bool
	width    int
	height   int

	// apply pushes the mode to ebiten; replaced in tests.
	apply func(ebiten.CursorModeType)

	// changed is set when the mode changed so the next motion sample starts fresh.
	changed bool
}

var _ window.Cursor = &cursor{}

func newCursor(width, height int) *cursor {
	return &cursor{
		mu:      &sync.Mutex{},
		visible: true,
		width:   width,
		height:  height,
		apply:   ebiten.SetCursorMode,
	}
}

// ebitenCursorMode maps a grab mode and visibility onto ebiten's cursor modes.
// Any grab captures the cursor, which also hides it.
func ebitenCursorMode(mode window.CursorGrabMode, visible bool) ebiten.CursorModeType {
	switch {
	case mode != window.CursorGrabNone:
		return ebiten.CursorModeCaptured
	case !visible:
		return ebiten.CursorModeHidden
	default:
		return ebiten.CursorModeVisible
	}
}

func (c *cursor) CursorGrabMode() window.CursorGrabMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grabMode
}

func (c *cursor) SetCursorGrabMode(mode window.CursorGrabMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.grabMode = mode
	c.push()
}

func (c *cursor) CursorVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

func (c *cursor) SetCursorVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = visible
	c.push()
}

func (c *cursor) Width() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width
}

func (c *cursor) Height() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height
}

func (c *cursor) setSize(width, height int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.width = width
	c.height = height
}

// takeChanged reports and clears the mode-changed flag.
func (c *cursor) takeChanged() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	changed := c.changed
	c.changed = false
	return changed
}

// push applies the current state. Caller must hold the mutex.
func (c *cursor) push() {
	c.changed = true
	if c.apply != nil {
		c.apply(ebitenCursorMode(c.grabMode, c.visible))
	}
}

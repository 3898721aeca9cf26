package flycam

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/engine"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"go.uber.org/zap"
)

const eps = 1e-4

// fakeCursor records cursor changes in place of a platform window.
type fakeCursor struct {
	mu      sync.Mutex
	mode    window.CursorGrabMode
	visible bool
	width   int
	height  int
}

func newFakeCursor() *fakeCursor {
	return &fakeCursor{visible: true, width: 1280, height: 720}
}

func (c *fakeCursor) CursorGrabMode() window.CursorGrabMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *fakeCursor) SetCursorGrabMode(mode window.CursorGrabMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = mode
}

func (c *fakeCursor) CursorVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

func (c *fakeCursor) SetCursorVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = visible
}

func (c *fakeCursor) Width() int  { return c.width }
func (c *fakeCursor) Height() int { return c.height }

// newHeadless builds an engine around a fake cursor with the plugin already added.
func newHeadless(t *testing.T, p Plugin, cursor window.Cursor, logger *zap.Logger) engine.Engine {
	t.Helper()
	opts := []engine.EngineBuilderOption{engine.WithLogger(logger)}
	if cursor != nil {
		opts = append(opts, engine.WithPrimaryWindow(cursor))
	}
	e := engine.NewEngine(opts...)
	e.AddPlugin(p)
	return e
}

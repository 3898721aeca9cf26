package window

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

// Window provides platform windowing, cursor capture and input event handling.
// Wraps platform-specific window implementations with a common interface.
//
// Cursor state may be read and written from any goroutine. Changes are cached and applied
// to the platform window on the thread running ProcessMessages.
type Window interface {
	Cursor

	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events.
	// Auto-repeat events are not reported.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(key common.Key))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(key common.Key))

	// SetMouseMotionCallback sets the callback for relative mouse motion.
	// Deltas are in pixels since the previous cursor position event; the first event after
	// a grab mode change only re-bases the position and is not reported.
	//
	// Parameters:
	//   - callback: function receiving the x and y deltas
	SetMouseMotionCallback(callback func(dx, dy float32))

	// SetFocusCallback sets the callback for focus changes.
	//
	// Parameters:
	//   - callback: function receiving true when the window gains focus
	SetFocusCallback(callback func(focused bool))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Applies pending cursor changes and calls the
	// update callback each iteration.
	ProcessMessages()
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, cursor state and event callbacks.
type engineWindow struct {
	mu *sync.Mutex

	// title is the window title displayed in the title bar.
	title string

	// maxWidth, maxHeight, minWidth and minHeight bound the window size during resize.
	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width is the current window client area width in pixels.
	width int

	// height is the current window client area height in pixels.
	height int

	// grabMode and cursorVisible are the requested cursor state.
	grabMode      CursorGrabMode
	cursorVisible bool

	// cursorDirty is set when the cursor state changed and has not been applied to the platform window.
	cursorDirty bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	logger *zap.Logger

	onUpdate      func()
	onResize      func(width, height int)
	onKeyDown     func(key common.Key)
	onKeyUp       func(key common.Key)
	onMouseMotion func(dx, dy float32)
	onFocus       func(focused bool)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
// Panics if the platform window cannot be created.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		mu:            &sync.Mutex{},
		title:         "Default Window Title",
		maxWidth:      1600,
		maxHeight:     1200,
		minWidth:      600,
		minHeight:     200,
		width:         1280,
		height:        720,
		grabMode:      CursorGrabNone,
		cursorVisible: true,
		logger:        zap.NewNop(),
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(key common.Key)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(key common.Key)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetMouseMotionCallback(callback func(dx, dy float32)) {
	w.onMouseMotion = callback
}

func (w *engineWindow) SetFocusCallback(callback func(focused bool)) {
	w.onFocus = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		platformApplyCursor(w)

		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) CursorGrabMode() CursorGrabMode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.grabMode
}

func (w *engineWindow) SetCursorGrabMode(mode CursorGrabMode) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.grabMode == mode {
		return
	}
	w.grabMode = mode
	w.cursorDirty = true
}

func (w *engineWindow) CursorVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursorVisible
}

func (w *engineWindow) SetCursorVisible(visible bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cursorVisible == visible {
		return
	}
	w.cursorVisible = visible
	w.cursorDirty = true
}

func (w *engineWindow) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

func (w *engineWindow) Height() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

// takeCursorState returns the requested cursor state and clears the dirty flag.
//
// Returns:
//   - CursorGrabMode: the requested grab mode
//   - bool: the requested visibility
//   - bool: true if the state changed since the last call
func (w *engineWindow) takeCursorState() (CursorGrabMode, bool, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	dirty := w.cursorDirty
	w.cursorDirty = false
	return w.grabMode, w.cursorVisible, dirty
}

// setSize records the framebuffer size reported by the platform.
func (w *engineWindow) setSize(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width = width
	w.height = height
}

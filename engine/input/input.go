package input

import (
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-flycam/common"
)

// MouseMotion is one relative pointer movement, in pixels.
type MouseMotion struct {
	// DX is the horizontal movement, positive to the right.
	DX float32
	// DY is the vertical movement, positive downward.
	DY float32
}

// Reader is the per-tick view of input consumed by systems.
type Reader interface {
	// Pressed returns the keys currently held, in ascending key code order.
	//
	// Returns:
	//   - []common.Key: the held keys
	Pressed() []common.Key

	// IsPressed reports whether key is currently held.
	//
	// Parameters:
	//   - key: the key to check
	//
	// Returns:
	//   - bool: true if held
	IsPressed(key common.Key) bool

	// JustPressed reports whether key transitioned to pressed before the current tick began.
	// Presses arriving while a tick runs are reported on the next tick.
	//
	// Parameters:
	//   - key: the key to check
	//
	// Returns:
	//   - bool: true if freshly pressed this tick
	JustPressed(key common.Key) bool

	// ReadMotion returns and drains the mouse motion events queued since the previous read.
	// A second call in the same tick returns nothing.
	//
	// Returns:
	//   - []MouseMotion: queued events in arrival order
	ReadMotion() []MouseMotion
}

// State tracks keyboard and mouse input between ticks. Writers are window callbacks,
// readers are tick systems; all methods are safe for concurrent use.
type State struct {
	mu *sync.Mutex

	held map[common.Key]struct{}
	// pending collects presses since the last BeginTick; justPressed is the current tick's copy.
	pending     map[common.Key]struct{}
	justPressed map[common.Key]struct{}
	motion      []MouseMotion

	// maxMotion bounds the queue when nothing reads it; the oldest events are dropped.
	maxMotion int
}

var _ Reader = &State{}

// NewState creates an empty input state.
//
// Parameters:
//   - options: functional options to configure the state
//
// Returns:
//   - *State: the new state
func NewState(options ...StateOption) *State {
	s := &State{
		mu:          &sync.Mutex{},
		held:        make(map[common.Key]struct{}),
		pending:     make(map[common.Key]struct{}),
		justPressed: make(map[common.Key]struct{}),
		motion:      make([]MouseMotion, 0, 16),
		maxMotion:   1024,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// KeyDown records a key press. Repeated presses of a held key are not edges.
//
// Parameters:
//   - key: the pressed key
func (s *State) KeyDown(key common.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.held[key]; ok {
		return
	}
	s.held[key] = struct{}{}
	s.pending[key] = struct{}{}
}

// KeyUp records a key release.
//
// Parameters:
//   - key: the released key
func (s *State) KeyUp(key common.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.held, key)
}

// MouseMoved queues a relative pointer movement.
//
// Parameters:
//   - dx, dy: movement in pixels
func (s *State) MouseMoved(dx, dy float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.motion) >= s.maxMotion {
		s.motion = s.motion[1:]
	}
	s.motion = append(s.motion, MouseMotion{DX: dx, DY: dy})
}

// Reset releases every key and discards queued motion, e.g. when the window loses focus.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.held)
	clear(s.pending)
	clear(s.justPressed)
	s.motion = s.motion[:0]
}

// BeginTick makes the presses recorded since the previous BeginTick the just-pressed set
// of the tick about to run. Called by the engine before any system of a tick runs.
func (s *State) BeginTick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.justPressed, s.pending = s.pending, s.justPressed
	clear(s.pending)
}

func (s *State) Pressed() []common.Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]common.Key, 0, len(s.held))
	for k := range s.held {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *State) IsPressed(key common.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.held[key]
	return ok
}

func (s *State) JustPressed(key common.Key) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.justPressed[key]
	return ok
}

func (s *State) ReadMotion() []MouseMotion {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.motion) == 0 {
		return nil
	}
	out := make([]MouseMotion, len(s.motion))
	copy(out, s.motion)
	s.motion = s.motion[:0]
	return out
}

// StateOption is a functional option for configuring a State.
type StateOption func(*State)

// WithMaxQueuedMotion bounds the number of undrained mouse motion events.
//
// Parameters:
//   - n: maximum queued events (values < 1 are ignored)
//
// Returns:
//   - StateOption: option function to apply
func WithMaxQueuedMotion(n int) StateOption {
	return func(s *State) {
		if n > 0 {
			s.maxMotion = n
		}
	}
}

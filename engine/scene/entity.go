package scene

import (
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-flycam/common"
)

// Entity is a scene object with a transform and a set of markers.
// Transform access is synchronized per entity.
type Entity interface {
	// ID returns the entity's unique identifier.
	//
	// Returns:
	//   - uint64: the entity ID
	ID() uint64

	// Transform returns a copy of the entity's transform.
	//
	// Returns:
	//   - common.Transform: the current transform
	Transform() common.Transform

	// SetTransform replaces the entity's transform.
	//
	// Parameters:
	//   - t: the new transform
	SetTransform(t common.Transform)

	// UpdateTransform applies fn to the transform under the entity's lock, so a
	// read-modify-write cannot interleave with another writer.
	//
	// Parameters:
	//   - fn: function mutating the transform in place
	UpdateTransform(fn func(t *common.Transform))

	// HasMarker reports whether the entity carries the marker.
	//
	// Parameters:
	//   - m: the marker to check
	//
	// Returns:
	//   - bool: true if present
	HasMarker(m Marker) bool

	// Markers returns the entity's markers in sorted order.
	//
	// Returns:
	//   - []Marker: the markers
	Markers() []Marker
}

type entity struct {
	mu        *sync.RWMutex
	id        uint64
	transform common.Transform
	markers   map[Marker]struct{}
}

var _ Entity = &entity{}

func (e *entity) ID() uint64 {
	return e.id
}

func (e *entity) Transform() common.Transform {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.transform
}

func (e *entity) SetTransform(t common.Transform) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.transform = t
}

func (e *entity) UpdateTransform(fn func(t *common.Transform)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.transform)
}

func (e *entity) HasMarker(m Marker) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.markers[m]
	return ok
}

func (e *entity) Markers() []Marker {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Marker, 0, len(e.markers))
	for m := range e.markers {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// addMarker attaches m and reports whether it was newly added.
func (e *entity) addMarker(m Marker) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.markers[m]; ok {
		return false
	}
	e.markers[m] = struct{}{}
	return true
}

func (e *entity) removeMarker(m Marker) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.markers, m)
}

package scene

import (
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-flycam/common"
)

// Marker tags entities with a capability, e.g. "controllable fly camera".
// An entity carries any number of markers; systems select entities by filtering on them.
type Marker string

// World is a registry of entities with transforms and markers.
// It tracks which entities gained a marker so systems can react to newly added entities;
// each addition is reported for exactly one tracker generation. Thread-safe for concurrent access.
type World interface {
	// Spawn creates an entity with the given transform and markers.
	//
	// Parameters:
	//   - t: the initial transform
	//   - markers: markers to attach
	//
	// Returns:
	//   - Entity: the new entity
	Spawn(t common.Transform, markers ...Marker) Entity

	// Entity looks up an entity by ID.
	//
	// Parameters:
	//   - id: the entity ID
	//
	// Returns:
	//   - Entity: the entity, or nil if not found
	Entity(id uint64) Entity

	// Despawn removes an entity.
	//
	// Parameters:
	//   - id: the entity ID
	//
	// Returns:
	//   - bool: true if the entity existed
	Despawn(id uint64) bool

	// AddMarker attaches a marker to an existing entity. Adding a marker the entity already
	// carries is a no-op and does not count as an addition.
	//
	// Parameters:
	//   - id: the entity ID
	//   - m: the marker to add
	//
	// Returns:
	//   - bool: true if the entity exists
	AddMarker(id uint64, m Marker) bool

	// RemoveMarker detaches a marker from an entity.
	//
	// Parameters:
	//   - id: the entity ID
	//   - m: the marker to remove
	//
	// Returns:
	//   - bool: true if the entity exists
	RemoveMarker(id uint64, m Marker) bool

	// Query returns every entity carrying the marker, ordered by ID.
	//
	// Parameters:
	//   - m: the marker to filter on
	//
	// Returns:
	//   - []Entity: matching entities
	Query(m Marker) []Entity

	// Added returns the entities that gained the marker before the last AdvanceTrackers call,
	// ordered by ID. Additions made after that call are reported once the next call promotes them.
	// Entities despawned or unmarked in the meantime are omitted.
	//
	// Parameters:
	//   - m: the marker to filter on
	//
	// Returns:
	//   - []Entity: newly marked entities
	Added(m Marker) []Entity

	// AdvanceTrackers drops the additions Added currently reports and promotes those recorded
	// since the previous call. Called by the engine at the start of each tick.
	AdvanceTrackers()

	// ForEach calls fn for every entity carrying the marker. Once the match count reaches
	// the parallel threshold the calls fan out over the world's worker pool; ForEach returns
	// only after every call finished. fn must only mutate the entity it is given.
	//
	// Parameters:
	//   - m: the marker to filter on
	//   - fn: the function to apply
	ForEach(m Marker, fn func(Entity))

	// Count returns the number of live entities.
	//
	// Returns:
	//   - int: the entity count
	Count() int
}

// world is the implementation of the World interface.
type world struct {
	mu *sync.RWMutex

	entities map[uint64]*entity
	nextID   uint64

	// pending records marker additions since the last AdvanceTrackers; added is what Added reports.
	pending map[Marker]map[uint64]struct{}
	added   map[Marker]map[uint64]struct{}

	// pool runs ForEach calls in parallel once parallelThreshold is reached.
	// Workers persist across ticks, avoiding per-tick goroutine spawn/teardown overhead.
	pool              worker.DynamicWorkerPool
	workers           int
	parallelThreshold int
}

var _ World = &world{}

// NewWorld creates an empty World.
//
// Parameters:
//   - options: functional options to configure the world
//
// Returns:
//   - World: the new world
func NewWorld(options ...WorldBuilderOption) World {
	w := &world{
		mu:                &sync.RWMutex{},
		entities:          make(map[uint64]*entity),
		nextID:            1,
		pending:           make(map[Marker]map[uint64]struct{}),
		added:             make(map[Marker]map[uint64]struct{}),
		workers:           max(runtime.NumCPU()-1, 1),
		parallelThreshold: 64,
	}
	for _, opt := range options {
		opt(w)
	}

	// Initialize the pool after options so WithWorkers can override the default.
	w.pool = worker.NewDynamicWorkerPool(w.workers, 256, 1*time.Second)
	return w
}

func (w *world) Spawn(t common.Transform, markers ...Marker) Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	e := &entity{
		mu:        &sync.RWMutex{},
		id:        w.nextID,
		transform: t,
		markers:   make(map[Marker]struct{}, len(markers)),
	}
	w.nextID++
	w.entities[e.id] = e

	for _, m := range markers {
		if _, ok := e.markers[m]; ok {
			continue
		}
		e.markers[m] = struct{}{}
		w.trackAdded(e.id, m)
	}
	return e
}

func (w *world) Entity(id uint64) Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if e, ok := w.entities[id]; ok {
		return e
	}
	return nil
}

func (w *world) Despawn(id uint64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.entities[id]; !ok {
		return false
	}
	delete(w.entities, id)
	for _, tracked := range []map[Marker]map[uint64]struct{}{w.pending, w.added} {
		for _, ids := range tracked {
			delete(ids, id)
		}
	}
	return true
}

func (w *world) AddMarker(id uint64, m Marker) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	e, ok := w.entities[id]
	if !ok {
		return false
	}
	if e.addMarker(m) {
		w.trackAdded(id, m)
	}
	return true
}

func (w *world) RemoveMarker(id uint64, m Marker) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	e, ok := w.entities[id]
	if !ok {
		return false
	}
	e.removeMarker(m)
	delete(w.pending[m], id)
	delete(w.added[m], id)
	return true
}

func (w *world) Query(m Marker) []Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]Entity, 0)
	for _, id := range w.sortedIDs() {
		e := w.entities[id]
		if e.HasMarker(m) {
			out = append(out, e)
		}
	}
	return out
}

func (w *world) Added(m Marker) []Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()
	ids := w.added[m]
	if len(ids) == 0 {
		return nil
	}
	sorted := make([]uint64, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	slices.Sort(sorted)
	out := make([]Entity, 0, len(sorted))
	for _, id := range sorted {
		if e, ok := w.entities[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

func (w *world) AdvanceTrackers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.added, w.pending = w.pending, w.added
	clear(w.pending)
}

func (w *world) ForEach(m Marker, fn func(Entity)) {
	matches := w.Query(m)
	if len(matches) < w.parallelThreshold {
		for _, e := range matches {
			fn(e)
		}
		return
	}

	// A WaitGroup provides the per-tick barrier; pool.Wait() blocks until workers
	// idle-exit which is unsuitable for tick-rate workloads.
	var wg sync.WaitGroup
	for i, e := range matches {
		wg.Add(1)
		eCap := e
		w.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				fn(eCap)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

func (w *world) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entities)
}

// trackAdded records that entity id gained marker m. Caller must hold the write lock.
func (w *world) trackAdded(id uint64, m Marker) {
	ids, ok := w.pending[m]
	if !ok {
		ids = make(map[uint64]struct{})
		w.pending[m] = ids
	}
	ids[id] = struct{}{}
}

// sortedIDs returns live entity IDs in ascending order. Caller must hold a lock.
func (w *world) sortedIDs() []uint64 {
	ids := make([]uint64, 0, len(w.entities))
	for id := range w.entities {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

package scene

// WorldBuilderOption is a functional option for configuring a World.
type WorldBuilderOption func(*world)

// WithWorkers sets the number of pool workers used by ForEach.
//
// Parameters:
//   - n: worker count (values < 1 are ignored)
//
// Returns:
//   - WorldBuilderOption: option function to apply
func WithWorkers(n int) WorldBuilderOption {
	return func(w *world) {
		if n > 0 {
			w.workers = n
		}
	}
}

// WithParallelThreshold sets the number of matching entities at which ForEach switches
// from sequential calls to the worker pool.
//
// Parameters:
//   - n: match count threshold (values < 1 are ignored)
//
// Returns:
//   - WorldBuilderOption: option function to apply
func WithParallelThreshold(n int) WorldBuilderOption {
	return func(w *world) {
		if n > 0 {
			w.parallelThreshold = n
		}
	}
}

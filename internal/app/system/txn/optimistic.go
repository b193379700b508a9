// Package txn models the optimistic update-then-revert step used by admin
// toggle actions: snapshot the prior state, apply the tentative state, and
// restore the snapshot if the server rejects the change.
package txn

// Optimistic wraps a value with a saved snapshot.
type Optimistic[T any] struct {
	current  T
	snapshot T
	applied  bool
}

// Begin snapshots the value and returns the transaction. clone must produce
// an independent copy; for slices of structs a simple append copy suffices.
func Begin[T any](value T, clone func(T) T) *Optimistic[T] {
	return &Optimistic[T]{current: value, snapshot: clone(value)}
}

// Apply mutates the current value tentatively.
func (o *Optimistic[T]) Apply(mutate func(*T)) {
	mutate(&o.current)
	o.applied = true
}

// Commit keeps the tentative state and returns it.
func (o *Optimistic[T]) Commit() T {
	return o.current
}

// Revert restores the snapshot and returns it.
func (o *Optimistic[T]) Revert() T {
	o.current = o.snapshot
	o.applied = false
	return o.current
}

// Value returns the state as currently visible (tentative or reverted).
func (o *Optimistic[T]) Value() T {
	return o.current
}

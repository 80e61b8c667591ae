// Package handle implements the append-only object store the rest of the
// kernel uses for topological entities, grounded on fj-core's
// storage::{Store, Handle} pair. Go has a garbage collector, so there is no
// need for fj-core's Arc-based reference counting; a Handle here is a thin,
// comparable wrapper around a pointer, and identity (not structural)
// equality is exactly pointer equality.
package handle

// Handle refers to a single object of type T owned by some Store[T]. Two
// handles are equal if and only if they refer to the same stored object,
// never by comparing the objects' contents — this is what lets topology
// entities sit in maps and sets keyed on "same vertex" rather than
// "equal-valued vertex".
type Handle[T any] struct {
	ptr *T
}

// Get dereferences the handle to access the object it refers to. A zero
// Handle (one that was never produced by a Store) returns nil.
func (h Handle[T]) Get() *T {
	return h.ptr
}

// IsZero reports whether h is the zero Handle, i.e. was never produced by a
// Store.Insert call.
func (h Handle[T]) IsZero() bool {
	return h.ptr == nil
}

// Equal reports whether h and o refer to the same stored object.
func (h Handle[T]) Equal(o Handle[T]) bool {
	return h.ptr == o.ptr
}

package registry

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"

	"github.com/gregoryfmartin/zipassets/metrics"
)

// entry pairs a name with the handle the registry owns.
type entry[T any] struct {
	name   string
	handle T
}

// Registry is an ordered, name-unique collection of resource handles.
//
// The zero value is not usable; construct with New.
type Registry[T any] struct {
	entries   []entry[T]
	dispose   func(T)
	name      string
	capacity  int
	logger    *slog.Logger
	destroyed bool
}

// New creates an empty registry.
//
// dispose releases a handle the registry no longer holds. It is called
// exactly once per handle the registry takes ownership of. A nil dispose
// means handles need no release.
func New[T any](dispose func(T), opts ...Option) *Registry[T] {
	cfg := config{
		name:     defaultName,
		capacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry[T]{
		dispose:  dispose,
		name:     cfg.name,
		capacity: cfg.capacity,
		logger:   cfg.logger,
	}
}

// log returns the logger, falling back to a discard logger if nil.
func (r *Registry[T]) log() *slog.Logger {
	if r.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.logger
}

// Name returns the registry's label.
func (r *Registry[T]) Name() string {
	return r.name
}

// Len returns the number of live entries.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}

// Insert appends handle under name and returns its index, which is Len()-1.
//
// If name is already present the registry is unchanged, handle is disposed
// and ErrDuplicateName is returned. After Destroy, handle is disposed and
// ErrDestroyed is returned.
func (r *Registry[T]) Insert(name string, handle T) (int, error) {
	if r.destroyed {
		r.release(handle)
		return -1, ErrDestroyed
	}
	if r.IndexOf(name) >= 0 {
		r.release(handle)
		return -1, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	if r.entries == nil {
		r.entries = make([]entry[T], 0, r.capacity)
	}
	r.entries = append(r.entries, entry[T]{name: name, handle: handle})
	r.sizeChanged()
	return len(r.entries) - 1, nil
}

// Replace stores handle under name at index i, releasing the handle that was
// there. The index of every entry is unchanged.
//
// handle must not be the one already stored at i. name may equal the
// current name at i. If i is out of range, or name is held by a different
// index, the registry is unchanged, handle is disposed and
// ErrIndexOutOfRange or ErrDuplicateName is returned. After Destroy,
// handle is disposed and ErrDestroyed is returned.
func (r *Registry[T]) Replace(i int, name string, handle T) error {
	if r.destroyed {
		r.release(handle)
		return ErrDestroyed
	}
	if i < 0 || i >= len(r.entries) {
		r.release(handle)
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(r.entries))
	}
	if j := r.IndexOf(name); j >= 0 && j != i {
		r.release(handle)
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	old := r.entries[i].handle
	r.entries[i] = entry[T]{name: name, handle: handle}
	r.release(old)
	return nil
}

// Get returns the handle stored under name.
func (r *Registry[T]) Get(name string) (T, error) {
	var zero T
	if r.destroyed {
		return zero, ErrDestroyed
	}
	i := r.IndexOf(name)
	if i < 0 {
		return zero, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return r.entries[i].handle, nil
}

// At returns the handle at index i.
func (r *Registry[T]) At(i int) (T, error) {
	var zero T
	if r.destroyed {
		return zero, ErrDestroyed
	}
	if i < 0 || i >= len(r.entries) {
		return zero, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(r.entries))
	}
	return r.entries[i].handle, nil
}

// NameAt returns the name at index i.
func (r *Registry[T]) NameAt(i int) (string, error) {
	if r.destroyed {
		return "", ErrDestroyed
	}
	if i < 0 || i >= len(r.entries) {
		return "", fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(r.entries))
	}
	return r.entries[i].name, nil
}

// IndexOf returns the index of name, or -1 if it is not present.
// Names are compared by content.
func (r *Registry[T]) IndexOf(name string) int {
	return slices.IndexFunc(r.entries, func(e entry[T]) bool { return e.name == name })
}

// Contains reports whether name is present.
func (r *Registry[T]) Contains(name string) bool {
	return r.IndexOf(name) >= 0
}

// Remove disposes and removes the entry stored under name.
// Later entries shift down by one index. Returns false if name is absent.
func (r *Registry[T]) Remove(name string) bool {
	i := r.IndexOf(name)
	if i < 0 {
		return false
	}
	return r.RemoveAt(i)
}

// RemoveAt disposes and removes the entry at index i.
// Later entries shift down by one index. An out-of-range index is a no-op
// and returns false.
func (r *Registry[T]) RemoveAt(i int) bool {
	if r.destroyed || i < 0 || i >= len(r.entries) {
		return false
	}
	handle := r.entries[i].handle
	r.entries = slices.Delete(r.entries, i, i+1)
	r.release(handle)
	r.sizeChanged()
	return true
}

// Names returns entry names in index order.
func (r *Registry[T]) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.name
	}
	return names
}

// All returns an iterator over (name, handle) pairs in index order.
// The registry must not be mutated during iteration.
func (r *Registry[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, e := range r.entries {
			if !yield(e.name, e.handle) {
				return
			}
		}
	}
}

// Destroy disposes every remaining handle in index order and releases the
// registry's storage.
//
// Destroy must be called once. A second call returns ErrDestroyed and
// disposes nothing.
func (r *Registry[T]) Destroy() error {
	if r.destroyed {
		return ErrDestroyed
	}
	r.destroyed = true
	n := len(r.entries)
	for _, e := range r.entries {
		r.release(e.handle)
	}
	r.entries = nil
	r.sizeChanged()
	r.log().Debug("registry destroyed", "registry", r.name, "released", n)
	return nil
}

// Destroyed reports whether Destroy has been called.
func (r *Registry[T]) Destroyed() bool {
	return r.destroyed
}

func (r *Registry[T]) release(handle T) {
	if r.dispose == nil {
		return
	}
	r.dispose(handle)
	metrics.Disposed.WithLabelValues(r.name).Inc()
}

func (r *Registry[T]) sizeChanged() {
	metrics.RegistrySize.WithLabelValues(r.name).Set(float64(len(r.entries)))
}

package style

import (
	"sync"

	"go.uber.org/zap"
)

// Value is anything the registry can deduplicate.
type Value interface {
	Hash() Digest
}

// Entry is one deduplicated value with its stable index.
type Entry[T Value] struct {
	Index int
	Hash  Digest
	Value T
}

// Registry maps structural hashes of concrete values to a single shared
// instance and a stable index assigned in first-seen order. Indexes are never
// reused or renumbered for the life of the registry.
type Registry[T Value] struct {
	mu      sync.Mutex
	index   map[Digest]int
	entries []Entry[T]
	name    string
	log     *zap.Logger
}

// NewRegistry creates an empty registry. name is only used for logging.
func NewRegistry[T Value](name string, log *zap.Logger) *Registry[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry[T]{
		index: make(map[Digest]int),
		name:  name,
		log:   log,
	}
}

// Register returns the index of v, adding it if no structurally equal value
// has been registered before.
func (r *Registry[T]) Register(v T) int {
	h := v.Hash()

	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, ok := r.index[h]; ok {
		return idx
	}
	idx := len(r.entries)
	r.entries = append(r.entries, Entry[T]{Index: idx, Hash: h, Value: v})
	r.index[h] = idx
	r.log.Debug("Registered new style value", zap.String("registry", r.name), zap.Int("index", idx), zap.Stringer("hash", h))
	return idx
}

// Lookup returns the shared value stored under idx.
func (r *Registry[T]) Lookup(idx int) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx < 0 || idx >= len(r.entries) {
		var zero T
		return zero, false
	}
	return r.entries[idx].Value, true
}

// IndexOf returns the index of a value structurally equal to v, if any.
func (r *Registry[T]) IndexOf(v T) (int, bool) {
	h := v.Hash()

	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.index[h]
	return idx, ok
}

// Entries returns a snapshot of all entries in ascending index order.
func (r *Registry[T]) Entries() []Entry[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry[T], len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

package rowza

import "sync"

// Cleanable is implemented by stores that need frame-based cleanup.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

// Global registry for automatic cleanup of all FrameStores.
var (
	registeredStores []Cleanable
	registryMu       sync.Mutex
	currentFrame     uint64
)

// registerStore adds a store to the global cleanup registry.
// Called automatically by NewFrameStore.
func registerStore(store Cleanable) {
	registryMu.Lock()
	registeredStores = append(registeredStores, store)
	registryMu.Unlock()
}

// NextFrame advances the frame counter and cleans all registered stores.
// Context.Reset calls it once per frame. Entries not accessed in the
// previous frame are removed.
func NextFrame() {
	currentFrame++
	registryMu.Lock()
	stores := registeredStores
	registryMu.Unlock()

	for _, store := range stores {
		store.Cleanup(currentFrame)
	}
}

// CurrentFrameCount returns the current frame counter.
func CurrentFrameCount() uint64 {
	return currentFrame
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore holds per-widget state keyed by ID. An entry lives as long as
// its widget keeps drawing: the first Get creates it from a default (mount),
// and the first frame that skips the widget drops it (unmount).
//
// Create one store per state type at package level:
//
//	var tableStore = rowza.NewFrameStore[DataTableState]()
//
//	state := tableStore.Get(id, initial)
//	state.SetSearch("bob") // persists until the widget stops drawing
type FrameStore[T any] struct {
	states  map[ID]*stateEntry[T]
	onEvict func(id ID, value T)
	mu      sync.RWMutex
}

// NewFrameStore creates a store and registers it for automatic cleanup.
func NewFrameStore[T any]() *FrameStore[T] {
	store := &FrameStore[T]{
		states: make(map[ID]*stateEntry[T]),
	}
	registerStore(store)
	return store
}

// OnEvict registers fn to run for every entry Cleanup drops.
func (s *FrameStore[T]) OnEvict(fn func(id ID, value T)) *FrameStore[T] {
	s.mu.Lock()
	s.onEvict = fn
	s.mu.Unlock()
	return s
}

// Get returns the state for id, creating it with init() the first time.
// init is not called when the entry exists. The returned pointer stays
// valid until the entry is evicted.
func (s *FrameStore[T]) Get(id ID, init func() T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.states[id]
	if !ok {
		entry = &stateEntry[T]{value: init()}
		s.states[id] = entry
	}
	entry.lastFrame = currentFrame
	return &entry.value
}

// GetIfExists returns the state for id, or nil. It does not mark the entry
// as used.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Delete removes the state for id without calling the evict hook.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.states, id)
	s.mu.Unlock()
}

// Cleanup removes entries that were not accessed in the previous frame.
// NextFrame calls it; don't call it manually.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.mu.Lock()
	var evicted []ID
	var values []T
	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
			if s.onEvict != nil {
				evicted = append(evicted, id)
				values = append(values, entry.value)
			}
		}
	}
	fn := s.onEvict
	s.mu.Unlock()

	for i, id := range evicted {
		fn(id, values[i])
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}

// Clear removes all entries immediately.
func (s *FrameStore[T]) Clear() {
	s.mu.Lock()
	s.states = make(map[ID]*stateEntry[T])
	s.mu.Unlock()
}

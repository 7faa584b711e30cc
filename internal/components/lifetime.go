package components

import "sync"

// Process-wide lifecycle state. The zero count means "uninitialized"; the
// registry set exists only while at least one Lifetime is held.
var (
	mu    sync.Mutex
	count int
	set   *Set
)

// Lifetime keeps the registry set alive. Construction and teardown of the
// set are driven purely by the outstanding Lifetime count: Acquire on
// 0→1 builds the set and runs default registration, Close on 1→0 destroys
// it. How many holders exist in between, and in which order they are
// released, does not matter.
type Lifetime struct {
	release sync.Once
}

// Acquire registers interest in the registry set, constructing and seeding
// it if this is the first outstanding holder.
func Acquire() *Lifetime {
	mu.Lock()
	defer mu.Unlock()

	count++
	if count == 1 {
		set = newSet()
		registerDefaults(set)
	}
	return &Lifetime{}
}

// Registries returns the registry set. The reference is valid for as long
// as the Lifetime is held.
func (l *Lifetime) Registries() *Set {
	mu.Lock()
	defer mu.Unlock()
	return set
}

// Close releases the holder. The set is torn down when the last holder
// closes. Close is idempotent: a second call on the same Lifetime is a
// no-op, so the holder count cannot go negative.
func (l *Lifetime) Close() {
	l.release.Do(func() {
		mu.Lock()
		defer mu.Unlock()

		count--
		if count == 0 {
			set = nil
		}
	})
}

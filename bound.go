package balas

import "sync"

// sharedBound is the search-wide incumbent objective value: the sole
// mutable state shared by every worker in one Solve call. Readers and
// writers both use non-blocking try-semantics so a worker that cannot
// acquire the lock immediately just proceeds with its own local bound
// rather than stalling the hot inner loop. Staleness is safe here
// because the bound only ever tightens.
type sharedBound struct {
	mu    sync.RWMutex
	value float64
}

func newSharedBound(initial float64) *sharedBound {
	return &sharedBound{value: initial}
}

// tryRead returns the current bound and true, or (0, false) if the
// lock could not be acquired immediately. A false result is not an
// error: the caller simply proceeds with its own local bound.
func (b *sharedBound) tryRead() (float64, bool) {
	if !b.mu.TryRLock() {
		return 0, false
	}
	defer b.mu.RUnlock()
	return b.value, true
}

// tryWrite publishes candidate as the new bound only if it is
// strictly smaller than the current value and the lock is acquired
// immediately. It reports whether the publish happened; a missed
// write is never a correctness problem, only a missed optimization.
func (b *sharedBound) tryWrite(candidate float64) bool {
	if !b.mu.TryLock() {
		return false
	}
	defer b.mu.Unlock()
	if candidate < b.value {
		b.value = candidate
		return true
	}
	return false
}

// snapshot blocks for a consistent read. It is used only once per
// solve, after every worker has joined, so blocking here costs
// nothing on the hot path.
func (b *sharedBound) snapshot() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.value
}

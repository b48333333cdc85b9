package auth

import "sync"

// keyedMutex provides per-user mutual exclusion so concurrent session and
// password mutations against the same record cannot interleave a stale read
// with a write. Entries are kept for the process lifetime; the map is
// bounded by the number of distinct users touched.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedMutex) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	lock, ok := k.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[key] = lock
	}
	return lock
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *keyedMutex) Lock(key string) func() {
	lock := k.get(key)
	lock.Lock()
	return lock.Unlock
}

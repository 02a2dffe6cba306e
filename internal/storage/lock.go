package storage

import "sync"

var namespaceLocks = struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}{locks: map[string]*sync.Mutex{}}

// LockNamespace serializes read-modify-write sequences against one storage
// namespace inside this process. It returns the unlock function.
//
// Writers in other processes sharing the same database file are not
// covered.
func LockNamespace(namespace string) func() {
	namespaceLocks.mu.Lock()
	mu, ok := namespaceLocks.locks[namespace]
	if !ok {
		mu = &sync.Mutex{}
		namespaceLocks.locks[namespace] = mu
	}
	namespaceLocks.mu.Unlock()

	mu.Lock()
	return mu.Unlock
}

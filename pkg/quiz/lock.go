package quiz

import "sync"

// userLocks serialises the session updates of one user within the process.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	sync.Mutex
	waiters int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: map[string]*userLock{}}
}

// Lock blocks until the key is free and returns the matching unlock func.
func (ul *userLocks) Lock(key string) func() {
	ul.mu.Lock()
	l, ok := ul.locks[key]
	if !ok {
		l = &userLock{}
		ul.locks[key] = l
	}
	l.waiters++
	ul.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		ul.mu.Lock()
		l.waiters--
		if l.waiters == 0 {
			delete(ul.locks, key)
		}
		ul.mu.Unlock()
	}
}

func (ul *userLocks) size() int {
	ul.mu.Lock()
	defer ul.mu.Unlock()

	return len(ul.locks)
}

// Package keylock provides mutual exclusion keyed by string, so that
// operations on different entities never contend with each other.
package keylock

import (
	"sort"
	"sync"
)

type refLock struct {
	sync.Mutex
	refs int
}

// KeyedMutex hands out one mutex per key and frees it once nobody holds or waits on it.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

// New creates an empty KeyedMutex.
func New() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*refLock)}
}

func (k *KeyedMutex) acquire(key string) *refLock {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &refLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return l
}

func (k *KeyedMutex) release(key string, l *refLock) {
	l.Unlock()

	k.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()
}

// Lock blocks until key is held and returns the matching unlock func.
func (k *KeyedMutex) Lock(key string) (unlock func()) {
	l := k.acquire(key)
	return func() { k.release(key, l) }
}

// LockAll acquires every key in sorted order, which keeps concurrent callers
// with overlapping key sets from deadlocking. Duplicate and empty keys are ignored.
func (k *KeyedMutex) LockAll(keys ...string) (unlock func()) {
	uniq := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		uniq = append(uniq, key)
	}
	sort.Strings(uniq)

	held := make([]*refLock, len(uniq))
	for i, key := range uniq {
		held[i] = k.acquire(key)
	}
	return func() {
		for i := len(uniq) - 1; i >= 0; i-- {
			k.release(uniq[i], held[i])
		}
	}
}

// Len returns the number of keys currently held or awaited.
func (k *KeyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}

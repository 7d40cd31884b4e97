package utils

import "sync"

// KeyedMutex provides a mutex per string key, so mutations of one auction or
// series serialize without contending with unrelated keys. Entries are kept
// for the life of the process; the key space is bounded by the number of
// entities served.
type KeyedMutex struct {
	locks sync.Map // key: string -> value: *sync.Mutex
}

// Lock acquires the mutex for key, creating it on first use, and returns the
// unlock function.
func (k *KeyedMutex) Lock(key string) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

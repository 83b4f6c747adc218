// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "sync"

// KeyedMutex is an arena of mutexes addressed by key. Mutexes are created
// lazily on first use and never removed, so two callers using the same key
// always contend on the same lock.
type KeyedMutex[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*sync.Mutex
}

// NewKeyedMutex returns an empty arena.
func NewKeyedMutex[K comparable]() *KeyedMutex[K] {
	return &KeyedMutex[K]{locks: make(map[K]*sync.Mutex)}
}

func (k *KeyedMutex[K]) get(key K) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

// Lock blocks until the mutex for key is held and returns its unlock func.
func (k *KeyedMutex[K]) Lock(key K) func() {
	m := k.get(key)
	m.Lock()
	return m.Unlock
}

// TryLock acquires the mutex for key without blocking. ok is false when the
// mutex is already held.
func (k *KeyedMutex[K]) TryLock(key K) (unlock func(), ok bool) {
	m := k.get(key)
	if !m.TryLock() {
		return nil, false
	}
	return m.Unlock, true
}

// Len returns the number of keys ever locked.
func (k *KeyedMutex[K]) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}

// Package concurrency 동시성 제어 유틸리티를 제공합니다.
package concurrency

import "sync"

// KeyedMutex 키별로 독립적인 Mutex를 제공합니다. 서로 다른 키에 대한 작업은 병렬로 진행됩니다.
// 참조 카운트가 0이 된 키의 Mutex는 즉시 제거됩니다.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedEntry
}

type keyedEntry struct {
	mu       sync.Mutex
	refCount int
}

// NewKeyedMutex 새로운 KeyedMutex를 생성합니다.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyedEntry)}
}

// Len 락을 보유 중이거나 대기 중인 키의 개수를 반환합니다.
func (km *KeyedMutex) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()
	return len(km.locks)
}

// Lock 키에 대한 락을 획득합니다.
func (km *KeyedMutex) Lock(key string) {
	km.mu.Lock()
	e, ok := km.locks[key]
	if !ok {
		e = &keyedEntry{}
		km.locks[key] = e
	}
	e.refCount++
	km.mu.Unlock()

	e.mu.Lock()
}

// Unlock 키에 대한 락을 해제합니다. 잠기지 않은 키를 해제하면 panic이 발생합니다.
func (km *KeyedMutex) Unlock(key string) {
	km.mu.Lock()
	e, ok := km.locks[key]
	if !ok {
		km.mu.Unlock()
		panic("concurrency: 잠기지 않은 키에 대한 Unlock 호출: " + key)
	}
	e.refCount--
	if e.refCount == 0 {
		delete(km.locks, key)
	}
	km.mu.Unlock()

	e.mu.Unlock()
}

package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/daybook/internal/common"
)

// fakeObjectStore is a map-backed ObjectStore with per-key failure
// injection. A negative failure budget means the operation fails every
// time; a positive one is consumed by successive calls.
type fakeObjectStore struct {
	mu       sync.Mutex
	objects  map[string][]byte
	failGet  map[string]int
	failPut  map[string]int
	failDel  map[string]int
	putCount map[string]int
	probeErr error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{
		objects:  make(map[string][]byte),
		failGet:  make(map[string]int),
		failPut:  make(map[string]int),
		failDel:  make(map[string]int),
		putCount: make(map[string]int),
	}
}

func (f *fakeObjectStore) shouldFail(budget map[string]int, key string) bool {
	n, ok := budget[key]
	if !ok {
		return false
	}
	if n < 0 {
		return true
	}
	if n == 0 {
		delete(budget, key)
		return false
	}
	budget[key] = n - 1
	return true
}

func (f *fakeObjectStore) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail(f.failGet, key) {
		return nil, fmt.Errorf("injected get failure for %s", key)
	}
	data, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s: %w", key, common.ErrNotFound)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (f *fakeObjectStore) Put(ctx context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail(f.failPut, key) {
		return fmt.Errorf("injected put failure for %s", key)
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	f.objects[key] = stored
	f.putCount[key]++
	return nil
}

func (f *fakeObjectStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.shouldFail(f.failDel, key) {
		return fmt.Errorf("injected delete failure for %s", key)
	}
	delete(f.objects, key)
	return nil
}

func (f *fakeObjectStore) Probe(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.probeErr
}

func (f *fakeObjectStore) object(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	return data, ok
}

func (f *fakeObjectStore) puts(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.putCount[key]
}

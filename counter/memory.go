// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store
type MemoryStore struct {
	lock   sync.Mutex
	counts map[string]int64
}

// NewMemoryStore returns an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counts: make(map[string]int64),
	}
}

func (ms *MemoryStore) Increment(_ context.Context, key string) (int64, error) {
	ms.lock.Lock()
	defer ms.lock.Unlock()

	ms.counts[key]++
	return ms.counts[key], nil
}

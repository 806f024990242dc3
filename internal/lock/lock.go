/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package lock acquires several in-process locks in one consistent global order.
package lock

import (
	"sort"
	"sync"
)

// Entry is a lock ordered by Key, then by Seq. Distinct lockers may share a key; Seq must
// then differ so every caller agrees on their order.
type Entry struct {
	Key    string
	Seq    uint64
	Locker sync.Locker
}

// Acquire locks every entry in ascending (Key, Seq) order and returns a func releasing them
// in reverse order. Entries with a nil Locker are skipped and a Locker passed twice is locked
// once, so a transfer from an account to itself does not deadlock.
func Acquire(entries ...Entry) (release func()) {
	held := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Locker != nil {
			held = append(held, e)
		}
	}
	sort.SliceStable(held, func(i, j int) bool {
		if held[i].Key != held[j].Key {
			return held[i].Key < held[j].Key
		}
		return held[i].Seq < held[j].Seq
	})

	unique := make([]Entry, 0, len(held))
	for _, e := range held {
		if n := len(unique); n > 0 && unique[n-1].Locker == e.Locker {
			continue
		}
		unique = append(unique, e)
	}

	for _, e := range unique {
		e.Locker.Lock()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(unique) - 1; i >= 0; i-- {
				unique[i].Locker.Unlock()
			}
		})
	}
}

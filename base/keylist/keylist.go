// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keylist provides List, an insertion-ordered collection of
// values that can also be looked up by a unique key, such as the
// columns of a table by name.
package keylist

import (
	"fmt"
	"slices"
)

// List is a slice of Values in insertion order, each with a unique key,
// with a map from keys to positions for direct lookup.
// The zero value is an empty list ready to use.
// Keys and Values can be read directly, but must only be modified
// through the methods, which keep the key map in sync.
type List[K comparable, V any] struct {
	// Values are the items, in order.
	Values []V

	// Keys are the keys of the items, parallel to Values.
	Keys []K

	// indexes maps each key to its position.
	indexes map[K]int
}

// New returns a new empty [List].
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// updateIndexes rebuilds the key-to-index map from Keys.
func (kl *List[K, V]) updateIndexes() {
	kl.indexes = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.indexes[k] = i
	}
}

// Len returns the number of items, with 0 for a nil list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// Set replaces the value for given key in place, or appends
// the key and value if the key is new.
func (kl *List[K, V]) Set(key K, val V) {
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		return
	}
	kl.append(key, val)
}

func (kl *List[K, V]) append(key K, val V) {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
}

// At returns the value for given key, or the zero value if the key
// is not on the list. See [List.AtTry] to distinguish a missing key.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value for given key, and false if it is not on the list.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of given key, or -1 if it is not on the list.
func (kl *List[K, V]) IndexByKey(key K) int {
	if idx, ok := kl.indexes[key]; ok {
		return idx
	}
	return -1
}

// DeleteByKey deletes the item with given key, returning false if it
// is not on the list. This regenerates the index map.
func (kl *List[K, V]) DeleteByKey(key K) bool {
	idx, ok := kl.indexes[key]
	if !ok {
		return false
	}
	kl.Keys = slices.Delete(kl.Keys, idx, idx+1)
	kl.Values = slices.Delete(kl.Values, idx, idx+1)
	kl.updateIndexes()
	return true
}

// Rename changes the key of the item with key old to key new,
// keeping its position. It returns an error if old is not on the
// list or new already is.
func (kl *List[K, V]) Rename(old, new K) error {
	idx, ok := kl.indexes[old]
	if !ok {
		return fmt.Errorf("keylist.Rename: key %v is not on the list", old)
	}
	if _, has := kl.indexes[new]; has && new != old {
		return fmt.Errorf("keylist.Rename: key %v is already on the list", new)
	}
	delete(kl.indexes, old)
	kl.Keys[idx] = new
	kl.indexes[new] = idx
	return nil
}

// Clone returns a new list with the same keys and values.
// Values are copied as with assignment, so pointers are shared.
func (kl *List[K, V]) Clone() *List[K, V] {
	nl := &List[K, V]{Keys: slices.Clone(kl.Keys), Values: slices.Clone(kl.Values)}
	nl.updateIndexes()
	return nl
}

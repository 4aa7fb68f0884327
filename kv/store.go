/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package kv models the abstract, byte-keyed key-value backend that the graph
store is layered on top of (see spec §4.1).

A Store knows nothing about nodes, edges, or properties - it only stores and
retrieves opaque byte sequences under opaque byte keys, and can list all keys
sharing a prefix. Three backends are provided: MemoryStore (an in-memory
ordered map), FSStore (a POSIX directory tree that can also hard-link
records via LinkRecord), and VFSStore (an afero-backed virtual filesystem, physical or
in-memory).
*/
package kv

import "errors"

// ErrNotFound is returned by FetchRecord when the given key does not exist.
var ErrNotFound = errors.New("kv: record not found")

/*
Store is the abstract key-value contract every GravityDB backend must
implement. Keys and values are byte sequences; keys use '/' as a conceptual
separator. Atomicity is per-operation only - there is no multi-record
transaction (spec §4.1, §5).
*/
type Store interface {

	/*
		CreateBucket ensures the given bucket (a key prefix acting as a
		directory) exists. Idempotent; may be a no-op for backends without an
		explicit directory concept.
	*/
	CreateBucket(key string) error

	/*
		StoreRecord writes value under key. Last-write-wins; there is no
		compare-and-swap.
	*/
	StoreRecord(key string, value []byte) error

	/*
		FetchRecord returns the value stored under key, or ErrNotFound if no
		such record exists.
	*/
	FetchRecord(key string) ([]byte, error)

	/*
		DeleteRecord removes the record stored under key. Deleting a
		non-existent key is not an error.
	*/
	DeleteRecord(key string) error

	/*
		Exists reports whether a record is stored under key.
	*/
	Exists(key string) (bool, error)

	/*
		ListRecords returns the suffix (the part after prefix) of every
		record key beginning with prefix. Order is unspecified.
	*/
	ListRecords(prefix string) ([]string, error)

	/*
		Close releases any resources held by the backend.
	*/
	Close() error
}

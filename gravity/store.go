/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package gravity

import (
	"sync"

	"go.uber.org/zap"

	"github.com/gravitydb/gravitydb/keys"
	"github.com/gravitydb/gravitydb/kv"
)

/*
DeletePolicy controls what DeleteNode does when the node still has adjacent
edges - the open question of spec §4.4/§9.
*/
type DeletePolicy int

const (
	// CascadeDelete deletes every edge touching the node before deleting the
	// node itself (spec §9 policy (b), SPEC_FULL.md §C.4). This is the
	// default.
	CascadeDelete DeletePolicy = iota

	// RefuseIfAdjacent rejects DeleteNode with a KindHasAdjacency error if
	// the node has any incoming or outgoing edge (spec §9 policy (a)).
	RefuseIfAdjacent
)

/*
Store is the Graph Store of spec §4.4: CRUD for nodes, edges and properties
over a kv.Store, maintaining the property-dedup and backlink indexes that
invariants I1-I6 require. Mirrors eliasdb's graph.Manager in shape (a single
type wrapping a pluggable storage backend, guarded by a mutex for concurrent
reads), generalized to content-addressed storage.

Single-threaded cooperative use is assumed (spec §5): the Store holds no
internal scheduler and serializes mutations with a plain mutex; it is the
caller's job to avoid concurrent mutators.
*/
type Store struct {
	mutex sync.RWMutex

	kv           kv.Store
	log          *zap.Logger
	deletePolicy DeletePolicy
}

/*
Option configures a Store at construction time.
*/
type Option func(*Store)

/*
WithLogger attaches a structured logger. A nil logger (the default) falls
back to zap.NewNop().
*/
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

/*
WithDeletePolicy selects the DeleteNode adjacency policy (spec §4.4/§9,
SPEC_FULL.md §C.4). Defaults to CascadeDelete.
*/
func WithDeletePolicy(p DeletePolicy) Option {
	return func(s *Store) {
		s.deletePolicy = p
	}
}

/*
New creates a Store over the given kv.Store backend.
*/
func New(backend kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:           backend,
		log:          zap.NewNop(),
		deletePolicy: CascadeDelete,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// namespaceMarker is written under each of the four top-level prefixes by
// Init, so Open has a record it can positively check for existence even on
// backends (like MemoryStore) that have no directory concept of their own.
const namespaceMarker = ".namespace"

var namespacePrefixes = []string{keys.PrefixNodes, keys.PrefixEdges, keys.PrefixProps, keys.PrefixIndexes}

/*
Init creates the four sub-namespaces a database consists of (spec §6):
nodes/, edges/, props/, indexes/.
*/
func (s *Store) Init() error {
	for _, prefix := range namespacePrefixes {
		if err := s.kv.CreateBucket(prefix); err != nil {
			return wrapKV(err, "creating bucket "+prefix)
		}
		if err := s.kv.StoreRecord(prefix+namespaceMarker, nil); err != nil {
			return wrapKV(err, "marking namespace "+prefix)
		}
	}

	return nil
}

/*
Open verifies that all four sub-namespaces exist, returning KindMalformedDB
if any are missing (spec §6).
*/
func Open(backend kv.Store, opts ...Option) (*Store, error) {
	s := New(backend, opts...)

	for _, prefix := range namespacePrefixes {
		exists, err := backend.Exists(prefix + namespaceMarker)
		if err != nil {
			return nil, wrapKV(err, "checking "+prefix)
		}

		if !exists {
			return nil, newError(KindMalformedDB, "missing namespace "+prefix)
		}
	}

	return s, nil
}

/*
Close releases the underlying backend.
*/
func (s *Store) Close() error {
	return s.kv.Close()
}

/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package kv_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/gravitydb/gravitydb/kv"
)

func newStores(t *testing.T) map[string]kv.Store {
	t.Helper()

	fsStore, err := kv.NewFSStore(t.TempDir())
	require.NoError(t, err)

	vfsStore, err := kv.NewVFSStore(afero.NewMemMapFs(), "/db")
	require.NoError(t, err)

	return map[string]kv.Store{
		"memory": kv.NewMemoryStore(),
		"fs":     fsStore,
		"vfs":    vfsStore,
	}
}

func TestStoreBasicRoundTrip(t *testing.T) {
	for name, store := range newStores(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.CreateBucket("nodes/"))

			exists, err := store.Exists("nodes/a")
			require.NoError(t, err)
			require.False(t, exists)

			require.NoError(t, store.StoreRecord("nodes/a", []byte("hello")))

			exists, err = store.Exists("nodes/a")
			require.NoError(t, err)
			require.True(t, exists)

			val, err := store.FetchRecord("nodes/a")
			require.NoError(t, err)
			require.Equal(t, []byte("hello"), val)

			require.NoError(t, store.DeleteRecord("nodes/a"))

			_, err = store.FetchRecord("nodes/a")
			require.ErrorIs(t, err, kv.ErrNotFound)
		})
	}
}

func TestStoreListRecordsByPrefix(t *testing.T) {
	for name, store := range newStores(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.StoreRecord("indexes/ABCD/nodes_1", []byte("p1")))
			require.NoError(t, store.StoreRecord("indexes/ABCD/edges_2", []byte("p2")))
			require.NoError(t, store.StoreRecord("indexes/EFGH/nodes_3", []byte("p3")))

			names, err := store.ListRecords("indexes/ABCD/")
			require.NoError(t, err)
			require.ElementsMatch(t, []string{"nodes_1", "edges_2"}, names)
		})
	}
}

func TestStoreDeletingMissingKeyIsNotAnError(t *testing.T) {
	for name, store := range newStores(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.DeleteRecord("nodes/does-not-exist"))
		})
	}
}

func TestFSStoreLinkRecordSharesStorage(t *testing.T) {
	store, err := kv.NewFSStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.StoreRecord("props/H", []byte("payload")))
	require.NoError(t, store.LinkRecord("props/H", "indexes/H/nodes_n1"))

	val, err := store.FetchRecord("indexes/H/nodes_n1")
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), val)

	// Deleting the original record must not affect the hard-linked backlink.
	require.NoError(t, store.DeleteRecord("props/H"))

	val, err = store.FetchRecord("indexes/H/nodes_n1")
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), val)
}

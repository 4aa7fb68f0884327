/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package gravity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravitydb/gravitydb/gravity"
	"github.com/gravitydb/gravitydb/keys"
	"github.com/gravitydb/gravitydb/kv"
	"github.com/gravitydb/gravitydb/propval"
)

const emptyHash = "E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855"

func newTestStore() (*gravity.Store, *kv.MemoryStore) {
	backend := kv.NewMemoryStore()
	return gravity.New(backend), backend
}

// TestEmptyStoreNodeCreation is spec scenario 1: creating a node with an
// empty-bytes property in a fresh store produces exactly three records.
func TestEmptyStoreNodeCreation(t *testing.T) {
	store, backend := newTestStore()

	const id = "a1a2a3a4-b1b2-c1c2-d1d2-d3d4d5d6d7d8"

	node, err := store.CreateNode(id, propval.Bytes{})
	require.NoError(t, err)
	require.Equal(t, id, node.ID)
	require.Equal(t, emptyHash, node.Properties)
	require.Empty(t, node.Incoming)
	require.Empty(t, node.Outgoing)

	nodeExists, err := backend.Exists(keys.NodeKey(id))
	require.NoError(t, err)
	require.True(t, nodeExists)

	propExists, err := backend.Exists(keys.PropKey(emptyHash))
	require.NoError(t, err)
	require.True(t, propExists)

	data, err := backend.FetchRecord(keys.PropKey(emptyHash))
	require.NoError(t, err)
	require.Empty(t, data)

	backlinkExists, err := backend.Exists(keys.IndexKey(emptyHash, keys.KindNodes, id))
	require.NoError(t, err)
	require.True(t, backlinkExists)

	all, err := backend.ListRecords("")
	require.NoError(t, err)
	require.Len(t, all, 3)
}

// TestDuplicateCreateRejection is spec scenario 2.
func TestDuplicateCreateRejection(t *testing.T) {
	store, _ := newTestStore()

	const id = "a1a2a3a4-b1b2-c1c2-d1d2-d3d4d5d6d7d8"

	_, err := store.CreateNode(id, propval.Bytes{})
	require.NoError(t, err)

	_, err = store.CreateNode(id, propval.NewText("anything"))
	require.Error(t, err)
	require.True(t, gravity.IsKind(err, gravity.KindNodeExists))
}

// TestSelfLoop is spec scenario 3.
func TestSelfLoop(t *testing.T) {
	store, backend := newTestStore()

	const id = "a1a2a3a4-b1b2-c1c2-d1d2-d3d4d5d6d7d8"

	_, err := store.CreateNode(id, propval.Bytes{})
	require.NoError(t, err)

	edge, err := store.CreateEdge(id, id, propval.Bytes{})
	require.NoError(t, err)

	edgeExists, err := backend.Exists(keys.EdgeKey(edge.Key))
	require.NoError(t, err)
	require.True(t, edgeExists)

	node, err := store.ReadNode(id)
	require.NoError(t, err)
	require.Equal(t, []string{edge.Key}, node.Incoming)
	require.Equal(t, []string{edge.Key}, node.Outgoing)

	backlinkExists, err := backend.Exists(keys.IndexKey(emptyHash, keys.KindEdges, edge.Key))
	require.NoError(t, err)
	require.True(t, backlinkExists)
}

// TestTwoNodesAndAnEdge is spec scenario 4.
func TestTwoNodesAndAnEdge(t *testing.T) {
	store, _ := newTestStore()

	n1, err := store.CreateNode("", propval.Bytes{})
	require.NoError(t, err)

	n2, err := store.CreateNode("", propval.NewText("simple text property"))
	require.NoError(t, err)

	edge, err := store.CreateEdge(n1.ID, n2.ID, propval.Bytes{})
	require.NoError(t, err)

	n1After, err := store.ReadNode(n1.ID)
	require.NoError(t, err)
	require.Equal(t, []string{edge.Key}, n1After.Outgoing)
	require.Empty(t, n1After.Incoming)

	n2After, err := store.ReadNode(n2.ID)
	require.NoError(t, err)
	require.Equal(t, []string{edge.Key}, n2After.Incoming)
	require.Empty(t, n2After.Outgoing)

	require.NotEqual(t, n1After.Properties, n2After.Properties)
}

// TestContentAddressedDedup is spec scenario 6.
func TestContentAddressedDedup(t *testing.T) {
	store, backend := newTestStore()

	n1, err := store.CreateNode("", propval.NewText("shared"))
	require.NoError(t, err)
	n2, err := store.CreateNode("", propval.NewText("shared"))
	require.NoError(t, err)

	require.Equal(t, n1.Properties, n2.Properties)

	remaining, err := backend.ListRecords(keys.IndexBucket(n1.Properties))
	require.NoError(t, err)
	require.Len(t, remaining, 2)
}

func TestUpdateNodeReplacesPropertyAndCleansUpOld(t *testing.T) {
	store, backend := newTestStore()

	n, err := store.CreateNode("", propval.NewText("old"))
	require.NoError(t, err)
	oldHash := n.Properties

	updated, err := store.UpdateNode(n.ID, propval.NewText("new"), propval.Decode)
	require.NoError(t, err)
	require.NotEqual(t, oldHash, updated.Properties)

	oldExists, err := backend.Exists(keys.PropKey(oldHash))
	require.NoError(t, err)
	require.False(t, oldExists)

	newExists, err := backend.Exists(keys.PropKey(updated.Properties))
	require.NoError(t, err)
	require.True(t, newExists)
}

func TestDeleteNodeCascadesAdjacentEdgesByDefault(t *testing.T) {
	store, backend := newTestStore()

	n1, err := store.CreateNode("", propval.Bytes{})
	require.NoError(t, err)
	n2, err := store.CreateNode("", propval.Bytes{})
	require.NoError(t, err)

	edge, err := store.CreateEdge(n1.ID, n2.ID, propval.Bytes{})
	require.NoError(t, err)

	require.NoError(t, store.DeleteNode(n1.ID, propval.Decode, propval.Decode))

	nodeExists, err := backend.Exists(keys.NodeKey(n1.ID))
	require.NoError(t, err)
	require.False(t, nodeExists)

	edgeExists, err := backend.Exists(keys.EdgeKey(edge.Key))
	require.NoError(t, err)
	require.False(t, edgeExists)

	n2After, err := store.ReadNode(n2.ID)
	require.NoError(t, err)
	require.Empty(t, n2After.Incoming)
}

func TestDeleteNodeRefusesWhenAdjacentUnderRefusePolicy(t *testing.T) {
	backend := kv.NewMemoryStore()
	store := gravity.New(backend, gravity.WithDeletePolicy(gravity.RefuseIfAdjacent))

	n1, err := store.CreateNode("", propval.Bytes{})
	require.NoError(t, err)
	n2, err := store.CreateNode("", propval.Bytes{})
	require.NoError(t, err)

	_, err = store.CreateEdge(n1.ID, n2.ID, propval.Bytes{})
	require.NoError(t, err)

	err = store.DeleteNode(n1.ID, propval.Decode, propval.Decode)
	require.Error(t, err)
	require.True(t, gravity.IsKind(err, gravity.KindHasAdjacency))
}

func TestDeleteEdgeRemovesFromBothEndpointsAndDecrementsProperty(t *testing.T) {
	store, backend := newTestStore()

	n1, err := store.CreateNode("", propval.Bytes{})
	require.NoError(t, err)
	n2, err := store.CreateNode("", propval.Bytes{})
	require.NoError(t, err)

	edge, err := store.CreateEdge(n1.ID, n2.ID, propval.NewText("edge prop"))
	require.NoError(t, err)

	require.NoError(t, store.DeleteEdge(edge.Key, propval.Decode))

	edgeExists, err := backend.Exists(keys.EdgeKey(edge.Key))
	require.NoError(t, err)
	require.False(t, edgeExists)

	n1After, err := store.ReadNode(n1.ID)
	require.NoError(t, err)
	require.Empty(t, n1After.Outgoing)

	n2After, err := store.ReadNode(n2.ID)
	require.NoError(t, err)
	require.Empty(t, n2After.Incoming)

	propExists, err := backend.Exists(keys.PropKey(edge.Properties))
	require.NoError(t, err)
	require.False(t, propExists)
}

func TestInitAndOpenRoundTrip(t *testing.T) {
	backend := kv.NewMemoryStore()
	store := gravity.New(backend)
	require.NoError(t, store.Init())

	reopened, err := gravity.Open(backend)
	require.NoError(t, err)
	require.NotNil(t, reopened)
}

func TestOpenFailsOnUninitializedBackend(t *testing.T) {
	backend := kv.NewMemoryStore()

	_, err := gravity.Open(backend)
	require.Error(t, err)
	require.True(t, gravity.IsKind(err, gravity.KindMalformedDB))
}

/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package query_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravitydb/gravitydb/gravity"
	"github.com/gravitydb/gravitydb/kv"
	"github.com/gravitydb/gravitydb/propval"
	"github.com/gravitydb/gravitydb/query"
)

func newTestGraph(t *testing.T) *gravity.Store {
	t.Helper()
	return gravity.New(kv.NewMemoryStore())
}

// TestPropertyBasedLookup is spec scenario 5.
func TestPropertyBasedLookup(t *testing.T) {
	store := newTestGraph(t)

	n1, err := store.CreateNode("", propval.Bytes{})
	require.NoError(t, err)
	n2, err := store.CreateNode("", propval.NewText("simple text property"))
	require.NoError(t, err)

	_, err = store.CreateEdge(n1.ID, n2.ID, propval.Bytes{})
	require.NoError(t, err)

	ev := query.NewEvaluator(store)

	pq := query.PSpecificQuery(n2.Properties)
	ctxs, err := ev.EvalVertex(pq.ReferencingVertices())
	require.NoError(t, err)

	require.Len(t, ctxs, 1)
	_, ok := ctxs[n2.ID]
	require.True(t, ok)
}

func TestAllOnEmptyStoreYieldsEmptySet(t *testing.T) {
	store := newTestGraph(t)
	ev := query.NewEvaluator(store)

	ctxs, err := ev.EvalVertex(query.All())
	require.NoError(t, err)
	require.Empty(t, ctxs)
}

func TestIntersectAndUnionAreIdempotent(t *testing.T) {
	store := newTestGraph(t)
	n1, err := store.CreateNode("", propval.Bytes{})
	require.NoError(t, err)
	_, err = store.CreateNode("", propval.NewText("other"))
	require.NoError(t, err)

	ev := query.NewEvaluator(store)
	q := query.Specific(n1.ID)

	union, err := ev.EvalVertex(query.Union(q, q))
	require.NoError(t, err)
	require.Len(t, union, 1)

	intersect, err := ev.EvalVertex(query.Intersect(q, q))
	require.NoError(t, err)
	require.Len(t, intersect, 1)
}

func TestDisjunctiveUnionIsTrueSymmetricDifference(t *testing.T) {
	store := newTestGraph(t)
	n1, err := store.CreateNode("", propval.Bytes{})
	require.NoError(t, err)
	n2, err := store.CreateNode("", propval.NewText("b"))
	require.NoError(t, err)
	n3, err := store.CreateNode("", propval.NewText("c"))
	require.NoError(t, err)

	ev := query.NewEvaluator(store)

	left := query.Specific(n1.ID, n2.ID)
	right := query.Specific(n2.ID, n3.ID)

	result, err := ev.EvalVertex(query.DisjunctiveUnion(left, right))
	require.NoError(t, err)

	require.Len(t, result, 2)
	_, hasN1 := result[n1.ID]
	_, hasN2 := result[n2.ID]
	_, hasN3 := result[n3.ID]
	require.True(t, hasN1)
	require.False(t, hasN2)
	require.True(t, hasN3)
}

func TestOutTraversalFollowsEdgeToN2(t *testing.T) {
	store := newTestGraph(t)
	n1, err := store.CreateNode("", propval.Bytes{})
	require.NoError(t, err)
	n2, err := store.CreateNode("", propval.NewText("dest"))
	require.NoError(t, err)

	edge, err := store.CreateEdge(n1.ID, n2.ID, propval.Bytes{})
	require.NoError(t, err)

	ev := query.NewEvaluator(store)

	ctxs, err := ev.EvalVertex(query.Specific(n1.ID).Outgoing().Out())
	require.NoError(t, err)
	require.Len(t, ctxs, 1)

	ctx, ok := ctxs[n2.ID]
	require.True(t, ok)
	require.Len(t, ctx.Path, 1)
	require.Equal(t, edge.Key, ctx.Path[0].EdgeID)
	require.Equal(t, n2.ID, ctx.Path[0].VertexID)
}

func TestFilterAndStoreReturnUnsupported(t *testing.T) {
	store := newTestGraph(t)
	ev := query.NewEvaluator(store)

	_, err := ev.EvalVertex(query.Filter(query.All(), func(*query.VertexContext) bool { return true }))
	require.ErrorIs(t, err, query.ErrUnsupported)

	_, err = ev.EvalVertex(query.StoreV(query.All()))
	require.ErrorIs(t, err, query.ErrUnsupported)
}

func TestExtractProperties(t *testing.T) {
	store := newTestGraph(t)
	n1, err := store.CreateNode("", propval.NewText("hello"))
	require.NoError(t, err)

	ev := query.NewEvaluator(store)
	ctxs, err := ev.EvalVertex(query.Specific(n1.ID))
	require.NoError(t, err)

	result := query.FoldVertexContexts(ctxs)
	props, err := query.ExtractProperties(store, propval.Decode, result)
	require.NoError(t, err)
	require.Len(t, props, 1)

	v := props[0].(propval.Value)
	require.Equal(t, "hello", v.Text)
}

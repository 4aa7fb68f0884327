/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package query

import (
	"errors"

	"github.com/gravitydb/gravitydb/gravity"
	"github.com/gravitydb/gravitydb/keys"
)

/*
ErrUnsupported is returned by EvalVertex/EvalEdge when they reach a Filter or Store
node: reserved extension points that spec §4.5/§4.6 explicitly leaves
unevaluable ("implementations MAY panic or return an explicit Unsupported
error"). A library caller gets a typed error rather than a crash.
*/
var ErrUnsupported = errors.New("query: unsupported operation (Filter/Store)")

/*
PathStep is one hop of a context's traversal history: the vertex arrived at
and the edge used to get there (spec §4.6 "path traversed ... as an ordered
sequence of (vertex_id, edge_id) pairs").
*/
type PathStep struct {
	VertexID string
	EdgeID   string
}

/*
VertexContext carries a matched vertex id plus the traversal provenance
that produced it (spec §4.6).
*/
type VertexContext struct {
	ID        string
	Path      []PathStep
	Start     *string // set if the traversal began from an edge, not a vertex
	Variables map[string]interface{}
	VStore    map[string]bool
	EStore    map[string]bool
}

/*
EdgeContext is the edge-side analogue of VertexContext.
*/
type EdgeContext struct {
	ID        string
	Path      []PathStep
	Start     *string
	Variables map[string]interface{}
	VStore    map[string]bool
	EStore    map[string]bool
}

/*
VertexContextMap is the evaluator's intermediate result for a VertexQuery:
vertex id to context (spec §4.6).
*/
type VertexContextMap map[string]*VertexContext

/*
EdgeContextMap is the evaluator's intermediate result for an EdgeQuery.
*/
type EdgeContextMap map[string]*EdgeContext

func rootVertexContext(id string) *VertexContext {
	return &VertexContext{ID: id, Variables: map[string]interface{}{}}
}

func rootEdgeContext(id string) *EdgeContext {
	start := id
	return &EdgeContext{ID: id, Start: &start, Variables: map[string]interface{}{}}
}

// intoVertexContext converts an EdgeContext reached while evaluating
// VertexQuery::Out/In into the VertexContext of the vertex the edge leads
// to, appending (newVertexID, edgeID) to the path (spec §4.6). This is the
// only place a PathStep is appended for a V<->E hop in either direction.
func (e *EdgeContext) intoVertexContext(newVertexID string) *VertexContext {
	path := append(append([]PathStep{}, e.Path...), PathStep{VertexID: newVertexID, EdgeID: e.ID})
	return &VertexContext{ID: newVertexID, Path: path, Start: e.Start, Variables: e.Variables, VStore: e.VStore, EStore: e.EStore}
}

// intoEdgeContext converts a VertexContext reached while evaluating
// EdgeQuery::Out/In into the EdgeContext of one of its adjacent edges. The
// path is carried forward unchanged: the hop this edge belongs to is only
// recorded once its destination vertex is known, by intoVertexContext,
// so a V->E->V chain records exactly one PathStep per hop instead of two.
func (v *VertexContext) intoEdgeContext(edgeID string) *EdgeContext {
	return &EdgeContext{ID: edgeID, Path: v.Path, Start: v.Start, Variables: v.Variables, VStore: v.VStore, EStore: v.EStore}
}

/*
Evaluator walks a query tree against a gravity.Store, producing context
maps (spec §4.6). It holds no state of its own beyond the store reference,
so one Evaluator can be reused across queries.
*/
type Evaluator struct {
	store *gravity.Store
}

/*
NewEvaluator creates an Evaluator over store.
*/
func NewEvaluator(store *gravity.Store) *Evaluator {
	return &Evaluator{store: store}
}

/*
EvalVertex evaluates a VertexQuery into a VertexContextMap (spec §4.6).
*/
func (ev *Evaluator) EvalVertex(q *VertexQuery) (VertexContextMap, error) {
	switch q.Op {
	case VAll:
		ids, err := ev.store.ListNodeIDs()
		if err != nil {
			return nil, err
		}
		return vertexContextsFromIDs(ids), nil

	case VSpecific:
		return vertexContextsFromIDs(q.IDs), nil

	case VProperty:
		hashes, err := ev.EvalProperty(q.Prop)
		if err != nil {
			return nil, err
		}

		result := make(VertexContextMap)
		for _, hash := range hashes {
			ids, err := ev.store.PropertyBacklinks(hash, keys.KindNodes)
			if err != nil {
				return nil, err
			}
			for _, id := range ids {
				result[id] = rootVertexContext(id)
			}
		}
		return result, nil

	case VOut, VIn:
		edges, err := ev.EvalEdge(q.Edge)
		if err != nil {
			return nil, err
		}

		result := make(VertexContextMap)
		for edgeID, ectx := range edges {
			edge, err := ev.store.ReadEdge(edgeID)
			if err != nil {
				return nil, err
			}

			var target string
			if q.Op == VOut {
				target = edge.N2
			} else {
				target = edge.N1
			}

			result[target] = ectx.intoVertexContext(target)
		}
		return result, nil

	case VUnion:
		return ev.combineVertex(q.Left, q.Right, unionVertex)
	case VIntersect:
		return ev.combineVertex(q.Left, q.Right, intersectVertex)
	case VSubstract:
		return ev.combineVertex(q.Left, q.Right, substractVertex)
	case VDisjunctiveUnion:
		return ev.combineVertex(q.Left, q.Right, disjunctiveUnionVertex)

	case VFilter, VStore:
		return nil, ErrUnsupported
	}

	return nil, ErrUnsupported
}

func vertexContextsFromIDs(ids []string) VertexContextMap {
	result := make(VertexContextMap, len(ids))
	for _, id := range ids {
		result[id] = rootVertexContext(id)
	}
	return result
}

func (ev *Evaluator) combineVertex(left, right *VertexQuery, combine func(a, b VertexContextMap) VertexContextMap) (VertexContextMap, error) {
	a, err := ev.EvalVertex(left)
	if err != nil {
		return nil, err
	}
	b, err := ev.EvalVertex(right)
	if err != nil {
		return nil, err
	}
	return combine(a, b), nil
}

func unionVertex(a, b VertexContextMap) VertexContextMap {
	result := make(VertexContextMap, len(a)+len(b))
	for k, v := range a {
		result[k] = v
	}
	for k, v := range b {
		result[k] = v
	}
	return result
}

func intersectVertex(a, b VertexContextMap) VertexContextMap {
	result := make(VertexContextMap)
	for k, v := range a {
		if _, ok := b[k]; ok {
			result[k] = v
		}
	}
	return result
}

func substractVertex(a, b VertexContextMap) VertexContextMap {
	result := make(VertexContextMap)
	for k, v := range a {
		if _, ok := b[k]; !ok {
			result[k] = v
		}
	}
	return result
}

func disjunctiveUnionVertex(a, b VertexContextMap) VertexContextMap {
	result := make(VertexContextMap)
	for k, v := range a {
		if _, ok := b[k]; !ok {
			result[k] = v
		}
	}
	for k, v := range b {
		if _, ok := a[k]; !ok {
			result[k] = v
		}
	}
	return result
}

/*
EvalEdge evaluates an EdgeQuery into an EdgeContextMap (spec §4.6).
*/
func (ev *Evaluator) EvalEdge(q *EdgeQuery) (EdgeContextMap, error) {
	switch q.Op {
	case EAll:
		edgeKeys, err := ev.store.ListEdgeKeys()
		if err != nil {
			return nil, err
		}
		return edgeContextsFromIDs(edgeKeys), nil

	case ESpecific:
		return edgeContextsFromIDs(q.IDs), nil

	case EProperty:
		hashes, err := ev.EvalProperty(q.Prop)
		if err != nil {
			return nil, err
		}

		result := make(EdgeContextMap)
		for _, hash := range hashes {
			ids, err := ev.store.PropertyBacklinks(hash, keys.KindEdges)
			if err != nil {
				return nil, err
			}
			for _, id := range ids {
				result[id] = rootEdgeContext(id)
			}
		}
		return result, nil

	case EOut, EIn:
		vertices, err := ev.EvalVertex(q.Vertex)
		if err != nil {
			return nil, err
		}

		// Edge tie-breaking (spec §4.6): the same edge reached from two
		// different vertices collapses to one entry, last writer wins - a
		// plain map write already gives us that as we iterate.
		result := make(EdgeContextMap)
		for _, vctx := range vertices {
			node, err := ev.store.ReadNode(vctx.ID)
			if err != nil {
				return nil, err
			}

			var edgeIDs []string
			if q.Op == EOut {
				edgeIDs = node.Outgoing
			} else {
				edgeIDs = node.Incoming
			}

			for _, edgeID := range edgeIDs {
				result[edgeID] = vctx.intoEdgeContext(edgeID)
			}
		}
		return result, nil

	case EUnion:
		return ev.combineEdge(q.Left, q.Right, unionEdge)
	case EIntersect:
		return ev.combineEdge(q.Left, q.Right, intersectEdge)
	case ESubstract:
		return ev.combineEdge(q.Left, q.Right, substractEdge)
	case EDisjunctiveUnion:
		return ev.combineEdge(q.Left, q.Right, disjunctiveUnionEdge)

	case EFilter, EStore:
		return nil, ErrUnsupported
	}

	return nil, ErrUnsupported
}

func edgeContextsFromIDs(ids []string) EdgeContextMap {
	result := make(EdgeContextMap, len(ids))
	for _, id := range ids {
		result[id] = rootEdgeContext(id)
	}
	return result
}

func (ev *Evaluator) combineEdge(left, right *EdgeQuery, combine func(a, b EdgeContextMap) EdgeContextMap) (EdgeContextMap, error) {
	a, err := ev.EvalEdge(left)
	if err != nil {
		return nil, err
	}
	b, err := ev.EvalEdge(right)
	if err != nil {
		return nil, err
	}
	return combine(a, b), nil
}

func unionEdge(a, b EdgeContextMap) EdgeContextMap {
	result := make(EdgeContextMap, len(a)+len(b))
	for k, v := range a {
		result[k] = v
	}
	for k, v := range b {
		result[k] = v
	}
	return result
}

func intersectEdge(a, b EdgeContextMap) EdgeContextMap {
	result := make(EdgeContextMap)
	for k, v := range a {
		if _, ok := b[k]; ok {
			result[k] = v
		}
	}
	return result
}

func substractEdge(a, b EdgeContextMap) EdgeContextMap {
	result := make(EdgeContextMap)
	for k, v := range a {
		if _, ok := b[k]; !ok {
			result[k] = v
		}
	}
	return result
}

func disjunctiveUnionEdge(a, b EdgeContextMap) EdgeContextMap {
	result := make(EdgeContextMap)
	for k, v := range a {
		if _, ok := b[k]; !ok {
			result[k] = v
		}
	}
	for k, v := range b {
		if _, ok := a[k]; !ok {
			result[k] = v
		}
	}
	return result
}

/*
EvalProperty evaluates a PropertyQuery into the set of property content
hashes it matches (spec §4.5/§4.6).
*/
func (ev *Evaluator) EvalProperty(q *PropertyQuery) ([]string, error) {
	switch q.Op {
	case PSpecific:
		return []string{q.Hash}, nil

	case PReferencingProperties:
		hashes, err := ev.EvalProperty(q.Inner)
		if err != nil {
			return nil, err
		}

		var result []string
		for _, hash := range hashes {
			holders, err := ev.store.PropertyBacklinks(hash, keys.KindProps)
			if err != nil {
				return nil, err
			}
			result = append(result, holders...)
		}
		return result, nil

	case PReferencedProperties:
		// No schema model is implemented (spec §4.5, §9 resolved Open
		// Question): always empty.
		return nil, nil
	}

	return nil, ErrUnsupported
}

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
Package query implements the compositional query algebra and evaluator of
spec §4.5/§4.6: three parallel tree types (VertexQuery, EdgeQuery,
PropertyQuery) built by composing constructors, evaluated by walking the
tree and producing context maps that carry traversal provenance.
*/
package query

/*
VertexOp discriminates a VertexQuery node.
*/
type VertexOp int

const (
	VAll VertexOp = iota
	VSpecific
	VProperty
	VOut
	VIn
	VUnion
	VIntersect
	VSubstract
	VDisjunctiveUnion
	VFilter
	VStore
)

/*
VertexFilter is the predicate a VertexQuery::Filter applies to a candidate
context. Evaluating a Filter node is a reserved extension point (spec
§4.5/§4.6) that this engine does not implement; see eval.go's ErrUnsupported.
*/
type VertexFilter func(*VertexContext) bool

/*
VertexQuery is a node of the vertex query tree (spec §4.5).
*/
type VertexQuery struct {
	Op     VertexOp
	IDs    []string       // VSpecific
	Prop   *PropertyQuery // VProperty
	Edge   *EdgeQuery     // VOut, VIn
	Left   *VertexQuery   // VUnion, VIntersect, VSubstract, VDisjunctiveUnion
	Right  *VertexQuery   // VUnion, VIntersect, VSubstract, VDisjunctiveUnion
	Inner  *VertexQuery   // VFilter, VStore
	Filter VertexFilter   // VFilter
}

/*
All matches every vertex in the store.
*/
func All() *VertexQuery {
	return &VertexQuery{Op: VAll}
}

/*
Specific matches exactly the given vertex ids, without reading the store.
*/
func Specific(ids ...string) *VertexQuery {
	return &VertexQuery{Op: VSpecific, IDs: ids}
}

/*
PropertyV matches vertices whose property backlink resolves pq.
*/
func PropertyV(pq *PropertyQuery) *VertexQuery {
	return &VertexQuery{Op: VProperty, Prop: pq}
}

/*
Union merges a and b; on id collision the right side's context wins.
*/
func Union(a, b *VertexQuery) *VertexQuery {
	return &VertexQuery{Op: VUnion, Left: a, Right: b}
}

/*
Intersect keeps ids present in both a and b, with a's provenance.
*/
func Intersect(a, b *VertexQuery) *VertexQuery {
	return &VertexQuery{Op: VIntersect, Left: a, Right: b}
}

/*
Substract keeps a's ids that are absent from b.
*/
func Substract(a, b *VertexQuery) *VertexQuery {
	return &VertexQuery{Op: VSubstract, Left: a, Right: b}
}

/*
DisjunctiveUnion is the true symmetric difference of a and b (spec §4.5, §9
open question - resolved here against the source's inverted-contains_key
behavior).
*/
func DisjunctiveUnion(a, b *VertexQuery) *VertexQuery {
	return &VertexQuery{Op: VDisjunctiveUnion, Left: a, Right: b}
}

/*
Filter wraps q with a predicate (spec §4.5). A reserved extension point:
EvalVertex returns ErrUnsupported.
*/
func Filter(q *VertexQuery, f VertexFilter) *VertexQuery {
	return &VertexQuery{Op: VFilter, Inner: q, Filter: f}
}

/*
StoreV wraps q to populate the v_store side channel (spec §4.5/§4.6). A
reserved extension point: EvalVertex returns ErrUnsupported.
*/
func StoreV(q *VertexQuery) *VertexQuery {
	return &VertexQuery{Op: VStore, Inner: q}
}

/*
Outgoing lifts a VertexQuery to the EdgeQuery of its vertices' outgoing
edges (spec §4.5 cross-kind bridge).
*/
func (q *VertexQuery) Outgoing() *EdgeQuery {
	return &EdgeQuery{Op: EOut, Vertex: q}
}

/*
Incoming lifts a VertexQuery to the EdgeQuery of its vertices' incoming
edges (spec §4.5 cross-kind bridge).
*/
func (q *VertexQuery) Incoming() *EdgeQuery {
	return &EdgeQuery{Op: EIn, Vertex: q}
}

/*
EdgeOp discriminates an EdgeQuery node.
*/
type EdgeOp int

const (
	EAll EdgeOp = iota
	ESpecific
	EProperty
	EOut
	EIn
	EUnion
	EIntersect
	ESubstract
	EDisjunctiveUnion
	EFilter
	EStore
)

/*
EdgeFilter is the predicate an EdgeQuery::Filter applies to a candidate
context. A reserved extension point; see eval.go's ErrUnsupported.
*/
type EdgeFilter func(*EdgeContext) bool

/*
EdgeQuery is a node of the edge query tree (spec §4.5). Out/In mirror
VertexQuery's but mean "outgoing/incoming edges of vertices": Vertex holds
the VertexQuery whose adjacency is being read.
*/
type EdgeQuery struct {
	Op     EdgeOp
	IDs    []string       // ESpecific
	Prop   *PropertyQuery // EProperty
	Vertex *VertexQuery   // EOut, EIn
	Left   *EdgeQuery     // EUnion, EIntersect, ESubstract, EDisjunctiveUnion
	Right  *EdgeQuery     // EUnion, EIntersect, ESubstract, EDisjunctiveUnion
	Inner  *EdgeQuery     // EFilter, EStore
	Filter EdgeFilter     // EFilter
}

/*
AllEdges matches every edge in the store.
*/
func AllEdges() *EdgeQuery {
	return &EdgeQuery{Op: EAll}
}

/*
SpecificEdges matches exactly the given edge keys.
*/
func SpecificEdges(keys ...string) *EdgeQuery {
	return &EdgeQuery{Op: ESpecific, IDs: keys}
}

/*
PropertyE matches edges whose property backlink resolves pq.
*/
func PropertyE(pq *PropertyQuery) *EdgeQuery {
	return &EdgeQuery{Op: EProperty, Prop: pq}
}

/*
UnionE merges a and b; on id collision the right side's context wins.
*/
func UnionE(a, b *EdgeQuery) *EdgeQuery {
	return &EdgeQuery{Op: EUnion, Left: a, Right: b}
}

/*
IntersectE keeps ids present in both a and b, with a's provenance.
*/
func IntersectE(a, b *EdgeQuery) *EdgeQuery {
	return &EdgeQuery{Op: EIntersect, Left: a, Right: b}
}

/*
SubstractE keeps a's ids that are absent from b.
*/
func SubstractE(a, b *EdgeQuery) *EdgeQuery {
	return &EdgeQuery{Op: ESubstract, Left: a, Right: b}
}

/*
DisjunctiveUnionE is the true symmetric difference of a and b (spec §4.5,
§9 open question).
*/
func DisjunctiveUnionE(a, b *EdgeQuery) *EdgeQuery {
	return &EdgeQuery{Op: EDisjunctiveUnion, Left: a, Right: b}
}

/*
FilterE wraps q with a predicate. A reserved extension point: EvalEdge
returns ErrUnsupported.
*/
func FilterE(q *EdgeQuery, f EdgeFilter) *EdgeQuery {
	return &EdgeQuery{Op: EFilter, Inner: q, Filter: f}
}

/*
StoreE wraps q to populate the e_store side channel. A reserved extension
point: EvalEdge returns ErrUnsupported.
*/
func StoreE(q *EdgeQuery) *EdgeQuery {
	return &EdgeQuery{Op: EStore, Inner: q}
}

/*
Out lifts an EdgeQuery to the VertexQuery of its edges' head endpoints
(n2) (spec §4.5 cross-kind bridge).
*/
func (q *EdgeQuery) Out() *VertexQuery {
	return &VertexQuery{Op: VOut, Edge: q}
}

/*
In lifts an EdgeQuery to the VertexQuery of its edges' tail endpoints (n1)
(spec §4.5 cross-kind bridge).
*/
func (q *EdgeQuery) In() *VertexQuery {
	return &VertexQuery{Op: VIn, Edge: q}
}

/*
PropertyOp discriminates a PropertyQuery node.
*/
type PropertyOp int

const (
	PSpecific PropertyOp = iota
	PReferencingProperties
	PReferencedProperties
)

/*
PropertyQuery is a node of the property query tree (spec §4.5).
*/
type PropertyQuery struct {
	Op    PropertyOp
	Hash  string         // PSpecific
	Inner *PropertyQuery // PReferencingProperties, PReferencedProperties
}

/*
PSpecificQuery matches exactly the property with the given content hash.
*/
func PSpecificQuery(hash string) *PropertyQuery {
	return &PropertyQuery{Op: PSpecific, Hash: hash}
}

/*
ReferencingProperties matches properties that hold a backlink to q's
result - i.e. properties whose Nested() includes q's result (spec §4.5).
*/
func ReferencingProperties(q *PropertyQuery) *PropertyQuery {
	return &PropertyQuery{Op: PReferencingProperties, Inner: q}
}

/*
ReferencedProperties matches properties that q's result itself references.
Requires a schema model this engine does not implement (spec §4.5, §9);
EvalProperty always returns an empty result for this node - a resolved Open
Question, not a bug.
*/
func ReferencedProperties(q *PropertyQuery) *PropertyQuery {
	return &PropertyQuery{Op: PReferencedProperties, Inner: q}
}

/*
ReferencingVertices lifts pq to the VertexQuery of vertices holding a
backlink to it (spec §4.5 cross-kind bridge).
*/
func (pq *PropertyQuery) ReferencingVertices() *VertexQuery {
	return &VertexQuery{Op: VProperty, Prop: pq}
}

/*
ReferencingEdges lifts pq to the EdgeQuery of edges holding a backlink to
it (spec §4.5 cross-kind bridge).
*/
func (pq *PropertyQuery) ReferencingEdges() *EdgeQuery {
	return &EdgeQuery{Op: EProperty, Prop: pq}
}

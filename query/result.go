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

/*
PathEntry is one materialized traversal path out of a query's context map
(spec §4.6 "(start_edge?, [(v,e), …], end_vertex?)"). StartEdge is set when
the context began from an edge rather than a vertex; EndVertex is set when
the context is itself centered on a vertex (a VertexContextMap fold always
sets it; an EdgeContextMap fold never does, since nothing in an EdgeContext
alone names a terminal vertex without an extra store read).
*/
type PathEntry struct {
	StartEdge *string
	Steps     []PathStep
	EndVertex *string
}

/*
Result is the folded, provenance-stripped view of a query evaluation (spec
§4.6): the matched vertex/edge id sets, their traversal paths, and the
union of every context's side-channel variables.
*/
type Result struct {
	Vertices  []string
	Edges     []string
	Paths     []PathEntry
	Variables map[string]interface{}
}

/*
FoldVertexContexts folds a VertexContextMap into a Result.
*/
func FoldVertexContexts(ctxs VertexContextMap) *Result {
	result := &Result{Variables: map[string]interface{}{}}

	for id, ctx := range ctxs {
		result.Vertices = append(result.Vertices, id)

		end := ctx.ID
		result.Paths = append(result.Paths, PathEntry{StartEdge: ctx.Start, Steps: ctx.Path, EndVertex: &end})

		mergeVariables(result.Variables, ctx.Variables)
	}

	return result
}

/*
FoldEdgeContexts folds an EdgeContextMap into a Result.
*/
func FoldEdgeContexts(ctxs EdgeContextMap) *Result {
	result := &Result{Variables: map[string]interface{}{}}

	for id, ctx := range ctxs {
		result.Edges = append(result.Edges, id)
		result.Paths = append(result.Paths, PathEntry{StartEdge: ctx.Start, Steps: ctx.Path})

		mergeVariables(result.Variables, ctx.Variables)
	}

	return result
}

func mergeVariables(dst, src map[string]interface{}) {
	for k, v := range src {
		dst[k] = v
	}
}

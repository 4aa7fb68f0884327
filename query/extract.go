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

import "github.com/gravitydb/gravitydb/gravity"

/*
ExtractProperties reads every vertex's and every edge's property record out
of result, vertices first (spec §4.7). decode must reconstruct the concrete
type every property in this graph was stored with - mirroring the rest of
the engine's one-Decoder-per-store-instance assumption (see propval.Decode
for the reference implementation).
*/
func ExtractProperties(store *gravity.Store, decode gravity.Decoder, result *Result) ([]gravity.Property, error) {
	props := make([]gravity.Property, 0, len(result.Vertices)+len(result.Edges))

	for _, id := range result.Vertices {
		node, err := store.ReadNode(id)
		if err != nil {
			return nil, err
		}
		p, err := store.ReadProperty(node.Properties, decode)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}

	for _, key := range result.Edges {
		edge, err := store.ReadEdge(key)
		if err != nil {
			return nil, err
		}
		p, err := store.ReadProperty(edge.Properties, decode)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}

	return props, nil
}

/*
ExtractPathProperties reifies each of result's paths into a materialized
sequence interleaving vertex and edge properties (spec §4.7): the optional
start edge's property is prepended, and each (vertex, edge) step contributes
the vertex's property followed by the edge's. The optional end vertex's
property is appended only when the path has no steps; otherwise the last
step's vertex already is the end vertex and is not repeated.
*/
func ExtractPathProperties(store *gravity.Store, decode gravity.Decoder, result *Result) ([][]gravity.Property, error) {
	paths := make([][]gravity.Property, 0, len(result.Paths))

	for _, entry := range result.Paths {
		var seq []gravity.Property

		if entry.StartEdge != nil {
			edge, err := store.ReadEdge(*entry.StartEdge)
			if err != nil {
				return nil, err
			}
			p, err := store.ReadProperty(edge.Properties, decode)
			if err != nil {
				return nil, err
			}
			seq = append(seq, p)
		}

		for _, step := range entry.Steps {
			node, err := store.ReadNode(step.VertexID)
			if err != nil {
				return nil, err
			}
			vp, err := store.ReadProperty(node.Properties, decode)
			if err != nil {
				return nil, err
			}
			seq = append(seq, vp)

			edge, err := store.ReadEdge(step.EdgeID)
			if err != nil {
				return nil, err
			}
			ep, err := store.ReadProperty(edge.Properties, decode)
			if err != nil {
				return nil, err
			}
			seq = append(seq, ep)
		}

		if entry.EndVertex != nil && len(entry.Steps) == 0 {
			node, err := store.ReadNode(*entry.EndVertex)
			if err != nil {
				return nil, err
			}
			p, err := store.ReadProperty(node.Properties, decode)
			if err != nil {
				return nil, err
			}
			seq = append(seq, p)
		}

		paths = append(paths, seq)
	}

	return paths, nil
}

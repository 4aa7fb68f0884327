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
	"strings"

	"github.com/gravitydb/gravitydb/keys"
)

/*
ListNodeIDs returns every node id in the store, used by the query
evaluator's VertexQuery::All (spec §4.6).
*/
func (s *Store) ListNodeIDs() ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entries, err := s.kv.ListRecords(keys.PrefixNodes)
	if err != nil {
		return nil, wrapKV(err, "listing nodes")
	}

	return stripNamespaceMarker(entries), nil
}

/*
ListEdgeKeys returns every edge key in the store, used by the query
evaluator's EdgeQuery::All (spec §4.6).
*/
func (s *Store) ListEdgeKeys() ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entries, err := s.kv.ListRecords(keys.PrefixEdges)
	if err != nil {
		return nil, wrapKV(err, "listing edges")
	}

	return stripNamespaceMarker(entries), nil
}

func stripNamespaceMarker(entries []string) []string {
	out := entries[:0]
	for _, e := range entries {
		if e != namespaceMarker {
			out = append(out, e)
		}
	}

	return out
}

/*
PropertyBacklinks returns the holder ids of every backlink of the given kind
recorded against the property identified by hash (spec §4.5/§4.6's
PropertyQuery::ReferencingProperties and VertexQuery/EdgeQuery::Property
evaluation rules): kind is one of keys.KindNodes, keys.KindEdges or
keys.KindProps.
*/
func (s *Store) PropertyBacklinks(hash, kind string) ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entries, err := s.kv.ListRecords(keys.IndexBucket(hash))
	if err != nil {
		return nil, wrapKV(err, "listing backlinks")
	}

	prefix := kind + "_"

	var holders []string
	for _, e := range entries {
		if strings.HasPrefix(e, prefix) {
			holders = append(holders, strings.TrimPrefix(e, prefix))
		}
	}

	return holders, nil
}

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
	"go.uber.org/zap"

	"github.com/gravitydb/gravitydb/codec"
	"github.com/gravitydb/gravitydb/keys"
	"github.com/gravitydb/gravitydb/kv"
)

/*
EdgeData is the decoded form of a directed edge record (spec §3, §6). Key is
the edge's own content-addressed hash (invariant I6): the SHA-256 of its
serialized {properties, n1, n2} triple.
*/
type EdgeData struct {
	Key        string
	Properties string
	N1         string
	N2         string
}

func fromEdgeRecord(key string, r *codec.EdgeRecord) *EdgeData {
	return &EdgeData{Key: key, Properties: r.Properties, N1: r.N1, N2: r.N2}
}

func (e *EdgeData) toRecord() *codec.EdgeRecord {
	return &codec.EdgeRecord{Properties: e.Properties, N1: e.N1, N2: e.N2}
}

/*
CreateEdge stores p, computes the edge's content-addressed key from
{p.hash, n1, n2} (invariant I6), writes the edge record, appends the edge to
n1's outgoing set and n2's incoming set (both, for a self-loop: spec §4.4
edge case), and creates an Edge-kind backlink from p's hash to the edge.

Both endpoints must already exist; CreateEdge returns whatever KindNotFound
error reading a missing endpoint produces.
*/
func (s *Store) CreateEdge(n1, n2 string, p Property) (*EdgeData, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	node1, err := s.readNode(n1)
	if err != nil {
		return nil, err
	}

	var node2 *NodeData
	if n2 == n1 {
		node2 = node1
	} else {
		node2, err = s.readNode(n2)
		if err != nil {
			return nil, err
		}
	}

	phash, _, err := s.storeProperty(p, make(map[string]bool))
	if err != nil {
		return nil, err
	}

	record := &codec.EdgeRecord{Properties: phash, N1: n1, N2: n2}

	data, err := codec.EncodeEdge(record)
	if err != nil {
		return nil, newError(KindSerialization, err.Error())
	}

	edgeKey := keys.Hash(data)
	storeKey := keys.EdgeKey(edgeKey)

	exists, err := s.kv.Exists(storeKey)
	if err != nil {
		return nil, wrapKV(err, "checking edge existence")
	}

	// A second CreateEdge with the exact same {properties, n1, n2} hashes to
	// the same key (invariant I6); re-touching adjacency and the backlink
	// below is a harmless no-op in that case.
	if !exists {
		if err := s.kv.StoreRecord(storeKey, data); err != nil {
			return nil, wrapKV(err, "storing edge")
		}

		node1.Outgoing = appendUnique(node1.Outgoing, edgeKey)
		if err := s.writeNode(node1); err != nil {
			return nil, err
		}

		if n2 == n1 {
			node1.Incoming = appendUnique(node1.Incoming, edgeKey)
			if err := s.writeNode(node1); err != nil {
				return nil, err
			}
		} else {
			node2.Incoming = appendUnique(node2.Incoming, edgeKey)
			if err := s.writeNode(node2); err != nil {
				return nil, err
			}
		}
	}

	if err := s.createIdxBacklink(phash, edgeKey, keys.KindEdges); err != nil {
		return nil, err
	}

	s.log.Debug("edge created", zap.String("key", edgeKey), zap.String("n1", n1), zap.String("n2", n2))

	return fromEdgeRecord(edgeKey, record), nil
}

func appendUnique(set []string, v string) []string {
	for _, existing := range set {
		if existing == v {
			return set
		}
	}

	return append(set, v)
}

func removeValue(set []string, v string) []string {
	out := set[:0]
	for _, existing := range set {
		if existing != v {
			out = append(out, existing)
		}
	}

	return out
}

/*
ReadEdge fetches and decodes edges/<key>. Returns KindNotFound if absent.
*/
func (s *Store) ReadEdge(key string) (*EdgeData, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.readEdge(key)
}

func (s *Store) readEdge(key string) (*EdgeData, error) {
	data, err := s.kv.FetchRecord(keys.EdgeKey(key))
	if err != nil {
		if err == kv.ErrNotFound {
			return nil, newError(KindNotFound, keys.EdgeKey(key))
		}
		return nil, wrapKV(err, "fetching edge")
	}

	record, err := codec.DecodeEdge(data)
	if err != nil {
		return nil, newError(KindSerialization, err.Error())
	}

	return fromEdgeRecord(key, record), nil
}

/*
DeleteEdge removes the edge from both endpoints' adjacency sets (once, for a
self-loop), deletes the edge record, and removes the Edge-kind property
backlink - recursively deleting the property if this was its last reference
(spec §4.4). decode must reconstruct the concrete type the edge's property
was stored with.
*/
func (s *Store) DeleteEdge(key string, decode Decoder) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	edge, err := s.readEdge(key)
	if err != nil {
		return err
	}

	node1, err := s.readNode(edge.N1)
	if err != nil {
		return err
	}
	node1.Outgoing = removeValue(node1.Outgoing, key)

	if edge.N2 == edge.N1 {
		node1.Incoming = removeValue(node1.Incoming, key)
		if err := s.writeNode(node1); err != nil {
			return err
		}
	} else {
		if err := s.writeNode(node1); err != nil {
			return err
		}

		node2, err := s.readNode(edge.N2)
		if err != nil {
			return err
		}
		node2.Incoming = removeValue(node2.Incoming, key)
		if err := s.writeNode(node2); err != nil {
			return err
		}
	}

	if err := s.kv.DeleteRecord(keys.EdgeKey(key)); err != nil {
		return wrapKV(err, "deleting edge record")
	}

	if err := s.deleteProperty(edge.Properties, key, keys.KindEdges, decode, make(map[string]bool)); err != nil {
		return err
	}

	s.log.Debug("edge deleted", zap.String("key", key))

	return nil
}

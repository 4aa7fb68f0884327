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
NodeData is the decoded form of a vertex record (spec §3, §6).
*/
type NodeData struct {
	ID         string
	Properties string
	Incoming   []string
	Outgoing   []string
}

func fromNodeRecord(r *codec.NodeRecord) *NodeData {
	return &NodeData{ID: r.ID, Properties: r.Properties, Incoming: r.Incoming, Outgoing: r.Outgoing}
}

func (n *NodeData) toRecord() *codec.NodeRecord {
	return &codec.NodeRecord{ID: n.ID, Properties: n.Properties, Incoming: n.Incoming, Outgoing: n.Outgoing}
}

/*
CreateNode stores p (via CreateProperty), writes a node record with empty
adjacency sets, and creates a Node-kind backlink from p's hash to the node
(spec §4.4). Fails with KindNodeExists if nodes/<id> already exists
(invariant I5). id must be a valid UUID; pass "" to have one generated.
*/
func (s *Store) CreateNode(id string, p Property) (*NodeData, error) {
	nodeID, err := s.resolveNodeID(id)
	if err != nil {
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	key := keys.NodeKey(nodeID)

	exists, err := s.kv.Exists(key)
	if err != nil {
		return nil, wrapKV(err, "checking node existence")
	}
	if exists {
		return nil, newError(KindNodeExists, key)
	}

	phash, err := s.createProperty(p, nodeID, keys.KindNodes, make(map[string]bool))
	if err != nil && !IsKind(err, KindExistedBefore) {
		return nil, err
	}

	node := &NodeData{ID: nodeID, Properties: phash, Incoming: []string{}, Outgoing: []string{}}

	if err := s.writeNode(node); err != nil {
		return nil, err
	}

	s.log.Debug("node created", zap.String("id", nodeID))

	return node, nil
}

func (s *Store) resolveNodeID(id string) (string, error) {
	if id == "" {
		return keys.NewNodeID(), nil
	}

	normalized, err := keys.NormalizeNodeID(id)
	if err != nil {
		return "", newError(KindUuidParse, id)
	}

	return normalized, nil
}

/*
ReadNode fetches and decodes nodes/<id>. Returns KindNotFound if absent. The
node's Properties field is only the content hash; fetch the value itself
with ReadProperty and a Decoder matching the concrete type it was stored
with.
*/
func (s *Store) ReadNode(id string) (*NodeData, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.readNode(id)
}

func (s *Store) readNode(id string) (*NodeData, error) {
	data, err := s.kv.FetchRecord(keys.NodeKey(id))
	if err != nil {
		if err == kv.ErrNotFound {
			return nil, newError(KindNotFound, keys.NodeKey(id))
		}
		return nil, wrapKV(err, "fetching node")
	}

	record, err := codec.DecodeNode(data)
	if err != nil {
		return nil, newError(KindSerialization, err.Error())
	}

	return fromNodeRecord(record), nil
}

func (s *Store) writeNode(n *NodeData) error {
	data, err := codec.EncodeNode(n.toRecord())
	if err != nil {
		return newError(KindSerialization, err.Error())
	}

	if err := s.kv.StoreRecord(keys.NodeKey(n.ID), data); err != nil {
		return wrapKV(err, "storing node")
	}

	return nil
}

/*
UpdateNode stores pNew, rewrites the node record, creates the new property
backlink, and removes the old one - recursively deleting the old property
if that was its last reference (spec §4.4). The new backlink is created
before the old one is removed, so a reader can never observe the node
pointing at a property with zero backlinks (spec §4.4, §5 ordering
guarantee). decodeOld must reconstruct the concrete type the node's
previous property was stored with, so its nested() tree can be walked
during cleanup.
*/
func (s *Store) UpdateNode(id string, pNew Property, decodeOld Decoder) (*NodeData, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	node, err := s.readNode(id)
	if err != nil {
		return nil, err
	}

	oldPhash := node.Properties

	newPhash, err := s.createProperty(pNew, id, keys.KindNodes, make(map[string]bool))
	if err != nil && !IsKind(err, KindExistedBefore) {
		return nil, err
	}

	node.Properties = newPhash

	if err := s.writeNode(node); err != nil {
		return nil, err
	}

	if oldPhash != newPhash {
		if err := s.deleteProperty(oldPhash, id, keys.KindNodes, decodeOld, make(map[string]bool)); err != nil {
			return nil, err
		}
	}

	s.log.Debug("node updated", zap.String("id", id))

	return node, nil
}

/*
DeleteNode reads the node, removes its property backlink (recursively
deleting the property if it was the last one, via decode), then deletes the
node record (spec §4.4).

If the node still has adjacent edges, behavior depends on the Store's
DeletePolicy (spec §4.4/§9 open question, resolved in SPEC_FULL.md §C.4):
CascadeDelete (the default) deletes every adjacent edge first via DeleteEdge
- so edgeDecode must match the property type edges in this graph were
created with - so that backlink bookkeeping stays correct; RefuseIfAdjacent
instead returns a KindHasAdjacency error without touching anything.
*/
func (s *Store) DeleteNode(id string, decode, edgeDecode Decoder) error {
	s.mutex.Lock()
	node, err := s.readNode(id)
	if err != nil {
		s.mutex.Unlock()
		return err
	}
	s.mutex.Unlock()

	if len(node.Incoming) > 0 || len(node.Outgoing) > 0 {
		if s.deletePolicy == RefuseIfAdjacent {
			return newError(KindHasAdjacency, keys.NodeKey(id))
		}

		// Snapshot the adjacency sets: DeleteEdge below mutates this node's
		// own record as a side effect of deleting each edge, so iterate a
		// copy rather than the field that is about to change under us.
		edgeKeys := make(map[string]bool)
		for _, k := range node.Incoming {
			edgeKeys[k] = true
		}
		for _, k := range node.Outgoing {
			edgeKeys[k] = true
		}

		for edgeKey := range edgeKeys {
			if err := s.DeleteEdge(edgeKey, edgeDecode); err != nil {
				return err
			}
		}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	node, err = s.readNode(id)
	if err != nil {
		return err
	}

	if err := s.deleteProperty(node.Properties, id, keys.KindNodes, decode, make(map[string]bool)); err != nil {
		return err
	}

	if err := s.kv.DeleteRecord(keys.NodeKey(id)); err != nil {
		return wrapKV(err, "deleting node record")
	}

	s.log.Debug("node deleted", zap.String("id", id))

	return nil
}

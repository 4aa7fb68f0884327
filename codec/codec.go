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
Package codec implements the JSON encoding of GravityDB's structural records
(spec §4.2, §6): nodes and edges. Adjacency sets and the property reference
are stored with a stable field layout so that two structurally identical
records serialize to identical bytes - this is what makes edge keys (the
hash of the edge's serialized form) a pure function of content (spec §3,
invariant I6).

Encoding is delegated to github.com/goccy/go-json, an encoding/json-compatible
but faster codec.
*/
package codec

import (
	"sort"

	gojson "github.com/goccy/go-json"
)

/*
NodeRecord is the on-disk representation of a vertex (spec §3, §6).
*/
type NodeRecord struct {
	ID         string   `json:"id"`
	Properties string   `json:"properties"`
	Incoming   []string `json:"incoming"`
	Outgoing   []string `json:"outgoing"`
}

/*
EdgeRecord is the on-disk representation of a directed edge (spec §3, §6).
*/
type EdgeRecord struct {
	Properties string `json:"properties"`
	N1         string `json:"n1"`
	N2         string `json:"n2"`
}

/*
Normalize sorts the adjacency sets in place so that two NodeRecords with the
same members serialize identically regardless of insertion order (spec
§4.2).
*/
func (n *NodeRecord) Normalize() {
	sort.Strings(n.Incoming)
	sort.Strings(n.Outgoing)
}

/*
EncodeNode serializes a NodeRecord to its stable-field-order JSON form.
*/
func EncodeNode(n *NodeRecord) ([]byte, error) {
	cp := *n
	cp.Normalize()
	if cp.Incoming == nil {
		cp.Incoming = []string{}
	}
	if cp.Outgoing == nil {
		cp.Outgoing = []string{}
	}

	return gojson.Marshal(&cp)
}

/*
DecodeNode deserializes a NodeRecord from its JSON form.
*/
func DecodeNode(data []byte) (*NodeRecord, error) {
	var n NodeRecord
	if err := gojson.Unmarshal(data, &n); err != nil {
		return nil, err
	}

	return &n, nil
}

/*
EncodeEdge serializes an EdgeRecord to its stable-field-order JSON form. The
same byte sequence this function produces is what gets hashed to compute the
edge's content-addressed key (spec §3, §4.2).
*/
func EncodeEdge(e *EdgeRecord) ([]byte, error) {
	return gojson.Marshal(e)
}

/*
DecodeEdge deserializes an EdgeRecord from its JSON form.
*/
func DecodeEdge(data []byte) (*EdgeRecord, error) {
	var e EdgeRecord
	if err := gojson.Unmarshal(data, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravitydb/gravitydb/codec"
)

func TestNodeRoundTrip(t *testing.T) {
	n := &codec.NodeRecord{
		ID:         "a1a2a3a4-b1b2-c1c2-d1d2-d3d4d5d6d7d8",
		Properties: "E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855",
		Incoming:   []string{"zz", "aa"},
		Outgoing:   nil,
	}

	data, err := codec.EncodeNode(n)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"id":"a1a2a3a4-b1b2-c1c2-d1d2-d3d4d5d6d7d8",`+
			`"properties":"E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855",`+
			`"incoming":["aa","zz"],"outgoing":[]}`, string(data))

	decoded, err := codec.DecodeNode(data)
	require.NoError(t, err)
	require.Equal(t, n.ID, decoded.ID)
	require.Equal(t, []string{"aa", "zz"}, decoded.Incoming)
	require.Equal(t, []string{}, decoded.Outgoing)
}

func TestNodeSerializationIsOrderIndependent(t *testing.T) {
	a := &codec.NodeRecord{ID: "x", Properties: "H", Incoming: []string{"b", "a"}, Outgoing: []string{}}
	b := &codec.NodeRecord{ID: "x", Properties: "H", Incoming: []string{"a", "b"}, Outgoing: []string{}}

	da, err := codec.EncodeNode(a)
	require.NoError(t, err)
	db, err := codec.EncodeNode(b)
	require.NoError(t, err)

	require.Equal(t, da, db)
}

func TestEdgeRoundTrip(t *testing.T) {
	e := &codec.EdgeRecord{Properties: "H", N1: "n1", N2: "n2"}

	data, err := codec.EncodeEdge(e)
	require.NoError(t, err)

	decoded, err := codec.DecodeEdge(data)
	require.NoError(t, err)
	require.Equal(t, e, decoded)
}

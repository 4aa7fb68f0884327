/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package keys_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravitydb/gravitydb/keys"
)

func TestHashOfEmptyStringIsWellKnown(t *testing.T) {
	require.Equal(t, "E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855", keys.Hash(nil))
}

func TestIndexKeyLayout(t *testing.T) {
	got := keys.IndexKey("ABCD", keys.KindNodes, "n1")
	require.Equal(t, "indexes/ABCD/nodes_n1", got)
}

func TestNormalizeNodeIDRejectsGarbage(t *testing.T) {
	_, err := keys.NormalizeNodeID("not-a-uuid")
	require.Error(t, err)
}

func TestNewNodeIDIsCanonicalForm(t *testing.T) {
	id := keys.NewNodeID()
	normalized, err := keys.NormalizeNodeID(id)
	require.NoError(t, err)
	require.Equal(t, id, normalized)
}

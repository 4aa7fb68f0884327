/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravitydb/gravitydb/console"
	"github.com/gravitydb/gravitydb/gravity"
	"github.com/gravitydb/gravitydb/kv"
	"github.com/gravitydb/gravitydb/propval"
	"github.com/gravitydb/gravitydb/query"
)

func TestVertexAllListsEveryNode(t *testing.T) {
	store := gravity.New(kv.NewMemoryStore())
	n1, err := store.CreateNode("", propval.Bytes{})
	require.NoError(t, err)
	n2, err := store.CreateNode("", propval.NewText("b"))
	require.NoError(t, err)

	var out bytes.Buffer
	c := console.NewConsole(query.NewEvaluator(store), &out)

	handled, err := c.Run("vertex all")
	require.True(t, handled)
	require.NoError(t, err)

	lines := strings.Fields(out.String())
	require.ElementsMatch(t, []string{n1.ID, n2.ID}, lines)
}

func TestVertexOutTraversal(t *testing.T) {
	store := gravity.New(kv.NewMemoryStore())
	n1, err := store.CreateNode("", propval.Bytes{})
	require.NoError(t, err)
	n2, err := store.CreateNode("", propval.NewText("dest"))
	require.NoError(t, err)
	_, err = store.CreateEdge(n1.ID, n2.ID, propval.Bytes{})
	require.NoError(t, err)

	var out bytes.Buffer
	c := console.NewConsole(query.NewEvaluator(store), &out)

	handled, err := c.Run("vertex out (out specific " + n1.ID + ")")
	require.True(t, handled)
	require.NoError(t, err)
	require.Equal(t, n2.ID+"\n", out.String())
}

func TestUnknownCommandIsReportedButHandledFalse(t *testing.T) {
	store := gravity.New(kv.NewMemoryStore())
	var out bytes.Buffer
	c := console.NewConsole(query.NewEvaluator(store), &out)

	handled, err := c.Run("bogus")
	require.False(t, handled)
	require.Error(t, err)
}

func TestHelpIsHandledWithoutError(t *testing.T) {
	store := gravity.New(kv.NewMemoryStore())
	var out bytes.Buffer
	c := console.NewConsole(query.NewEvaluator(store), &out)

	handled, err := c.Run("help")
	require.True(t, handled)
	require.NoError(t, err)
	require.NotEmpty(t, out.String())
}

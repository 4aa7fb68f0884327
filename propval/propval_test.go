/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package propval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravitydb/gravitydb/gravity"
	"github.com/gravitydb/gravitydb/propval"
)

func TestTextRoundTrip(t *testing.T) {
	v := propval.NewText("dry vermouth")

	data, err := v.Serialize()
	require.NoError(t, err)

	decoded, err := propval.Decode(data)
	require.NoError(t, err)
	require.Equal(t, v, decoded)

	nested, err := v.Nested()
	require.NoError(t, err)
	require.Empty(t, nested)
}

func TestIntRoundTrip(t *testing.T) {
	v := propval.NewInt(-42)

	data, err := v.Serialize()
	require.NoError(t, err)

	decoded, err := propval.Decode(data)
	require.NoError(t, err)
	require.Equal(t, v, decoded)
}

func TestMapSerializationIsOrderIndependent(t *testing.T) {
	a := propval.NewMap(map[string]propval.Value{
		"gin":      propval.NewText("2oz"),
		"vermouth": propval.NewText("1oz"),
	})
	b := propval.NewMap(map[string]propval.Value{
		"vermouth": propval.NewText("1oz"),
		"gin":      propval.NewText("2oz"),
	})

	dataA, err := a.Serialize()
	require.NoError(t, err)
	dataB, err := b.Serialize()
	require.NoError(t, err)

	require.Equal(t, dataA, dataB)
}

func TestMapNestedReturnsChildValues(t *testing.T) {
	m := propval.NewMap(map[string]propval.Value{
		"name": propval.NewText("Martini"),
		"abv":  propval.NewInt(35),
	})

	children, err := m.Nested()
	require.NoError(t, err)
	require.Len(t, children, 2)

	for _, c := range children {
		_, ok := c.(propval.Value)
		require.True(t, ok)
	}
}

func TestNestedMapOfMapsRoundTripsThroughOneDecoder(t *testing.T) {
	inner := propval.NewMap(map[string]propval.Value{
		"unit": propval.NewText("oz"),
	})
	outer := propval.NewMap(map[string]propval.Value{
		"gin": inner,
	})

	data, err := outer.Serialize()
	require.NoError(t, err)

	decoded, err := propval.Decode(data)
	require.NoError(t, err)

	outerV := decoded.(propval.Value)
	require.Equal(t, propval.KindMap, outerV.Kind)

	innerV := outerV.Map["gin"]
	require.Equal(t, propval.KindMap, innerV.Kind)
	require.Equal(t, "oz", innerV.Map["unit"].Text)

	var asGravity gravity.Property = outerV
	nested, err := asGravity.Nested()
	require.NoError(t, err)
	require.Len(t, nested, 1)

	innerAgain := nested[0].(propval.Value)
	innerNested, err := innerAgain.Nested()
	require.NoError(t, err)
	require.Len(t, innerNested, 1)
}

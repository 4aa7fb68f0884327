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
Package propval provides a reference gravity.Property implementation, Value,
covering the handful of property shapes the original source's test fixtures
exercise: UTF-8 text, signed integers, and maps of named child values. It is
not the only possible property type - any type satisfying gravity.Property
works - but a store's nested-property recursion requires every level of a
given property tree to share one concrete type (the same constraint the
original source's generic Property<K, E> parameter imposes), so Value's
Map variant holds other Values rather than the gravity.Property interface.
*/
package propval

import (
	"fmt"
	"sort"

	gojson "github.com/goccy/go-json"

	"github.com/gravitydb/gravitydb/gravity"
)

/*
Bytes is a raw byte-string property whose serialization is exactly its own
contents, with no framing. Grounded directly on the original source's
`impl<E> SchemaElement<String, E> for Vec<u8>` (schema.rs): the simplest
possible Property, useful for empty or externally-encoded property values
where Value's JSON framing would be unwanted overhead.
*/
type Bytes []byte

func (b Bytes) Serialize() ([]byte, error) {
	return []byte(b), nil
}

func (b Bytes) Nested() ([]gravity.Property, error) {
	return nil, nil
}

/*
DecodeBytes reconstructs a Bytes value; it always succeeds, since any byte
string is a valid Bytes encoding.
*/
func DecodeBytes(data []byte) (gravity.Property, error) {
	cp := make(Bytes, len(data))
	copy(cp, data)
	return cp, nil
}

/*
Kind discriminates the variant a Value holds.
*/
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindMap
)

/*
Value is a tagged union covering the property shapes exercised by a typical
GravityDB: scalars and maps-of-values. Exactly one of Text/Int/Map is
meaningful, selected by Kind.
*/
type Value struct {
	Kind Kind
	Text string
	Int  int64
	Map  map[string]Value
}

/*
NewText wraps a string as a Text-kind Value.
*/
func NewText(s string) Value {
	return Value{Kind: KindText, Text: s}
}

/*
NewInt wraps an int64 as an Int-kind Value.
*/
func NewInt(i int64) Value {
	return Value{Kind: KindInt, Int: i}
}

/*
NewMap wraps a field map as a Map-kind Value.
*/
func NewMap(fields map[string]Value) Value {
	return Value{Kind: KindMap, Map: fields}
}

// wireValue is the JSON shape a Value serializes to; fields are omitted
// unless they're the active variant, and Map's children are recursively
// wireValue so that two structurally identical Values always produce
// identical bytes (required: a property's storage key is the hash of this
// encoding).
type wireValue struct {
	Kind int                  `json:"kind"`
	Text string               `json:"text,omitempty"`
	Int  int64                `json:"int,omitempty"`
	Map  []wireMapEntry       `json:"map,omitempty"`
}

type wireMapEntry struct {
	Key   string    `json:"key"`
	Value wireValue `json:"value"`
}

func (v Value) toWire() wireValue {
	w := wireValue{Kind: int(v.Kind), Text: v.Text, Int: v.Int}

	if v.Kind == KindMap {
		keys := make([]string, 0, len(v.Map))
		for k := range v.Map {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		w.Map = make([]wireMapEntry, 0, len(keys))
		for _, k := range keys {
			w.Map = append(w.Map, wireMapEntry{Key: k, Value: v.Map[k].toWire()})
		}
	}

	return w
}

func fromWire(w wireValue) Value {
	v := Value{Kind: Kind(w.Kind), Text: w.Text, Int: w.Int}

	if v.Kind == KindMap {
		v.Map = make(map[string]Value, len(w.Map))
		for _, e := range w.Map {
			v.Map[e.Key] = fromWire(e.Value)
		}
	}

	return v
}

/*
Serialize returns the deterministic JSON encoding of v (spec §4.3): map
fields are sorted by key so that two Values with the same members always
produce identical bytes.
*/
func (v Value) Serialize() ([]byte, error) {
	return gojson.Marshal(v.toWire())
}

/*
Nested returns the direct child Values of a Map-kind Value (spec §4.3), so
the store recursively persists and backlinks them. Scalars have none.
*/
func (v Value) Nested() ([]gravity.Property, error) {
	if v.Kind != KindMap {
		return nil, nil
	}

	keys := make([]string, 0, len(v.Map))
	for k := range v.Map {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	children := make([]gravity.Property, 0, len(keys))
	for _, k := range keys {
		children = append(children, v.Map[k])
	}

	return children, nil
}

/*
Decode reconstructs a Value from the bytes a prior Serialize call produced.
It is the gravity.Decoder to use with any Store holding Values, at every
level of recursion - Map's children are Values too, so the same Decoder
walks the whole tree.
*/
func Decode(data []byte) (gravity.Property, error) {
	var w wireValue
	if err := gojson.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("propval: %w", err)
	}

	return fromWire(w), nil
}

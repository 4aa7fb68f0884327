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
Package gravity implements the graph store: content-addressed node, edge and
property CRUD with property-deduplication and backlink maintenance (spec
§3, §4.3, §4.4).
*/
package gravity

import "github.com/gravitydb/gravitydb/keys"

/*
Property is the contract every value attached to a node or edge must
satisfy (spec §4.3). A Property is opaque to the store except for these two
capabilities: a deterministic byte serialization, and a declaration of the
other Property values it references (its "nested" properties), which seeds
the backlink recursion of invariants I2/I3.

Property implementations must not include non-deterministic fields -
iteration-order-dependent maps, timestamps, pointers - since the key of a
property is always the SHA-256 hash of its serialization (spec §4.3): equal
serializations must yield equal keys.
*/
type Property interface {

	/*
		Serialize returns the deterministic byte encoding of this value.
	*/
	Serialize() ([]byte, error)

	/*
		Nested returns the (possibly empty) set of child Property values that
		the store should also persist and link back to this one. Must be
		finite and acyclic (spec §9).
	*/
	Nested() ([]Property, error)
}

/*
Decoder reconstructs a concrete Property value from the bytes a prior
Serialize call produced. Because Property is opaque to the store, reading a
property back requires the caller to supply the Decoder matching the
concrete type they expect - analogous to how eliasdb's graph.Manager hands
callers a generic data.Node built directly from stored attributes rather
than reflecting a type out of thin air.
*/
type Decoder func([]byte) (Property, error)

/*
Key returns the content-addressed hash of p: SHA-256 of its serialization,
uppercase hex (spec §4.3).
*/
func Key(p Property) (string, error) {
	data, err := p.Serialize()
	if err != nil {
		return "", err
	}

	return keys.Hash(data), nil
}

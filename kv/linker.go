/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package kv

/*
Linker is an optional capability a Store backend may implement to expose the
hard-link optimization described in spec §4.1/§9: a backlink record can share
storage with the record it points to, so that deleting the last directory
entry is what frees the underlying bytes. Only FSStore implements Linker;
MemoryStore and VFSStore do not. The graph store does not use Linker: on
every backend its backlinks are ordinary records written with StoreRecord,
which do not share storage with the record they point to.
*/
type Linker interface {
	// LinkRecord creates newKey as a hard link to existingKey's storage.
	LinkRecord(existingKey, newKey string) error
}

var _ Linker = (*FSStore)(nil)

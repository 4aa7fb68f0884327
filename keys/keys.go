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
Package keys implements GravityDB's key scheme (spec §4.2): the fixed
record-kind prefixes, SHA-256 content hashing, and UUID formatting shared by
every backend.
*/
package keys

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

/*
Top-level bucket prefixes. Every record key in a GravityDB database starts
with one of these.
*/
const (
	PrefixNodes   = "nodes/"
	PrefixEdges   = "edges/"
	PrefixProps   = "props/"
	PrefixIndexes = "indexes/"
)

/*
Backlink kinds, used as the "<kind>_<holder-key>" suffix of an index record
(spec §4.2, §4.4).
*/
const (
	KindNodes = "nodes"
	KindEdges = "edges"
	KindProps = "props"
)

/*
Hash returns the uppercase hex SHA-256 digest of data (spec §4.2, §4.3).
*/
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

/*
NodeKey returns the storage key for the node with the given id (spec §4.2).
id must already be in standard 8-4-4-4-12 lowercase hyphenated form.
*/
func NodeKey(id string) string {
	return PrefixNodes + id
}

/*
EdgeKey returns the storage key for the edge with the given content hash.
*/
func EdgeKey(hash string) string {
	return PrefixEdges + hash
}

/*
PropKey returns the storage key for the property with the given content
hash.
*/
func PropKey(hash string) string {
	return PrefixProps + hash
}

/*
IndexBucket returns the bucket (directory prefix) holding every backlink for
the property with the given hash.
*/
func IndexBucket(propHash string) string {
	return PrefixIndexes + propHash + "/"
}

/*
IndexKey returns the storage key of a single backlink record: the reverse
index entry recording that holder (a node id, an edge hash, or another
property's hash) of the given kind references the property identified by
propHash (spec §4.2, §4.4).
*/
func IndexKey(propHash, kind, holder string) string {
	return IndexBucket(propHash) + kind + "_" + holder
}

/*
NewNodeID generates a fresh, randomly generated node id in standard
8-4-4-4-12 lowercase hyphenated UUID form (spec §3, §4.2).
*/
func NewNodeID() string {
	return uuid.New().String()
}

/*
NormalizeNodeID parses id and returns its canonical 8-4-4-4-12 lowercase
hyphenated form, or an error if id is not a valid UUID (spec §7, UuidParse).
*/
func NormalizeNodeID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", err
	}

	return u.String(), nil
}

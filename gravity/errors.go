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
	"fmt"

	"github.com/pkg/errors"
)

/*
Kind identifies the taxonomy of a GraphError (spec §7). ExistedBefore is an
internal control-flow signal: CreateProperty's recursive calls use it to
tell the caller "this child property was already live", which is swallowed
inside CreateProperty and never returned to an external caller.
*/
type Kind int

const (
	// KindMalformedDB means a structural precondition was violated on open
	// or during parsing.
	KindMalformedDB Kind = iota

	// KindNodeExists means a create_node call targeted an id that already
	// exists (invariant I5).
	KindNodeExists

	// KindExistedBefore is swallowed inside CreateProperty's recursion; it
	// never escapes to an external caller.
	KindExistedBefore

	// KindMalformedInput means non-UTF-8 or otherwise undecodable bytes were
	// found where a string was expected. It is also returned when a
	// property's nested() tree contains a cycle.
	KindMalformedInput

	// KindUuidParse means a node id could not be parsed as a UUID.
	KindUuidParse

	// KindSerialization means a JSON encode/decode of a structural record
	// failed.
	KindSerialization

	// KindKV wraps an error returned by the underlying kv.Store.
	KindKV

	// KindNotFound means the requested node, edge or property does not
	// exist.
	KindNotFound

	// KindHasAdjacency means delete_node was asked to refuse deletion of a
	// node that still has incoming or outgoing edges. Not used by the
	// default cascade policy (see DESIGN.md) but kept for callers that
	// configure the refuse policy via WithDeletePolicy.
	KindHasAdjacency

	// KindUnsupported means an operation hit a reserved extension point
	// that this engine deliberately does not implement. No Store operation
	// currently returns it: the query evaluator reports Filter/Store nodes
	// with query.ErrUnsupported and evaluates ReferencedProperties to an
	// empty set.
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindMalformedDB:
		return "MalformedDB"
	case KindNodeExists:
		return "NodeExists"
	case KindExistedBefore:
		return "ExistedBefore"
	case KindMalformedInput:
		return "MalformedInput"
	case KindUuidParse:
		return "UuidParse"
	case KindSerialization:
		return "Serialization"
	case KindKV:
		return "KV"
	case KindNotFound:
		return "NotFound"
	case KindHasAdjacency:
		return "HasAdjacency"
	case KindUnsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

/*
GraphError is a graph-related error, modeled directly on
eliasdb/graph/util.GraphError: a taxonomy Kind plus a human-readable Detail,
with the original backend error (if any) preserved for unwrapping.
*/
type GraphError struct {
	Kind   Kind
	Detail string
	Cause  error
}

func (e *GraphError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("gravity: %v (%v)", e.Kind, e.Detail)
	}

	return fmt.Sprintf("gravity: %v", e.Kind)
}

/*
Unwrap exposes the wrapped backend error, if any, so callers can
errors.Is/errors.As through to the original kv.Store error.
*/
func (e *GraphError) Unwrap() error {
	return e.Cause
}

func newError(kind Kind, detail string) *GraphError {
	return &GraphError{Kind: kind, Detail: detail}
}

func wrapKV(err error, detail string) *GraphError {
	return &GraphError{Kind: KindKV, Detail: detail, Cause: errors.WithStack(err)}
}

/*
IsKind reports whether err is a *GraphError of the given kind.
*/
func IsKind(err error, kind Kind) bool {
	ge, ok := err.(*GraphError)
	return ok && ge.Kind == kind
}

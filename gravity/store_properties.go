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
	"go.uber.org/zap"

	"github.com/gravitydb/gravitydb/keys"
	"github.com/gravitydb/gravitydb/kv"
)

/*
CreateProperty idempotently stores p under props/<hash>, then recursively
stores and links every child of p.Nested() (spec §4.4). holder/kind identify
who is creating this reference, so the right backlink can be recorded; pass
kind=keys.KindProps and holder=the parent property's own hash when called
recursively for a nested child - CreateProperty does this internally.

Returns the content hash of p. An ExistedBefore signal (p or a child was
already live) is swallowed, per spec §4.4/§7.
*/
func (s *Store) CreateProperty(p Property, holder, holderKind string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	hash, err := s.createProperty(p, holder, holderKind, make(map[string]bool))
	if err != nil && IsKind(err, KindExistedBefore) {
		return hash, nil
	}

	return hash, err
}

func (s *Store) createProperty(p Property, holder, holderKind string, visited map[string]bool) (string, error) {
	hash, existed, err := s.storeProperty(p, visited)
	if err != nil {
		return "", err
	}

	if err := s.createIdxBacklink(hash, holder, holderKind); err != nil {
		return "", err
	}

	s.log.Debug("property linked", zap.String("hash", hash), zap.String("holder", holder), zap.String("kind", holderKind))

	if existed {
		return hash, &GraphError{Kind: KindExistedBefore, Detail: hash}
	}

	return hash, nil
}

// storeProperty idempotently writes p and recurses into its nested()
// children, but does not itself record a backlink from any holder - used by
// CreateEdge, whose own content-addressed key is only known once the
// property's hash has already been computed, so the edge-kind backlink must
// be created separately once that key exists.
func (s *Store) storeProperty(p Property, visited map[string]bool) (hash string, existed bool, err error) {
	data, err := p.Serialize()
	if err != nil {
		return "", false, newError(KindSerialization, err.Error())
	}

	hash = keys.Hash(data)

	if visited[hash] {
		// A cycle in nested() would otherwise recurse forever (spec §9).
		return "", false, newError(KindMalformedInput, "cyclic nested() reference at "+hash)
	}
	visited[hash] = true

	key := keys.PropKey(hash)

	existed, err = s.kv.Exists(key)
	if err != nil {
		return "", false, wrapKV(err, "checking property existence")
	}

	if !existed {
		if err := s.kv.StoreRecord(key, data); err != nil {
			return "", false, wrapKV(err, "storing property")
		}
	}

	children, err := p.Nested()
	if err != nil {
		return "", false, newError(KindSerialization, err.Error())
	}

	for _, child := range children {
		if _, err := s.createProperty(child, hash, keys.KindProps, visited); err != nil && !IsKind(err, KindExistedBefore) {
			return "", false, err
		}
	}

	return hash, existed, nil
}

/*
ReadProperty fetches and decodes the property stored under hash, using
decode to reconstruct the concrete Property value (spec §4.4).
*/
func (s *Store) ReadProperty(hash string, decode Decoder) (Property, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.readProperty(hash, decode)
}

func (s *Store) readProperty(hash string, decode Decoder) (Property, error) {
	data, err := s.kv.FetchRecord(keys.PropKey(hash))
	if err != nil {
		if err == kv.ErrNotFound {
			return nil, newError(KindNotFound, keys.PropKey(hash))
		}
		return nil, wrapKV(err, "fetching property")
	}

	p, err := decode(data)
	if err != nil {
		return nil, newError(KindSerialization, err.Error())
	}

	return p, nil
}

/*
DeleteProperty removes the backlink from holder to the property identified
by hash, and - if that was the last remaining backlink - deletes the
property record itself and recurses into its own nested() children (spec
§4.4). decode must reconstruct the same concrete type CreateProperty was
given, so Nested() can be walked again.
*/
func (s *Store) DeleteProperty(hash, holder, holderKind string, decode Decoder) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.deleteProperty(hash, holder, holderKind, decode, make(map[string]bool))
}

func (s *Store) deleteProperty(hash, holder, holderKind string, decode Decoder, visited map[string]bool) error {
	if visited[hash] {
		// A cycle in nested() would otherwise recurse forever (spec §9).
		return newError(KindMalformedInput, "cyclic nested() reference at "+hash)
	}
	visited[hash] = true

	wasLast, err := s.deletePropertyBacklink(hash, holder, holderKind)
	if err != nil {
		return err
	}

	if !wasLast {
		return nil
	}

	p, err := s.readProperty(hash, decode)
	if err != nil {
		return err
	}

	children, err := p.Nested()
	if err != nil {
		return newError(KindSerialization, err.Error())
	}

	for _, child := range children {
		childHash, err := Key(child)
		if err != nil {
			return newError(KindSerialization, err.Error())
		}

		if err := s.deleteProperty(childHash, hash, keys.KindProps, decode, visited); err != nil {
			return err
		}
	}

	if err := s.kv.DeleteRecord(keys.PropKey(hash)); err != nil {
		return wrapKV(err, "deleting property record")
	}

	s.log.Debug("property deleted", zap.String("hash", hash))

	return nil
}

/*
createIdxBacklink ensures the bucket indexes/<phash>/ exists and writes the
backlink record indexes/<phash>/<kind>_<holder> whose body is the holder's
own key (spec §4.4).
*/
func (s *Store) createIdxBacklink(phash, holder, kind string) error {
	if err := s.kv.CreateBucket(keys.IndexBucket(phash)); err != nil {
		return wrapKV(err, "creating index bucket")
	}

	idxKey := keys.IndexKey(phash, kind, holder)

	var holderPath string
	switch kind {
	case keys.KindNodes:
		holderPath = keys.NodeKey(holder)
	case keys.KindEdges:
		holderPath = keys.EdgeKey(holder)
	case keys.KindProps:
		holderPath = keys.PropKey(holder)
	}

	if err := s.kv.StoreRecord(idxKey, []byte(holderPath)); err != nil {
		return wrapKV(err, "storing backlink")
	}

	return nil
}

/*
deletePropertyBacklink deletes the backlink record and reports whether the
containing bucket is now empty - i.e. whether the property has no more
references and should itself be reclaimed (spec §4.4, §5, §9).
*/
func (s *Store) deletePropertyBacklink(phash, holder, kind string) (wasLast bool, err error) {
	idxKey := keys.IndexKey(phash, kind, holder)

	if err := s.kv.DeleteRecord(idxKey); err != nil {
		return false, wrapKV(err, "deleting backlink")
	}

	remaining, err := s.kv.ListRecords(keys.IndexBucket(phash))
	if err != nil {
		return false, wrapKV(err, "listing remaining backlinks")
	}

	return len(remaining) == 0, nil
}

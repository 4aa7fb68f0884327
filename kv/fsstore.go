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

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/krotik/common/fileutil"
	"github.com/pkg/errors"
)

/*
FSStore is a POSIX directory tree Store implementation. Buckets are
directories, records are files. StoreRecord always writes a file of its
own; LinkRecord additionally creates a record as a hard link to an existing
record's file, so that both directory entries share one inode and the data
is freed only when the last of them is removed (spec §4.1, §5, §9). The
graph store writes its backlinks with StoreRecord and does not call
LinkRecord, so on FSStore its backlinks are ordinary files.
*/
type FSStore struct {
	mutex sync.Mutex
	root  string
}

/*
NewFSStore opens (and if necessary creates) a POSIX directory tree backend
rooted at root.
*/
func NewFSStore(root string) (*FSStore, error) {
	exists, err := fileutil.PathExists(root)
	if err != nil {
		return nil, errors.Wrap(err, "kv: checking fs store root")
	}

	if !exists {
		if err := os.MkdirAll(root, 0755); err != nil {
			return nil, errors.Wrap(err, "kv: creating fs store root")
		}
	}

	return &FSStore{root: root}, nil
}

func (f *FSStore) path(key string) string {
	return filepath.Join(f.root, filepath.FromSlash(key))
}

/*
CreateBucket ensures the directory for key exists.
*/
func (f *FSStore) CreateBucket(key string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	return os.MkdirAll(f.path(key), 0755)
}

/*
StoreRecord writes value to the file at key, creating parent directories as
needed.
*/
func (f *FSStore) StoreRecord(key string, value []byte) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	p := f.path(key)

	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return errors.Wrap(err, "kv: creating parent directory")
	}

	return os.WriteFile(p, value, 0644)
}

/*
LinkRecord creates a hard link at newKey pointing at the same inode as
existingKey. This is the optimization the spec describes for backlinks: a
record and its backlink share storage, so removing both directory entries is
what actually frees the data (spec §4.1, §5, §9). If the hard link fails
(e.g. cross-device), the bytes of existingKey are copied into a new file at
newKey instead.
*/
func (f *FSStore) LinkRecord(existingKey, newKey string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	newPath := f.path(newKey)

	if err := os.MkdirAll(filepath.Dir(newPath), 0755); err != nil {
		return errors.Wrap(err, "kv: creating parent directory")
	}

	if err := os.Link(f.path(existingKey), newPath); err != nil {
		data, rerr := os.ReadFile(f.path(existingKey))
		if rerr != nil {
			return errors.Wrap(rerr, "kv: reading record to copy as link fallback")
		}
		return os.WriteFile(newPath, data, 0644)
	}

	return nil
}

/*
FetchRecord returns the bytes stored at key.
*/
func (f *FSStore) FetchRecord(key string) ([]byte, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "kv: reading record")
	}

	return data, nil
}

/*
DeleteRecord removes the file at key.
*/
func (f *FSStore) DeleteRecord(key string) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "kv: deleting record")
	}

	return nil
}

/*
Exists reports whether a file is stored at key.
*/
func (f *FSStore) Exists(key string) (bool, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	exists, err := fileutil.PathExists(f.path(key))
	if err != nil {
		return false, errors.Wrap(err, "kv: checking record existence")
	}

	return exists, nil
}

/*
ListRecords returns the suffix of every file under prefix, recursively.
*/
func (f *FSStore) ListRecords(prefix string) ([]string, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	base := f.path(prefix)

	exists, err := fileutil.PathExists(base)
	if err != nil {
		return nil, errors.Wrap(err, "kv: checking prefix directory")
	}
	if !exists {
		return nil, nil
	}

	var res []string

	err = filepath.Walk(base, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(base, p)
		if err != nil {
			return err
		}

		res = append(res, filepath.ToSlash(rel))

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "kv: walking prefix directory")
	}

	sort.Strings(res)

	return res, nil
}

/*
Close is a no-op for FSStore - there is nothing to flush beyond what
StoreRecord already wrote.
*/
func (f *FSStore) Close() error {
	return nil
}

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

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

/*
VFSStore is a Store backed by an afero.Fs, supporting both physical and
in-memory filesystems under the same implementation (spec §4.1). It is the
backend of choice for tests that want filesystem-shaped semantics (relative
paths, directories) without touching the real disk - use
NewVFSStore(afero.NewMemMapFs(), "/db") - or for callers that want the real
disk via afero.NewOsFs() without depending on FSStore's hard-link
optimization.
*/
type VFSStore struct {
	mutex sync.Mutex
	fs    afero.Fs
	root  string
}

/*
NewVFSStore creates a VFSStore rooted at root on the given afero filesystem.
*/
func NewVFSStore(fs afero.Fs, root string) (*VFSStore, error) {
	if err := fs.MkdirAll(root, 0755); err != nil {
		return nil, errors.Wrap(err, "kv: creating vfs store root")
	}

	return &VFSStore{fs: fs, root: root}, nil
}

func (v *VFSStore) path(key string) string {
	return filepath.Join(v.root, filepath.FromSlash(key))
}

/*
CreateBucket ensures the directory for key exists.
*/
func (v *VFSStore) CreateBucket(key string) error {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	return v.fs.MkdirAll(v.path(key), 0755)
}

/*
StoreRecord writes value to the file at key.
*/
func (v *VFSStore) StoreRecord(key string, value []byte) error {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	p := v.path(key)

	if err := v.fs.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return errors.Wrap(err, "kv: creating parent directory")
	}

	return afero.WriteFile(v.fs, p, value, 0644)
}

/*
FetchRecord returns the bytes stored at key.
*/
func (v *VFSStore) FetchRecord(key string) ([]byte, error) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	data, err := afero.ReadFile(v.fs, v.path(key))
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
func (v *VFSStore) DeleteRecord(key string) error {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	err := v.fs.Remove(v.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "kv: deleting record")
	}

	return nil
}

/*
Exists reports whether a file is stored at key.
*/
func (v *VFSStore) Exists(key string) (bool, error) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	exists, err := afero.Exists(v.fs, v.path(key))
	if err != nil {
		return false, errors.Wrap(err, "kv: checking record existence")
	}

	return exists, nil
}

/*
ListRecords returns the suffix of every file under prefix, recursively.
*/
func (v *VFSStore) ListRecords(prefix string) ([]string, error) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	base := v.path(prefix)

	exists, err := afero.DirExists(v.fs, base)
	if err != nil {
		return nil, errors.Wrap(err, "kv: checking prefix directory")
	}
	if !exists {
		return nil, nil
	}

	var res []string

	err = afero.Walk(v.fs, base, func(p string, info os.FileInfo, err error) error {
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
Close is a no-op for VFSStore.
*/
func (v *VFSStore) Close() error {
	return nil
}

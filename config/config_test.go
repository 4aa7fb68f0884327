/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gravitydb/gravitydb/config"
)

func TestDefaultIsInMemoryFriendly(t *testing.T) {
	cfg := config.Default()
	require.NotEmpty(t, cfg.DBPath)
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig.DBPath, cfg.DBPath)
}

func TestLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gravitydb.config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"db_path":"/var/lib/gravitydb"}`), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/var/lib/gravitydb", cfg.DBPath)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gravitydb.config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /srv/gravitydb\n"), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/gravitydb", cfg.DBPath)
}

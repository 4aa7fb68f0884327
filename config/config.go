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
Package config loads and holds GravityDB's configuration (SPEC_FULL.md
§A.3). It mirrors eliasdb/config's DefaultConfig-map-plus-file-loader shape,
generalized to a typed struct and two file formats.
*/
package config

import (
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

/*
DefaultConfigFile is the config file name Load tries when none is given
explicitly.
*/
const DefaultConfigFile = "gravitydb.config.json"

/*
Config is GravityDB's runtime configuration.
*/
type Config struct {
	// DBPath is the root directory (or, for an in-memory store, an opaque
	// label) the kv backend is opened against.
	DBPath string `json:"db_path" yaml:"db_path"`
}

/*
DefaultConfig is the built-in configuration, used whenever no file exists
at the requested path and as the base every loaded file is merged onto.
*/
var DefaultConfig = Config{
	DBPath: filepath.Join(os.TempDir(), "gravitydb"),
}

/*
Default returns the zero-config in-memory default: DBPath under the OS temp
directory. Used by callers that want a working Config without touching
disk.
*/
func Default() *Config {
	cfg := DefaultConfig
	return &cfg
}

/*
Load reads path, merging it onto DefaultConfig, and selects a decoder by
file extension: ".yaml"/".yml" via gopkg.in/yaml.v3, anything else
(including the default ".json") via goccy/go-json. A missing file is not an
error - Load returns DefaultConfig unchanged, mirroring eliasdb's
create-on-first-use behavior minus the actual file write.
*/
func Load(path string) (*Config, error) {
	cfg := DefaultConfig

	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = gojson.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

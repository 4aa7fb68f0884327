/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package version carries the GravityDB release identifiers printed by
// the `gravitydb version` subcommand.
package version

// VERSION is the version of GravityDB.
const VERSION = "0.1.0"

// REV is the revision of GravityDB.
const REV = "0"

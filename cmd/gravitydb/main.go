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
Command gravitydb is the command-line harness of spec §1/§6: init,
create-node, delete-node, create-edge, property-id, property-blob,
query-db, result-data and repl, built on the cli package.
*/
package main

import (
	"fmt"
	"os"

	"github.com/gravitydb/gravitydb/cli"
)

func main() {
	root := cli.NewRootCommand()

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

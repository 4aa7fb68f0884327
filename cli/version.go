/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitydb/gravitydb/version"
)

func newVersionCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the GravityDB version",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := flags.writer()
			if err != nil {
				return err
			}
			defer w.Close()

			fmt.Fprintf(w, "gravitydb %s (rev %s)\n", version.VERSION, version.REV)
			return nil
		},
	}
}

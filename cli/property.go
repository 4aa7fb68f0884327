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
	"github.com/spf13/cobra"

	"github.com/gravitydb/gravitydb/gravity"
)

/*
newPropertyIDCommand computes and prints the content-addressed hash
(gravity.Key) of the --input payload without storing anything - useful for
checking what create-node/create-edge would dedup against.
*/
func newPropertyIDCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "property-id",
		Short: "print the content hash of --input without storing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readAll(flags)
			if err != nil {
				return err
			}

			hash, err := gravity.Key(cliProperty(data))
			if err != nil {
				return err
			}

			w, err := flags.writer()
			if err != nil {
				return err
			}
			defer w.Close()

			printf(w, "%s\n", hash)
			return nil
		},
	}
}

/*
newPropertyBlobCommand fetches a stored property by content hash and writes
its raw bytes to --output.
*/
func newPropertyBlobCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "property-blob <hash>",
		Short: "fetch a stored property's raw bytes by content hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := flags.openStore()
			if err != nil {
				return err
			}

			prop, err := store.ReadProperty(args[0], cliDecoder)
			if err != nil {
				return err
			}

			data, err := prop.Serialize()
			if err != nil {
				return err
			}

			w, err := flags.writer()
			if err != nil {
				return err
			}
			defer w.Close()

			_, err = w.Write(data)
			return err
		},
	}
}

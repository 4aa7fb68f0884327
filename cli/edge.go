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
)

func newCreateEdgeCommand(flags *globalFlags) *cobra.Command {
	var n1, n2 string

	cmd := &cobra.Command{
		Use:   "create-edge",
		Short: "create an edge between two existing nodes, with its property read from --input",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := flags.openStore()
			if err != nil {
				return err
			}

			data, err := readAll(flags)
			if err != nil {
				return err
			}

			edge, err := store.CreateEdge(n1, n2, cliProperty(data))
			if err != nil {
				return err
			}

			return writeJSON(flags, edge)
		},
	}

	cmd.Flags().StringVar(&n1, "n1", "", "tail node id")
	cmd.Flags().StringVar(&n2, "n2", "", "head node id")
	cmd.MarkFlagRequired("n1")
	cmd.MarkFlagRequired("n2")

	return cmd
}

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
	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gravitydb/gravitydb/gravity"
)

func newInitCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "create a new, empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := flags.backend()
			if err != nil {
				return err
			}
			store := gravity.New(backend, gravity.WithLogger(flags.logger()))
			return store.Init()
		},
	}
}

func newCreateNodeCommand(flags *globalFlags) *cobra.Command {
	var id string
	var createID, update, getOrCreate bool

	cmd := &cobra.Command{
		Use:   "create-node",
		Short: "create, update, or get-or-create a node, with its property read from --input",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := flags.openStore()
			if err != nil {
				return err
			}

			data, err := readAll(flags)
			if err != nil {
				return err
			}
			prop := cliProperty(data)

			var node *gravity.NodeData

			switch {
			case update:
				node, err = store.UpdateNode(id, prop, cliDecoder)

			case getOrCreate:
				node, err = store.ReadNode(id)
				if err != nil {
					if !gravity.IsKind(err, gravity.KindNotFound) {
						return err
					}
					node, err = store.CreateNode(id, prop)
				}

			default:
				nodeID := id
				if createID {
					nodeID = ""
				}
				node, err = store.CreateNode(nodeID, prop)
			}
			if err != nil {
				return err
			}

			return writeJSON(flags, node)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "node id")
	cmd.Flags().BoolVar(&createID, "create-id", false, "generate a fresh node id instead of using --id")
	cmd.Flags().BoolVar(&update, "update", false, "update the existing node at --id instead of creating one")
	cmd.Flags().BoolVar(&getOrCreate, "get-or-create", false, "return the node at --id if it exists, creating it otherwise")

	return cmd
}

func newDeleteNodeCommand(flags *globalFlags) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete-node",
		Short: "delete a node, cascading to its adjacent edges per the store's delete policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := flags.openStore()
			if err != nil {
				return err
			}
			return store.DeleteNode(id, cliDecoder, cliDecoder)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "node id")

	return cmd
}

func writeJSON(flags *globalFlags, v interface{}) error {
	w, err := flags.writer()
	if err != nil {
		return err
	}
	defer w.Close()

	data, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

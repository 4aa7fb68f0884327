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

	"github.com/gravitydb/gravitydb/console"
	"github.com/gravitydb/gravitydb/query"
)

/*
newQueryDBCommand evaluates one query-algebra line read from --input against
the database at --db-path and writes the folded query.Result as JSON to
--output.
*/
func newQueryDBCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "query-db",
		Short: "evaluate a query-algebra line (see console package) against the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := flags.openStore()
			if err != nil {
				return err
			}

			data, err := readAll(flags)
			if err != nil {
				return err
			}

			result, err := console.Evaluate(query.NewEvaluator(store), string(data))
			if err != nil {
				return err
			}

			return writeJSON(flags, result)
		},
	}
}

/*
resultProperties is result-data's output shape: every property payload the
input query.Result's vertices and edges resolve to, in vertices-then-edges
order (spec §4.7).
*/
type resultProperties struct {
	Properties [][]byte `json:"properties"`
}

/*
newResultDataCommand reads a previously produced query.Result (e.g. from
query-db) on --input and resolves it to its underlying property payloads.
*/
func newResultDataCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "result-data",
		Short: "resolve a query.Result (from query-db) to its underlying property payloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := flags.openStore()
			if err != nil {
				return err
			}

			data, err := readAll(flags)
			if err != nil {
				return err
			}

			var result query.Result
			if err := gojson.Unmarshal(data, &result); err != nil {
				return err
			}

			props, err := query.ExtractProperties(store, cliDecoder, &result)
			if err != nil {
				return err
			}

			out := resultProperties{Properties: make([][]byte, 0, len(props))}
			for _, p := range props {
				raw, err := p.Serialize()
				if err != nil {
					return err
				}
				out.Properties = append(out.Properties, raw)
			}

			return writeJSON(flags, out)
		},
	}
}

func newReplCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "start an interactive query console against the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := flags.openStore()
			if err != nil {
				return err
			}

			w, err := flags.writer()
			if err != nil {
				return err
			}
			defer w.Close()

			c := console.NewConsole(query.NewEvaluator(store), w)
			return console.RunREPL(c, w)
		},
	}
}

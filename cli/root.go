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
Package cli wires the GravityDB subcommands of SPEC_FULL.md §C.1 onto
github.com/spf13/cobra, replacing the teacher's hand-rolled flag.FlagSet
dispatch (cli/eliasdb.go) with a corpus-sourced CLI framework - the same
library straga-Mimir_lite's cmd/nornicdb builds on.
*/
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitydb/gravitydb/gravity"
	"github.com/gravitydb/gravitydb/kv"
	"github.com/gravitydb/gravitydb/propval"
)

/*
globalFlags holds the persistent flag values shared by every subcommand
(spec §6 / SPEC_FULL.md §C.1: --db-path, -i/--input, -o/--output,
-v/--verbose).
*/
type globalFlags struct {
	dbPath  string
	input   string
	output  string
	verbose bool
}

/*
NewRootCommand builds the gravitydb root command and every subcommand named
in SPEC_FULL.md §C.1.
*/
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "gravitydb",
		Short:         "GravityDB - an embedded content-addressed property graph database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.dbPath, "db-path", "gravitydb.db", "path to the database directory")
	root.PersistentFlags().StringVarP(&flags.input, "input", "i", "", "input file (default: stdin)")
	root.PersistentFlags().StringVarP(&flags.output, "output", "o", "", "output file (default: stdout)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newInitCommand(flags),
		newCreateNodeCommand(flags),
		newDeleteNodeCommand(flags),
		newCreateEdgeCommand(flags),
		newPropertyIDCommand(flags),
		newPropertyBlobCommand(flags),
		newQueryDBCommand(flags),
		newResultDataCommand(flags),
		newReplCommand(flags),
		newVersionCommand(flags),
	)

	return root
}

func (f *globalFlags) logger() *zap.Logger {
	if f.verbose {
		log, _ := zap.NewDevelopment()
		return log
	}
	return zap.NewNop()
}

func (f *globalFlags) backend() (kv.Store, error) {
	return kv.NewVFSStore(afero.NewOsFs(), f.dbPath)
}

// openStore opens an already-initialized database.
func (f *globalFlags) openStore() (*gravity.Store, error) {
	backend, err := f.backend()
	if err != nil {
		return nil, err
	}
	return gravity.Open(backend, gravity.WithLogger(f.logger()))
}

func (f *globalFlags) reader() (io.ReadCloser, error) {
	if f.input == "" || f.input == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(f.input)
}

func (f *globalFlags) writer() (io.WriteCloser, error) {
	if f.output == "" || f.output == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(f.output)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func readAll(f *globalFlags) ([]byte, error) {
	r, err := f.reader()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// cliProperty is the concrete Property every CLI subcommand uses: a raw
// byte blob (SPEC_FULL.md §C.2's propval.Bytes), so that `property-blob`
// and friends round-trip arbitrary payloads without guessing a richer
// schema at the command line.
func cliProperty(data []byte) propval.Bytes {
	return propval.Bytes(data)
}

var cliDecoder = propval.DecodeBytes

// ExitCode maps an error to the process exit code of SPEC_FULL.md §C.1:
// 0 success (never reached here), 1 for a *gravity.GraphError, 2 for any
// other (usage) error.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if _, ok := err.(*gravity.GraphError); ok {
		return 1
	}
	return 2
}

func printf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format, args...)
}

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
Package console implements the minimal line-oriented query REPL of
SPEC_FULL.md §C.3 - the embedded-scripting-REPL collaborator named in §1.
It parses one line at a time into the query algebra of package query and
prints the resulting context map. It is deliberately shallow: query
semantics live in query/eval.go, not here.
*/
package console

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/krotik/common/termutil"

	"github.com/gravitydb/gravitydb/query"
)

var exitWords = map[string]bool{"exit": true, "quit": true, "q": true}

/*
Evaluate parses a "vertex <vq>" or "edge <eq>" line into the query algebra
and evaluates it against ev, returning the folded Result. It is the
structured counterpart to Console.Run's text-printing behavior, used by the
query-db CLI subcommand (SPEC_FULL.md §C.1).
*/
func Evaluate(ev *query.Evaluator, line string) (*query.Result, error) {
	tokens := tokenize(strings.TrimSpace(line))
	if len(tokens) == 0 {
		return nil, fmt.Errorf("console: empty query")
	}

	switch tokens[0] {
	case "vertex":
		vq, rest, err := parseVertexExpr(tokens[1:])
		if err != nil {
			return nil, err
		}
		if len(rest) != 0 {
			return nil, fmt.Errorf("console: unexpected trailing tokens %v", rest)
		}
		ctxs, err := ev.EvalVertex(vq)
		if err != nil {
			return nil, err
		}
		return query.FoldVertexContexts(ctxs), nil

	case "edge":
		eq, rest, err := parseEdgeExpr(tokens[1:])
		if err != nil {
			return nil, err
		}
		if len(rest) != 0 {
			return nil, fmt.Errorf("console: unexpected trailing tokens %v", rest)
		}
		ctxs, err := ev.EvalEdge(eq)
		if err != nil {
			return nil, err
		}
		return query.FoldEdgeContexts(ctxs), nil
	}

	return nil, fmt.Errorf("console: query-db expects a line starting with 'vertex' or 'edge', got %q", tokens[0])
}

/*
Console evaluates query algebra lines against an Evaluator and writes
human-readable results to Out.
*/
type Console struct {
	ev  *query.Evaluator
	Out io.Writer
}

/*
NewConsole creates a Console over ev, writing results to out.
*/
func NewConsole(ev *query.Evaluator, out io.Writer) *Console {
	return &Console{ev: ev, Out: out}
}

/*
Run parses and evaluates a single line. Returns true if line was recognized
as a command (even if evaluation failed).
*/
func (c *Console) Run(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return true, nil
	}

	tokens := tokenize(line)

	switch tokens[0] {
	case "help":
		c.printHelp()
		return true, nil

	case "vertex":
		vq, rest, err := parseVertexExpr(tokens[1:])
		if err != nil {
			return true, err
		}
		if len(rest) != 0 {
			return true, fmt.Errorf("console: unexpected trailing tokens %v", rest)
		}
		ctxs, err := c.ev.EvalVertex(vq)
		if err != nil {
			return true, err
		}
		c.printResult(query.FoldVertexContexts(ctxs))
		return true, nil

	case "edge":
		eq, rest, err := parseEdgeExpr(tokens[1:])
		if err != nil {
			return true, err
		}
		if len(rest) != 0 {
			return true, fmt.Errorf("console: unexpected trailing tokens %v", rest)
		}
		ctxs, err := c.ev.EvalEdge(eq)
		if err != nil {
			return true, err
		}
		c.printResult(query.FoldEdgeContexts(ctxs))
		return true, nil

	case "property":
		pq, rest, err := parsePropertyExpr(tokens[1:])
		if err != nil {
			return true, err
		}
		if len(rest) != 0 {
			return true, fmt.Errorf("console: unexpected trailing tokens %v", rest)
		}
		hashes, err := c.ev.EvalProperty(pq)
		if err != nil {
			return true, err
		}
		sort.Strings(hashes)
		for _, h := range hashes {
			fmt.Fprintln(c.Out, h)
		}
		return true, nil
	}

	return false, fmt.Errorf("console: unknown command %q (try 'help')", tokens[0])
}

func (c *Console) printResult(r *query.Result) {
	ids := append([]string{}, r.Vertices...)
	ids = append(ids, r.Edges...)
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintln(c.Out, id)
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.Out, "vertex <vq>             evaluate a vertex query and list matching ids")
	fmt.Fprintln(c.Out, "edge <eq>               evaluate an edge query and list matching keys")
	fmt.Fprintln(c.Out, "property <pq>           evaluate a property query and list matching hashes")
	fmt.Fprintln(c.Out, "  vq := all | specific <id...> | prop <pq> | out <eq> | in <eq>")
	fmt.Fprintln(c.Out, "      | (union|intersect|substract|disjunctive-union) (<vq>) (<vq>)")
	fmt.Fprintln(c.Out, "  eq := all | specific <key...> | prop <pq> | out <vq> | in <vq> | <vq-like set ops>")
	fmt.Fprintln(c.Out, "  pq := specific <hash> | referencing (<pq>) | referenced (<pq>)")
	fmt.Fprintln(c.Out, "quit | exit | q         leave the REPL")
}

/*
RunREPL drives an interactive read-eval-print loop over a console line
terminal, in the same read/dispatch/print shape as eliasdb's cli
RunCliConsole loop: prompt, read a line, run it, print any error, repeat
until an exit word or EOF.
*/
func RunREPL(c *Console, prompt io.Writer) error {
	clt, err := termutil.NewConsoleLineTerminal(prompt)
	if err != nil {
		return err
	}

	if err := clt.StartTerm(); err != nil {
		return err
	}
	defer clt.StopTerm()

	fmt.Fprintln(c.Out, "GravityDB query console - type 'help' for syntax, 'quit' to exit")

	line, err := clt.NextLine()
	for err == nil {
		trimmed := strings.TrimSpace(line)
		if exitWords[trimmed] {
			break
		}

		if _, rerr := c.Run(line); rerr != nil {
			fmt.Fprintln(c.Out, rerr.Error())
		}

		line, err = clt.NextLine()
	}

	if err != nil && err != io.EOF {
		return err
	}

	return nil
}

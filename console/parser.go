/*
 * GravityDB
 *
 * Copyright 2026 The GravityDB Authors.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package console

import (
	"fmt"
	"strings"

	"github.com/gravitydb/gravitydb/query"
)

// tokenize turns a console line into a flat token stream, splitting "(" and
// ")" out as their own tokens regardless of surrounding whitespace.
func tokenize(line string) []string {
	line = strings.ReplaceAll(line, "(", " ( ")
	line = strings.ReplaceAll(line, ")", " ) ")
	return strings.Fields(line)
}

// splitParen expects tokens[0] == "(" and returns the tokens strictly
// between it and its matching ")", plus everything after that ")".
func splitParen(tokens []string) (inner, rest []string, err error) {
	if len(tokens) == 0 || tokens[0] != "(" {
		return nil, nil, fmt.Errorf("console: expected '(', got %q", peek(tokens))
	}

	depth := 0
	for i, t := range tokens {
		switch t {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return tokens[1:i], tokens[i+1:], nil
			}
		}
	}

	return nil, nil, fmt.Errorf("console: unmatched '('")
}

func peek(tokens []string) string {
	if len(tokens) == 0 {
		return "<end of line>"
	}
	return tokens[0]
}

// takeUntilParen consumes tokens as plain id strings up to (but not
// including) a closing ")" or the end of the stream - used for the flat id
// lists of the Specific/SpecificEdges leaves.
func takeUntilParen(tokens []string) (ids []string, rest []string) {
	i := 0
	for i < len(tokens) && tokens[i] != ")" {
		i++
	}
	return tokens[:i], tokens[i:]
}

// parseVertexExpr parses a parenthesized vertex sub-expression, or - as a
// convenience for argument-less leaves - a single bare keyword like "all".
func parseVertexExpr(tokens []string) (*query.VertexQuery, []string, error) {
	if peek(tokens) == "(" {
		inner, rest, err := splitParen(tokens)
		if err != nil {
			return nil, nil, err
		}
		vq, left, err := parseVertexQuery(inner)
		if err != nil {
			return nil, nil, err
		}
		if len(left) != 0 {
			return nil, nil, fmt.Errorf("console: unexpected trailing tokens %v in vertex expression", left)
		}
		return vq, rest, nil
	}
	return parseVertexQuery(tokens)
}

func parseEdgeExpr(tokens []string) (*query.EdgeQuery, []string, error) {
	if peek(tokens) == "(" {
		inner, rest, err := splitParen(tokens)
		if err != nil {
			return nil, nil, err
		}
		eq, left, err := parseEdgeQuery(inner)
		if err != nil {
			return nil, nil, err
		}
		if len(left) != 0 {
			return nil, nil, fmt.Errorf("console: unexpected trailing tokens %v in edge expression", left)
		}
		return eq, rest, nil
	}
	return parseEdgeQuery(tokens)
}

func parsePropertyExpr(tokens []string) (*query.PropertyQuery, []string, error) {
	if peek(tokens) == "(" {
		inner, rest, err := splitParen(tokens)
		if err != nil {
			return nil, nil, err
		}
		pq, left, err := parsePropertyQuery(inner)
		if err != nil {
			return nil, nil, err
		}
		if len(left) != 0 {
			return nil, nil, fmt.Errorf("console: unexpected trailing tokens %v in property expression", left)
		}
		return pq, rest, nil
	}
	return parsePropertyQuery(tokens)
}

/*
parseVertexQuery implements the "vertex" half of the textual query algebra
encoding (SPEC_FULL.md §C.3): a small hand-rolled recursive-descent reader,
in the shape of eliasdb/eql/parser's lexer-plus-recursive-parser but over a
deliberately tiny prefix grammar rather than an SQL-like surface syntax.

	vq  := "all"
	     | "specific" id...
	     | "prop" pq
	     | "out" eq | "in" eq
	     | ("union"|"intersect"|"substract"|"disjunctive-union") "(" vq ")" "(" vq ")"
*/
func parseVertexQuery(tokens []string) (*query.VertexQuery, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("console: expected a vertex query, got end of line")
	}

	switch tokens[0] {
	case "all":
		return query.All(), tokens[1:], nil

	case "specific":
		ids, rest := takeUntilParen(tokens[1:])
		return query.Specific(ids...), rest, nil

	case "prop":
		pq, rest, err := parsePropertyExpr(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		return query.PropertyV(pq), rest, nil

	case "out":
		eq, rest, err := parseEdgeExpr(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		return eq.Out(), rest, nil

	case "in":
		eq, rest, err := parseEdgeExpr(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		return eq.In(), rest, nil

	case "union", "intersect", "substract", "disjunctive-union":
		left, rest, err := parseVertexExpr(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		right, rest2, err := parseVertexExpr(rest)
		if err != nil {
			return nil, nil, err
		}
		return combineVertexOp(tokens[0], left, right), rest2, nil
	}

	return nil, nil, fmt.Errorf("console: unknown vertex operator %q", tokens[0])
}

func combineVertexOp(op string, left, right *query.VertexQuery) *query.VertexQuery {
	switch op {
	case "union":
		return query.Union(left, right)
	case "intersect":
		return query.Intersect(left, right)
	case "substract":
		return query.Substract(left, right)
	default:
		return query.DisjunctiveUnion(left, right)
	}
}

/*
parseEdgeQuery is parseVertexQuery's edge-side mirror.
*/
func parseEdgeQuery(tokens []string) (*query.EdgeQuery, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("console: expected an edge query, got end of line")
	}

	switch tokens[0] {
	case "all":
		return query.AllEdges(), tokens[1:], nil

	case "specific":
		ids, rest := takeUntilParen(tokens[1:])
		return query.SpecificEdges(ids...), rest, nil

	case "prop":
		pq, rest, err := parsePropertyExpr(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		return query.PropertyE(pq), rest, nil

	case "out":
		vq, rest, err := parseVertexExpr(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		return vq.Outgoing(), rest, nil

	case "in":
		vq, rest, err := parseVertexExpr(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		return vq.Incoming(), rest, nil

	case "union", "intersect", "substract", "disjunctive-union":
		left, rest, err := parseEdgeExpr(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		right, rest2, err := parseEdgeExpr(rest)
		if err != nil {
			return nil, nil, err
		}
		return combineEdgeOp(tokens[0], left, right), rest2, nil
	}

	return nil, nil, fmt.Errorf("console: unknown edge operator %q", tokens[0])
}

func combineEdgeOp(op string, left, right *query.EdgeQuery) *query.EdgeQuery {
	switch op {
	case "union":
		return query.UnionE(left, right)
	case "intersect":
		return query.IntersectE(left, right)
	case "substract":
		return query.SubstractE(left, right)
	default:
		return query.DisjunctiveUnionE(left, right)
	}
}

/*
parsePropertyQuery is the property-side leaf grammar:

	pq := "specific" hash | "referencing" pq | "referenced" pq
*/
func parsePropertyQuery(tokens []string) (*query.PropertyQuery, []string, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf("console: expected a property query, got end of line")
	}

	switch tokens[0] {
	case "specific":
		if len(tokens) < 2 {
			return nil, nil, fmt.Errorf("console: 'prop specific' needs a hash")
		}
		return query.PSpecificQuery(tokens[1]), tokens[2:], nil

	case "referencing":
		pq, rest, err := parsePropertyExpr(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		return query.ReferencingProperties(pq), rest, nil

	case "referenced":
		pq, rest, err := parsePropertyExpr(tokens[1:])
		if err != nil {
			return nil, nil, err
		}
		return query.ReferencedProperties(pq), rest, nil
	}

	return nil, nil, fmt.Errorf("console: unknown property operator %q", tokens[0])
}

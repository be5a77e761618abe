// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package cargo

import (
	"errors"
	"fmt"
	"io"

	"github.com/GZGavinZhao/cargo2anda/utils"
	dgraph "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/yourbasic/graph"
)

// Graph is the crate dependency graph. Edges point from a dependency to the
// crate that needs it, so a topological order is a valid build order.
type Graph struct {
	Names    []string
	Versions []string
	index    map[string]int
	g        *graph.Immutable
}

type QueryHasCyclesErr struct {
	Cycles [][]string
}

func (e QueryHasCyclesErr) Error() string {
	return fmt.Sprintf("dependency graph has %d cycle(s)", len(e.Cycles))
}

// NewGraph builds the graph from parsed tree entries. A crate appearing
// more than once is a single vertex, versioned by its first occurrence.
func NewGraph(entries []Entry) *Graph {
	res := &Graph{index: make(map[string]int)}
	for _, e := range entries {
		if _, ok := res.index[e.Name]; !ok {
			res.index[e.Name] = len(res.Names)
			res.Names = append(res.Names, e.Name)
			res.Versions = append(res.Versions, e.Version)
		}
	}

	m := graph.New(len(res.Names))
	for _, e := range entries {
		if e.Parent < 0 {
			continue
		}
		from := res.index[e.Name]
		to := res.index[entries[e.Parent].Name]
		if from != to {
			m.Add(from, to)
		}
	}

	res.g = graph.Sort(m)
	return res
}

func (g *Graph) Order() int {
	return len(g.Names)
}

func (g *Graph) Index(name string) (int, bool) {
	idx, ok := g.index[name]
	return idx, ok
}

// Hash fingerprints the graph structure.
func (g *Graph) Hash() string {
	return utils.GraphHash(g.g)
}

// Tiers groups crates so that every crate only depends on crates in earlier
// tiers.
func (g *Graph) Tiers() (res [][]string, err error) {
	tiers, ok := utils.TieredTopSort(g.g)
	if !ok {
		err = QueryHasCyclesErr{Cycles: g.cycles()}
		return
	}

	for _, tier := range tiers {
		res = append(res, utils.Map(tier, func(i int) string { return g.Names[i] }))
	}
	return
}

func (g *Graph) cycles() (res [][]string) {
	for _, comp := range graph.StrongComponents(g.g) {
		if len(comp) <= 1 {
			continue
		}
		res = append(res, utils.Map(comp, func(i int) string { return g.Names[i] }))
	}
	return
}

// Dependents returns every crate that transitively needs name, up to
// maxDepth edges away (0 for unlimited), with its distance.
func (g *Graph) Dependents(name string, maxDepth int) (res map[string]int, err error) {
	start, ok := g.index[name]
	if !ok {
		err = fmt.Errorf("cargo.Dependents: %s is not in the dependency tree", name)
		return
	}

	res = make(map[string]int)
	utils.BFSWithDepth(g.g, start, func(node int, depth int) bool {
		if maxDepth > 0 && depth > maxDepth {
			return true
		}
		if node != start {
			res[g.Names[node]] = depth
		}
		return false
	})
	return
}

// WriteDOT writes the graph in the DOT format.
func (g *Graph) WriteDOT(w io.Writer) (err error) {
	dg := dgraph.New(dgraph.StringHash, dgraph.Directed())

	for i, name := range g.Names {
		err = dg.AddVertex(name, dgraph.VertexAttribute("label", fmt.Sprintf("%s %s", name, g.Versions[i])))
		if err != nil {
			return
		}
	}

	for v := range g.Names {
		g.g.Visit(v, func(adj int, _ int64) (skip bool) {
			if aerr := dg.AddEdge(g.Names[v], g.Names[adj]); aerr != nil && !errors.Is(aerr, dgraph.ErrEdgeAlreadyExists) {
				err = fmt.Errorf("Failed to create edge from %s to %s: %w", g.Names[v], g.Names[adj], aerr)
				return true
			}
			return
		})
		if err != nil {
			return
		}
	}

	return draw.DOT(dg, w)
}

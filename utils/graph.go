// SPDX-FileCopyrightText: Copyright © 2020-2023 Serpent OS Developers
//
// SPDX-License-Identifier: MPL-2.0

package utils

import (
	"encoding/base64"
	"slices"

	"github.com/yourbasic/graph"
	"github.com/zeebo/blake3"
)

// TieredTopSort groups the vertices of g into tiers: every vertex only has
// incoming edges from earlier tiers. The boolean is false when g has a cycle.
func TieredTopSort(g graph.Iterator) ([][]int, bool) {
	indegree := make([]int, g.Order())
	for v := range indegree {
		g.Visit(v, func(w int, _ int64) (skip bool) {
			indegree[w]++
			return
		})
	}

	var res [][]int
	// Invariant: this queue holds all vertices with indegree 0.
	var queue []int
	for v, degree := range indegree {
		if degree == 0 {
			queue = append(queue, v)
		}
	}

	vertexCount := 0

	for len(queue) > 0 {
		slices.Sort(queue)
		res = append(res, queue)

		l := len(queue)
		next := []int{}
		for i := 0; i < l; i++ {
			v := queue[i]

			vertexCount++
			g.Visit(v, func(w int, _ int64) (skip bool) {
				indegree[w]--
				if indegree[w] == 0 {
					next = append(next, w)
				}
				return false
			})
		}
		queue = next
	}

	return res, vertexCount == g.Order()
}

// BFSWithDepth works just as BFS and performs a breadth-first search on the graph, but its
// visit function is passed the current depth level as a second argument. Consequently, the
// current depth can be used for deciding whether or not to proceed past a certain depth.
//
//	utils.BFSWithDepth(g, 1, func(value int, depth int) bool {
//		fmt.Println(value)
//		return depth > 3
//	})
//
// With the visit function from the example, the BFS traversal will stop once a depth greater
// than 3 is reached. Note that depth is calculated by treating the start node
// as having depth 0.
func BFSWithDepth(g graph.Iterator, start int, visit func(int, int) bool) {
	queue := make([]int, 0)
	visited := make(map[int]bool)
	depths := make(map[int]int)

	visited[start] = true
	queue = append(queue, start)
	depths[start] = 0

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		// Stop traversing the graph if the visit function returns true.
		if stop := visit(node, depths[node]); stop {
			break
		}

		g.Visit(node, func(adj int, _ int64) bool {
			if _, ok := visited[adj]; !ok {
				visited[adj] = true
				depths[adj] = depths[node] + 1
				queue = append(queue, adj)
			}
			return false
		})
	}
}

func GraphHash(g *graph.Immutable) string {
	hashBytes := blake3.Sum256([]byte(g.String()))
	return base64.StdEncoding.EncodeToString(hashBytes[:])
}

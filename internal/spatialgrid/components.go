// SPDX-License-Identifier: MIT
package spatialgrid

import "sort"

// Neighbors returns the ids adjacent to id. Implementations need not
// deduplicate or sort; ConnectedComponents handles both.
type Neighbors func(id int) []int

// ConnectedComponents partitions the node ids [0, n) into connected
// components under neighbors, via the same BFS flood-fill shape as
// lvlath/gridgraph's ConnectedComponents — generalized from "cells of
// equal value in a 2D array" to "any node id with a caller-supplied
// adjacency function". Each returned component is sorted ascending by
// id for deterministic output.
//
// Complexity: O(n + E) time, O(n) space, where E is the total number
// of neighbor edges visited.
func ConnectedComponents(n int, neighbors Neighbors) [][]int {
	if n <= 0 {
		return nil
	}

	visited := make([]bool, n)
	var components [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		queue := []int{start}
		visited[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			id := queue[qi]
			comp = append(comp, id)

			for _, next := range neighbors(id) {
				if next < 0 || next >= n || visited[next] {
					continue
				}
				visited[next] = true
				queue = append(queue, next)
			}
		}

		sort.Ints(comp)
		components = append(components, comp)
	}

	return components
}

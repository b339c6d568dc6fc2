// Package algorithms provides graph search over network snapshots: simple
// path enumeration and best-path selection by cost dimension. Traversal
// order is fixed (neighbors in sorted name order) so that results are
// deterministic for a given snapshot.
package algorithms

import (
	"github.com/qnetsim/qnetsim/pkg/network"
)

// AllSimplePaths returns every simple path (no repeated node) from head to
// tail as node-name sequences, in deterministic depth-first order.
func AllSimplePaths(snap *network.Snapshot, head, tail string) ([][]string, error) {
	if _, err := snap.GetNode(head); err != nil {
		return nil, err
	}
	if _, err := snap.GetNode(tail); err != nil {
		return nil, err
	}

	var paths [][]string
	visited := map[string]bool{head: true}
	stack := []string{head}

	var walk func(current string)
	walk = func(current string) {
		if current == tail {
			out := make([]string, len(stack))
			copy(out, stack)
			paths = append(paths, out)
			return
		}
		for _, nbr := range snap.Neighbors(current) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			stack = append(stack, nbr)
			walk(nbr)
			stack = stack[:len(stack)-1]
			visited[nbr] = false
		}
	}
	walk(head)

	return paths, nil
}

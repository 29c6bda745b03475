package graph

// BFS walks the graph breadth first from start, calling visit exactly once
// per reachable vertex. The start vertex is visited with a nil parent; every
// other vertex is visited with the vertex it was discovered from. Traversal
// stops at the first error from the graph or from visit.
func BFS[VID comparable, EID comparable](g Graph[VID, EID], start VID, visit func(parent *VID, vertex VID) error) error {
	// Probe the start vertex so an unknown start fails instead of silently
	// visiting nothing.
	if _, err := g.Neighbours(start); err != nil {
		return err
	}

	visited := map[VID]struct{}{start: {}}
	if err := visit(nil, start); err != nil {
		return err
	}

	frontier := []VID{start}
	for len(frontier) > 0 {
		var next []VID

		for _, current := range frontier {
			neighbours, err := g.Neighbours(current)
			if err != nil {
				return err
			}

			for _, n := range neighbours {
				if _, seen := visited[n.Vertex]; seen {
					continue
				}
				visited[n.Vertex] = struct{}{}

				parent := current
				if err := visit(&parent, n.Vertex); err != nil {
					return err
				}
				next = append(next, n.Vertex)
			}
		}

		frontier = next
	}

	return nil
}

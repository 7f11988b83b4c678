package graph

// Edge is an undirected link between two node indices.
type Edge struct {
	A int
	B int
}

// Clusters counts the connected components with at least two members
// among n nodes joined by the given edges. Isolated nodes are not
// clusters. Traversal is breadth-first starting from the lowest index,
// so the result is deterministic for a given edge list.
func Clusters(n int, edges []Edge) int {
	adjacency := make([][]int, n)
	for _, e := range edges {
		if e.A < 0 || e.A >= n || e.B < 0 || e.B >= n {
			continue
		}
		adjacency[e.A] = append(adjacency[e.A], e.B)
		adjacency[e.B] = append(adjacency[e.B], e.A)
	}

	visited := make([]bool, n)
	clusters := 0
	for start := 0; start < n; start++ {
		if visited[start] || len(adjacency[start]) == 0 {
			continue
		}

		size := 0
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			size++
			for _, v := range adjacency[u] {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}

		if size >= 2 {
			clusters++
		}
	}
	return clusters
}

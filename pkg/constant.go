package pkg

const (
	INF_WEIGHT float64 = 1e15

	// tolerance used when matching an adjacency entry against the
	// dist[v]-dist[u] delta recorded by the search.
	DIST_EPS = 1e-6
)

// NULL_NAME is printed in place of a missing place name. Only the
// presentation layer uses it, the name index keeps absent names absent.
const NULL_NAME = "null"

const (
	DEBUG = false
)

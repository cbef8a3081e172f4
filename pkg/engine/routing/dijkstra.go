package routing

import (
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg"
	da "github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/datastructure"
)

// SearchResult is the transient per-query state produced by one Dijkstra
// run: best-known distances, predecessor links and whether the target was
// settled.
type SearchResult struct {
	dist   map[int32]float64
	prev   map[int32]int32
	source int32
	target int32
	found  bool

	numSettledNodes int
}

// DistanceTo returns the best-known distance from the source, INF_WEIGHT for
// nodes the search never labelled.
func (sr *SearchResult) DistanceTo(id int32) float64 {
	d, ok := sr.dist[id]
	if !ok {
		return pkg.INF_WEIGHT
	}
	return d
}

// PredecessorOf returns the node preceding id on the shortest path. The
// source and unlabelled nodes have no predecessor.
func (sr *SearchResult) PredecessorOf(id int32) (int32, bool) {
	p, ok := sr.prev[id]
	return p, ok
}

// Found reports whether the target was settled with its final distance.
func (sr *SearchResult) Found() bool {
	return sr.found
}

func (sr *SearchResult) GetSource() int32 {
	return sr.source
}

func (sr *SearchResult) GetTarget() int32 {
	return sr.target
}

func (sr *SearchResult) NumSettledNodes() int {
	return sr.numSettledNodes
}

type Dijkstra struct {
	graph *da.Graph

	dist    map[int32]float64
	prev    map[int32]int32
	settled map[int32]struct{}

	pq *da.MinHeap[int32]

	numSettledNodes int
}

func NewDijkstra(graph *da.Graph) *Dijkstra {
	return &Dijkstra{
		graph:           graph,
		dist:            make(map[int32]float64),
		prev:            make(map[int32]int32),
		settled:         make(map[int32]struct{}),
		pq:              da.NewFourAryHeap[int32](),
		numSettledNodes: 0,
	}
}

// ShortestPath runs a single-source search from source toward target and
// stops early once target is settled, scanning the remaining farther nodes
// would be wasted work.
//
// The priority queue uses lazy deletion: an improved distance pushes a fresh
// entry and the superseded one is skipped on pop via the settled set.
// Equal-distance candidates never overwrite an earlier predecessor, the
// relaxation uses a strict comparison.
func (us *Dijkstra) ShortestPath(source, target int32) *SearchResult {
	result := &SearchResult{
		dist:   us.dist,
		prev:   us.prev,
		source: source,
		target: target,
	}

	// an id with zero incident roads is not a vertex at all, there is
	// nothing to search
	if !us.graph.HasVertex(source) || !us.graph.HasVertex(target) {
		return result
	}

	us.dist[source] = 0
	us.pq.Insert(da.NewPriorityQueueNode(0, source))

	for !us.pq.IsEmpty() {
		node, err := us.pq.ExtractMin()
		if err != nil {
			break
		}
		u := node.GetItem()

		if _, done := us.settled[u]; done {
			// stale lazy-deletion entry, a cheaper one for u was
			// already popped
			continue
		}
		us.settled[u] = struct{}{}
		us.numSettledNodes++

		if u == target {
			result.found = true
			break
		}

		us.relax(u)
	}

	result.numSettledNodes = us.numSettledNodes
	return us.finish(result)
}

func (us *Dijkstra) relax(u int32) {
	distU := us.dist[u]

	us.graph.ForOutEdgesOf(u, func(outEdge *da.OutEdge) {
		v := outEdge.GetHead()

		newDist := distU + outEdge.GetMiles()

		curDist, labelled := us.dist[v]
		if labelled && newDist >= curDist {
			// newDist is not strictly better, do nothing
			return
		}

		us.dist[v] = newDist
		us.prev[v] = u
		us.pq.Insert(da.NewPriorityQueueNode(newDist, v))
	})
}

// finish covers the exhausted-queue case: the target may have been labelled
// and settled in the very last pop, otherwise it sits in a different
// component.
func (us *Dijkstra) finish(result *SearchResult) *SearchResult {
	if _, done := us.settled[result.target]; done {
		result.found = true
	}
	return result
}

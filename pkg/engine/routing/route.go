package routing

import (
	"errors"

	da "github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/datastructure"
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/util"
)

// ErrInconsistentRoute means reconstruction could not find an adjacency
// entry matching a recorded distance delta. That is a builder/search
// invariant violation, not a user-facing outcome.
var ErrInconsistentRoute = errors.New("routing: no adjacency entry matches recorded distance delta")

// RouteStep is one traversed road segment of a reconstructed route, in
// source->target order.
type RouteStep struct {
	fromID      int32
	toID        int32
	description string
	miles       float64
}

func NewRouteStep(fromID, toID int32, description string, miles float64) RouteStep {
	return RouteStep{fromID: fromID, toID: toID, description: description, miles: miles}
}

func (s *RouteStep) GetFromID() int32 {
	return s.fromID
}

func (s *RouteStep) GetToID() int32 {
	return s.toID
}

func (s *RouteStep) GetDescription() string {
	return s.description
}

func (s *RouteStep) GetMiles() float64 {
	return s.miles
}

// Route is either an ordered step sequence with its total distance or the
// explicit unreachable outcome. Disconnected components are an expected
// property of the dataset, so unreachable is a value, not an error.
type Route struct {
	steps       []RouteStep
	totalMiles  float64
	unreachable bool
}

func NewUnreachableRoute() Route {
	return Route{unreachable: true}
}

func (r *Route) GetSteps() []RouteStep {
	return r.steps
}

func (r *Route) GetTotalMiles() float64 {
	return r.totalMiles
}

func (r *Route) IsUnreachable() bool {
	return r.unreachable
}

// ReconstructRoute walks the predecessor links of a finished search backward
// from target to source and re-resolves each edge's metadata from the graph.
//
// Parallel edges can carry different distances and descriptions, so the
// entry whose distance matches dist[v]-dist[u] is selected, that is the edge
// the search actually relaxed. Among parallel edges with equal distance the
// first one in adjacency order wins.
func ReconstructRoute(graph *da.Graph, result *SearchResult, source, target int32) (Route, error) {
	if !result.Found() {
		return NewUnreachableRoute(), nil
	}

	if source == target {
		// self-query, a route with zero steps
		return Route{}, nil
	}

	backward := []int32{target}
	for cur := target; cur != source; {
		prev, ok := result.PredecessorOf(cur)
		if !ok {
			// the chain back to the source is broken even though the
			// search settled the target
			return Route{}, util.WrapErrorf(ErrInconsistentRoute, util.ErrInternalServerError,
				"predecessor chain broken at %d", cur)
		}
		backward = append(backward, prev)
		cur = prev
	}

	ids := util.ReverseG(backward)

	steps := make([]RouteStep, 0, len(ids)-1)
	totalMiles := 0.0

	for i := 0; i+1 < len(ids); i++ {
		u, v := ids[i], ids[i+1]

		outEdge, err := matchOutEdge(graph, result, u, v)
		if err != nil {
			return Route{}, err
		}

		steps = append(steps, NewRouteStep(u, v, outEdge.GetDescription(), outEdge.GetMiles()))
		totalMiles += outEdge.GetMiles()
	}

	return Route{steps: steps, totalMiles: totalMiles}, nil
}

// matchOutEdge selects the adjacency entry from u to v whose distance equals
// the delta the search recorded, so the reported description belongs to the
// traversed edge and not to an arbitrary parallel one.
func matchOutEdge(graph *da.Graph, result *SearchResult, u, v int32) (*da.OutEdge, error) {
	delta := result.DistanceTo(v) - result.DistanceTo(u)

	edges := graph.GetOutEdges(u)
	for i := range edges {
		if edges[i].GetHead() == v && da.Eq(edges[i].GetMiles(), delta) {
			return &edges[i], nil
		}
	}

	return nil, util.WrapErrorf(ErrInconsistentRoute, util.ErrInternalServerError,
		"no edge from %d to %d with distance %f", u, v, delta)
}

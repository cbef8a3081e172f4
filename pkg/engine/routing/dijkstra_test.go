package routing

import (
	"testing"

	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg"
	da "github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/datastructure"
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/parser"
	"github.com/stretchr/testify/require"
)

func buildGraph(roads ...parser.RoadRecord) *da.Graph {
	return da.BuildGraph(roads)
}

func TestShortestPathPrefersCheaperMultiHop(t *testing.T) {
	g := buildGraph(
		parser.NewRoadRecord(1, 2, 5.0, "Main St"),
		parser.NewRoadRecord(2, 3, 3.0, "Oak St"),
		parser.NewRoadRecord(1, 3, 10.0, "Hwy 1"),
	)

	result := NewDijkstra(g).ShortestPath(1, 3)

	require.True(t, result.Found())
	require.InDelta(t, 8.0, result.DistanceTo(3), 1e-9)

	route, err := ReconstructRoute(g, result, 1, 3)
	require.NoError(t, err)
	require.False(t, route.IsUnreachable())

	steps := route.GetSteps()
	require.Len(t, steps, 2)
	require.Equal(t, "Main St", steps[0].GetDescription())
	require.Equal(t, "Oak St", steps[1].GetDescription())
	require.InDelta(t, 8.0, route.GetTotalMiles(), 1e-9)
}

func TestShortestPathUnreachableAcrossComponents(t *testing.T) {
	g := buildGraph(
		parser.NewRoadRecord(1, 2, 5.0, "Mainland Rd"),
		parser.NewRoadRecord(3, 4, 2.0, "Island Rd"),
	)

	result := NewDijkstra(g).ShortestPath(1, 4)

	require.False(t, result.Found())
	require.Equal(t, pkg.INF_WEIGHT, result.DistanceTo(4))

	route, err := ReconstructRoute(g, result, 1, 4)
	require.NoError(t, err)
	require.True(t, route.IsUnreachable())
	require.Empty(t, route.GetSteps())
}

func TestShortestPathMissingEndpoint(t *testing.T) {
	g := buildGraph(parser.NewRoadRecord(1, 2, 5.0, "Main St"))

	// 99 has zero incident roads, it is not a vertex at all
	require.False(t, NewDijkstra(g).ShortestPath(1, 99).Found())
	require.False(t, NewDijkstra(g).ShortestPath(99, 1).Found())
}

func TestShortestPathSelfQuery(t *testing.T) {
	g := buildGraph(parser.NewRoadRecord(1, 2, 5.0, "Main St"))

	result := NewDijkstra(g).ShortestPath(1, 1)

	require.True(t, result.Found())
	require.InDelta(t, 0.0, result.DistanceTo(1), 1e-9)

	route, err := ReconstructRoute(g, result, 1, 1)
	require.NoError(t, err)
	require.False(t, route.IsUnreachable())
	require.Empty(t, route.GetSteps())
	require.InDelta(t, 0.0, route.GetTotalMiles(), 1e-9)
}

func TestShortestPathEqualCandidateKeepsEarlierPredecessor(t *testing.T) {
	// two equal-length paths 1->2->4 and 1->3->4. the relaxation uses a
	// strict comparison, so the predecessor recorded first is kept.
	g := buildGraph(
		parser.NewRoadRecord(1, 2, 1.0, "A"),
		parser.NewRoadRecord(1, 3, 1.0, "B"),
		parser.NewRoadRecord(2, 4, 1.0, "C"),
		parser.NewRoadRecord(3, 4, 1.0, "D"),
	)

	result := NewDijkstra(g).ShortestPath(1, 4)

	require.True(t, result.Found())
	require.InDelta(t, 2.0, result.DistanceTo(4), 1e-9)

	prev, ok := result.PredecessorOf(4)
	require.True(t, ok)
	require.Equal(t, int32(2), prev)
}

func TestShortestPathTotalMatchesSearchDistance(t *testing.T) {
	g := buildGraph(
		parser.NewRoadRecord(1, 2, 1.5, "A"),
		parser.NewRoadRecord(2, 3, 2.25, "B"),
		parser.NewRoadRecord(3, 4, 0.125, "C"),
		parser.NewRoadRecord(1, 4, 100.0, "Long Way"),
	)

	result := NewDijkstra(g).ShortestPath(1, 4)
	require.True(t, result.Found())

	route, err := ReconstructRoute(g, result, 1, 4)
	require.NoError(t, err)

	sum := 0.0
	for _, step := range route.GetSteps() {
		require.Greater(t, step.GetMiles(), 0.0)
		sum += step.GetMiles()
	}
	require.InDelta(t, result.DistanceTo(4), sum, 1e-6)
	require.InDelta(t, result.DistanceTo(4), route.GetTotalMiles(), 1e-6)
}

func TestShortestPathSourceHasNoPredecessor(t *testing.T) {
	g := buildGraph(parser.NewRoadRecord(1, 2, 5.0, "Main St"))

	result := NewDijkstra(g).ShortestPath(1, 2)
	require.True(t, result.Found())

	_, ok := result.PredecessorOf(1)
	require.False(t, ok)
}

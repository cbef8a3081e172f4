package routing

import (
	"errors"
	"testing"

	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestReconstructPicksParallelEdgeByDistanceDelta(t *testing.T) {
	// two parallel roads between 1 and 2, the search relaxes the cheaper
	// one, the reconstructed step must carry its description
	g := buildGraph(
		parser.NewRoadRecord(1, 2, 5.0, "Slow Rd"),
		parser.NewRoadRecord(1, 2, 4.0, "Bypass"),
	)

	result := NewDijkstra(g).ShortestPath(1, 2)
	require.True(t, result.Found())
	require.InDelta(t, 4.0, result.DistanceTo(2), 1e-9)

	route, err := ReconstructRoute(g, result, 1, 2)
	require.NoError(t, err)

	steps := route.GetSteps()
	require.Len(t, steps, 1)
	require.Equal(t, "Bypass", steps[0].GetDescription())
	require.InDelta(t, 4.0, steps[0].GetMiles(), 1e-9)
}

func TestReconstructStepOrderAndEndpoints(t *testing.T) {
	g := buildGraph(
		parser.NewRoadRecord(1, 2, 1.0, "A"),
		parser.NewRoadRecord(2, 3, 1.0, "B"),
		parser.NewRoadRecord(3, 4, 1.0, "C"),
	)

	result := NewDijkstra(g).ShortestPath(1, 4)
	require.True(t, result.Found())

	route, err := ReconstructRoute(g, result, 1, 4)
	require.NoError(t, err)

	steps := route.GetSteps()
	require.Len(t, steps, 3)

	// steps run source -> target and chain, step i ends where step i+1 starts
	require.Equal(t, int32(1), steps[0].GetFromID())
	for i := 0; i+1 < len(steps); i++ {
		require.Equal(t, steps[i].GetToID(), steps[i+1].GetFromID())
	}
	require.Equal(t, int32(4), steps[len(steps)-1].GetToID())
}

func TestReconstructInconsistentLookupFailsLoudly(t *testing.T) {
	searched := buildGraph(parser.NewRoadRecord(1, 2, 5.0, "Main St"))
	result := NewDijkstra(searched).ShortestPath(1, 2)
	require.True(t, result.Found())

	// reconstructing against a graph that lacks the traversed edge is an
	// invariant violation, not a user-facing outcome
	other := buildGraph(parser.NewRoadRecord(1, 3, 5.0, "Elsewhere"))
	_, err := ReconstructRoute(other, result, 1, 2)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInconsistentRoute))
}

func TestUnreachableRouteIsExplicit(t *testing.T) {
	route := NewUnreachableRoute()

	require.True(t, route.IsUnreachable())
	require.Empty(t, route.GetSteps())
	require.InDelta(t, 0.0, route.GetTotalMiles(), 1e-9)
}

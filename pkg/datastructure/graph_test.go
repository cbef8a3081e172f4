package datastructure

import (
	"testing"

	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestBuildGraphSymmetry(t *testing.T) {
	roads := []parser.RoadRecord{
		parser.NewRoadRecord(1, 2, 5.0, "Main St"),
		parser.NewRoadRecord(2, 3, 3.0, "Oak St"),
	}

	g := BuildGraph(roads)

	require.Equal(t, 3, g.NumberOfVertices())
	require.Equal(t, 2, g.NumberOfRoadSegments())

	// every A->B entry implies the symmetric B->A entry with equal payload
	for _, road := range roads {
		require.True(t, containsEdge(g, road.From, road.To, road.Miles, road.Description))
		require.True(t, containsEdge(g, road.To, road.From, road.Miles, road.Description))
	}
}

func TestBuildGraphParallelEdges(t *testing.T) {
	roads := []parser.RoadRecord{
		parser.NewRoadRecord(1, 2, 5.0, "Main St"),
		parser.NewRoadRecord(1, 2, 4.0, "Bypass"),
	}

	g := BuildGraph(roads)

	// duplicates are kept as separate entries, never de-duplicated
	require.Len(t, g.GetOutEdges(1), 2)
	require.Len(t, g.GetOutEdges(2), 2)
}

func TestGraphVertexSetComesFromRoads(t *testing.T) {
	g := BuildGraph([]parser.RoadRecord{parser.NewRoadRecord(1, 2, 5.0, "Main St")})

	require.True(t, g.HasVertex(1))
	require.True(t, g.HasVertex(2))

	// a place id with no incident road is not a vertex
	require.False(t, g.HasVertex(99))
	require.Nil(t, g.GetOutEdges(99))
}

func containsEdge(g *Graph, from, to int32, miles float64, description string) bool {
	for _, e := range g.GetOutEdges(from) {
		if e.GetHead() == to && Eq(e.GetMiles(), miles) && e.GetDescription() == description {
			return true
		}
	}
	return false
}

func TestNameIndexFirstOccurrenceWins(t *testing.T) {
	places := []parser.PlaceRecord{
		{ID: 1, Name: "Springfield", Named: true},
		{ID: 2, Name: "Springfield", Named: true},
		{ID: 1, Name: "Springfield Again", Named: true},
		{ID: 3, Named: false},
	}

	ni := BuildNameIndex(places)

	id, ok := ni.ResolveName("Springfield")
	require.True(t, ok)
	require.Equal(t, int32(1), id)

	name, ok := ni.PlaceName(1)
	require.True(t, ok)
	require.Equal(t, "Springfield", name)

	// unnamed ids stay absent, no sentinel string leaks into the index
	_, ok = ni.PlaceName(3)
	require.False(t, ok)

	_, ok = ni.ResolveName("")
	require.False(t, ok)
}

func TestNameIndexExactMatchOnly(t *testing.T) {
	ni := BuildNameIndex([]parser.PlaceRecord{{ID: 1, Name: "Seattle", Named: true}})

	_, ok := ni.ResolveName("seattle")
	require.False(t, ok)

	_, ok = ni.ResolveName("Seattle ")
	require.False(t, ok)

	id, ok := ni.ResolveName("Seattle")
	require.True(t, ok)
	require.Equal(t, int32(1), id)
}

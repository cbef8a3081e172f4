package datastructure

import (
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/parser"
)

// OutEdge is one adjacency entry: a traversal of a road segment from its
// owning vertex toward head.
type OutEdge struct {
	head        int32
	miles       float64
	description string
}

func NewOutEdge(head int32, miles float64, description string) OutEdge {
	return OutEdge{head: head, miles: miles, description: description}
}

func (e *OutEdge) GetHead() int32 {
	return e.head
}

func (e *OutEdge) GetMiles() float64 {
	return e.miles
}

func (e *OutEdge) GetDescription() string {
	return e.description
}

// Graph is the undirected road network as an adjacency list. It is built
// once from parsed road records and never mutated afterwards, so it can be
// shared read-only between concurrent queries.
//
// The vertex set is the union of ids that appear in road records. Place ids
// with no incident road are not vertices, queries against them come back
// unreachable.
type Graph struct {
	adjacency map[int32][]OutEdge
	numRoads  int
}

// BuildGraph inserts every road record twice, once per direction, with the
// same distance and description. Parallel edges between the same pair are
// all retained, the search naturally prefers the cheapest one.
func BuildGraph(roads []parser.RoadRecord) *Graph {
	g := &Graph{
		adjacency: make(map[int32][]OutEdge),
	}

	for _, road := range roads {
		g.adjacency[road.From] = append(g.adjacency[road.From],
			NewOutEdge(road.To, road.Miles, road.Description))
		g.adjacency[road.To] = append(g.adjacency[road.To],
			NewOutEdge(road.From, road.Miles, road.Description))
		g.numRoads++
	}

	return g
}

func (g *Graph) HasVertex(id int32) bool {
	_, ok := g.adjacency[id]
	return ok
}

func (g *Graph) NumberOfVertices() int {
	return len(g.adjacency)
}

// NumberOfRoadSegments returns the undirected segment count, half the number
// of stored adjacency entries.
func (g *Graph) NumberOfRoadSegments() int {
	return g.numRoads
}

// GetOutEdges returns the adjacency entries of id in insertion order. The
// returned slice is shared, callers must not mutate it.
func (g *Graph) GetOutEdges(id int32) []OutEdge {
	return g.adjacency[id]
}

func (g *Graph) ForOutEdgesOf(id int32, handle func(outEdge *OutEdge)) {
	edges := g.adjacency[id]
	for i := range edges {
		handle(&edges[i])
	}
}

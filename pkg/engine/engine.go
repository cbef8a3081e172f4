package engine

import (
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/datastructure"
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/engine/routing"
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/parser"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine owns the immutable road network and its name index. Build it once
// at startup and share it, queries never mutate it.
type Engine struct {
	graph *datastructure.Graph
	names *datastructure.NameIndex
}

func (e *Engine) GetGraph() *datastructure.Graph {
	return e.graph
}

func (e *Engine) GetNameIndex() *datastructure.NameIndex {
	return e.names
}

// NewEngineDirect wires an engine from an already built graph and name
// index, for tests and tools that assemble the network in memory.
func NewEngineDirect(graph *datastructure.Graph, names *datastructure.NameIndex) *Engine {
	return &Engine{
		graph: graph,
		names: names,
	}
}

// NewEngine loads the place and road tables, builds the adjacency structure
// and the name index. The two tables are independent, so they load in
// parallel. Skipped malformed lines are logged here, the parser only counts
// them.
func NewEngine(placeFilePath, roadFilePath string, logger *zap.Logger) (*Engine, error) {
	logger.Info("loading road network",
		zap.String("placeFilePath", placeFilePath),
		zap.String("roadFilePath", roadFilePath))

	var (
		places        []parser.PlaceRecord
		roads         []parser.RoadRecord
		placesSkipped int
		roadsSkipped  int
	)

	g := errgroup.Group{}

	g.Go(func() error {
		var err error
		places, placesSkipped, err = parser.LoadPlaces(placeFilePath)
		return err
	})

	g.Go(func() error {
		var err error
		roads, roadsSkipped, err = parser.LoadRoads(roadFilePath)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if placesSkipped > 0 {
		logger.Warn("skipped malformed place records", zap.Int("count", placesSkipped))
	}
	if roadsSkipped > 0 {
		logger.Warn("skipped malformed road records", zap.Int("count", roadsSkipped))
	}

	graph := datastructure.BuildGraph(roads)
	names := datastructure.BuildNameIndex(places)

	logger.Info("road network loaded",
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("roadSegments", graph.NumberOfRoadSegments()),
		zap.Int("placeNames", names.NumberOfNames()))

	return &Engine{
		graph: graph,
		names: names,
	}, nil
}

// ShortestPath runs one search and reconstructs the route. Kept on the
// engine so the CLI and the query service share the exact same call.
func (e *Engine) ShortestPath(source, target int32) (routing.Route, *routing.SearchResult, error) {
	query := routing.NewDijkstra(e.graph)
	result := query.ShortestPath(source, target)

	route, err := routing.ReconstructRoute(e.graph, result, source, target)
	if err != nil {
		return routing.Route{}, result, err
	}

	return route, result, nil
}

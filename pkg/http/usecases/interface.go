package usecases

import (
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/datastructure"
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/engine/routing"
)

type RoutingEngine interface {
	GetGraph() *datastructure.Graph
	GetNameIndex() *datastructure.NameIndex
	ShortestPath(source, target int32) (routing.Route, *routing.SearchResult, error)
}

package controllers

import (
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/http/usecases"
)

type RoutingService interface {
	ShortestPathBetween(sourceName, destinationName string) (usecases.RouteSummary, error)
}

package controllers

import (
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/http/usecases"
)

type shortestPathRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

type shortestPathResponse struct {
	Unreachable bool                        `json:"unreachable"`
	Steps       []usecases.RouteStepSummary `json:"steps"`
	TotalMiles  float64                     `json:"total_distance_miles"`
	QueryTimeMs float64                     `json:"query_time_ms"`
}

func NewShortestPathResponse(summary usecases.RouteSummary) shortestPathResponse {
	return shortestPathResponse{
		Unreachable: summary.Unreachable,
		Steps:       summary.Steps,
		TotalMiles:  summary.TotalMiles,
		QueryTimeMs: summary.QueryTimeMs,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

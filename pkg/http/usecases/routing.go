package usecases

import (
	"errors"
	"time"

	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/util"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

var ERRPLACENOTFOUND = errors.New("place name not found")

// RouteStepSummary mirrors one traversed road segment for presentation.
// Names are nil for unnamed places, the JSON layer renders them as null.
type RouteStepSummary struct {
	FromID      int32   `json:"from_id"`
	FromName    *string `json:"from_name"`
	ToID        int32   `json:"to_id"`
	ToName      *string `json:"to_name"`
	Description string  `json:"description"`
	Miles       float64 `json:"distance_miles"`
}

// RouteSummary is the query service's output contract: either an explicit
// unreachable marker or the ordered steps with their total.
type RouteSummary struct {
	Unreachable bool               `json:"unreachable"`
	Steps       []RouteStepSummary `json:"steps"`
	TotalMiles  float64            `json:"total_distance_miles"`
	QueryTimeMs float64            `json:"query_time_ms"`
}

type routeCacheKey struct {
	source int32
	target int32
}

type RoutingService struct {
	log        *zap.Logger
	engine     RoutingEngine
	routeCache *lru.Cache[routeCacheKey, RouteSummary]
}

func NewRoutingService(log *zap.Logger, engine RoutingEngine, cacheSize int) (*RoutingService, error) {
	routeCache, err := lru.New[routeCacheKey, RouteSummary](cacheSize)
	if err != nil {
		return nil, err
	}

	return &RoutingService{
		log:        log,
		engine:     engine,
		routeCache: routeCache,
	}, nil
}

// ShortestPathBetween resolves both place names with an exact match, runs
// the search and reconstructs the route. A missing name is a distinct
// outcome from an unreachable route.
func (rs *RoutingService) ShortestPathBetween(sourceName, destinationName string) (RouteSummary, error) {
	names := rs.engine.GetNameIndex()

	sourceID, ok := names.ResolveName(sourceName)
	if !ok {
		return RouteSummary{}, util.WrapErrorf(ERRPLACENOTFOUND, util.ErrNotFound,
			"no place named %q", sourceName)
	}

	destinationID, ok := names.ResolveName(destinationName)
	if !ok {
		return RouteSummary{}, util.WrapErrorf(ERRPLACENOTFOUND, util.ErrNotFound,
			"no place named %q", destinationName)
	}

	if summary, hit := rs.routeCache.Get(routeCacheKey{sourceID, destinationID}); hit {
		return summary, nil
	}

	start := time.Now()
	route, result, err := rs.engine.ShortestPath(sourceID, destinationID)
	if err != nil {
		return RouteSummary{}, util.WrapErrorf(err, util.ErrInternalServerError,
			"route reconstruction from %d to %d", sourceID, destinationID)
	}
	elapsed := time.Since(start)

	summary := RouteSummary{
		QueryTimeMs: float64(elapsed.Microseconds()) / 1000.0,
	}

	if route.IsUnreachable() {
		summary.Unreachable = true
		rs.log.Debug("unreachable route",
			zap.Int32("source", sourceID), zap.Int32("destination", destinationID),
			zap.Int("settledNodes", result.NumSettledNodes()))

		rs.routeCache.Add(routeCacheKey{sourceID, destinationID}, summary)
		return summary, nil
	}

	steps := route.GetSteps()
	summary.Steps = make([]RouteStepSummary, 0, len(steps))
	for i := range steps {
		step := &steps[i]
		summary.Steps = append(summary.Steps, RouteStepSummary{
			FromID:      step.GetFromID(),
			FromName:    rs.placeName(step.GetFromID()),
			ToID:        step.GetToID(),
			ToName:      rs.placeName(step.GetToID()),
			Description: step.GetDescription(),
			Miles:       step.GetMiles(),
		})
	}
	summary.TotalMiles = route.GetTotalMiles()

	rs.routeCache.Add(routeCacheKey{sourceID, destinationID}, summary)
	return summary, nil
}

func (rs *RoutingService) placeName(id int32) *string {
	name, ok := rs.engine.GetNameIndex().PlaceName(id)
	if !ok {
		return nil
	}
	return &name
}

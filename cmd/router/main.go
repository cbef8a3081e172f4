package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg"
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/datastructure"
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/engine"
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/logger"
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	placeFile = flag.String("places", "", "path to the place table (overrides config)")
	roadFile  = flag.String("roads", "", "path to the road table (overrides config)")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Warn("no config file found, using defaults", zap.Error(err))
	}
	viper.SetDefault("PLACE_FILE", "./data/Place.txt")
	viper.SetDefault("ROAD_FILE", "./data/Road.txt")

	placePath := viper.GetString("PLACE_FILE")
	roadPath := viper.GetString("ROAD_FILE")
	if *placeFile != "" {
		placePath = *placeFile
	}
	if *roadFile != "" {
		roadPath = *roadFile
	}

	routingEngine, err := engine.NewEngine(placePath, roadPath, logger)
	if err != nil {
		logger.Fatal("failed to load road network", zap.Error(err))
	}

	names := routingEngine.GetNameIndex()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		sourceName, ok := prompt(scanner, "Enter the Source Name: ")
		if !ok {
			return
		}
		destinationName, ok := prompt(scanner, "Enter the Destination Name: ")
		if !ok {
			return
		}

		sourceID, ok := names.ResolveName(sourceName)
		if !ok {
			fmt.Printf("Place name %q was not found. Make sure you type it exactly as it appears in the place table.\n", sourceName)
			continue
		}
		destinationID, ok := names.ResolveName(destinationName)
		if !ok {
			fmt.Printf("Place name %q was not found. Make sure you type it exactly as it appears in the place table.\n", destinationName)
			continue
		}

		fmt.Printf("Searching from %d(%s) to %d(%s)\n",
			sourceID, placeName(names, sourceID), destinationID, placeName(names, destinationID))

		start := time.Now()

		route, _, err := routingEngine.ShortestPath(sourceID, destinationID)
		if err != nil {
			logger.Error("route reconstruction failed", zap.Error(err))
			continue
		}

		if route.IsUnreachable() {
			fmt.Println("No route found between the given places. " +
				"They may be in different disconnected components (e.g., mainland vs. Alaska/Hawaii).")
			continue
		}

		steps := route.GetSteps()
		for i := range steps {
			step := &steps[i]
			fmt.Printf("\t%d: %d(%s) -> %d(%s), %s, %.2f mi.\n",
				i+1,
				step.GetFromID(), placeName(names, step.GetFromID()),
				step.GetToID(), placeName(names, step.GetToID()),
				step.GetDescription(), step.GetMiles())
		}

		elapsed := time.Since(start)

		fmt.Printf("It takes %.2f miles from %d(%s) to %d(%s).\n",
			route.GetTotalMiles(),
			sourceID, placeName(names, sourceID), destinationID, placeName(names, destinationID))
		fmt.Printf("Computation time (Dijkstra + path reconstruction/printing): %.2f seconds.\n",
			elapsed.Seconds())
	}
}

func prompt(scanner *bufio.Scanner, text string) (string, bool) {
	fmt.Print(text)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

// placeName renders the null sentinel for unnamed places, only at the
// presentation layer.
func placeName(names *datastructure.NameIndex, id int32) string {
	name, ok := names.PlaceName(id)
	if !ok {
		return pkg.NULL_NAME
	}
	return name
}

package datastructure

import (
	"math"

	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg"
)

// equal operator
func Eq(a, b float64) bool {
	return math.Abs(a-b) <= pkg.DIST_EPS
}

func Lt(a, b float64) bool {
	return a+pkg.DIST_EPS < b
}

func Ge(a, b float64) bool {
	return !Lt(a, b)
}

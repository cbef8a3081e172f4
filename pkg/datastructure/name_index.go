package datastructure

import (
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/parser"
)

// NameIndex is the bidirectional mapping between place names and ids.
// Lookups are exact, case-sensitive matches only. Built once, read-only
// afterwards.
type NameIndex struct {
	nameToID map[string]int32
	idToName map[int32]string
}

// BuildNameIndex keeps the first occurrence when a place id or a place name
// repeats, so lookups stay deterministic. Records without a name get no
// name->id entry, their id->name lookup reports absent.
func BuildNameIndex(places []parser.PlaceRecord) *NameIndex {
	ni := &NameIndex{
		nameToID: make(map[string]int32, len(places)),
		idToName: make(map[int32]string, len(places)),
	}

	for _, place := range places {
		if !place.Named {
			continue
		}

		if _, ok := ni.idToName[place.ID]; !ok {
			ni.idToName[place.ID] = place.Name
		}
		if _, ok := ni.nameToID[place.Name]; !ok {
			ni.nameToID[place.Name] = place.ID
		}
	}

	return ni
}

// ResolveName maps an exact place name to its id.
func (ni *NameIndex) ResolveName(name string) (int32, bool) {
	id, ok := ni.nameToID[name]
	return id, ok
}

// PlaceName maps an id back to its name. ok is false for ids that have no
// name, callers render their own sentinel.
func (ni *NameIndex) PlaceName(id int32) (string, bool) {
	name, ok := ni.idToName[id]
	return name, ok
}

func (ni *NameIndex) NumberOfNames() int {
	return len(ni.nameToID)
}

func (ni *NameIndex) NumberOfNamedPlaces() int {
	return len(ni.idToName)
}

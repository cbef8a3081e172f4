package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/util"
	"github.com/dsnet/compress/bzip2"
)

// PlaceRecord is one parsed line of the place table. Named is false when the
// name column is empty, many ids in the dataset have no name.
type PlaceRecord struct {
	ID    int32
	Name  string
	Named bool
}

// RoadRecord is one parsed line of the road table. Roads are two-way, the
// pair (From, To) is unordered.
type RoadRecord struct {
	From        int32
	To          int32
	Miles       float64
	Description string
}

func NewRoadRecord(from, to int32, miles float64, description string) RoadRecord {
	return RoadRecord{From: from, To: to, Miles: miles, Description: description}
}

// LoadPlaces reads the place table. Malformed lines are skipped and counted
// instead of failing the whole load, the caller decides whether the skipped
// count is worth logging.
func LoadPlaces(filename string) ([]PlaceRecord, int, error) {
	f, err := openDataFile(filename)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var (
		records []PlaceRecord
		skipped int
	)

	br := bufio.NewReader(f)
	for {
		line, err := readLine(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, 0, err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, perr := parsePlaceLine(line)
		if perr != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}

// LoadRoads reads the road table with the same skip-and-count policy as
// LoadPlaces.
func LoadRoads(filename string) ([]RoadRecord, int, error) {
	f, err := openDataFile(filename)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var (
		records []RoadRecord
		skipped int
	)

	br := bufio.NewReader(f)
	for {
		line, err := readLine(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, 0, err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, perr := parseRoadLine(line)
		if perr != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}

func parsePlaceLine(line string) (PlaceRecord, error) {
	parts := strings.SplitN(line, ",", 2)
	if len(parts) != 2 {
		return PlaceRecord{}, fmt.Errorf("invalid place record: %q", line)
	}

	idStr := strings.TrimSpace(parts[0])
	name := strings.TrimSpace(parts[1])

	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		return PlaceRecord{}, fmt.Errorf("invalid place id %q: %w", idStr, err)
	}

	return PlaceRecord{
		ID:    int32(id),
		Name:  name,
		Named: name != "",
	}, nil
}

func parseRoadLine(line string) (RoadRecord, error) {
	parts := strings.SplitN(line, ",", 4)
	if len(parts) != 4 {
		return RoadRecord{}, fmt.Errorf("invalid road record: %q", line)
	}

	fromStr := strings.TrimSpace(parts[0])
	toStr := strings.TrimSpace(parts[1])
	milesStr := strings.TrimSpace(parts[2])
	description := strings.TrimSpace(parts[3])

	from, err := strconv.ParseInt(fromStr, 10, 32)
	if err != nil {
		return RoadRecord{}, fmt.Errorf("invalid place id %q: %w", fromStr, err)
	}
	to, err := strconv.ParseInt(toStr, 10, 32)
	if err != nil {
		return RoadRecord{}, fmt.Errorf("invalid place id %q: %w", toStr, err)
	}

	miles, err := util.StringToFloat64(milesStr)
	if err != nil {
		return RoadRecord{}, fmt.Errorf("invalid distance %q: %w", milesStr, err)
	}

	// dijkstra needs strictly positive finite weights
	if miles <= 0 || math.IsNaN(miles) || math.IsInf(miles, 0) {
		return RoadRecord{}, fmt.Errorf("non-positive distance %q", milesStr)
	}

	return NewRoadRecord(int32(from), int32(to), miles, description), nil
}

// openDataFile opens a dataset file, decompressing transparently when the
// file carries a .bz2 suffix.
func openDataFile(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(filename, ".bz2") {
		return f, nil
	}

	bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
	if err != nil {
		f.Close()
		return nil, err
	}

	return &bzipReadCloser{bz: bz, f: f}, nil
}

type bzipReadCloser struct {
	bz *bzip2.Reader
	f  *os.File
}

func (rc *bzipReadCloser) Read(p []byte) (int, error) {
	return rc.bz.Read(p)
}

func (rc *bzipReadCloser) Close() error {
	if err := rc.bz.Close(); err != nil {
		rc.f.Close()
		return err
	}
	return rc.f.Close()
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
		} else {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestLoadPlaces(t *testing.T) {
	path := writeFile(t, "Place.txt",
		"1,Seattle\n"+
			"2,\n"+
			"3,Portland, OR\n"+
			"\n"+
			"not-a-number,Nowhere\n"+
			"4\n")

	records, skipped, err := LoadPlaces(path)
	require.NoError(t, err)

	// "4" has no comma, "not-a-number" has no numeric id
	require.Equal(t, 2, skipped)
	require.Len(t, records, 3)

	require.Equal(t, int32(1), records[0].ID)
	require.Equal(t, "Seattle", records[0].Name)
	require.True(t, records[0].Named)

	// empty name column parses, the name is just absent
	require.Equal(t, int32(2), records[1].ID)
	require.False(t, records[1].Named)

	// only the first comma splits, names may contain commas
	require.Equal(t, "Portland, OR", records[2].Name)
}

func TestLoadRoads(t *testing.T) {
	path := writeFile(t, "Road.txt",
		"1,2,5.0,Main St\n"+
			"2,3,3.25,Oak St, northbound\n"+
			"1,3,-1.0,Bad Rd\n"+
			"1,3,abc,Bad Rd\n"+
			"1,2\n"+
			"\n")

	records, skipped, err := LoadRoads(path)
	require.NoError(t, err)

	require.Equal(t, 3, skipped)
	require.Len(t, records, 2)

	require.Equal(t, int32(1), records[0].From)
	require.Equal(t, int32(2), records[0].To)
	require.InDelta(t, 5.0, records[0].Miles, 1e-9)
	require.Equal(t, "Main St", records[0].Description)

	// only the first three commas split, descriptions may contain commas
	require.Equal(t, "Oak St, northbound", records[1].Description)
}

func TestLoadPlacesBzip2(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Place.txt.bz2")

	f, err := os.Create(path)
	require.NoError(t, err)

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	require.NoError(t, err)
	_, err = bz.Write([]byte("7,Anchorage\n8,Honolulu\n"))
	require.NoError(t, err)
	require.NoError(t, bz.Close())
	require.NoError(t, f.Close())

	records, skipped, err := LoadPlaces(path)
	require.NoError(t, err)
	require.Equal(t, 0, skipped)
	require.Len(t, records, 2)
	require.Equal(t, "Anchorage", records[0].Name)
	require.Equal(t, "Honolulu", records[1].Name)
}

func TestLoadPlacesMissingFile(t *testing.T) {
	_, _, err := LoadPlaces(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.Error(t, err)
}

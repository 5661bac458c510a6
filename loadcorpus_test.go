//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writetempcsv(t *testing.T, name string, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), WRITEPERMS))
	return p
}

func TestLoadplotcorpus(t *testing.T) {
	csv := "movie_name,plot,genre\n" +
		"Voyage Beyond Orion,a spaceship crew drifts past a nebula,scifi\n" +
		"The Midnight Ledger,a detective hunts a killer,mystery\n" +
		",missing title means a dropped row,drama\n" +
		"No Plot Here,,drama\n" +
		"Unlabeled,something happens,\n"

	fn := writetempcsv(t, "plots.csv", csv)
	pc := loadplotcorpus(fn)

	require.Len(t, pc.Records, 3)
	assert.Equal(t, 2, pc.Dropped)
	assert.Equal(t, fn, pc.SrcFile)
	assert.Len(t, pc.RunID, 32)
	assert.Len(t, pc.Checksum, 32)

	assert.Equal(t, "Voyage Beyond Orion", pc.Records[0].Title)
	assert.Equal(t, "scifi", pc.Genres["Voyage Beyond Orion"])
	assert.Equal(t, "mystery", pc.Genres["The Midnight Ledger"])

	// a blank genre cell yields no entry, not an empty-string entry
	_, ok := pc.Genres["Unlabeled"]
	assert.False(t, ok)
}

func TestLoadplotcorpusHeaderCase(t *testing.T) {
	csv := "Movie_Name,PLOT\nSolo Feature,things occur\n"

	fn := writetempcsv(t, "caps.csv", csv)
	pc := loadplotcorpus(fn)

	require.Len(t, pc.Records, 1)
	assert.Equal(t, "Solo Feature", pc.Records[0].Title)
	assert.Empty(t, pc.Genres)
}

func TestLoadgenrelookup(t *testing.T) {
	plots := "movie_name,plot,genre\nVoyage Beyond Orion,a spaceship drifts,adventure\n"
	genres := "movie_name,genre\nVoyage Beyond Orion,scifi\nSomething Else,drama\n"

	pfn := writetempcsv(t, "plots.csv", plots)
	gfn := writetempcsv(t, "genres.csv", genres)

	pc := loadplotcorpus(pfn)

	// the lookup file replaces the genre column wholesale
	loadgenrelookup(&pc, gfn)
	assert.Equal(t, "scifi", pc.Genres["Voyage Beyond Orion"])
	assert.Equal(t, "drama", pc.Genres["Something Else"])
}

func TestColumnindex(t *testing.T) {
	header := []string{" movie_name", "Plot", "GENRE"}

	assert.Equal(t, 0, columnindex(header, CSVCOLTITLE))
	assert.Equal(t, 1, columnindex(header, CSVCOLPLOT))
	assert.Equal(t, 2, columnindex(header, CSVCOLGENRE))
	assert.Equal(t, -1, columnindex(header, "director"))
}

func TestFoldtitle(t *testing.T) {
	assert.Equal(t, foldtitle("The  Midnight Ledger"), foldtitle("the midnight  ledger"))
	assert.NotEqual(t, foldtitle("The Midnight Ledger"), foldtitle("A Midnight Ledger"))
}

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

func TestGetstopset(t *testing.T) {
	stops := getstopset()

	assert.True(t, stops["the"])
	assert.True(t, stops["movie"])
	assert.False(t, stops["detective"])
}

func TestReadstopconfigWritesDefault(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "stops.json")

	stops := readstopconfig(fn)
	assert.Contains(t, stops, "the")

	// the file now exists and a second read round-trips it
	_, err := os.Stat(fn)
	require.NoError(t, err)
	assert.ElementsMatch(t, stops, readstopconfig(fn))
}

func TestReadstopconfigOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "stops.json")
	require.NoError(t, os.WriteFile(fn, []byte(`["alpha", "beta"]`), WRITEPERMS))

	stops := readstopconfig(fn)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, stops)
}

func TestGetstopsetWithStopsFile(t *testing.T) {
	defer func() { Config.StopsFile = "" }()

	fn := filepath.Join(t.TempDir(), "stops.json")
	require.NoError(t, os.WriteFile(fn, []byte(`["nebula"]`), WRITEPERMS))

	Config.StopsFile = fn
	stops := getstopset()

	assert.True(t, stops["nebula"])
	// the override replaces the built-in list rather than extending it
	assert.False(t, stops["the"])
}

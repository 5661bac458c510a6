//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleandoc(t *testing.T) {
	tests := map[string]string{
		"Dr. Strange visits a café, twice!":  "doctor strange visits a cafe twice",
		"Mrs. O'Hara; and Det. Muñoz (1987)": "missus ohara and detective munoz",
		"  spaced    out\ttabs\nand lines  ": "spaced out tabs and lines",
		"ALL CAPS SHOUTING":                  "all caps shouting",
	}

	for in, expect := range tests {
		assert.Equal(t, expect, cleandoc(in))
	}
}

func TestStripdiacritics(t *testing.T) {
	assert.Equal(t, "cafe", stripdiacritics("café"))
	assert.Equal(t, "Munoz", stripdiacritics("Muñoz"))
	assert.Equal(t, "plain", stripdiacritics("plain"))
}

func TestStripper(t *testing.T) {
	assert.Equal(t, "abc", stripper("a1b2c3", []string{`\d`}))
	assert.Equal(t, "keep", stripper("keep", []string{`\d`}))
}

func TestDropstopwords(t *testing.T) {
	stops := getstopset()

	kept := dropstopwords([]string{"the", "spaceship", "and", "detective"}, stops)
	assert.Equal(t, []string{"spaceship", "detective"}, kept)

	// "film" and "movie" are plot-corpus noise and belong to the extended list
	kept = dropstopwords([]string{"film", "movie", "asteroid"}, stops)
	assert.Equal(t, []string{"asteroid"}, kept)
}

func TestCustomStops(t *testing.T) {
	defer func() { Config.CustomStops = []string{} }()

	Config.CustomStops = []string{"asteroid"}
	kept := dropstopwords([]string{"asteroid", "nebula"}, getstopset())
	assert.Equal(t, []string{"nebula"}, kept)
}

func TestNormalizecorpus(t *testing.T) {
	pc := PlotCorpus{
		Records: []PlotRecord{
			{Title: "Real Plot", Plot: "a detective hunts the midnight stalker"},
			{Title: "Stops Only", Plot: "The and of or but!"},
			{Title: "Punct Only", Plot: "!!! ... ???"},
		},
	}

	titles, cleaned, empties := normalizecorpus(pc)

	assert.Equal(t, 2, empties)
	assert.Equal(t, []string{"Real Plot"}, titles)
	assert.Len(t, cleaned, 1)
	assert.Contains(t, cleaned[0], "detective")
	assert.NotContains(t, strings.Fields(cleaned[0]), "the")
	assert.NotContains(t, strings.Fields(cleaned[0]), "a")
}

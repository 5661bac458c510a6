//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func testcachedb(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cachedbinit(db)
	return db
}

func TestMakerunid(t *testing.T) {
	a := makerunid()
	b := makerunid()

	assert.Len(t, a, 32)
	assert.NotContains(t, a, "-")
	assert.NotEqual(t, a, b)
}

func TestFingerprintmodel(t *testing.T) {
	pc := PlotCorpus{Checksum: "abc123"}

	f1 := fingerprintmodel(pc, 7, 1234)
	f2 := fingerprintmodel(pc, 7, 1234)
	assert.Equal(t, f1, f2, "identical inputs must fingerprint identically")
	assert.Len(t, f1, 32)

	// any knob change must change the fingerprint
	assert.NotEqual(t, f1, fingerprintmodel(pc, 8, 1234))
	assert.NotEqual(t, f1, fingerprintmodel(pc, 7, 4321))
	assert.NotEqual(t, f1, fingerprintmodel(PlotCorpus{Checksum: "def456"}, 7, 1234))
}

func TestModelcacheRoundtrip(t *testing.T) {
	db := testcachedb(t)

	tm := TopicModel{
		K:      2,
		Seed:   1234,
		Beta:   mat.NewDense(2, 3, []float64{0.5, 0.3, 0.2, 0.1, 0.4, 0.5}),
		Gamma:  mat.NewDense(2, 2, []float64{0.9, 0.1, 0.2, 0.8}),
		Vocab:  []string{"asteroid", "nebula", "detective"},
		Titles: []string{"First", "Second"},
	}

	fp := fingerprintmodel(PlotCorpus{Checksum: "roundtrip"}, 2, 1234)

	assert.False(t, modelcachecheck(db, fp))

	modelcacheadd(db, fp, tm)
	assert.True(t, modelcachecheck(db, fp))

	got, err := modelcachefetch(db, fp)
	require.NoError(t, err)

	assert.Equal(t, tm.K, got.K)
	assert.Equal(t, tm.Seed, got.Seed)
	assert.Equal(t, tm.Vocab, got.Vocab)
	assert.Equal(t, tm.Titles, got.Titles)
	assert.True(t, mat.EqualApprox(tm.Beta, got.Beta, 1e-12))
	assert.True(t, mat.EqualApprox(tm.Gamma, got.Gamma, 1e-12))
}

func TestModelcacheNoCacheBypass(t *testing.T) {
	db := testcachedb(t)
	defer func() { Config.NoCache = false }()

	tm := TopicModel{
		K:      1,
		Beta:   mat.NewDense(1, 1, []float64{1}),
		Gamma:  mat.NewDense(1, 1, []float64{1}),
		Vocab:  []string{"lone"},
		Titles: []string{"Only"},
	}

	Config.NoCache = true
	modelcacheadd(db, "feedfacefeedfacefeedfacefeedface", tm)
	assert.False(t, modelcachecheck(db, "feedfacefeedfacefeedfacefeedface"))

	// nothing was stored while the bypass was on
	Config.NoCache = false
	assert.False(t, modelcachecheck(db, "feedfacefeedfacefeedfacefeedface"))
}

func TestRecordcorpusrun(t *testing.T) {
	db := testcachedb(t)

	pc := PlotCorpus{
		RunID:    makerunid(),
		SrcFile:  "plots.csv",
		Checksum: "abc123",
		Records:  []PlotRecord{{Title: "One", Plot: "stuff"}},
		Dropped:  2,
	}

	recordcorpusrun(db, pc)

	var docs, dropped int
	err := db.QueryRow(`SELECT docs, dropped FROM corpusruns WHERE runid = ?`, pc.RunID).Scan(&docs, &dropped)
	require.NoError(t, err)
	assert.Equal(t, 1, docs)
	assert.Equal(t, 2, dropped)
}

func TestCachedbreset(t *testing.T) {
	db := testcachedb(t)

	tm := TopicModel{
		K:      1,
		Beta:   mat.NewDense(1, 1, []float64{1}),
		Gamma:  mat.NewDense(1, 1, []float64{1}),
		Vocab:  []string{"lone"},
		Titles: []string{"Only"},
	}

	modelcacheadd(db, "cafebabecafebabecafebabecafebabe", tm)
	require.True(t, modelcachecheck(db, "cafebabecafebabecafebabecafebabe"))

	cachedbreset(db)
	assert.False(t, modelcachecheck(db, "cafebabecafebabecafebabecafebabe"))
}

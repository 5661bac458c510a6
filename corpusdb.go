//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"compress/gzip"
	"crypto/md5"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"gonum.org/v1/gonum/mat"
)

//
// RUN BOOKKEEPING AND MODEL CACHING
//

// fitting is by far the slowest stage of a run: a 20-candidate sweep over a few thousand plots can
// take minutes; identical inputs + identical settings will always yield identical models, so the
// models are stored and restored rather than refit

var (
	dbc = NewFncMessageMaker("corpusdb.go")
	// CacheDB is nil until opencachedb() has been called
	CacheDB *sql.DB
)

// makerunid - a fresh unhyphenated uuid to tag this invocation's output
func makerunid() string {
	return strings.Replace(uuid.New().String(), "-", "", -1)
}

// opencachedb - open (and if need be initialize) the on-disk sqlite cache
func opencachedb() *sql.DB {
	const (
		FAIL = "opencachedb() could not open '%s'"
	)

	db, err := sql.Open("sqlite3", Config.CacheDB)
	if err != nil {
		dbc.EF(err, fmt.Sprintf(FAIL, Config.CacheDB))
	}

	cachedbinit(db)
	CacheDB = db
	return db
}

// cachedbinit - create the run log and model cache tables
func cachedbinit(db *sql.DB) {
	const (
		RUNS = `
			CREATE TABLE IF NOT EXISTS corpusruns
			(
			  runid     character(32),
			  srcfile   text,
			  checksum  character(32),
			  docs      int,
			  dropped   int,
			  whenrun   text
			)`
		MODELS = `
			CREATE TABLE IF NOT EXISTS modelcache
			(
			  fingerprint character(32),
			  modelsize   int,
			  modeldata   blob
			)`
	)

	_, err := db.Exec(RUNS)
	dbc.EC(err)
	_, err = db.Exec(MODELS)
	dbc.EC(err)
	msg("cachedbinit(): success", MSGTMI)
}

// recordcorpusrun - log this invocation's corpus into corpusruns
func recordcorpusrun(db *sql.DB, pc PlotCorpus) {
	const (
		INS = `
			INSERT INTO corpusruns
				(runid, srcfile, checksum, docs, dropped, whenrun)
			VALUES (?, ?, ?, ?, ?, ?)`
	)

	_, err := db.Exec(INS, pc.RunID, pc.SrcFile, pc.Checksum, len(pc.Records), pc.Dropped, time.Now().Format(time.RFC3339))
	dbc.EC(err)
}

// fingerprintmodel - derive a unique md5 for any given mix of corpus, settings, and stop-list
func fingerprintmodel(pc PlotCorpus, k int, seed uint64) string {
	const (
		MSG1 = "fingerprintmodel(): "
		FAIL = "fingerprintmodel() failed to Marshal"
	)

	// unless you sort, you do not get repeatable results from a md5sum of the stops
	stops := StringMapKeysIntoSlice(getstopset())
	sort.Strings(stops)

	settings := fmt.Sprintf("k=%d|seed=%d|iter=%d", k, seed, Config.LDAIterations)

	f1, e1 := json.Marshal(stops)
	f2, e2 := json.Marshal(settings)

	if e1 != nil || e2 != nil {
		msg(FAIL, MSGMAND)
		return makerunid()
	}

	f1 = append(f1, f2...)
	f1 = append(f1, []byte(pc.Checksum)...)

	m := fmt.Sprintf("%x", md5.Sum(f1))
	msg(MSG1+m, MSGTMI)

	return m
}

// cachedmodel - TopicModel flattened into something json can round-trip
type cachedmodel struct {
	K      int
	Seed   uint64
	Beta   []float64
	Gamma  []float64
	Vocab  []string
	Titles []string
}

// modelcachecheck - has a model with this fingerprint already been stored?
func modelcachecheck(db *sql.DB, fp string) bool {
	const (
		Q = `SELECT fingerprint FROM modelcache WHERE fingerprint = ? LIMIT 1`
		F = `modelcachecheck() found %s`
	)

	if Config.NoCache {
		return false
	}

	var found string
	err := db.QueryRow(Q, fp).Scan(&found)
	if err != nil {
		// err will be sql.ErrNoRows if you did not find the fingerprint
		return false
	}

	msg(fmt.Sprintf(F, found), MSGTMI)
	return true
}

// modelcacheadd - gzip a fitted model and store it under its fingerprint
func modelcacheadd(db *sql.DB, fp string, tm TopicModel) {
	const (
		MSG1 = "modelcacheadd(): "
		MSG2 = "%s compression: %dK -> %dK (-> %.1f%%)"
		FAIL = "modelcacheadd() failed when calling json.Marshal(): nothing stored"
		INS  = `
			INSERT INTO modelcache
				(fingerprint, modelsize, modeldata)
			VALUES (?, ?, ?)`
		GZ = gzip.BestSpeed
	)

	if Config.NoCache {
		return
	}

	cm := cachedmodel{
		K:      tm.K,
		Seed:   tm.Seed,
		Beta:   tm.Beta.RawMatrix().Data,
		Gamma:  tm.Gamma.RawMatrix().Data,
		Vocab:  tm.Vocab,
		Titles: tm.Titles,
	}

	mb, err := json.Marshal(cm)
	if err != nil {
		msg(FAIL, MSGNOTE)
		return
	}

	l1 := len(mb)

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, GZ)
	dbc.EC(err)
	_, err = zw.Write(mb)
	dbc.EC(err)
	err = zw.Close()
	dbc.EC(err)

	b := buf.Bytes()
	l2 := len(b)

	_, err = db.Exec(INS, fp, l2, b)
	dbc.EC(err)
	msg(MSG1+fp, MSGPEEK)

	msg(fmt.Sprintf(MSG2, fp, l1/1024, l2/1024, (float32(l2)/float32(l1))*100), MSGPEEK)
	buf.Reset()
}

// modelcachefetch - restore a fitted model from the cache
func modelcachefetch(db *sql.DB, fp string) (TopicModel, error) {
	const (
		MSG1 = "modelcachefetch(): "
		Q    = `SELECT modeldata FROM modelcache WHERE fingerprint = ? LIMIT 1`
	)

	var blob []byte
	err := db.QueryRow(Q, fp).Scan(&blob)
	if err != nil {
		return TopicModel{}, err
	}

	// the data in the table is zipped and needs unzipping
	zr, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return TopicModel{}, err
	}
	decompr, err := io.ReadAll(zr)
	if err != nil {
		return TopicModel{}, err
	}
	err = zr.Close()
	if err != nil {
		return TopicModel{}, err
	}

	var cm cachedmodel
	err = json.Unmarshal(decompr, &cm)
	if err != nil {
		return TopicModel{}, err
	}

	tm := TopicModel{
		K:      cm.K,
		Seed:   cm.Seed,
		Beta:   mat.NewDense(cm.K, len(cm.Vocab), cm.Beta),
		Gamma:  mat.NewDense(len(cm.Titles), cm.K, cm.Gamma),
		Vocab:  cm.Vocab,
		Titles: cm.Titles,
	}

	msg(MSG1+fp, MSGPEEK)

	return tm, nil
}

// cachedbreset - drop the model cache table; "-nc" sets this in motion
func cachedbreset(db *sql.DB) {
	const (
		MSG1 = "cachedbreset() dropped modelcache"
		MSG2 = "cachedbreset(): 'DROP TABLE modelcache' returned an (ignored) error: \n\t%s"
		E    = `DROP TABLE modelcache`
	)

	_, err := db.Exec(E)
	if err != nil {
		msg(fmt.Sprintf(MSG2, err.Error()), MSGFYI)
	} else {
		msg(MSG1, MSGNOTE)
	}
	cachedbinit(db)
}

// cachedbsize - how much space are the stored models using?
func cachedbsize(priority int) {
	const (
		SZQ  = `SELECT COALESCE(SUM(modelsize), 0) AS total FROM modelcache`
		MSG4 = "Disk space used by cached models is currently %dKB"
	)

	if CacheDB == nil {
		return
	}

	var size int64
	err := CacheDB.QueryRow(SZQ).Scan(&size)
	if err != nil {
		return
	}

	msg(fmt.Sprintf(MSG4, size/1024), priority)
}

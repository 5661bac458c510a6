//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/pkg/profile"
)

//    the pipeline: csv -> normalize -> vectorize -> (sweep) -> fit -> aggregate -> cluster -> project -> report
//    "-ws" serves the results afterwards; otherwise the program writes the report and exits

func main() {
	configatlaunch()

	if Config.Profiling {
		defer profile.Start().Stop()
	}
	// mem profile:
	// defer profile.Start(profile.MemProfile).Stop()

	versioninfo := fmt.Sprintf("S1%s (v.%s)S0", MYNAME, VERSION)
	versioninfo = versioninfo + fmt.Sprintf(" [loglevel=%d]", Config.LogLevel)
	msg(messenger.ColStyle(versioninfo), MSGMAND)

	if !Config.QuietStart {
		msg(fmt.Sprintf(TERMINALTEXT, PROJYEAR, PROJAUTH, PROJMAIL), MSGMAND)
	}

	if Config.SelfTest {
		selftestsuite()
		return
	}

	start := time.Now()
	previous := time.Now()

	// [A] concurrent launching: the corpus and the cache do not need one another

	var pc PlotCorpus

	var awaiting sync.WaitGroup

	awaiting.Add(1)
	go func(awaiting *sync.WaitGroup) {
		defer awaiting.Done()
		pc = loadplotcorpus(Config.CSVFile)
		if Config.GenreCSVFile != "" {
			loadgenrelookup(&pc, Config.GenreCSVFile)
		}
		timetracker("A1", fmt.Sprintf("%d plots loaded from '%s'", len(pc.Records), Config.CSVFile), start, previous)
	}(&awaiting)

	awaiting.Add(1)
	go func(awaiting *sync.WaitGroup) {
		defer awaiting.Done()
		opencachedb()
		timetracker("A2", fmt.Sprintf("cache db opened at '%s'", Config.CacheDB), start, previous)
	}(&awaiting)

	awaiting.Wait()

	defer func() {
		if CacheDB != nil {
			chke(CacheDB.Close())
		}
	}()

	if Config.NoCache {
		cachedbreset(CacheDB)
	}
	recordcorpusrun(CacheDB, pc)

	// [B] normalize and vectorize

	previous = time.Now()
	titles, cleaned, empties := normalizecorpus(pc)
	tm, err := buildtermmatrix(titles, cleaned, empties)
	chke(err)
	timetracker("B1", fmt.Sprintf("%d docs vectorized over %d terms", tm.NumDocs(), tm.NumTerms()), start, previous)

	// [C] the topic-count sweep

	var scores []KScore
	if !Config.SkipSweep {
		previous = time.Now()
		scores = sweeptopiccounts(tm, Config.SweepLow, Config.SweepHigh, uint64(Config.Seed))
		sweepconsolereport(scores)
		timetracker("C1", fmt.Sprintf("topic-count sweep scored %d candidates", len(scores)), start, previous)
	}

	// [D] fit the real model; the cache spares you a refit on repeat runs

	previous = time.Now()
	var model TopicModel
	fp := fingerprintmodel(pc, Config.TopicCount, uint64(Config.Seed))
	if modelcachecheck(CacheDB, fp) {
		model, err = modelcachefetch(CacheDB, fp)
		chke(err)
		timetracker("D1", fmt.Sprintf("%d-topic model restored from cache", model.K), start, previous)
	} else {
		model, err = fitldamodel(tm, Config.TopicCount, uint64(Config.Seed))
		chke(err)
		modelcacheadd(CacheDB, fp, model)
		timetracker("D1", fmt.Sprintf("%d-topic model fitted", model.K), start, previous)
	}

	// [E] aggregate, cluster, project

	previous = time.Now()
	avgs := aggregatebygenre(model, pc.Genres)

	cr, err := clustergamma(model, Config.ClusterCount, uint64(Config.Seed))
	chke(err)

	points, err := projectclusters(model, cr)
	chke(err)
	timetracker("E1", fmt.Sprintf("%d genres averaged; %d clusters built", len(avgs), cr.K), start, previous)

	// [F] the report

	previous = time.Now()
	LatestReport = ReportData{
		Corpus:    pc,
		Matrix:    tm,
		Scores:    scores,
		Model:     model,
		GenreAvgs: avgs,
		Clusters:  cr,
		Points:    points,
	}
	LatestReport.HTMLPath = writereport(LatestReport)
	timetracker("F1", "report written", start, previous)

	cachedbsize(MSGPEEK)

	if Config.WebUI {
		StartEchoServer()
	}
}

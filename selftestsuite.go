//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//

package main

import (
	"fmt"
	"strings"
	"time"
)

// a fast end-to-end sanity check on a corpus tiny enough to reason about by hand:
// three "plots" with fully disjoint vocabularies must yield three topics that
// do not bleed into one another and three singleton clusters

var (
	stt = NewFncMessageMaker("selftestsuite.go")

	SelfTestCorpus = []PlotRecord{
		{Title: "Voyage Beyond Orion", Genre: "scifi",
			Plot: "spaceship crew warp galaxy nebula alien starfield asteroid cosmic engine " +
				"spaceship warp alien galaxy nebula crew cosmic asteroid starfield engine"},
		{Title: "June at the Chapel", Genre: "romance",
			Plot: "wedding bride groom bouquet chapel vows honeymoon toast gown rings " +
				"wedding bride vows chapel groom bouquet honeymoon gown toast rings"},
		{Title: "The Midnight Ledger", Genre: "mystery",
			Plot: "detective murder clue suspect alibi fingerprint interrogation stakeout motive verdict " +
				"detective clue murder suspect fingerprint alibi stakeout interrogation verdict motive"},
	}
)

// selftestsuite - fit the known-answer corpus and check every stage against its expected output
func selftestsuite() {
	const (
		K    = 3
		MSG1 = "normalize and vectorize %d documents"
		MSG2 = "fit a %d-topic model"
		MSG3 = "check topic separation"
		MSG4 = "check vocabulary fidelity"
		MSG5 = "cluster and verify %d singletons"
		PASS = "SELF-TEST PASSED: %d stages in %.2fs"
		FAIL = "SELF-TEST FAILED: %s"
	)

	start := time.Now()
	previous := time.Now()

	pc := PlotCorpus{
		Records: SelfTestCorpus,
		Genres:  make(map[string]string),
		SrcFile: "selftest",
		RunID:   makerunid(),
	}
	for _, r := range pc.Records {
		pc.Genres[r.Title] = r.Genre
	}

	// [a] normalize + vectorize

	titles, cleaned, empties := normalizecorpus(pc)
	tm, err := buildtermmatrix(titles, cleaned, empties)
	if err != nil {
		stt.Error(fmt.Errorf(FAIL, err.Error()))
		return
	}
	if tm.NumDocs() != len(SelfTestCorpus) {
		stt.Error(fmt.Errorf(FAIL, "a document vanished during vectorization"))
		return
	}
	stt.Timer("ST1", fmt.Sprintf(MSG1, tm.NumDocs()), start, previous)
	previous = time.Now()

	// [b] fit

	model, err := fitldamodel(tm, K, uint64(Config.Seed))
	if err != nil {
		stt.Error(fmt.Errorf(FAIL, err.Error()))
		return
	}
	stt.Timer("ST2", fmt.Sprintf(MSG2, K), start, previous)
	previous = time.Now()

	// [c] three documents, three distinct dominant topics

	seen := make(map[int]bool)
	for d := 0; d < K; d++ {
		seen[model.DominantTopic(d)] = true
	}
	if len(seen) != K {
		stt.Error(fmt.Errorf(FAIL, "documents with disjoint vocabularies share a dominant topic"))
		return
	}
	stt.Timer("ST3", MSG3, start, previous)
	previous = time.Now()

	// [d] each document's top terms must come from that document's own vocabulary

	for d := 0; d < K; d++ {
		own := ToSet(strings.Fields(tm.Cleaned[d]))
		for _, wt := range model.TopTerms(model.DominantTopic(d), TOPTERMSPERBAR) {
			if !own[wt.Term] {
				e := fmt.Sprintf("topic for '%s' contains the foreign term '%s'", tm.Titles[d], wt.Term)
				stt.Error(fmt.Errorf(FAIL, e))
				return
			}
		}
	}
	stt.Timer("ST4", MSG4, start, previous)
	previous = time.Now()

	// [e] cluster into three singletons

	cr, err := clustergamma(model, K, uint64(Config.Seed))
	if err != nil {
		stt.Error(fmt.Errorf(FAIL, err.Error()))
		return
	}
	for c := 0; c < K; c++ {
		if cr.Sizes[c] != 1 {
			stt.Error(fmt.Errorf(FAIL, "clustering did not yield three singletons"))
			return
		}
	}
	stt.Timer("ST5", fmt.Sprintf(MSG5, K), start, previous)

	msg(fmt.Sprintf(PASS, 5, time.Since(start).Seconds()), MSGMAND)
}

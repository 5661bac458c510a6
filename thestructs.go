//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

//
// THE PIPELINE'S SENTINELS
//

var (
	// ErrEmptyDocument - a document had zero surviving terms and can not be represented in the term matrix
	ErrEmptyDocument = errors.New("document contains no terms after cleaning")
	// ErrMissingGammaRow - a document reached the clusterer without a usable topic-weight row
	ErrMissingGammaRow = errors.New("document is missing its topic-weight row")
	// ErrNoData - a visualizer was handed nothing to plot
	ErrNoData = errors.New("no data to plot")
)

//
// THE CORPUS
//

// PlotRecord - one row of the input CSV: a uniquely-titled movie, its plot and (optionally) its genre
type PlotRecord struct {
	Title string
	Plot  string
	Genre string
}

// PlotCorpus - the loaded input plus the bookkeeping the later stages need
type PlotCorpus struct {
	Records  []PlotRecord
	Genres   map[string]string // title -> genre
	Dropped  int               // rows discarded at load time for malformed shape
	SrcFile  string
	RunID    string // uuid stamped on the report and the cache rows
	Checksum string // md5 of the raw corpus bytes; part of the cache fingerprint
}

//
// THE TERM MATRIX
//

// TermMatrix - sparse term-by-document counts as produced by the vectoriser
type TermMatrix struct {
	Counts  mat.Matrix // terms x documents; non-negative integer-valued
	Vocab   []string   // column index -> term
	Titles  []string   // document index -> movie title; only survivors appear
	Cleaned []string   // document index -> the cleaned text that was vectorised
	Empties int        // documents dropped because cleaning left nothing
}

// TermCount - how often a term occurs in one document
func (tm *TermMatrix) TermCount(doc int, term string) int {
	for i, v := range tm.Vocab {
		if v == term {
			return int(tm.Counts.At(i, doc))
		}
	}
	return 0
}

// NumDocs - documents actually present in the matrix
func (tm *TermMatrix) NumDocs() int {
	_, c := tm.Counts.Dims()
	return c
}

// NumTerms - distinct surviving terms
func (tm *TermMatrix) NumTerms() int {
	r, _ := tm.Counts.Dims()
	return r
}

//
// THE FITTED MODEL
//

// TopicModel - the output of one LDA fit
type TopicModel struct {
	K      int
	Seed   uint64
	Beta   *mat.Dense // topics x terms; each row is a probability distribution over the vocabulary
	Gamma  *mat.Dense // documents x topics; each row is a probability distribution over the topics
	Vocab  []string
	Titles []string
}

// DominantTopic - argmax over a document's gamma row; ids are arbitrary per-run labels
func (tm *TopicModel) DominantTopic(doc int) int {
	winner := 0
	max := float64(0)
	for t := 0; t < tm.K; t++ {
		if tm.Gamma.At(doc, t) > max {
			max = tm.Gamma.At(doc, t)
			winner = t
		}
	}
	return winner
}

// WeightedTerm - a term and its beta weight inside one topic
type WeightedTerm struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// TopTerms - the n heaviest terms of topic t, descending; ties break arbitrarily
func (tm *TopicModel) TopTerms(t int, n int) []WeightedTerm {
	_, c := tm.Beta.Dims()
	wts := make([]WeightedTerm, c)
	for w := 0; w < c; w++ {
		wts[w] = WeightedTerm{Term: tm.Vocab[w], Weight: tm.Beta.At(t, w)}
	}
	sortweightedterms(wts)
	if n > len(wts) {
		n = len(wts)
	}
	return wts[0:n]
}

//
// THE SWEEP
//

// KScore - the quality scores for one candidate topic count; the caller picks k, not us
type KScore struct {
	K          int     `json:"k"`
	Perplexity float64 `json:"perplexity"` // minimize
	CaoJuan    float64 `json:"caojuan"`    // minimize
	Deveaud    float64 `json:"deveaud"`    // maximize
	Arun       float64 `json:"arun"`       // minimize
}

//
// THE AGGREGATES
//

// GenreTopicAvg - mean gamma over all documents of one genre
type GenreTopicAvg struct {
	Genre string    `json:"genre"`
	Means []float64 `json:"means"` // index = topic id
	Docs  int       `json:"docs"`  // documents that contributed
}

// ClusterResult - k-means output over the gamma rows
type ClusterResult struct {
	K           int        `json:"k"`
	Assignments []int      `json:"assignments"` // document index -> cluster id in [0,K)
	Centroids   *mat.Dense `json:"-"`           // K x topics
	Sizes       []int      `json:"sizes"`
	Dropped     int        `json:"dropped"` // rows excluded for NaN gamma entries
	Kept        []int      `json:"-"`       // assignment index -> original document index
}

// Point2D - a projected document for the cluster scatter
type Point2D struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Title   string  `json:"title"`
	Cluster int     `json:"cluster"`
}

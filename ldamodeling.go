//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"

	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

//
// TOPIC MODELING
//

// see https://github.com/james-bowman/nlp/blob/26d441fa0ded/lda.go for the full option surface:
// Iterations, PerplexityTolerance, PerplexityEvaluationFrequency, BurnInPasses, TransformationPasses,
// ChangeEvaluationFrequency, Alpha, Eta, RhoPhi, RhoTheta, Rnd, Processes...

// newseededlda - an LDA fitter that will reproduce itself run after run
func newseededlda(k int, seed uint64) *nlp.LatentDirichletAllocation {
	lda := nlp.NewLatentDirichletAllocation(k)
	lda.Iterations = Config.LDAIterations
	lda.BurnInPasses = LDABURNINPASSES
	lda.TransformationPasses = LDAXFORMPASSES
	lda.PerplexityTolerance = LDAPERPTOL
	lda.PerplexityEvaluationFrequency = LDAPERPEVALFRQ
	lda.ChangeEvaluationFrequency = LDACHGEVALFRQ
	lda.Rnd = rand.New(rand.NewSource(seed))

	// one process: the parallel fit trades run-to-run reproducibility for speed, and reproducibility
	// given a fixed seed is part of the contract here
	lda.Processes = 1

	return lda
}

// fitldamodel - fit k topics over the term matrix; returns beta and gamma in their conventional
// orientations (topic rows over terms; document rows over topics), each row a probability distribution
func fitldamodel(tm TermMatrix, k int, seed uint64) (TopicModel, error) {
	const (
		MSG1 = "fitting %d topics over %d documents (seed %d)"
	)

	msg(fmt.Sprintf(MSG1, k, tm.NumDocs(), seed), MSGPEEK)

	lda := newseededlda(k, seed)

	docsOverTopics, err := lda.FitTransform(tm.Counts)
	if err != nil {
		return TopicModel{}, err
	}

	topicsOverWords := lda.Components()

	_, docs := docsOverTopics.Dims()
	_, words := topicsOverWords.Dims()

	gamma := mat.NewDense(docs, k, nil)
	for d := 0; d < docs; d++ {
		for t := 0; t < k; t++ {
			gamma.Set(d, t, docsOverTopics.At(t, d))
		}
	}

	beta := mat.NewDense(k, words, nil)
	for t := 0; t < k; t++ {
		for w := 0; w < words; w++ {
			beta.Set(t, w, topicsOverWords.At(t, w))
		}
	}

	// guard against float drift in the library's normalisation: these rows are distributions by contract
	normalizerows(gamma)
	normalizerows(beta)

	return TopicModel{
		K:      k,
		Seed:   seed,
		Beta:   beta,
		Gamma:  gamma,
		Vocab:  tm.Vocab,
		Titles: tm.Titles,
	}, nil
}

// normalizerows - scale every row of m to sum to 1; rows that sum to 0 are left alone
func normalizerows(m *mat.Dense) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		sum := float64(0)
		for j := 0; j < c; j++ {
			sum += m.At(i, j)
		}
		if sum == 0 {
			continue
		}
		for j := 0; j < c; j++ {
			m.Set(i, j, m.At(i, j)/sum)
		}
	}
}

//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//
// THE TOPIC-COUNT SWEEP
//

// one independent fit per candidate count makes this the expensive stage: cost = len(candidates) x fit;
// the fits do not interact, so they fan out over a bounded worker pool; every fit reads the same matrix
// and starts from the same seed

// the selector only scores; a human reads the scree plot and picks k (minimize perplexity, caojuan and
// arun; maximize deveaud)

// sweeptopiccounts - score every candidate topic count in [lo, hi]
func sweeptopiccounts(tm TermMatrix, lo int, hi int, seed uint64) []KScore {
	const (
		MSG1 = "sweeping topic counts %d through %d with %d workers"
		MSG2 = "scored k=%d: perplexity %.2f"
	)

	msg(fmt.Sprintf(MSG1, lo, hi, Config.WorkerCount), MSGNOTE)

	feeder := make(chan int, Config.WorkerCount)
	var scores []KScore
	var lock sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < Config.WorkerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range feeder {
				s := scoreonecandidate(tm, k, seed)
				lock.Lock()
				scores = append(scores, s)
				lock.Unlock()
				msg(fmt.Sprintf(MSG2, s.K, s.Perplexity), MSGPEEK)
			}
		}()
	}

	for k := lo; k <= hi; k++ {
		feeder <- k
	}
	close(feeder)
	wg.Wait()

	sort.Slice(scores, func(i, j int) bool { return scores[i].K < scores[j].K })

	return scores
}

// scoreonecandidate - fit one independent model at k and compute its quality scores
func scoreonecandidate(tm TermMatrix, k int, seed uint64) KScore {
	lda := newseededlda(k, seed)

	docsOverTopics, err := lda.FitTransform(tm.Counts)
	chkf(err, "scoreonecandidate()")

	beta := lda.Components()

	return KScore{
		K:          k,
		Perplexity: lda.Perplexity(tm.Counts),
		CaoJuan:    caojuan2009(beta),
		Deveaud:    deveaud2014(beta),
		Arun:       arun2010(tm, beta, docsOverTopics),
	}
}

//
// THE METRICS
//

// caojuan2009 - average pairwise cosine similarity between topic-term rows; well-separated topics
// score low, so the reader of the scree plot wants the minimum
func caojuan2009(beta mat.Matrix) float64 {
	k, words := beta.Dims()
	if k < 2 {
		return 1
	}

	rows := make([][]float64, k)
	for t := 0; t < k; t++ {
		rows[t] = make([]float64, words)
		for w := 0; w < words; w++ {
			rows[t][w] = beta.At(t, w)
		}
	}

	total := float64(0)
	pairs := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			total += cosinesim(rows[i], rows[j])
			pairs += 1
		}
	}
	return total / float64(pairs)
}

// deveaud2014 - average pairwise Jensen-Shannon style divergence between topic-term rows; the reader
// wants the maximum
func deveaud2014(beta mat.Matrix) float64 {
	k, words := beta.Dims()
	if k < 2 {
		return 0
	}

	rows := make([][]float64, k)
	for t := 0; t < k; t++ {
		rows[t] = make([]float64, words)
		for w := 0; w < words; w++ {
			rows[t][w] = beta.At(t, w)
		}
	}

	total := float64(0)
	pairs := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			total += (kldivergence(rows[i], rows[j]) + kldivergence(rows[j], rows[i])) / 2
			pairs += 1
		}
	}
	return total / float64(pairs)
}

// arun2010 - symmetric KL between the singular-value spectrum of beta and the document-length-weighted
// topic mix; the reader wants the minimum
func arun2010(tm TermMatrix, beta mat.Matrix, docsOverTopics mat.Matrix) float64 {
	k, _ := beta.Dims()

	var svd mat.SVD
	ok := svd.Factorize(mat.DenseCopyOf(beta), mat.SVDNone)
	if !ok {
		return math.NaN()
	}
	cm1 := svd.Values(nil)

	// document lengths = column sums of the count matrix
	terms, docs := tm.Counts.Dims()
	lens := make([]float64, docs)
	for d := 0; d < docs; d++ {
		for w := 0; w < terms; w++ {
			lens[d] += tm.Counts.At(w, d)
		}
	}

	cm2 := make([]float64, k)
	for t := 0; t < k; t++ {
		for d := 0; d < docs; d++ {
			cm2[t] += docsOverTopics.At(t, d) * lens[d]
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(cm1)))
	sort.Sort(sort.Reverse(sort.Float64Slice(cm2)))

	// the SVD yields min(k, terms) values; a tiny vocabulary can leave the spectrum shorter
	// than the topic mix, so compare only the shared head of the two distributions
	if len(cm1) < len(cm2) {
		cm2 = cm2[:len(cm1)]
	} else if len(cm2) < len(cm1) {
		cm1 = cm1[:len(cm2)]
	}

	normalizedist(cm1)
	normalizedist(cm2)

	return kldivergence(cm1, cm2) + kldivergence(cm2, cm1)
}

//
// SMALL VECTOR MATH
//

func cosinesim(a []float64, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 0
	}
	return floats.Dot(a, b) / (na * nb)
}

// kldivergence - KL(p||q) with a small epsilon so that zero cells do not blow up the log
func kldivergence(p []float64, q []float64) float64 {
	const EPS = 1e-12
	d := float64(0)
	for i := range p {
		pi := p[i] + EPS
		qi := q[i] + EPS
		d += pi * math.Log(pi/qi)
	}
	return d
}

func normalizedist(v []float64) {
	sum := floats.Sum(v)
	if sum == 0 {
		return
	}
	floats.Scale(1/sum, v)
}

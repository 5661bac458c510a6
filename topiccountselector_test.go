//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCosinesim(t *testing.T) {
	assert.InDelta(t, 1.0, cosinesim([]float64{1, 2, 3}, []float64{2, 4, 6}), 1e-12)
	assert.InDelta(t, 0.0, cosinesim([]float64{1, 0}, []float64{0, 1}), 1e-12)
	assert.Equal(t, 0.0, cosinesim([]float64{0, 0}, []float64{1, 1}))
}

func TestKldivergence(t *testing.T) {
	p := []float64{0.5, 0.5}
	q := []float64{0.9, 0.1}

	assert.InDelta(t, 0.0, kldivergence(p, p), 1e-9)
	assert.Greater(t, kldivergence(p, q), 0.0)
	// KL is not symmetric
	assert.NotEqual(t, kldivergence(p, q), kldivergence(q, p))
}

func TestNormalizedist(t *testing.T) {
	v := []float64{1, 3}
	normalizedist(v)
	assert.InDelta(t, 0.25, v[0], 1e-12)
	assert.InDelta(t, 0.75, v[1], 1e-12)

	z := []float64{0, 0}
	normalizedist(z)
	assert.Equal(t, []float64{0, 0}, z)
}

func TestCaojuan2009(t *testing.T) {
	// orthogonal topics: perfectly separated, so the score bottoms out at 0
	sep := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	assert.InDelta(t, 0.0, caojuan2009(sep), 1e-12)

	// identical topics: the degenerate ceiling
	same := mat.NewDense(2, 2, []float64{0.5, 0.5, 0.5, 0.5})
	assert.InDelta(t, 1.0, caojuan2009(same), 1e-12)

	// a single topic has no pairs to compare
	assert.Equal(t, 1.0, caojuan2009(mat.NewDense(1, 2, []float64{0.5, 0.5})))
}

func TestDeveaud2014(t *testing.T) {
	sep := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	same := mat.NewDense(2, 2, []float64{0.5, 0.5, 0.5, 0.5})

	// divergent topics must outscore identical ones
	assert.Greater(t, deveaud2014(sep), deveaud2014(same))
	assert.InDelta(t, 0.0, deveaud2014(same), 1e-9)
	assert.Equal(t, 0.0, deveaud2014(mat.NewDense(1, 2, []float64{0.5, 0.5})))
}

func TestArun2010(t *testing.T) {
	tm := TermMatrix{
		Counts: mat.NewDense(3, 2, []float64{2, 0, 1, 1, 0, 2}),
		Vocab:  []string{"a", "b", "c"},
	}
	beta := mat.NewDense(2, 3, []float64{0.6, 0.3, 0.1, 0.1, 0.3, 0.6})
	theta := mat.NewDense(2, 2, []float64{0.8, 0.2, 0.2, 0.8})

	v := arun2010(tm, beta, theta)
	assert.False(t, math.IsNaN(v))
	assert.GreaterOrEqual(t, v, 0.0)
}

func TestArun2010VocabSmallerThanK(t *testing.T) {
	// two surviving terms but three candidate topics: the singular-value spectrum is shorter
	// than the topic mix and the score must still come back finite
	tm := TermMatrix{
		Counts: mat.NewDense(2, 2, []float64{2, 1, 1, 2}),
		Vocab:  []string{"a", "b"},
	}
	beta := mat.NewDense(3, 2, []float64{0.7, 0.3, 0.5, 0.5, 0.2, 0.8})
	theta := mat.NewDense(3, 2, []float64{0.6, 0.2, 0.3, 0.3, 0.1, 0.5})

	v := arun2010(tm, beta, theta)
	assert.False(t, math.IsNaN(v))
	assert.GreaterOrEqual(t, v, 0.0)
}

func TestSweeptopiccounts(t *testing.T) {
	pc := PlotCorpus{Records: SelfTestCorpus}
	titles, cleaned, empties := normalizecorpus(pc)
	tm, err := buildtermmatrix(titles, cleaned, empties)
	require.NoError(t, err)

	scores := sweeptopiccounts(tm, 2, 3, DEFAULTSEED)
	require.Len(t, scores, 2)

	// results come back sorted by k no matter which worker finished first
	assert.Equal(t, 2, scores[0].K)
	assert.Equal(t, 3, scores[1].K)

	for _, s := range scores {
		assert.False(t, math.IsNaN(s.CaoJuan))
		assert.False(t, math.IsNaN(s.Deveaud))
		assert.False(t, math.IsNaN(s.Arun))
	}
}

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

func twoblobmodel() TopicModel {
	// six documents in two tight blobs; any sane k=2 clustering separates them
	return TopicModel{
		K: 2,
		Gamma: mat.NewDense(6, 2, []float64{
			0.95, 0.05,
			0.90, 0.10,
			0.92, 0.08,
			0.05, 0.95,
			0.10, 0.90,
			0.08, 0.92,
		}),
		Titles: []string{"A1", "A2", "A3", "B1", "B2", "B3"},
	}
}

func TestClustergamma(t *testing.T) {
	model := twoblobmodel()

	cr, err := clustergamma(model, 2, DEFAULTSEED)
	require.NoError(t, err)

	assert.Equal(t, 2, cr.K)
	assert.Equal(t, 0, cr.Dropped)
	assert.ElementsMatch(t, []int{3, 3}, cr.Sizes)
	assert.Len(t, cr.Assignments, 6)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, cr.Kept)

	// the first three documents share a cluster; the last three share the other
	assert.Equal(t, cr.Assignments[0], cr.Assignments[1])
	assert.Equal(t, cr.Assignments[0], cr.Assignments[2])
	assert.Equal(t, cr.Assignments[3], cr.Assignments[4])
	assert.Equal(t, cr.Assignments[3], cr.Assignments[5])
	assert.NotEqual(t, cr.Assignments[0], cr.Assignments[3])
}

func TestClustergammaDeterminism(t *testing.T) {
	model := twoblobmodel()

	c1, err := clustergamma(model, 2, DEFAULTSEED)
	require.NoError(t, err)
	c2, err := clustergamma(model, 2, DEFAULTSEED)
	require.NoError(t, err)

	assert.Equal(t, c1.Assignments, c2.Assignments)
	assert.True(t, mat.EqualApprox(c1.Centroids, c2.Centroids, 1e-12))
}

func TestClustergammaDropsNaNRows(t *testing.T) {
	model := TopicModel{
		K: 2,
		Gamma: mat.NewDense(4, 2, []float64{
			0.9, 0.1,
			math.NaN(), 0.5,
			0.1, 0.9,
			0.8, 0.2,
		}),
		Titles: []string{"ok1", "broken", "ok2", "ok3"},
	}

	cr, err := clustergamma(model, 2, DEFAULTSEED)
	require.NoError(t, err)

	assert.Equal(t, 1, cr.Dropped)
	assert.Equal(t, []int{0, 2, 3}, cr.Kept)
	assert.Len(t, cr.Assignments, 3)
}

func TestClustergammaTooFewRows(t *testing.T) {
	model := TopicModel{
		K:      2,
		Gamma:  mat.NewDense(2, 2, []float64{0.9, 0.1, 0.2, 0.8}),
		Titles: []string{"one", "two"},
	}

	_, err := clustergamma(model, 3, DEFAULTSEED)
	assert.ErrorIs(t, err, ErrMissingGammaRow)
}

func TestEuclidean(t *testing.T) {
	assert.InDelta(t, 5.0, euclidean([]float64{0, 0}, []float64{3, 4}), 1e-12)
	assert.Equal(t, 0.0, euclidean([]float64{1, 1}, []float64{1, 1}))
}

func TestFarthestpoint(t *testing.T) {
	data := [][]float64{{0, 0}, {1, 1}, {10, 10}}
	assert.Equal(t, 2, farthestpoint(data, []float64{0, 0}))
	assert.Equal(t, 0, farthestpoint(data, []float64{10, 10}))
}

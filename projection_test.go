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

func TestProjectclustersPCA(t *testing.T) {
	model := twoblobmodel()

	cr, err := clustergamma(model, 2, DEFAULTSEED)
	require.NoError(t, err)

	points, err := projectclusters(model, cr)
	require.NoError(t, err)
	require.Len(t, points, 6)

	for i, p := range points {
		assert.Equal(t, model.Titles[cr.Kept[i]], p.Title)
		assert.Equal(t, cr.Assignments[i], p.Cluster)
		assert.False(t, p.X != p.X, "x must not be NaN")
		assert.False(t, p.Y != p.Y, "y must not be NaN")
	}

	// the two blobs are far apart in gamma space; the first component must keep them apart
	assert.Greater(t, math.Abs(points[0].X-points[3].X), 1e-6)
}

func TestProjectclustersNoData(t *testing.T) {
	model := twoblobmodel()
	_, err := projectclusters(model, ClusterResult{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestPcaproject(t *testing.T) {
	data := mat.NewDense(4, 3, []float64{
		1, 0, 0,
		0.9, 0.1, 0,
		0, 0, 1,
		0, 0.1, 0.9,
	})

	proj, err := pcaproject(data)
	require.NoError(t, err)

	r, c := proj.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 2, c)
}

func TestPcaprojectOneColumn(t *testing.T) {
	data := mat.NewDense(3, 1, []float64{1, 2, 3})

	proj, err := pcaproject(data)
	require.NoError(t, err)

	r, c := proj.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	// the padded second coordinate is always 0
	for i := 0; i < r; i++ {
		assert.Equal(t, 0.0, proj.At(i, 1))
	}
}

//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"

	"github.com/danaugrs/go-tsne/tsne"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

//
// 2-D PROJECTION FOR THE CLUSTER PLOT
//

// the projection is presentation only: the clustering was computed in the full k-dimensional
// topic-weight space and is not revisited here

// projectclusters - place every clustered document on the plane via PCA or t-SNE
func projectclusters(model TopicModel, cr ClusterResult) ([]Point2D, error) {
	const (
		FYI = "projecting %d documents to 2d via %s"
	)

	if len(cr.Kept) == 0 {
		return nil, ErrNoData
	}

	msg(fmt.Sprintf(FYI, len(cr.Kept), Config.Projection), MSGFYI)

	rows := len(cr.Kept)
	cols := model.K

	data := mat.NewDense(rows, cols, nil)
	for i, d := range cr.Kept {
		for t := 0; t < cols; t++ {
			data.Set(i, t, model.Gamma.At(d, t))
		}
	}

	var coords *mat.Dense
	var err error

	switch Config.Projection {
	case PROJECTIONTSNE:
		coords = tsneproject(data)
	default:
		coords, err = pcaproject(data)
		if err != nil {
			return nil, err
		}
	}

	points := make([]Point2D, rows)
	for i, d := range cr.Kept {
		points[i] = Point2D{
			X:       coords.At(i, 0),
			Y:       coords.At(i, 1),
			Title:   model.Titles[d],
			Cluster: cr.Assignments[i],
		}
	}

	return points, nil
}

// pcaproject - first two principal components of the gamma rows
func pcaproject(data *mat.Dense) (*mat.Dense, error) {
	const (
		FAIL = "principal component factorization failed"
	)

	rows, cols := data.Dims()

	var pc stat.PC
	if ok := pc.PrincipalComponents(data, nil); !ok {
		return nil, fmt.Errorf(FAIL)
	}

	dims := 2
	if cols < 2 {
		dims = cols
	}

	var vec mat.Dense
	pc.VectorsTo(&vec)

	var scores mat.Dense
	scores.Mul(data, vec.Slice(0, cols, 0, dims))

	// pad a degenerate 1-d result so callers always see an x and a y
	proj := mat.NewDense(rows, 2, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < dims; j++ {
			proj.Set(i, j, scores.At(i, j))
		}
	}

	return proj, nil
}

// tsneproject - t-Distributed Stochastic Neighbor Embedding; slower but much better at separating
// cluster blobs when k is large
func tsneproject(data *mat.Dense) *mat.Dense {
	const (
		VERBOSE = false
	)

	t := tsne.NewTSNE(2, TSNEPERPLEXITY, TSNELEARNRT, TSNEMAXITER, VERBOSE)
	t.EmbedData(data, nil)
	return t.Y
}

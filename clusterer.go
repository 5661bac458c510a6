//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

//
// K-MEANS OVER THE GAMMA ROWS
//

// clustergamma - Lloyd's algorithm in topic-weight space; the centroid seeding and every tie-break run
// off the supplied seed, so a fixed seed reproduces the same assignment
func clustergamma(model TopicModel, k int, seed uint64) (ClusterResult, error) {
	const (
		MSG1 = "%d documents had undefined topic weights and were dropped before clustering"
		MSG2 = "k-means converged after %d iterations"
	)

	rows, cols := model.Gamma.Dims()

	// rows with NaN entries cannot be clustered; they are the residue of earlier join mismatches
	var keep []int
	for d := 0; d < rows; d++ {
		usable := true
		for t := 0; t < cols; t++ {
			if math.IsNaN(model.Gamma.At(d, t)) {
				usable = false
				break
			}
		}
		if usable {
			keep = append(keep, d)
		}
	}

	dropped := rows - len(keep)
	if dropped > 0 {
		msg(fmt.Sprintf(MSG1, dropped), MSGWARN)
	}

	if len(keep) < k {
		return ClusterResult{}, ErrMissingGammaRow
	}

	data := make([][]float64, len(keep))
	for i, d := range keep {
		data[i] = make([]float64, cols)
		for t := 0; t < cols; t++ {
			data[i][t] = model.Gamma.At(d, t)
		}
	}

	rng := rand.New(rand.NewSource(seed))

	// seed the centroids from k distinct documents
	centroids := make([][]float64, k)
	for i, p := range rng.Perm(len(data))[0:k] {
		centroids[i] = append([]float64{}, data[p]...)
	}

	assign := make([]int, len(data))
	iterations := 0

	for it := 0; it < KMEANSMAXITER; it++ {
		iterations = it + 1
		changed := false

		// assignment step
		for i := range data {
			best := 0
			bestdist := math.Inf(1)
			for c := range centroids {
				d := euclidean(data[i], centroids[c])
				if d < bestdist {
					bestdist = d
					best = c
				}
			}
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}

		// update step
		counts := make([]int, k)
		next := make([][]float64, k)
		for c := 0; c < k; c++ {
			next[c] = make([]float64, cols)
		}
		for i := range data {
			counts[assign[i]] += 1
			for t := 0; t < cols; t++ {
				next[assign[i]][t] += data[i][t]
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				// an empty cluster restarts at the point farthest from its centroid
				next[c] = append([]float64{}, data[farthestpoint(data, centroids[c])]...)
				continue
			}
			for t := 0; t < cols; t++ {
				next[c][t] /= float64(counts[c])
			}
		}
		centroids = next

		if !changed && it > 0 {
			break
		}
	}

	msg(fmt.Sprintf(MSG2, iterations), MSGTMI)

	sizes := make([]int, k)
	assignments := make([]int, len(keep))
	for i := range data {
		assignments[i] = assign[i]
		sizes[assign[i]] += 1
	}

	cm := mat.NewDense(k, cols, nil)
	for c := 0; c < k; c++ {
		for t := 0; t < cols; t++ {
			cm.Set(c, t, centroids[c][t])
		}
	}

	return ClusterResult{
		K:           k,
		Assignments: assignments,
		Centroids:   cm,
		Sizes:       sizes,
		Dropped:     dropped,
		Kept:        keep,
	}, nil
}

func euclidean(a []float64, b []float64) float64 {
	sum := float64(0)
	for i := range a {
		sum += (a[i] - b[i]) * (a[i] - b[i])
	}
	return math.Sqrt(sum)
}

func farthestpoint(data [][]float64, from []float64) int {
	far := 0
	fardist := float64(-1)
	for i := range data {
		d := euclidean(data[i], from)
		if d > fardist {
			fardist = d
			far = i
		}
	}
	return far
}

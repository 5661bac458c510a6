//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"sort"
)

//
// GENRE AGGREGATION
//

// aggregatebygenre - mean gamma per (genre, topic); a pure aggregation: a document without a genre
// entry contributes nothing, and a genre with no surviving documents gets no row at all
func aggregatebygenre(model TopicModel, genres map[string]string) []GenreTopicAvg {
	const (
		MSG1 = "%d documents had no genre entry and were excluded from the genre aggregation"
	)

	sums := make(map[string][]float64)
	docs := make(map[string]int)
	missing := 0

	for d, title := range model.Titles {
		g, ok := genres[title]
		if !ok {
			missing += 1
			continue
		}
		if _, ok := sums[g]; !ok {
			sums[g] = make([]float64, model.K)
		}
		for t := 0; t < model.K; t++ {
			sums[g][t] += model.Gamma.At(d, t)
		}
		docs[g] += 1
	}

	if missing > 0 {
		msg(fmt.Sprintf(MSG1, missing), MSGWARN)
	}

	var out []GenreTopicAvg
	for g, ss := range sums {
		means := make([]float64, model.K)
		for t := 0; t < model.K; t++ {
			means[t] = ss[t] / float64(docs[g])
		}
		out = append(out, GenreTopicAvg{Genre: g, Means: means, Docs: docs[g]})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Genre < out[j].Genre })

	return out
}

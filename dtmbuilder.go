//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"

	"github.com/james-bowman/nlp"
	"gonum.org/v1/gonum/mat"
)

//
// THE DOCUMENT-TERM MATRIX
//

// buildtermmatrix - count-vectorise the cleaned corpus; rows are terms, columns are documents
func buildtermmatrix(titles []string, cleaned []string, empties int) (TermMatrix, error) {
	const (
		MSG1 = "term matrix built: %d terms x %d documents"
	)

	if len(cleaned) == 0 {
		return TermMatrix{}, ErrEmptyDocument
	}

	// the stop list was already applied by the normalizer; handing it to the vectoriser as well keeps
	// the vocabulary honest if a caller skips normalizecorpus()
	stops := StringMapKeysIntoSlice(getstopset())
	vectoriser := nlp.NewCountVectoriser(stops...)

	sparse, err := vectoriser.FitTransform(cleaned...)
	if err != nil {
		return TermMatrix{}, err
	}

	// the vectoriser hands back a map-backed sparse matrix whose nonzero iteration order varies
	// between runs; that reorders the fitter's float accumulation and breaks same-seed-same-model.
	// densify so every downstream pass walks the counts in a fixed order.
	counts := mat.DenseCopyOf(sparse)

	vocab := make([]string, len(vectoriser.Vocabulary))
	for k, v := range vectoriser.Vocabulary {
		vocab[v] = k
	}

	tm := TermMatrix{
		Counts:  counts,
		Vocab:   vocab,
		Titles:  titles,
		Cleaned: cleaned,
		Empties: empties,
	}

	msg(fmt.Sprintf(MSG1, tm.NumTerms(), tm.NumDocs()), MSGFYI)

	return tm, nil
}

//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

//
// misc generic functions
//

// Unique - return only the unique items from a slice
func Unique[T comparable](s []T) []T {
	inResult := make(map[T]bool)
	var result []T
	for _, str := range s {
		if _, ok := inResult[str]; !ok {
			inResult[str] = true
			result = append(result, str)
		}
	}
	return result
}

// SetSubtraction - returns [](set(aa) - set(bb))
func SetSubtraction[T comparable](aa []T, bb []T) []T {
	pruner := make(map[T]bool)
	for _, b := range bb {
		pruner[b] = true
	}

	remain := make(map[T]bool)
	for _, a := range aa {
		if _, y := pruner[a]; !y {
			remain[a] = true
		}
	}

	return maps.Keys(remain)
}

// Contains - is item X an element of slice A?
func Contains[T comparable](sl []T, seek T) bool {
	for _, v := range sl {
		if v == seek {
			return true
		}
	}
	return false
}

// Flatten - turn a slice of slices into a slice
func Flatten[T any](lists [][]T) []T {
	var res []T
	for _, list := range lists {
		res = append(res, list...)
	}
	return res
}

// ToSet - convert a slice to a set, i.e. []T -> map[T]bool
func ToSet[T comparable](sl []T) map[T]bool {
	m := make(map[T]bool, len(sl))
	for i := 0; i < len(sl); i++ {
		m[sl[i]] = true
	}
	return m
}

// StringMapKeysIntoSlice - get all the keys of a map; sorted so that callers iterate deterministically
func StringMapKeysIntoSlice[V any](mp map[string]V) []string {
	keys := maps.Keys(mp)
	slices.Sort(keys)
	return keys
}

// sortweightedterms - heaviest first; ties break by whatever order the sort leaves them in
func sortweightedterms(wts []WeightedTerm) {
	slices.SortStableFunc(wts, func(a, b WeightedTerm) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		default:
			return 0
		}
	})
}

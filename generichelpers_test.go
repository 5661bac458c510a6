//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnique(t *testing.T) {
	assert.ElementsMatch(t, []string{"a", "b", "c"}, Unique([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, Unique([]int{}))
}

func TestSetSubtraction(t *testing.T) {
	out := SetSubtraction([]string{"a", "b", "c"}, []string{"b"})
	assert.ElementsMatch(t, []string{"a", "c"}, out)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]int{1, 2, 3}, 2))
	assert.False(t, Contains([]int{1, 2, 3}, 9))
}

func TestFlatten(t *testing.T) {
	out := Flatten([][]int{{1, 2}, {3}, {}})
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestToSet(t *testing.T) {
	s := ToSet([]string{"x", "y", "x"})
	assert.Len(t, s, 2)
	assert.True(t, s["x"])
	assert.False(t, s["z"])
}

func TestStringMapKeysIntoSlice(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, StringMapKeysIntoSlice(m))
}

func TestSortweightedterms(t *testing.T) {
	wts := []WeightedTerm{
		{Term: "low", Weight: 0.1},
		{Term: "high", Weight: 0.9},
		{Term: "mid", Weight: 0.5},
	}
	sortweightedterms(wts)

	assert.Equal(t, "high", wts[0].Term)
	assert.Equal(t, "mid", wts[1].Term)
	assert.Equal(t, "low", wts[2].Term)
}

//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgvalue(t *testing.T) {
	args := []string{"-tp", "9", "-ks", "-od"}

	v, ok := argvalue(args, 0)
	assert.True(t, ok)
	assert.Equal(t, "9", v)

	// "-od" is the last argument; asking for its value must not walk off the slice
	v, ok = argvalue(args, 3)
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

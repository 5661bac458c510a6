//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColStyle(t *testing.T) {
	was := messenger.Cfg.BlackAndWhite
	defer func() { messenger.Cfg.BlackAndWhite = was }()

	if !messenger.Win {
		messenger.Cfg.BlackAndWhite = false
		assert.Equal(t, "\033[1m"+"banner"+"\033[0m", messenger.ColStyle("S1bannerS0"))
	}

	// black and white strips the tags instead of swapping in escape codes
	messenger.Cfg.BlackAndWhite = true
	assert.Equal(t, "banner", messenger.ColStyle("S1bannerS0"))
}

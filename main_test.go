//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"os"
	"runtime"
	"testing"
)

// the pipeline functions read the package-level Config; give them sane values without
// going through configatlaunch() and its config-file side effects

func TestMain(m *testing.M) {
	Config.LogLevel = MSGCRIT
	Config.Seed = DEFAULTSEED
	Config.TopicCount = DEFAULTTOPICCT
	Config.ClusterCount = DEFAULTCLUSTERCT
	Config.SweepLow = DEFAULTSWEEPLOW
	Config.SweepHigh = DEFAULTSWEEPHIGH
	Config.LDAIterations = 300
	Config.Projection = PROJECTIONPCA
	Config.WorkerCount = runtime.NumCPU()
	Config.OutDir = "."
	messenger.Cfg = Config

	os.Exit(m.Run())
}

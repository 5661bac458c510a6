//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/template"
)

var (
	Config CurrentConfiguration
)

type CurrentConfiguration struct {
	BlackAndWhite bool
	CSVFile       string
	CacheDB       string
	ClusterCount  int
	CustomStops   []string
	EchoLog       int // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	GenreCSVFile  string
	Gzip          bool
	HostIP        string
	HostPort      int
	LDAIterations int
	LogLevel      int
	NoCache       bool
	OutDir        string
	Profiling     bool
	Projection    string
	QuietStart    bool
	Seed          int
	SelfTest      bool
	SkipSweep     bool
	StopsFile     string
	SweepHigh     int
	SweepLow      int
	TopicCount    int
	WebUI         bool
	WorkerCount   int
}

// configatlaunch - read the configuration values from JSON and/or command line
func configatlaunch() {
	const (
		FAIL1 = "Could not parse '%s': using built-in default values"
		FAIL2 = "refusing to model with a sweep of [%d, %d]: the range is empty"
		FAIL3 = "the '%s' switch requires a value"
	)

	Config.BlackAndWhite = false
	Config.CSVFile = ""
	Config.CacheDB = CACHEDBNAME
	Config.ClusterCount = DEFAULTCLUSTERCT
	Config.CustomStops = []string{}
	Config.EchoLog = DEFAULTECHOLOGLEVEL
	Config.GenreCSVFile = ""
	Config.Gzip = false
	Config.HostIP = SERVEDFROMHOST
	Config.HostPort = SERVEDFROMPORT
	Config.LDAIterations = LDAITERATIONS
	Config.LogLevel = DEFAULTGOLOGLEVEL
	Config.NoCache = false
	Config.OutDir = "."
	Config.Projection = DEFAULTPROJECTION
	Config.QuietStart = false
	Config.Seed = DEFAULTSEED
	Config.SelfTest = false
	Config.SkipSweep = false
	Config.StopsFile = ""
	Config.SweepHigh = DEFAULTSWEEPHIGH
	Config.SweepLow = DEFAULTSWEEPLOW
	Config.TopicCount = DEFAULTTOPICCT
	Config.WebUI = false
	Config.WorkerCount = runtime.NumCPU()

	cf := fmt.Sprintf("%s/%s", CONFIGLOCATION, CONFIGNAME)

	args := os.Args[1:]

	// every value-taking switch reads the argument after it; a trailing bare switch should not panic
	nextarg := func(i int) string {
		v, ok := argvalue(args, i)
		if !ok {
			msg(fmt.Sprintf(FAIL3, args[i]), MSGMAND)
			os.Exit(1)
		}
		return v
	}

	// a "-cf" switch has to win over the default location; scan for it before decoding anything
	for i, a := range args {
		if a == "-cf" {
			cf = nextarg(i)
		}
	}

	cfc, e := os.Open(cf)
	if e != nil {
		writedefaultconfig(cf)
	} else {
		decoderc := json.NewDecoder(cfc)
		confc := Config
		errc := decoderc.Decode(&confc)
		_ = cfc.Close()
		if errc != nil {
			msg(fmt.Sprintf(FAIL1, cf), MSGCRIT)
			fmt.Printf(MINCONFIG)
		} else {
			Config = confc
		}
	}

	for i, a := range args {
		switch a {
		case "-2d":
			Config.Projection = nextarg(i)
		case "-bw":
			Config.BlackAndWhite = true
		case "-cf":
			// handled above
		case "-cl":
			cl, err := strconv.Atoi(nextarg(i))
			chke(err)
			Config.ClusterCount = cl
		case "-cs":
			Config.CustomStops = strings.Split(nextarg(i), ",")
		case "-el":
			ll, err := strconv.Atoi(nextarg(i))
			chke(err)
			Config.EchoLog = ll
		case "-gc":
			Config.GenreCSVFile = nextarg(i)
		case "-gl":
			ll, err := strconv.Atoi(nextarg(i))
			chke(err)
			Config.LogLevel = ll
		case "-gz":
			Config.Gzip = true
		case "-h":
			printversion()
			printhelp()
			os.Exit(1)
		case "-kh":
			kh, err := strconv.Atoi(nextarg(i))
			chke(err)
			Config.SweepHigh = kh
		case "-kl":
			kl, err := strconv.Atoi(nextarg(i))
			chke(err)
			Config.SweepLow = kl
		case "-ks":
			Config.SkipSweep = true
		case "-nc":
			Config.NoCache = true
		case "-od":
			Config.OutDir = nextarg(i)
		case "-pp":
			Config.Profiling = true
		case "-q":
			Config.QuietStart = true
		case "-sa":
			Config.HostIP = nextarg(i)
		case "-sd":
			sd, err := strconv.Atoi(nextarg(i))
			chke(err)
			Config.Seed = sd
		case "-sp":
			p, err := strconv.Atoi(nextarg(i))
			chke(err)
			Config.HostPort = p
		case "-st":
			Config.SelfTest = true
		case "-sw":
			Config.StopsFile = nextarg(i)
		case "-tp":
			tp, err := strconv.Atoi(nextarg(i))
			chke(err)
			Config.TopicCount = tp
		case "-v":
			fmt.Println(VERSION)
			os.Exit(1)
		case "-wc":
			wc, err := strconv.Atoi(nextarg(i))
			chke(err)
			Config.WorkerCount = wc
		case "-ws":
			Config.WebUI = true
		default:
			// do nothing
		}
	}

	if Config.SweepLow < 1 {
		Config.SweepLow = 1
	}

	if Config.SweepHigh < Config.SweepLow {
		msg(fmt.Sprintf(FAIL2, Config.SweepLow, Config.SweepHigh), MSGCRIT)
		os.Exit(1)
	}

	messenger.Cfg = Config
}

// argvalue - the value that follows the switch at position i, if there is one
func argvalue(args []string, i int) (string, bool) {
	if i+1 >= len(args) {
		return "", false
	}
	return args[i+1], true
}

// writedefaultconfig - first launch: put a conf file where the next launch will find it
func writedefaultconfig(cf string) {
	const (
		FYI = "Writing a default configuration to 'C3%sC1'C0; edit it to point at your corpus"
	)
	content, err := json.MarshalIndent(Config, "", JSONINDENT)
	chke(err)
	err = os.WriteFile(cf, content, WRITEPERMS)
	chke(err)
	msg(coloroutput(fmt.Sprintf(FYI, cf)), MSGWARN)
}

func printversion() {
	v := fmt.Sprintf("%s (v.%s)", MYNAME, VERSION)
	msg(v, MSGMAND)
}

func printhelp() {
	m := map[string]interface{}{
		"clusters":   Config.ClusterCount,
		"conffile":   CONFIGNAME,
		"cpus":       runtime.NumCPU(),
		"ctmll":      Config.LogLevel,
		"echoll":     Config.EchoLog,
		"host":       Config.HostIP,
		"outdir":     Config.OutDir,
		"port":       Config.HostPort,
		"projection": Config.Projection,
		"projurl":    PROJURL,
		"seed":       Config.Seed,
		"sweephigh":  Config.SweepHigh,
		"sweeplow":   Config.SweepLow,
		"topics":     Config.TopicCount,
		"workers":    Config.WorkerCount,
	}

	t, e := template.New("help").Parse(HELPTEXTTEMPLATE)
	chke(e)

	var sb strings.Builder
	e = t.Execute(&sb, m)
	chke(e)

	fmt.Println(styleoutput(coloroutput(sb.String())))
}

//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

const (
	MYNAME         = "Cine Topic Modeler"
	SHORTNAME      = "CTM"
	VERSION        = "0.1.2"
	SERVEDFROMHOST = ""
	SERVEDFROMPORT = 8000

	CONFIGNAME     = "ctm-conf.json"
	CONFIGLOCATION = "."
	CACHEDBNAME    = "ctm-cache.db"
	REPORTNAME     = "ctm-report.html"
	JSONINDENT     = "  "
	WRITEPERMS     = 0644

	// the modeling defaults; all of them can be overridden via the config file and/or the command line
	DEFAULTSEED       = 1234
	DEFAULTTOPICCT    = 7
	DEFAULTCLUSTERCT  = 5
	DEFAULTSWEEPLOW   = 2
	DEFAULTSWEEPHIGH  = 20
	LDAITERATIONS     = 1000
	LDABURNINPASSES   = 1
	LDAXFORMPASSES    = 500
	LDACHGEVALFRQ     = 30
	LDAPERPEVALFRQ    = 30
	LDAPERPTOL        = 1e-2
	KMEANSMAXITER     = 100
	TOPTERMSPERBAR    = 5
	TOPTERMSPERCLOUD  = 20
	CLOUDMINFONTSIZE  = 14
	CLOUDMAXFONTSIZE  = 80
	TSNEPERPLEXITY    = 150
	TSNELEARNRT       = 100
	TSNEMAXITER       = 150
	PROJECTIONPCA     = "pca"
	PROJECTIONTSNE    = "tsne"
	DEFAULTPROJECTION = PROJECTIONPCA

	CHRTWIDTH  = "1200px"
	CHRTHEIGHT = "600px"

	// the input contract: a UTF-8 comma-delimited file with a header naming at least these columns
	CSVCOLTITLE = "movie_name"
	CSVCOLPLOT  = "plot"
	CSVCOLGENRE = "genre"

	TIMEOUTRD = 15
	TIMEOUTWR = 120

	MAXECHOREQPERSECONDPERIP = 60

	DEFAULTECHOLOGLEVEL = 0
	DEFAULTGOLOGLEVEL   = 2

	MINCONFIG = `
{"CSVFile": "movie_plots.csv"}
`

	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2023-24"
	PROJAUTH = "E. Gunderson"
	PROJMAIL = "Department of Classics, 125 Queen’s Park, Toronto, ON  M5S 2C7 Canada"
	PROJURL  = "https://github.com/e-gun/CineTopicModeler"

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-2dC0 C2{string}C0 projection used for the cluster plot: C3pcaC0 or C3tsneC0 [C6currentC0: C3{{.projection}}C0]
   C1-bwC0          disable color output in the console
   C1-cfC0 C2{string}C0 read the configuration from a file other than "C3{{.conffile}}C0"
   C1-clC0 C2{num}C0    number of k-means clusters [C6currentC0: C3{{.clusters}}C0]
   C1-csC0 C2{string}C0 comma-separated custom stop words to drop on top of the standard list
   C1-elC0 C2{num}C0    set echo server log level (C10-3C0) [C6currentC0: C3{{.echoll}}C0]
   C1-gcC0 C2{string}C0 genre lookup CSV; when absent genres come from the plot CSV itself
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.ctmll}}C0]
   C1-gzC0          enable gzip compression of the server's output
   C1-hC0           print this help information
   C1-khC0 C2{num}C0    top of the candidate topic-count sweep [C6currentC0: C3{{.sweephigh}}C0]
   C1-klC0 C2{num}C0    bottom of the candidate topic-count sweep [C6currentC0: C3{{.sweeplow}}C0]
   C1-ksC0          skip the topic-count sweep and its scree plot
   C1-ncC0          bypass the fitted-model cache and refit everything
   C1-odC0 C2{string}C0 output directory for the report [C6currentC0: C3{{.outdir}}C0]
   C1-ppC0          enable CPU profiling run
   C1-qC0           quiet startup: suppress copyright notice
   C1-saC0 C2{string}C0 server IP address [C6currentC0: C3{{.host}}C0]
   C1-sdC0 C2{num}C0    random seed for LDA and k-means [C6currentC0: C3{{.seed}}C0]
   C1-spC0 C2{num}C0    server port [C6currentC0: C3{{.port}}C0]
   C1-stC0          run the self-test suite and exit
   C1-swC0 C2{string}C0 stop-list JSON file; a default copy is written there if absent
   C1-tpC0 C2{num}C0    number of topics to model [C6currentC0: C3{{.topics}}C0]
   C1-vC0           print version info and exit
   C1-wcC0 C2{int}C0    number of workers for the sweep [C6currentC0: C3{{.workers}}C0][C1cpu_countC0 is C3{{.cpus}}C0]
   C1-wsC0          serve the report and the JSON results after the batch run

     S1NB:S0 a properly formatted version of "C3{{.conffile}}C0" configures everything for you;
         a default copy is written on first launch. See also
             C3{{.projurl}}C0
`
)

//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

//
// THE SERVER
//

// StartEchoServer - start serving; this blocks and does not return while the program remains alive
func StartEchoServer() {
	// https://echo.labstack.com/guide/

	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "i: ${remote_ip}\t r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
	)

	//
	// SETUP
	//

	e := echo.New()

	e.Server.ReadTimeout = TIMEOUTRD * time.Second
	e.Server.WriteTimeout = TIMEOUTWR * time.Second

	if Config.EchoLog == 3 {
		e.Use(middleware.Logger())
	} else if Config.EchoLog == 2 {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT}))
	} else if Config.EchoLog == 1 {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	}

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(MAXECHOREQPERSECONDPERIP)))

	e.Use(middleware.Recover())

	if Config.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	}

	//
	// ROUTES
	//

	// [a] the report itself

	e.GET("/", RtReportPage)

	// [b] the numbers behind the pictures ("rt" = "route")

	e.GET("/json/scree", RtJSONScree)       // the sweep scores per candidate k
	e.GET("/json/topics", RtJSONTopics)     // top terms per topic
	e.GET("/json/gamma", RtJSONGamma)       // per-document topic weights
	e.GET("/json/genres", RtJSONGenres)     // mean topic weight per genre
	e.GET("/json/clusters", RtJSONClusters) // assignments + 2d coordinates

	// [c] standalone charts

	e.GET("/chart/wordcloud/:topic", RtChartWordcloud) // "u: /chart/wordcloud/3"

	//
	// LAUNCH
	//

	e.HideBanner = true
	e.Logger.Fatal(e.Start(fmt.Sprintf("%s:%d", Config.HostIP, Config.HostPort)))
}

// RtReportPage - serve the report written at the end of the batch run
func RtReportPage(c echo.Context) error {
	return c.File(LatestReport.HTMLPath)
}

// RtJSONScree - the topic-count sweep scores
func RtJSONScree(c echo.Context) error {
	return c.JSONPretty(http.StatusOK, LatestReport.Scores, JSONINDENT)
}

// RtJSONTopics - the top terms per topic
func RtJSONTopics(c echo.Context) error {
	type topicsummary struct {
		Topic int            `json:"topic"`
		Terms []WeightedTerm `json:"terms"`
	}

	tm := LatestReport.Model
	summaries := make([]topicsummary, tm.K)
	for t := 0; t < tm.K; t++ {
		summaries[t] = topicsummary{Topic: t, Terms: tm.TopTerms(t, TOPTERMSPERCLOUD)}
	}

	return c.JSONPretty(http.StatusOK, summaries, JSONINDENT)
}

// RtJSONGamma - the per-document topic weights
func RtJSONGamma(c echo.Context) error {
	type docweights struct {
		Title    string    `json:"title"`
		Dominant int       `json:"dominant"`
		Weights  []float64 `json:"weights"`
	}

	tm := LatestReport.Model
	docs := make([]docweights, len(tm.Titles))
	for d := 0; d < len(tm.Titles); d++ {
		ww := make([]float64, tm.K)
		for t := 0; t < tm.K; t++ {
			ww[t] = tm.Gamma.At(d, t)
		}
		docs[d] = docweights{Title: tm.Titles[d], Dominant: tm.DominantTopic(d), Weights: ww}
	}

	return c.JSONPretty(http.StatusOK, docs, JSONINDENT)
}

// RtJSONGenres - the mean topic weight per genre
func RtJSONGenres(c echo.Context) error {
	return c.JSONPretty(http.StatusOK, LatestReport.GenreAvgs, JSONINDENT)
}

// RtJSONClusters - the k-means assignments plus the 2d projection
func RtJSONClusters(c echo.Context) error {
	type clusterout struct {
		K       int       `json:"k"`
		Sizes   []int     `json:"sizes"`
		Dropped int       `json:"dropped"`
		Points  []Point2D `json:"points"`
	}

	cr := LatestReport.Clusters
	out := clusterout{K: cr.K, Sizes: cr.Sizes, Dropped: cr.Dropped, Points: LatestReport.Points}

	return c.JSONPretty(http.StatusOK, out, JSONINDENT)
}

// RtChartWordcloud - a single topic's cloud as a standalone html page
func RtChartWordcloud(c echo.Context) error {
	const (
		HEAD = `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">
<script src="https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"></script>
<script src="https://go-echarts.github.io/go-echarts-assets/assets/echarts-wordcloud.min.js"></script>
</head><body>`
		FOOT = `</body></html>`
		TT   = "Topic %02d word cloud"
		ST   = "top %d terms"
		SH   = "circle"
	)

	tm := LatestReport.Model

	t, err := strconv.Atoi(c.Param("topic"))
	if err != nil || t < 0 || t >= tm.K {
		return c.String(http.StatusNotFound, fmt.Sprintf("no topic '%s'", c.Param("topic")))
	}

	wc := onewordcloud(tm, t, fmt.Sprintf(TT, t+1), fmt.Sprintf(ST, TOPTERMSPERCLOUD), SH)
	block := buildchartblock(wc)

	return c.HTML(http.StatusOK, HEAD+block+FOOT)
}

//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//
// THE REPORT
//

// ReportData - everything a finished run knows; the writer and the server both feed from this
type ReportData struct {
	Corpus    PlotCorpus
	Matrix    TermMatrix
	Scores    []KScore
	Model     TopicModel
	GenreAvgs []GenreTopicAvg
	Clusters  ClusterResult
	Points    []Point2D
	HTMLPath  string
}

// LatestReport is filled by the pipeline and read by the echo routes
var LatestReport ReportData

var rpw = NewFncMessageMaker("reportwriter.go")

const (
	REPORTTOP = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>%s</title>
    <script src="https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"></script>
    <script src="https://go-echarts.github.io/go-echarts-assets/assets/echarts-wordcloud.min.js"></script>
    <style>
        body { font-family: sans-serif; margin: 2em; }
        h1 { font-size: 1.4em; }
        h2 { font-size: 1.1em; border-bottom: 1px solid #999; padding-top: 1em; }
        table { border-collapse: collapse; margin: 1em 0; }
        td, th { border: 1px solid #999; padding: .3em .8em; text-align: left; }
        th { background-color: #eee; }
        .runinfo { color: #555; font-size: .85em; }
        .best { font-weight: bold; }
        .box { justify-content: center; display: flex; flex-wrap: wrap; }
    </style>
</head>
<body>
<h1>%s</h1>
<p class="runinfo">run %s &middot; source "%s" (md5 %s) &middot; %d documents (%d rows dropped) &middot; %s v%s &middot; %s</p>
`

	REPORTBOTTOM = `</body>
</html>
`

	SECTIONHEAD = `<h2>%s</h2>
`

	TBLTOP = `<table>
<tr>%s</tr>
`
	TBLHEADCELL = `<th>%s</th>`
	TBLCELL     = `<td>%s</td>`
	TBLBESTCELL = `<td class="best">%s</td>`
	TBLROW      = `<tr>%s</tr>
`
	TBLEND = `</table>
`
)

// writereport - assemble the single-page HTML report and save it
func writereport(rd ReportData) string {
	const (
		MSG1     = "wrote report to '%s'"
		SWEEPSEC = "Candidate topic counts"
		TOPICSEC = "Topics"
		GENRESEC = "Genres"
		CLSTRSEC = "Clusters"
		CLOUDSEC = "Word clouds"
	)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(REPORTTOP, MYNAME, MYNAME, rd.Corpus.RunID, filepath.Base(rd.Corpus.SrcFile),
		rd.Corpus.Checksum, len(rd.Model.Titles), rd.Corpus.Dropped, SHORTNAME, VERSION,
		time.Now().Format(time.RFC1123)))

	if len(rd.Scores) != 0 {
		sb.WriteString(fmt.Sprintf(SECTIONHEAD, SWEEPSEC))
		sb.WriteString(sweepscoretable(rd.Scores))
		sb.WriteString(buildchartblock(screelinecharts(rd.Scores)...))
	}

	sb.WriteString(fmt.Sprintf(SECTIONHEAD, TOPICSEC))
	sb.WriteString(topicsummarytable(rd.Model))
	sb.WriteString(buildchartblock(toptermbarcharts(rd.Model)...))

	if len(rd.GenreAvgs) != 0 {
		sb.WriteString(fmt.Sprintf(SECTIONHEAD, GENRESEC))
		sb.WriteString(buildchartblock(genrebarchart(rd.GenreAvgs, rd.Model.K)))
	}

	sb.WriteString(fmt.Sprintf(SECTIONHEAD, CLSTRSEC))
	sb.WriteString(clustersummarytable(rd.Clusters, rd.Model))
	sb.WriteString(buildchartblock(clusterscatterchart(rd.Points, rd.Clusters.K)))

	sb.WriteString(fmt.Sprintf(SECTIONHEAD, CLOUDSEC))
	sb.WriteString(buildchartblock(topicwordclouds(rd.Model)...))

	sb.WriteString(REPORTBOTTOM)

	p := filepath.Join(Config.OutDir, REPORTNAME)
	err := os.WriteFile(p, []byte(sb.String()), WRITEPERMS)
	rpw.EC(err)

	msg(fmt.Sprintf(MSG1, p), MSGCRIT)

	return p
}

// sweepscoretable - the raw metric values per candidate k; each metric's winner is bolded
func sweepscoretable(scores []KScore) string {
	headings := []string{"k", "Perplexity (min)", "CaoJuan2009 (min)", "Deveaud2014 (max)", "Arun2010 (min)"}

	best := bestperscreemetric(scores)

	var hh strings.Builder
	for _, h := range headings {
		hh.WriteString(fmt.Sprintf(TBLHEADCELL, h))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(TBLTOP, hh.String()))

	cell := func(k int, winner int, v float64) string {
		s := fmt.Sprintf("%.4f", v)
		if k == winner {
			return fmt.Sprintf(TBLBESTCELL, s)
		}
		return fmt.Sprintf(TBLCELL, s)
	}

	for _, s := range scores {
		var rr strings.Builder
		rr.WriteString(fmt.Sprintf(TBLCELL, fmt.Sprintf("%d", s.K)))
		rr.WriteString(cell(s.K, best["perplexity"], s.Perplexity))
		rr.WriteString(cell(s.K, best["caojuan"], s.CaoJuan))
		rr.WriteString(cell(s.K, best["deveaud"], s.Deveaud))
		rr.WriteString(cell(s.K, best["arun"], s.Arun))
		sb.WriteString(fmt.Sprintf(TBLROW, rr.String()))
	}
	sb.WriteString(TBLEND)

	return sb.String()
}

// bestperscreemetric - which candidate k each metric prefers
func bestperscreemetric(scores []KScore) map[string]int {
	best := make(map[string]int)
	if len(scores) == 0 {
		return best
	}

	argbest := func(fn func(KScore) float64, max bool) int {
		win := scores[0].K
		winv := fn(scores[0])
		for _, s := range scores[1:] {
			v := fn(s)
			if (max && v > winv) || (!max && v < winv) {
				win = s.K
				winv = v
			}
		}
		return win
	}

	best["perplexity"] = argbest(func(s KScore) float64 { return s.Perplexity }, false)
	best["caojuan"] = argbest(func(s KScore) float64 { return s.CaoJuan }, false)
	best["deveaud"] = argbest(func(s KScore) float64 { return s.Deveaud }, true)
	best["arun"] = argbest(func(s KScore) float64 { return s.Arun }, false)

	return best
}

// topicsummarytable - per topic: the top terms, the documents it dominates, its average weight
func topicsummarytable(tm TopicModel) string {
	headings := []string{"topic", "top terms", "dominant in", "mean weight"}

	var hh strings.Builder
	for _, h := range headings {
		hh.WriteString(fmt.Sprintf(TBLHEADCELL, h))
	}

	dominated := make([]int, tm.K)
	for d := 0; d < len(tm.Titles); d++ {
		w := tm.DominantTopic(d)
		if w >= 0 {
			dominated[w]++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(TBLTOP, hh.String()))

	for t := 0; t < tm.K; t++ {
		wts := tm.TopTerms(t, TOPTERMSPERBAR)
		terms := make([]string, len(wts))
		for i, wt := range wts {
			terms[i] = wt.Term
		}

		mean := float64(0)
		for d := 0; d < len(tm.Titles); d++ {
			mean += tm.Gamma.At(d, t)
		}
		if len(tm.Titles) != 0 {
			mean = mean / float64(len(tm.Titles))
		}

		var rr strings.Builder
		rr.WriteString(fmt.Sprintf(TBLCELL, fmt.Sprintf("%02d", t+1)))
		rr.WriteString(fmt.Sprintf(TBLCELL, strings.Join(terms, ", ")))
		rr.WriteString(fmt.Sprintf(TBLCELL, fmt.Sprintf("%d docs", dominated[t])))
		rr.WriteString(fmt.Sprintf(TBLCELL, fmt.Sprintf("%.4f", mean)))
		sb.WriteString(fmt.Sprintf(TBLROW, rr.String()))
	}
	sb.WriteString(TBLEND)

	return sb.String()
}

// clustersummarytable - per cluster: size and a few sample titles
func clustersummarytable(cr ClusterResult, tm TopicModel) string {
	const (
		SAMPLES = 5
	)

	headings := []string{"cluster", "size", "sample titles"}

	var hh strings.Builder
	for _, h := range headings {
		hh.WriteString(fmt.Sprintf(TBLHEADCELL, h))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(TBLTOP, hh.String()))

	for c := 0; c < cr.K; c++ {
		var samples []string
		for i, a := range cr.Assignments {
			if a != c || len(samples) >= SAMPLES {
				continue
			}
			samples = append(samples, tm.Titles[cr.Kept[i]])
		}

		var rr strings.Builder
		rr.WriteString(fmt.Sprintf(TBLCELL, fmt.Sprintf("%02d", c+1)))
		rr.WriteString(fmt.Sprintf(TBLCELL, fmt.Sprintf("%d", cr.Sizes[c])))
		rr.WriteString(fmt.Sprintf(TBLCELL, strings.Join(samples, "; ")))
		sb.WriteString(fmt.Sprintf(TBLROW, rr.String()))
	}
	sb.WriteString(TBLEND)

	return sb.String()
}

// sweepconsolereport - the scree scores for people who live in the terminal
func sweepconsolereport(scores []KScore) {
	const (
		HEAD = "  k   perplexity   caojuan    deveaud    arun"
		ROW  = "%3d   %10.3f   %8.5f   %8.5f   %8.5f"
		MARK = "   <-"
	)

	if len(scores) == 0 {
		return
	}

	best := bestperscreemetric(scores)
	marked := ToSet([]int{best["perplexity"], best["caojuan"], best["deveaud"], best["arun"]})

	msg(HEAD, MSGCRIT)
	for _, s := range scores {
		r := fmt.Sprintf(ROW, s.K, clampforprint(s.Perplexity), s.CaoJuan, s.Deveaud, s.Arun)
		if marked[s.K] {
			r += MARK
		}
		msg(r, MSGCRIT)
	}
}

// clampforprint - perplexity can blow up on degenerate corpora and wreck the columns
func clampforprint(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return -1
	}
	return v
}

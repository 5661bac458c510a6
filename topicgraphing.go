//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"math"
	"regexp"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

//
// GRAPHING
//

// go-echarts is "too clever" and opaque about how to not do things its way
// we override their page.Render() to yield html+js (see the ModX and CustomX code below)
// the blocks get stitched together by writereport() or served singly by the echo routes

// buildchartblock - render one or more charts into an embeddable html+js block
func buildchartblock(cc ...components.Charter) string {
	// [a] we are building a page by hand
	p := components.NewPage()
	p.Renderer = NewCustomPageRender(p, p.Validate)

	// [b] add assets to the page; Validate() each chart too, since that is what moves the
	// SetXAxis values into XAxisList before rendering
	for _, c := range cc {
		c.Validate()
		assets := c.GetAssets()
		for _, v := range assets.JSAssets.Values {
			p.JSAssets.Add(v)
		}
		for _, v := range assets.CSSAssets.Values {
			p.CSSAssets.Add(v)
		}
	}

	// [c] add the charts to the page
	p.Charts = append(p.Charts, cc...)
	p.Validate()

	// [d] render and get the html+js
	var buf bytes.Buffer
	err := p.Render(&buf)
	chke(err)

	return buf.String()
}

// chartinit - every chart gets the same frame and toolbox
func chartinit(title string, subtitle string) []charts.GlobalOpts {
	const (
		FONTSTYLE = "normal"
		LEFTALIGN = "20"
		SAVETYPE  = "png"
		SAVESTR   = "Save to file..."
		TEXTCOLOR = "" // "black"
	)

	tst := opts.TextStyle{
		Color:     TEXTCOLOR,
		FontStyle: FONTSTYLE,
		FontSize:  16,
		Padding:   "15",
	}

	sst := opts.TextStyle{
		Color:     TEXTCOLOR,
		FontStyle: FONTSTYLE,
		FontSize:  10,
	}

	tit := opts.Title{
		Title:         title,
		TitleStyle:    &tst,
		Subtitle:      subtitle,
		SubtitleStyle: &sst,
		Left:          LEFTALIGN,
	}

	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE,
		Name:  title,
		Title: SAVESTR, // get chinese if ""
	}

	tbo := opts.Toolbox{
		Show:    true,
		Orient:  "vertical",
		Left:    LEFTALIGN,
		Feature: &opts.ToolBoxFeature{SaveAsImage: &tbs},
	}

	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{Width: CHRTWIDTH, Height: CHRTHEIGHT, Theme: "white"}),
		charts.WithTitleOpts(tit),
		charts.WithToolboxOpts(tbo),
		charts.WithLegendOpts(opts.Legend{Show: true, Right: LEFTALIGN}),
	}
}

// screelinecharts - two line charts: the metrics you minimize and the metric you maximize
func screelinecharts(scores []KScore) []components.Charter {
	const (
		T1 = "Candidate topic counts (minimize)"
		T2 = "Candidate topic counts (maximize)"
		ST = "metrics rescaled to [0, 1]"
		XN = "topics"
	)

	if len(scores) == 0 {
		return nil
	}

	xx := make([]string, len(scores))
	for i, s := range scores {
		xx[i] = fmt.Sprintf("%d", s.K)
	}

	pull := func(fn func(KScore) float64) []opts.LineData {
		raw := make([]float64, len(scores))
		for i, s := range scores {
			raw[i] = fn(s)
		}
		rescaled := rescaleunit(raw)
		ld := make([]opts.LineData, len(rescaled))
		for i, v := range rescaled {
			ld[i] = opts.LineData{Value: round4(v)}
		}
		return ld
	}

	lmin := charts.NewLine()
	lmin.SetGlobalOptions(chartinit(T1, ST)...)
	lmin.SetXAxis(xx).
		AddSeries("Perplexity", pull(func(s KScore) float64 { return s.Perplexity })).
		AddSeries("CaoJuan2009", pull(func(s KScore) float64 { return s.CaoJuan })).
		AddSeries("Arun2010", pull(func(s KScore) float64 { return s.Arun })).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: false}))
	lmin.XAxisList[0].Name = XN

	lmax := charts.NewLine()
	lmax.SetGlobalOptions(chartinit(T2, ST)...)
	lmax.SetXAxis(xx).
		AddSeries("Deveaud2014", pull(func(s KScore) float64 { return s.Deveaud })).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: false}))
	lmax.XAxisList[0].Name = XN

	return []components.Charter{lmin, lmax}
}

// toptermbarcharts - one horizontal bar chart per topic showing its weightiest terms
func toptermbarcharts(tm TopicModel) []components.Charter {
	const (
		TT = "Topic %02d"
		ST = "top %d terms by weight"
	)

	var cc []components.Charter
	for t := 0; t < tm.K; t++ {
		wts := tm.TopTerms(t, TOPTERMSPERBAR)

		// echarts draws category axes bottom-up; reverse so the weightiest term sits on top
		terms := make([]string, len(wts))
		bars := make([]opts.BarData, len(wts))
		for i, wt := range wts {
			j := len(wts) - 1 - i
			terms[j] = wt.Term
			bars[j] = opts.BarData{Value: round4(wt.Weight)}
		}

		bar := charts.NewBar()
		bar.SetGlobalOptions(chartinit(fmt.Sprintf(TT, t+1), fmt.Sprintf(ST, TOPTERMSPERBAR))...)
		bar.SetXAxis(terms).
			AddSeries("weight", bars).
			SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: true, Position: "right"}))
		bar.XYReversal()
		cc = append(cc, bar)
	}

	return cc
}

// genrebarchart - grouped bars: mean topic weight per genre
func genrebarchart(avgs []GenreTopicAvg, k int) components.Charter {
	const (
		TT = "Mean topic weight by genre"
		ST = "averaged over each genre's documents"
		SN = "Topic %02d"
	)

	genres := make([]string, len(avgs))
	for i, a := range avgs {
		genres[i] = fmt.Sprintf("%s (%d)", a.Genre, a.Docs)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(chartinit(TT, ST)...)
	bar.SetXAxis(genres)

	for t := 0; t < k; t++ {
		bars := make([]opts.BarData, len(avgs))
		for i, a := range avgs {
			bars[i] = opts.BarData{Value: round4(a.Means[t])}
		}
		bar.AddSeries(fmt.Sprintf(SN, t+1), bars)
	}
	bar.SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: false}))

	return bar
}

// clusterscatterchart - the documents on the plane, one series per cluster
func clusterscatterchart(points []Point2D, k int) components.Charter {
	const (
		TT     = "Document clusters"
		ST     = "%s projection of per-document topic weights"
		SN     = "Cluster %02d"
		SYMSZ  = 8
		TIPFMT = "{b}"
	)

	sc := charts.NewScatter()
	sc.SetGlobalOptions(chartinit(TT, fmt.Sprintf(ST, Config.Projection))...)
	sc.SetGlobalOptions(charts.WithTooltipOpts(opts.Tooltip{Show: true, Formatter: TIPFMT}))

	// the scatter wants a numeric x axis, not a category axis
	sc.XAxisList[0].Type = "value"
	sc.YAxisList[0].Type = "value"

	for c := 0; c < k; c++ {
		var data []opts.ScatterData
		for _, p := range points {
			if p.Cluster != c {
				continue
			}
			data = append(data, opts.ScatterData{
				Name:       p.Title,
				Value:      []float64{round4(p.X), round4(p.Y)},
				SymbolSize: SYMSZ,
			})
		}
		sc.AddSeries(fmt.Sprintf(SN, c+1), data)
	}

	return sc
}

// topicwordclouds - one cloud per topic; font size tracks term weight
func topicwordclouds(tm TopicModel) []components.Charter {
	const (
		TT = "Topic %02d word cloud"
		ST = "top %d terms"
		SH = "circle"
	)

	var cc []components.Charter
	for t := 0; t < tm.K; t++ {
		cc = append(cc, onewordcloud(tm, t, fmt.Sprintf(TT, t+1), fmt.Sprintf(ST, TOPTERMSPERCLOUD), SH))
	}
	return cc
}

func onewordcloud(tm TopicModel, topic int, title string, subtitle string, shape string) *charts.WordCloud {
	wts := tm.TopTerms(topic, TOPTERMSPERCLOUD)

	data := make([]opts.WordCloudData, len(wts))
	for i, wt := range wts {
		data[i] = opts.WordCloudData{Name: wt.Term, Value: round4(wt.Weight)}
	}

	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(chartinit(title, subtitle)...)
	wc.AddSeries("terms", data,
		charts.WithWorldCloudChartOpts(
			opts.WordCloudChart{
				SizeRange: []float32{CLOUDMINFONTSIZE, CLOUDMAXFONTSIZE},
				Shape:     shape,
			},
		),
	)
	return wc
}

// rescaleunit - map a series onto [0, 1] so differently-scaled metrics share one y axis
func rescaleunit(vv []float64) []float64 {
	if len(vv) == 0 {
		return vv
	}

	lo := vv[0]
	hi := vv[0]
	for _, v := range vv {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	out := make([]float64, len(vv))
	if hi-lo < 1e-15 {
		return out
	}
	for i, v := range vv {
		out[i] = (v - lo) / (hi - lo)
	}
	return out
}

func round4(val float64) float64 {
	const (
		PRECISON = 4
	)
	ratio := math.Pow(10, float64(PRECISON))
	return math.Round(val*ratio) / ratio
}

//
// OVERRIDE GO-ECHARTS [original code at https://github.com/go-echarts/go-echarts]
//

// ModRenderer etc modified from https://github.com/go-echarts/go-echarts/render/engine.go
type ModRenderer interface {
	Render(w io.Writer) error
}

type CustomPageRender struct {
	c      interface{}
	before []func()
}

// NewCustomPageRender returns a render implementation for Page.
func NewCustomPageRender(c interface{}, before ...func()) ModRenderer {
	return &CustomPageRender{c: c, before: before}
}

// Render renders the page into the given io.Writer.
func (r *CustomPageRender) Render(w io.Writer) error {
	const (
		TEMPLNAME = "chart"
		PATTERN   = `(__f__")|("__f__)|(__f__)`
	)

	for _, fn := range r.before {
		fn()
	}

	contents := []string{CustomHeaderTpl, CustomBaseTpl, CustomPageTpl}
	tpl := ModMustTemplate(TEMPLNAME, contents)

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, TEMPLNAME, r.c); err != nil {
		return err
	}

	pat := regexp.MustCompile(PATTERN)
	content := pat.ReplaceAll(buf.Bytes(), []byte(""))

	_, err := w.Write(content)
	return err
}

// ModMustTemplate creates a new template with the given name and parsed contents.
func ModMustTemplate(name string, contents []string) *template.Template {
	const (
		JSNAME = "safeJS"
	)

	tpl := template.Must(template.New(name).Parse(contents[0])).Funcs(template.FuncMap{
		JSNAME: func(s interface{}) template.JS {
			return template.JS(fmt.Sprint(s))
		},
	})

	for _, cont := range contents[1:] {
		tpl = template.Must(tpl.Parse(cont))
	}
	return tpl
}

// CustomHeaderTpl etc. adapted from https://github.com/go-echarts/go-echarts/templates/
var CustomHeaderTpl = `
{{ define "header" }}
<head>
	<!-- CustomHeaderTpl -->
    <meta charset="utf-8">
    <title>{{ .PageTitle }}</title>
{{- range .JSAssets.Values }}
    <script src="{{ . }}"></script>
{{- end }}
{{- range .CustomizedJSAssets.Values }}
    <script src="{{ . }}"></script>
{{- end }}
{{- range .CSSAssets.Values }}
    <link href="{{ . }}" rel="stylesheet">
{{- end }}
{{- range .CustomizedCSSAssets.Values }}
    <link href="{{ . }}" rel="stylesheet">
{{- end }}
</head>
{{ end }}
`

var CustomBaseTpl = `
{{- define "base" }}
<!-- CustomBaseTpl -->
<div class="container">
    <div class="item" id="{{ .ChartID }}" style="width:{{ .Initialization.Width }};height:{{ .Initialization.Height }};"></div>
</div>
<script type="text/javascript">
    "use strict";
    let goecharts_{{ .ChartID | safeJS }} = echarts.init(document.getElementById('{{ .ChartID | safeJS }}'), "{{ .Theme }}");
    let option_{{ .ChartID | safeJS }} = {{ .JSONNotEscaped | safeJS }};
	let action_{{ .ChartID | safeJS }} = {{ .JSONNotEscapedAction | safeJS }};
    goecharts_{{ .ChartID | safeJS }}.setOption(option_{{ .ChartID | safeJS }});
 	goecharts_{{ .ChartID | safeJS }}.dispatchAction(action_{{ .ChartID | safeJS }});

    {{- range .JSFunctions.Fns }}
    {{ . | safeJS }}
    {{- end }}
</script>
{{ end }}
`

var CustomPageTpl = `
{{- define "chart" }}
	<!-- "style" set in the report head, not here -->
	<!-- CustomPageTpl -->
	{{ if eq .Layout "none" }}
		{{- range .Charts }} {{ template "base" . }} {{- end }}
	{{ end }}

	{{ if eq .Layout "center" }}
		{{- range .Charts }} {{ template "base" . }} {{- end }}
	{{ end }}

	{{ if eq .Layout "flex" }}
		<div class="box"> {{- range .Charts }} {{ template "base" . }} {{- end }} </div>
	{{ end }}
{{ end }}
`

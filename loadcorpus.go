//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"crypto/md5"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//
// CORPUS LOADING
//

var (
	ldr = NewFncMessageMaker("loadcorpus.go")
)

// loadplotcorpus - read the plots CSV into a PlotCorpus; malformed or missing input is fatal before any stage runs
func loadplotcorpus(fn string) PlotCorpus {
	const (
		FAIL1 = "cannot open the corpus file '%s'"
		FAIL2 = "'%s' lacks a '%s' column"
		FAIL3 = "duplicate movie title '%s': titles must uniquely identify a document"
		MSG1  = "loaded %d plots from '%s'"
		MSG2  = "%d malformed rows dropped while loading '%s'"
	)

	raw, e := os.ReadFile(fn)
	if e != nil {
		ldr.EC(fmt.Errorf(FAIL1, fn))
	}

	pc := PlotCorpus{
		Genres:   make(map[string]string),
		SrcFile:  fn,
		RunID:    makerunid(),
		Checksum: fmt.Sprintf("%x", md5.Sum(raw)),
	}

	r := csv.NewReader(strings.NewReader(string(raw)))
	r.FieldsPerRecord = -1

	header, e := r.Read()
	chkf(e, "loadplotcorpus()")

	ti := columnindex(header, CSVCOLTITLE)
	pi := columnindex(header, CSVCOLPLOT)
	gi := columnindex(header, CSVCOLGENRE)

	if ti < 0 {
		ldr.EC(fmt.Errorf(FAIL2, fn, CSVCOLTITLE))
	}
	if pi < 0 {
		ldr.EC(fmt.Errorf(FAIL2, fn, CSVCOLPLOT))
	}

	seen := make(map[string]bool)

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		chkf(err, "loadplotcorpus()")

		if len(row) <= ti || len(row) <= pi {
			pc.Dropped += 1
			continue
		}

		title := strings.TrimSpace(row[ti])
		plot := row[pi]

		if title == "" || plot == "" {
			pc.Dropped += 1
			continue
		}

		if seen[title] {
			ldr.EC(fmt.Errorf(FAIL3, title))
		}
		seen[title] = true

		rec := PlotRecord{Title: title, Plot: plot}
		if gi >= 0 && len(row) > gi {
			rec.Genre = strings.TrimSpace(row[gi])
		}
		if rec.Genre != "" {
			pc.Genres[title] = rec.Genre
		}

		pc.Records = append(pc.Records, rec)
	}

	if pc.Dropped > 0 {
		msg(fmt.Sprintf(MSG2, pc.Dropped, fn), MSGWARN)
	}
	msg(fmt.Sprintf(MSG1, len(pc.Records), fn), MSGFYI)

	return pc
}

// loadgenrelookup - an external title->genre CSV replaces whatever genres rode in on the plot file
func loadgenrelookup(pc *PlotCorpus, fn string) {
	const (
		FAIL1 = "cannot open the genre file '%s'"
		FAIL2 = "'%s' lacks a '%s' column"
		MSG1  = "loaded %d genre labels from '%s'"
	)

	raw, e := os.ReadFile(fn)
	if e != nil {
		ldr.EC(fmt.Errorf(FAIL1, fn))
	}

	r := csv.NewReader(strings.NewReader(string(raw)))
	r.FieldsPerRecord = -1

	header, e := r.Read()
	chkf(e, "loadgenrelookup()")

	ti := columnindex(header, CSVCOLTITLE)
	gi := columnindex(header, CSVCOLGENRE)

	if ti < 0 {
		ldr.EC(fmt.Errorf(FAIL2, fn, CSVCOLTITLE))
	}
	if gi < 0 {
		ldr.EC(fmt.Errorf(FAIL2, fn, CSVCOLGENRE))
	}

	gg := make(map[string]string)
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		chkf(err, "loadgenrelookup()")
		if len(row) <= ti || len(row) <= gi {
			continue
		}
		t := strings.TrimSpace(row[ti])
		g := strings.TrimSpace(row[gi])
		if t != "" && g != "" {
			gg[t] = g
		}
	}

	pc.Genres = gg
	msg(fmt.Sprintf(MSG1, len(gg), fn), MSGFYI)

	flagjoinmismatches(pc)
}

// flagjoinmismatches - the genre join is an exact string match; a title that would join after case/space
// folding is almost certainly a data-entry slip, so say so instead of silently dropping the document
func flagjoinmismatches(pc *PlotCorpus) {
	const (
		WRN = "genre join: '%s' has no genre entry but '%s' does; the two differ only by case/whitespace"
	)

	folded := make(map[string]string)
	for t := range pc.Genres {
		folded[foldtitle(t)] = t
	}

	for i := range pc.Records {
		t := pc.Records[i].Title
		if _, ok := pc.Genres[t]; ok {
			continue
		}
		if near, ok := folded[foldtitle(t)]; ok {
			msg(fmt.Sprintf(WRN, t, near), MSGWARN)
		}
	}
}

// foldtitle - case/whitespace-insensitive form of a title; used only to detect near-miss joins
func foldtitle(t string) string {
	return strings.Join(strings.Fields(strings.ToLower(t)), " ")
}

// columnindex - locate a named column in the header row; -1 if absent
func columnindex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

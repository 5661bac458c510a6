//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//
// CLEANING
//

// the normalizer's contract: lowercase; alphabetic characters only; whitespace tokens; stop words dropped;
// no stemming or lemmatization

const (
	NOTACHAR = `[^\sa-z]`
)

// stripper - delete each in a list of patterns from a string
func stripper(item string, purge []string) string {
	for i := 0; i < len(purge); i++ {
		re := regexp.MustCompile(purge[i])
		item = re.ReplaceAllString(item, "")
	}
	return item
}

// makesubstitutions - deabbreviate before the period-stripping pass eats the markers
func makesubstitutions(thetext string) string {
	// cf. cleanvectortext() and its Roman praenomen expansions
	swap := strings.NewReplacer("Dr.", "doctor", "Mr.", "mister", "Mrs.", "missus", "Ms.", "miss",
		"St.", "saint", "Jr.", "junior", "Sr.", "senior", "Prof.", "professor", "Capt.", "captain",
		"Lt.", "lieutenant", "Sgt.", "sergeant", "Col.", "colonel", "Gen.", "general", "Gov.", "governor",
		"Rev.", "reverend", "Det.", "detective", "Insp.", "inspector", "Fr.", "father", "No.", "number")

	return swap.Replace(thetext)
}

// stripdiacritics - café --> cafe, etc.
func stripdiacritics(u string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, e := transform.String(t, u)
	if e != nil {
		return u
	}
	return s
}

// cleandoc - one plot in, one cleaned lowercase alphabetic-only string out
func cleandoc(thetext string) string {
	thetext = makesubstitutions(thetext)
	thetext = stripdiacritics(thetext)
	thetext = strings.ToLower(thetext)
	thetext = stripper(thetext, []string{NOTACHAR})
	return strings.Join(strings.Fields(thetext), " ")
}

// dropstopwords - remove every token found in the stop set
func dropstopwords(tokens []string, stops map[string]bool) []string {
	var keep []string
	for _, t := range tokens {
		if _, ok := stops[t]; !ok {
			keep = append(keep, t)
		}
	}
	return keep
}

// normalizecorpus - clean every plot; documents that clean down to nothing are dropped and counted,
// never retained as zero rows
func normalizecorpus(pc PlotCorpus) ([]string, []string, int) {
	const (
		MSG1 = "%d documents dropped: no terms survived cleaning"
	)

	stops := getstopset()

	var titles []string
	var cleaned []string
	empties := 0

	for i := range pc.Records {
		tokens := dropstopwords(strings.Fields(cleandoc(pc.Records[i].Plot)), stops)
		if len(tokens) == 0 {
			empties += 1
			continue
		}
		titles = append(titles, pc.Records[i].Title)
		cleaned = append(cleaned, strings.Join(tokens, " "))
	}

	if empties > 0 {
		msg(fmt.Sprintf(MSG1, empties), MSGWARN)
	}

	return titles, cleaned, empties
}

//    CineTopicModeler
//    Copyright: E Gunderson 2023-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

//
// STOP WORDS
//

var (
	// English175 - the standard list; cf. the snowball stop set that every text-mining toolkit ships
	English175 = []string{"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are",
		"aren", "as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but", "by",
		"can", "cannot", "could", "couldn", "did", "didn", "do", "does", "doesn", "doing", "don", "down", "during",
		"each", "few", "for", "from", "further", "had", "hadn", "has", "hasn", "have", "haven", "having", "he",
		"her", "here", "hers", "herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is", "isn",
		"it", "its", "itself", "just", "ll", "me", "mightn", "more", "most", "mustn", "my", "myself", "needn",
		"no", "nor", "not", "now", "of", "off", "on", "once", "only", "or", "other", "our", "ours", "ourselves",
		"out", "over", "own", "re", "s", "same", "shan", "she", "should", "shouldn", "so", "some", "such", "t",
		"than", "that", "the", "their", "theirs", "them", "themselves", "then", "there", "these", "they", "this",
		"those", "through", "to", "too", "under", "until", "up", "ve", "very", "was", "wasn", "we", "were", "weren",
		"what", "when", "where", "which", "while", "who", "whom", "why", "will", "with", "won", "would", "wouldn",
		"you", "your", "yours", "yourself", "yourselves"}

	// EnglishExtra - words that are noise in plot summaries specifically
	EnglishExtra = []string{"also", "one", "two", "back", "however", "meanwhile", "later", "named", "tells", "finds",
		"takes", "goes", "gets", "film", "movie", "story"}

	EnglishStop = append(English175, EnglishExtra...)

	// EnglishKeep - members of EnglishStop we will not toss
	EnglishKeep = []string{}
)

// getstopset - the full stop set: standard + plot-summary noise + the configured custom exclusions;
// "-sw" swaps the built-in list for one read from (or first written to) a JSON file
func getstopset() map[string]bool {
	es := SetSubtraction(EnglishStop, EnglishKeep)
	if Config.StopsFile != "" {
		es = readstopconfig(Config.StopsFile)
	}
	es = append(es, Config.CustomStops...)
	return ToSet(es)
}

// readstopconfig - read a stop-list override file and return []stopwords; if it does not exist, generate it
func readstopconfig(fn string) []string {
	const (
		ERR2 = "readstopconfig() failed to parse "
		MSG1 = "readstopconfig() wrote stop configuration file: "
		MSG2 = "readstopconfig() read stop configuration from: "
	)

	stops := SetSubtraction(EnglishStop, EnglishKeep)

	_, yes := os.Stat(fn)

	if yes != nil {
		sort.Strings(stops)
		content, err := json.MarshalIndent(stops, "", JSONINDENT)
		chke(err)

		err = os.WriteFile(fn, content, WRITEPERMS)
		chke(err)
		msg(MSG1+fn, MSGPEEK)
	} else {
		loadedcfg, _ := os.Open(fn)
		decoderc := json.NewDecoder(loadedcfg)
		var stp []string
		errc := decoderc.Decode(&stp)
		_ = loadedcfg.Close()
		if errc != nil {
			msg(ERR2+fn, MSGCRIT)
		} else {
			stops = stp
		}
		msg(fmt.Sprintf("%s%s (%d words)", MSG2, fn, len(stops)), MSGTMI)
	}
	return stops
}

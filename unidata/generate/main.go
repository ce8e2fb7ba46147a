// Command generate checks the hand-curated unidata/data.go against the
// Unicode Character Database and writes a drift report; it does not
// rewrite data.go. It is not part of the engine build; it is the offline
// tool an engine maintainer runs before a Unicode version bump, in the
// same spirit as unicodedata/generate in the sibling text-shaping repos.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fulm-o/uroman/unidata"
)

func main() {
	src := flag.String("ucd", "UnicodeData.txt", "path to the UCD UnicodeData.txt file")
	out := flag.String("out", "drift-report.txt", "where to write the drift report")
	flag.Parse()

	recs, err := parseUnicodeData(*src)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	drifted, err := writeDriftReport(bw, recs)
	bw.Flush()
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	fmt.Printf("generate: checked %d curated scalars against %d UCD records, %d drifted\n",
		len(unidata.CuratedRunes()), len(recs), drifted)
}

// ucdRecord mirrors one semicolon-delimited line of UnicodeData.txt; only
// the fields the curated blob actually needs are kept.
type ucdRecord struct {
	codepoint rune
	name      string
	category  string
	decimal   string
	decompose string
}

func parseUnicodeData(path string) ([]ucdRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var recs []ucdRecord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) < 9 {
			continue
		}
		cp, err := strconv.ParseInt(fields[0], 16, 32)
		if err != nil {
			continue
		}
		recs = append(recs, ucdRecord{
			codepoint: rune(cp),
			name:      fields[1],
			category:  fields[2],
			decompose: fields[5],
			decimal:   fields[8],
		})
	}
	return recs, sc.Err()
}

// writeDriftReport compares unidata's hand-curated scalar set against a
// freshly downloaded UnicodeData.txt, flagging any curated code point the
// UCD file no longer lists. data.go's table stays hand-maintained - it
// carries script tags, fraction markers and magnitude values that
// UnicodeData.txt doesn't encode - so this tool checks for drift ahead of
// a Unicode version bump rather than regenerating the file outright.
func writeDriftReport(w *bufio.Writer, recs []ucdRecord) (int, error) {
	byRune := make(map[rune]ucdRecord, len(recs))
	for _, r := range recs {
		byRune[r.codepoint] = r
	}
	drifted := 0
	for _, r := range unidata.CuratedRunes() {
		if _, ok := byRune[r]; !ok {
			fmt.Fprintf(w, "U+%04X: curated in data.go but absent from the supplied UCD file\n", r)
			drifted++
		}
	}
	return drifted, nil
}

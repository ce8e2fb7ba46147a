package augment

import (
	"strconv"
	"strings"

	"github.com/fulm-o/uroman/lattice"
	"github.com/fulm-o/uroman/unidata"
)

// numeralBaseScore and numeralPerCharBonus together must outscore the
// rule table's per-character digit fallback summed over the whole run -
// otherwise bestpath would stitch together the individual digit
// readings instead of using the composed value (spec.md §4.5's "number-
// run detection and composition ... across Indic/Arabic-Indic/Thai/
// Chinese/Roman numerals"). Each fallback digit/magnitude reading scores
// 100 (see rules/data/rules.txt); with a per-character bonus of the same
// 100, the composed edge wins by numeralBaseScore regardless of run length.
const (
	numeralBaseScore    = 500
	numeralPerCharBonus = 100
)

const (
	fenRune = '分'
	zhiRune = '之'
)

// Numeral finds maximal runs of numeral scalars (and, for Han script, the
// 分/之 fraction-construction markers) and adds one composed edge per run
// that parses cleanly. A run that cannot be composed - e.g. a fraction
// missing one of its two operands - is abandoned silently: the matcher's
// per-character rule-table fallback, already in the lattice, stands in
// for it (spec.md §7). bounds is the set of UAX #29 word-boundary
// positions (see wordbreak.go); a positional-digit run never extends past
// one, while a run that starts with a Han scalar ignores them (see runEnd).
func Numeral(l *lattice.Lattice, tbl *unidata.Table, bounds map[int]bool) {
	input := l.Input()
	for i := 0; i < len(input); {
		j := runEnd(tbl, input, i, bounds)
		if j == i {
			i++
			continue
		}
		composeRun(l, tbl, input, i, j)
		i = j
	}
}

// runEnd returns the exclusive end of the maximal numeral-ish run
// starting at i. For positional-script runs (Devanagari, Arabic-Indic,
// Thai) it stops at a word boundary, since UAX #29's WB8 rule already
// keeps a genuine digit sequence joined and a boundary there means the
// digits belong to separate tokens. Han numeral ideographs are exempt:
// UAX #29 has no rule joining consecutive ideographs into one word, so a
// boundary falls between every pair of them and honoring it here would
// make a multi-character magnitude composition like "二千五百" impossible.
func runEnd(tbl *unidata.Table, input []rune, i int, bounds map[int]bool) int {
	han := tbl.Lookup(input[i]).Script == unidata.Han
	j := i
	for j < len(input) {
		if j > i && !han && bounds[j] {
			break
		}
		d := tbl.Lookup(input[j])
		if d.Numeric != nil || input[j] == fenRune || input[j] == zhiRune {
			j++
			continue
		}
		break
	}
	return j
}

func composeRun(l *lattice.Lattice, tbl *unidata.Table, input []rune, start, end int) {
	run := input[start:end]
	score := numeralBaseScore + numeralPerCharBonus*(end-start)
	if text, ok := composeFraction(tbl, run); ok {
		l.AddEdge(lattice.Edge{Start: start, End: end, Text: text, Type: "numeral-fraction", Score: score, Origin: "augment.Numeral"})
		return
	}
	if text, ok := composeDigits(tbl, run); ok {
		l.AddEdge(lattice.Edge{Start: start, End: end, Text: text, Type: "numeral", Score: score, Origin: "augment.Numeral"})
		return
	}
	T().Debugf("numeral run [%d,%d) %q did not compose cleanly; leaving per-character fallback in place", start, end, string(run))
}

// composeFraction recognizes the Chinese "X分之Y" construction (literally
// "X parts of Y") and renders it Y/X. Both X and Y must independently
// compose through composeDigits or the fraction is abandoned.
func composeFraction(tbl *unidata.Table, run []rune) (string, bool) {
	fen := indexRune(run, fenRune)
	if fen < 0 || fen+1 >= len(run) || run[fen+1] != zhiRune {
		return "", false
	}
	denomText, ok := composeDigits(tbl, run[:fen])
	if !ok {
		return "", false
	}
	numerText, ok := composeDigits(tbl, run[fen+2:])
	if !ok {
		return "", false
	}
	return numerText + "/" + denomText, true
}

func indexRune(run []rune, r rune) int {
	for i, v := range run {
		if v == r {
			return i
		}
	}
	return -1
}

// composeDigits renders run as a base-10 numeral string. A run drawn from
// a positional script (Devanagari, Arabic-Indic, Thai) is concatenated
// digit-by-digit; a run of Han numeral ideographs is evaluated with the
// traditional digit/magnitude algorithm. A run that is not all Han is
// concatenated whatever its mix of scripts; in it, any scalar without an
// integer value from 0 to 9 abandons composition.
func composeDigits(tbl *unidata.Table, run []rune) (string, bool) {
	if len(run) == 0 {
		return "", false
	}
	allHan := true
	for _, r := range run {
		if tbl.Lookup(r).Script != unidata.Han {
			allHan = false
			break
		}
	}
	if allHan {
		return composeHanNumber(tbl, run)
	}
	var sb strings.Builder
	for _, r := range run {
		d := tbl.Lookup(r)
		if d.Numeric == nil || !d.Numeric.IsInt() {
			return "", false
		}
		v := d.Numeric.Num().Int64()
		if v < 0 || v > 9 {
			return "", false
		}
		sb.WriteString(strconv.FormatInt(v, 10))
	}
	return sb.String(), true
}

// composeHanNumber evaluates a run of Chinese digit and magnitude
// ideographs (spec.md's worked example: "二千五百" -> 2500). pendingDigit
// tracks a digit waiting to be multiplied by the next magnitude word; a
// magnitude with no preceding digit is read as one unit of it ("十" alone
// means ten, not zero).
func composeHanNumber(tbl *unidata.Table, run []rune) (string, bool) {
	var total, section int64
	pendingDigit := int64(-1)
	for _, r := range run {
		d := tbl.Lookup(r)
		if d.Numeric == nil || !d.Numeric.IsInt() {
			return "", false
		}
		v := d.Numeric.Num().Int64()
		switch {
		case v < 10:
			if pendingDigit != -1 {
				return "", false // two bare digits in a row: not a valid composition
			}
			pendingDigit = v
		case v == 10 || v == 100 || v == 1000:
			unit := pendingDigit
			if unit == -1 {
				unit = 1
			}
			section += unit * v
			pendingDigit = -1
		case v == 10000 || v == 100000000:
			cur := section
			if pendingDigit != -1 {
				cur += pendingDigit
				pendingDigit = -1
			}
			if cur == 0 {
				cur = 1
			}
			total += cur * v
			section = 0
		default:
			return "", false
		}
	}
	if pendingDigit != -1 {
		section += pendingDigit
	}
	total += section
	return strconv.FormatInt(total, 10), true
}

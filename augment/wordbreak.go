package augment

import (
	"strings"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
)

// wordBoundaries reports, for a line of runes, the rune-index positions
// that fall on a Unicode word boundary (UAX #29, via the same
// uax29.WordBreaker the teacher's typesetting pipeline uses to split text
// into words). Numeral's run detector stops extending a positional-digit
// run at one of these positions; runs of Han numerals ignore them (see
// runEnd). Indic uses them to find word-final consonants.
func wordBoundaries(input []rune) map[int]bool {
	bounds := map[int]bool{0: true, len(input): true}
	if len(input) == 0 {
		return bounds
	}
	breaker := uax29.NewWordBreaker(1)
	seg := segment.NewSegmenter(breaker)
	seg.Init(strings.NewReader(string(input)))
	pos := 0
	for seg.Next() {
		pos += len([]rune(string(seg.Bytes())))
		bounds[pos] = true
	}
	return bounds
}

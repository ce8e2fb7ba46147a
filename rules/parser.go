package rules

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fulm-o/uroman/core"
)

// fieldCount is the number of tab-separated fields a well-formed data line
// carries: pattern, targets, langs, left-context, right-context, type,
// comment.
const fieldCount = 7

// Parse reads the rule-file text format from r and returns the parsed
// rules in file order. Blank lines and lines starting with '#' are
// skipped. Any other structural error is fatal, per spec.md §7
// (construction errors).
func Parse(r io.Reader) ([]Rule, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var out []Rule
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		rule, err := parseLine(line, lineNo)
		if err != nil {
			return nil, core.WrapError(err, core.EDATA, "rule file line %d: %v", lineNo, err)
		}
		out = append(out, rule)
	}
	if err := sc.Err(); err != nil {
		return nil, core.WrapError(err, core.EDATA, "rule file scan failed: %v", err)
	}
	return out, nil
}

func parseLine(line string, lineNo int) (Rule, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != fieldCount {
		return Rule{}, fmt.Errorf("expected %d tab-separated fields, got %d", fieldCount, len(fields))
	}
	pattern := []rune(fields[0])
	if len(pattern) == 0 {
		return Rule{}, fmt.Errorf("empty source pattern")
	}
	targets, err := parseTargets(fields[1])
	if err != nil {
		return Rule{}, err
	}
	langs := parseLangs(fields[2])
	left, err := parseContext(fields[3])
	if err != nil {
		return Rule{}, fmt.Errorf("left context: %w", err)
	}
	right, err := parseContext(fields[4])
	if err != nil {
		return Rule{}, fmt.Errorf("right context: %w", err)
	}
	typ := Type(strings.TrimSpace(fields[5]))
	if typ == "" {
		typ = TypeDefault
	}
	return Rule{
		Pattern: pattern,
		Targets: targets,
		Langs:   langs,
		Left:    left,
		Right:   right,
		Type:    typ,
		Comment: fields[6],
		Line:    lineNo,
	}, nil
}

func parseTargets(field string) ([]Target, error) {
	parts := strings.Split(field, ";")
	var targets []Target
	for i := 0; i < len(parts); i++ {
		p := parts[i]
		// A part with no ':' is target text containing ';': rejoin it.
		for !strings.Contains(p, ":") && i+1 < len(parts) {
			i++
			p += ";" + parts[i]
		}
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		sub := strings.Split(p, ":")
		// Target text may itself contain ':': fold extra leading pieces back.
		if n := len(sub) - 1; n >= 2 && sub[n] != string(Main) && sub[n] != string(Alt) {
			sub = []string{strings.Join(sub[:n], ":"), sub[n]}
		} else if n >= 3 {
			sub = []string{strings.Join(sub[:n-1], ":"), sub[n-1], sub[n]}
		}
		if len(sub) < 2 || len(sub) > 3 {
			return nil, fmt.Errorf("malformed target %q: want text:score[:ann]", p)
		}
		score, err := strconv.Atoi(sub[1])
		if err != nil {
			return nil, fmt.Errorf("malformed target %q: score not an integer: %w", p, err)
		}
		ann := Main
		if len(sub) == 3 {
			ann = Annotation(sub[2])
			if ann != Main && ann != Alt {
				return nil, fmt.Errorf("malformed target %q: unknown annotation %q", p, sub[2])
			}
		}
		targets = append(targets, Target{Text: sub[0], Score: score, Annotation: ann})
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no targets in field %q", field)
	}
	return targets, nil
}

func parseLangs(field string) map[string]bool {
	field = strings.TrimSpace(field)
	if field == "" || field == "*" {
		return nil
	}
	langs := make(map[string]bool)
	for _, tag := range strings.Split(field, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			langs[tag] = true
		}
	}
	if len(langs) == 0 {
		return nil
	}
	return langs
}

func parseContext(field string) (Context, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return Context{}, nil
	}
	if strings.HasPrefix(field, "<") {
		if !strings.HasSuffix(field, ">") {
			return Context{}, fmt.Errorf("unterminated character class %q", field)
		}
		class := ContextClass(field[1 : len(field)-1])
		switch class {
		case ClassVowel, ClassConsonant, ClassDigit, ClassWordBoundary:
			return Context{Set: true, Class: class}, nil
		default:
			return Context{}, fmt.Errorf("unknown character class %q", field)
		}
	}
	return Context{Set: true, Literal: []rune(field)}, nil
}

// Command uroman romanizes text from a file, or interactively from a REPL
// when no file is given.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/uax/uax11"
	"github.com/pterm/pterm"

	"github.com/fulm-o/uroman/core"
	"github.com/fulm-o/uroman/engine"
)

// tracer traces with key 'uroman.cli'
func tracer() tracing.Trace {
	return tracing.Select("uroman.cli")
}

func main() {
	initDisplay()
	setupTracing()

	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	lang := flag.String("lang", "", "BCP-47/ISO-639-3 language hint")
	shape := flag.String("shape", "string", "Output shape [string|edges|alternatives|sample]")
	file := flag.String("file", "", "File to romanize, one line at a time; omit for an interactive REPL")
	flag.Parse()

	applyTraceLevel(*tlevel)

	eng, err := engine.New()
	if err != nil {
		core.Fatal(err)
	}

	if *file != "" {
		if err := romanizeFile(eng, *file, *lang, *shape); err != nil {
			core.Fatal(core.WrapError(err, core.Code(err), "romanizing %s", *file))
		}
		return
	}
	repl(eng, *lang, *shape)
}

func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " i  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setupTracing() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.uroman":    "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing")
		os.Exit(core.EINTERNAL)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func applyTraceLevel(s string) {
	switch strings.ToLower(s) {
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().SetTraceLevel(tracing.LevelInfo)
	}
}

func romanizeFile(eng *engine.Engine, path, lang, shape string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		emit(eng, scanner.Text(), lang, shape)
	}
	return scanner.Err()
}

func repl(eng *engine.Engine, lang, shape string) {
	rl, err := readline.New("uroman > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(core.EINTERNAL)
	}
	defer rl.Close()
	pterm.Info.Println("Welcome to uroman. Quit with <ctrl>D")
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on ctrl-D
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		emit(eng, line, lang, shape)
	}
	pterm.Info.Println("Good bye!")
}

func emit(eng *engine.Engine, line, lang, shape string) {
	switch strings.ToLower(shape) {
	case "edges":
		r := eng.Romanize([]rune(line), lang, engine.ShapeEdges)
		printEdgeTable(r.Edges)
	case "alternatives":
		r := eng.Romanize([]rune(line), lang, engine.ShapeAlternatives)
		printAlternatives(r.Alternatives)
	case "sample":
		r := eng.Romanize([]rune(line), lang, engine.ShapeLattice)
		printLatticeSample(line, r.Lattice)
	default:
		r := eng.Romanize([]rune(line), lang, engine.ShapeString)
		pterm.Println(r.String)
	}
}

func printEdgeTable(edges []engine.EdgeView) {
	rows := [][]string{{"start", "end", "text", "type", "score"}}
	for _, e := range edges {
		rows = append(rows, []string{fmt.Sprint(e.Start), fmt.Sprint(e.End), e.Text, e.Type, fmt.Sprint(e.Score)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}

func printAlternatives(alts []engine.Alternatives) {
	for _, a := range alts {
		pterm.Printfln("[%d,%d) %s", a.Best.Start, a.Best.End, pterm.Bold.Sprint(a.Best.Text))
		for _, o := range a.Other {
			pterm.Printfln("    alt: %s (score %d, %s)", o.Text, o.Score, o.Type)
		}
	}
}

// printLatticeSample renders every lattice edge for a line, column-aligned
// by the east-asian display width of the source text each edge covers
// (uax11.Width) rather than by rune count, so CJK spans line up with their
// (visually double-wide) source text the way a terminal actually renders
// them.
func printLatticeSample(line string, edges []engine.EdgeView) {
	runes := []rune(line)
	col := 0
	for _, e := range edges {
		if w := uax11.Width([]byte(string(runes[e.Start:e.End])), uax11.LatinContext); w > col {
			col = w
		}
	}
	for _, e := range edges {
		span := string(runes[e.Start:e.End])
		w := uax11.Width([]byte(span), uax11.LatinContext)
		pterm.Printfln("%s%s [%d,%d) -> %s (%s, score %d)", span, strings.Repeat(" ", col-w+2), e.Start, e.End, e.Text, e.Type, e.Score)
	}
}

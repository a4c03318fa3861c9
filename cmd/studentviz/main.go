package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spektr-org/studentviz/config"
	"github.com/spektr-org/studentviz/engine"
	"github.com/spektr-org/studentviz/helpers"
	"github.com/spektr-org/studentviz/internal/metrics"
	"github.com/spektr-org/studentviz/schema"
)

// ============================================================================
// STUDENTVIZ CLI — One dashboard recompute over a student dataset
// ============================================================================

const version = "0.1.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	filePath := flag.String("file", "", "Path to JSON student records (required)")
	configPath := flag.String("config", "", "Path to dashboard config JSON")
	age := flag.String("age", "", "Keep only students of this age")
	gender := flag.String("gender", "", "Keep only this gender code (0 male, 1 female)")
	tutoring := flag.String("tutoring", "", "Keep only this tutoring code (0 no, 1 yes)")
	extracurricular := flag.String("extracurricular", "", "Keep only this extracurricular code (0 no, 1 yes)")
	dropEmpty := flag.Bool("drop-empty", false, "Leave bins without students out of the histogram")
	format := flag.String("format", "json", "Output format: json, pretty, text, csv")
	view := flag.String("view", "histogram", "Chart written by --format csv: histogram, influence, scatter")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error); overrides the config")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `studentviz — GPA dashboards for a student dataset

Usage:
  studentviz --file students.json --format pretty
  studentviz --file students.json --age 17 --gender 1 --format text
  studentviz --file students.json --config dashboard.json --format csv --view influence --out influence.csv

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Environment:
  %s    Overrides the config log level

Formats:
  json      Full dashboard JSON (default)
  pretty    Pretty-printed JSON
  text      One-line summary
  csv       One chart as CSV (ready for Sheets/Excel), chosen with --view:
            a label column plus one column per series (scatter: x,y pairs)
`, config.EnvLogLevel)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("studentviz %s\n", version)
		os.Exit(0)
	}

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		flag.Usage()
		os.Exit(1)
	}

	if err := checkOutput(*format, *view); err != nil {
		fatalf("%v", err)
	}

	// ── Config and logging ────────────────────────────────────────────────
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fatalf("Failed to load config: %v", err)
		}
	} else if env := os.Getenv(config.EnvLogLevel); env != "" {
		cfg.LogLevel = env
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fatalf("Invalid log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// ── Filters ───────────────────────────────────────────────────────────
	state := engine.NewFilterState()
	for field, raw := range map[engine.Field]string{
		engine.FieldAge:             *age,
		engine.FieldGender:          *gender,
		engine.FieldTutoring:        *tutoring,
		engine.FieldExtracurricular: *extracurricular,
	} {
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fatalf("Invalid --%s value %q", field, raw)
		}
		state = state.With(field, v)
	}

	// ── Read data ─────────────────────────────────────────────────────────
	data, err := os.ReadFile(*filePath)
	if err != nil {
		fatalf("Failed to read file: %v", err)
	}
	raw, err := helpers.ParseRecords(data)
	if err != nil {
		fatalf("Failed to parse records: %v", err)
	}

	sch := schema.Students()
	records, issues := sch.Clean(raw)
	skipped := make([]string, len(issues))
	for i, issue := range issues {
		skipped[i] = issue.String()
		log.Warn().Str("issue", skipped[i]).Msg("skipping record")
	}
	log.Info().Int("records", len(records)).Int("skipped", len(raw)-len(records)).Msg("parsed records")

	// ── Execute ───────────────────────────────────────────────────────────
	reg := prometheus.NewRegistry()
	observer, err := metrics.New(reg)
	if err != nil {
		fatalf("Failed to register metrics: %v", err)
	}

	opts := cfg.Options(engine.WithObserver(observer))
	if *dropEmpty {
		opts = append(opts, engine.WithDropEmptyBins(true))
	}
	dash, err := engine.Execute(records, state, opts...)
	if err != nil {
		fatalf("Execution failed: %v", err)
	}
	metrics.Dump(reg)

	// ── Output writer ─────────────────────────────────────────────────────
	var writer io.Writer = os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Render output ─────────────────────────────────────────────────────
	switch *format {
	case "csv":
		writeCSV(writer, dash, *view)
		if *outFile != "" {
			log.Info().Str("path", *outFile).Msg("csv written")
		}
	case "text":
		fmt.Fprintln(writer, dash.Summary.Value)
	default:
		out := cliOutput{
			Dashboard:      dash,
			HistogramTable: engine.BuildHistogramTable(dash.Histogram, cfg.CategoryField, dash.Categories),
			InfluenceTable: engine.BuildInfluenceTable(dash.Influence, cfg.InfluenceField1, cfg.InfluenceField2),
			Skipped:        skipped,
		}
		writeJSON(writer, out, *format)
	}
}

var (
	formats = []string{"json", "pretty", "text", "csv"}
	views   = []string{"histogram", "influence", "scatter"}
)

// checkOutput rejects unknown --format and --view values before anything is
// read or written.
func checkOutput(format, view string) error {
	if !contains(formats, format) {
		return ewrap.New(fmt.Sprintf("unknown format %q", format))
	}
	if format == "csv" && !contains(views, view) {
		return ewrap.New(fmt.Sprintf("unknown view %q", view))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ============================================================================
// OUTPUT TYPES
// ============================================================================

type cliOutput struct {
	Dashboard      *engine.Dashboard `json:"dashboard"`
	HistogramTable *engine.TableData `json:"histogramTable"`
	InfluenceTable *engine.TableData `json:"influenceTable"`
	Skipped        []string          `json:"skipped,omitempty"`
}

// ============================================================================
// CSV OUTPUT
// ============================================================================

func writeCSV(w io.Writer, dash *engine.Dashboard, view string) {
	var err error
	switch view {
	case "histogram":
		err = helpers.WriteChartCSV(w, dash.HistogramChart)
	case "influence":
		err = helpers.WriteChartCSV(w, dash.InfluenceChart)
	case "scatter":
		err = helpers.WriteChartCSV(w, dash.ScatterChart)
	}
	if err != nil {
		fatalf("Failed to write CSV: %v", err)
	}
}

// ============================================================================
// JSON OUTPUT
// ============================================================================

func writeJSON(w io.Writer, v interface{}, format string) {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

// ============================================================================
// HELPERS
// ============================================================================

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

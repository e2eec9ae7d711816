// Command bbcolor computes the emission color of a black body across a
// temperature or lamp voltage sweep and writes one CSV row per sample.
//
// Usage:
//
//	bbcolor [flags]
//
// Values missing from the flags are asked interactively, so running it
// bare gives the plain question-and-answer flow.
//
// Examples:
//
//	bbcolor --mode temperature --min 1000 --max 10000 --step 100 --out sweep
//	bbcolor --mode voltage --min 6 --max 12.6 --step 0.3 --approx --out lamp
//	bbcolor --mode temperature --min 2000 --max 9000 --step 50 --ref 6504 --ref-luminance 1200 --out calibrated
//	bbcolor --preview --mode temperature --min 1000 --max 9000 --step 1000 --out strip
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-colorimetry/color/cie"
	"github.com/cwbudde/algo-colorimetry/internal/pipeline"
	"github.com/cwbudde/algo-colorimetry/internal/prompt"
	"github.com/cwbudde/algo-colorimetry/measure/lamp"
	"github.com/cwbudde/algo-colorimetry/spectral/cmf"
	"github.com/spf13/pflag"
)

// defaultTablePath is where measured observer data is expected when no
// flag says otherwise. When the file is absent the analytic fit takes
// over, so the tool also works standalone.
const defaultTablePath = "CIE_xyz_1964_10deg.csv"

type options struct {
	mode     string
	min      float64
	max      float64
	step     float64
	out      string
	table    string
	approx   bool
	space    string
	ref      float64
	refLum   float64
	lampName string
	lampFile string
	raw      bool
	preview  bool
	logLevel string
	quiet    bool
}

func registerFlags(o *options) {
	pflag.StringVar(&o.mode, "mode", "", "sweep variable: temperature or voltage")
	pflag.Float64Var(&o.min, "min", math.NaN(), "sweep minimum (K or V)")
	pflag.Float64Var(&o.max, "max", math.NaN(), "sweep maximum (K or V)")
	pflag.Float64Var(&o.step, "step", math.NaN(), "sweep step (K or V)")
	pflag.StringVar(&o.out, "out", "", "output file name, .csv appended when missing")
	pflag.StringVar(&o.table, "cmf", defaultTablePath, "CSV file with color-matching data")
	pflag.BoolVar(&o.approx, "approx", false, "use the analytic observer fit instead of a data file")
	pflag.StringVar(&o.space, "space", "srgb", "output color space: srgb or cie-rgb")
	pflag.Float64Var(&o.ref, "ref", math.NaN(), "calibration reference point, in sweep units")
	pflag.Float64Var(&o.refLum, "ref-luminance", math.NaN(), "luminance at the reference point (lm sr^-1 m^-2)")
	pflag.StringVar(&o.lampName, "lamp", "GE47", "filament preset for voltage mode")
	pflag.StringVar(&o.lampFile, "lamps", "", "YAML file with extra filament presets")
	pflag.BoolVar(&o.raw, "raw", false, "write unnormalized, unclamped linear RGB")
	pflag.BoolVar(&o.preview, "preview", false, "print a color swatch table to stdout")
	pflag.StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pflag.BoolVar(&o.quiet, "quiet", false, "only log errors")
}

func main() {
	var opts options
	registerFlags(&opts)
	pflag.Parse()

	level := parseLogLevel(opts.logLevel)
	if opts.quiet {
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(&opts, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(o *options, logger *slog.Logger) error {
	var session *prompt.Session
	ask := func() *prompt.Session {
		if session == nil {
			session = prompt.New(os.Stdin, os.Stdout)
		}
		return session
	}

	cfg := pipeline.Config{Raw: o.raw}

	var err error
	if o.mode == "" {
		cfg.Mode, err = ask().Mode("Sweep temperature or voltage? [t/v]")
	} else {
		cfg.Mode, err = pipeline.ParseMode(o.mode)
	}
	if err != nil {
		return err
	}

	unit := "K"
	if cfg.Mode == pipeline.ModeVoltage {
		unit = "V"
	}

	if cfg.Range.Min, err = floatArg(ask, o.min, "Minimum ("+unit+")"); err != nil {
		return err
	}
	if cfg.Range.Max, err = floatArg(ask, o.max, "Maximum ("+unit+")"); err != nil {
		return err
	}
	if cfg.Range.Step, err = floatArg(ask, o.step, "Step ("+unit+")"); err != nil {
		return err
	}

	if o.out == "" {
		if o.out, err = ask().String("Output file name"); err != nil {
			return err
		}
	}

	if cfg.RefValue, cfg.RefLuminance, err = reference(ask, o, session != nil, unit); err != nil {
		return err
	}

	if cfg.Space, err = cie.ParseSpace(o.space); err != nil {
		return err
	}

	if cfg.Mode == pipeline.ModeVoltage {
		if cfg.Filament, err = pickFilament(o.lampName, o.lampFile); err != nil {
			return err
		}
		logger.Debug("using filament", "name", cfg.Filament.Name)
	}

	if cfg.Table, err = loadTable(o, logger); err != nil {
		return err
	}

	report, err := pipeline.Run(cfg)
	if err != nil {
		return err
	}

	if report.Calibrated {
		logger.Info("calibrated to reference",
			"kelvin", report.RefKelvin,
			"coefficient", report.Coefficient)
	}
	if report.Clipped > 0 {
		logger.Warn("out-of-gamut colors were clamped",
			"rows", report.Clipped,
			"total", len(report.Rows))
	}

	path, err := report.SaveCSV(o.out)
	if err != nil {
		return err
	}
	logger.Info("sweep written", "path", path, "rows", len(report.Rows))

	if o.preview {
		if err := printPreview(os.Stdout, report); err != nil {
			return fmt.Errorf("print preview: %w", err)
		}
	}

	return nil
}

// floatArg takes the flag value when one was given and asks otherwise.
func floatArg(ask func() *prompt.Session, flagValue float64, label string) (float64, error) {
	if !math.IsNaN(flagValue) {
		return flagValue, nil
	}
	return ask().PositiveFloat(label)
}

// reference resolves the calibration pair. Flags win; a session that is
// already interactive gets asked, everyone else runs uncalibrated.
func reference(ask func() *prompt.Session, o *options, interactive bool, unit string) (float64, float64, error) {
	if !math.IsNaN(o.ref) || !math.IsNaN(o.refLum) {
		value, luminance := 0.0, 0.0
		if !math.IsNaN(o.ref) {
			value = o.ref
		}
		if !math.IsNaN(o.refLum) {
			luminance = o.refLum
		}
		return value, luminance, nil
	}

	if !interactive {
		return 0, 0, nil
	}

	value, err := ask().Float("Reference point (" + unit + "), 0 skips calibration")
	if err != nil {
		return 0, 0, err
	}
	if value <= 0 {
		return 0, 0, nil
	}

	luminance, err := ask().PositiveFloat("Luminance at the reference (lm sr^-1 m^-2)")
	if err != nil {
		return 0, 0, err
	}

	return value, luminance, nil
}

func pickFilament(name, file string) (lamp.Filament, error) {
	presets := []lamp.Filament{lamp.GE47()}
	if file != "" {
		loaded, err := lamp.LoadPresets(file)
		if err != nil {
			return lamp.Filament{}, err
		}
		presets = append(presets, loaded...)
	}

	for _, f := range presets {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}

	known := make([]string, len(presets))
	for i, f := range presets {
		known[i] = f.Name
	}
	return lamp.Filament{}, fmt.Errorf("unknown lamp %q (have %s)", name, strings.Join(known, ", "))
}

func loadTable(o *options, logger *slog.Logger) (*cmf.Table, error) {
	if o.approx {
		return cmf.Approximate(cmf.DefaultMin, cmf.DefaultMax, cmf.DefaultStep)
	}

	table, err := cmf.Load(o.table)
	if err == nil {
		if n := table.SkippedRows(); n > 0 {
			logger.Warn("skipped malformed rows in color-matching data",
				"path", o.table,
				"rows", n)
		}
		return table, nil
	}

	// Only the implicit default falls back to the fit; an explicit
	// --cmf that fails to load is an error.
	if !pflag.CommandLine.Changed("cmf") && errors.Is(err, fs.ErrNotExist) {
		logger.Info("no observer data file, using the analytic fit", "path", o.table)
		return cmf.Approximate(cmf.DefaultMin, cmf.DefaultMax, cmf.DefaultStep)
	}

	return nil, err
}

func printPreview(w io.Writer, report *pipeline.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	voltage := report.Config.Mode == pipeline.ModeVoltage
	if voltage {
		fmt.Fprintln(tw, "Voltage\tKelvin\tHex\t")
	} else {
		fmt.Fprintln(tw, "Kelvin\tHex\t")
	}

	for _, row := range report.Rows {
		r, g, b := cie.RGB255(row.Result.Display)
		swatch := fmt.Sprintf("\x1b[48;2;%d;%d;%dm      \x1b[0m", r, g, b)
		hex := cie.Hex(row.Result.Display)

		if voltage {
			fmt.Fprintf(tw, "%.4g\t%.1f\t%s\t%s\n", row.Volts, row.Result.Kelvin, hex, swatch)
		} else {
			fmt.Fprintf(tw, "%.1f\t%s\t%s\n", row.Result.Kelvin, hex, swatch)
		}
	}

	return tw.Flush()
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

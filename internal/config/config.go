package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/zaki1905/kirchhoff/internal/grading"
	"github.com/zaki1905/kirchhoff/internal/report"
)

// Config holds everything the checker needs to serve.
type Config struct {
	// Addr is the listen address for the HTTP API.
	Addr string

	// ProblemsPath optionally replaces the built-in problem table with an
	// instructor-supplied JSON file.
	ProblemsPath string

	// DiagramBaseURL is where the pre-rendered circuit diagrams live; the
	// set number completes the file name. Empty disables diagram links.
	DiagramBaseURL string

	// RevealDetail includes matched canonical names and expected currents in
	// student-facing results. Off by default: students see verdicts only.
	RevealDetail bool

	Report  ReportConfig
	Grading GradingConfig
}

// ReportConfig configures submission logging.
type ReportConfig struct {
	// URL is the Apps Script web-app endpoint. Empty disables logging;
	// grading still works and results say so.
	URL string

	// Secret is sent with each row when set, so the script can drop
	// requests that did not come from the checker.
	Secret string

	// Timeout bounds each delivery attempt.
	Timeout time.Duration

	// EquationsSheet and CurrentsSheet override the destination tab names
	// for the two submission kinds. Empty keeps the defaults.
	EquationsSheet string
	CurrentsSheet  string
}

// GradingConfig configures the current tolerance bands.
type GradingConfig struct {
	// ToleranceMilliamps is the full-credit band width.
	ToleranceMilliamps float64

	// AlmostMultiplier widens the band for partial credit.
	AlmostMultiplier float64
}

// DefaultConfig returns a Config with the deployed checker's defaults.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		DiagramBaseURL: "https://raw.githubusercontent.com/zaki1905/phy132-kirchhoff-checker/main/Diagrams",
		Report: ReportConfig{
			Timeout: report.DefaultTimeout,
		},
		Grading: GradingConfig{
			ToleranceMilliamps: 1.0,
			AlmostMultiplier:   2.0,
		},
	}
}

// FromEnv builds a Config from KIRCHHOFF_* environment variables, falling
// back to defaults for unset values. Set but unparsable values are errors:
// a misconfigured checker must not start.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("KIRCHHOFF_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("KIRCHHOFF_PROBLEMS"); v != "" {
		cfg.ProblemsPath = v
	}
	if v := os.Getenv("KIRCHHOFF_DIAGRAM_BASE_URL"); v != "" {
		cfg.DiagramBaseURL = v
	}
	if v := os.Getenv("KIRCHHOFF_REVEAL_DETAIL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("KIRCHHOFF_REVEAL_DETAIL: %w", err)
		}
		cfg.RevealDetail = b
	}

	if v := os.Getenv("KIRCHHOFF_REPORT_URL"); v != "" {
		cfg.Report.URL = v
	}
	if v := os.Getenv("KIRCHHOFF_REPORT_SECRET"); v != "" {
		cfg.Report.Secret = v
	}
	if v := os.Getenv("KIRCHHOFF_REPORT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("KIRCHHOFF_REPORT_TIMEOUT: %w", err)
		}
		cfg.Report.Timeout = d
	}
	if v := os.Getenv("KIRCHHOFF_SHEET_EQUATIONS"); v != "" {
		cfg.Report.EquationsSheet = v
	}
	if v := os.Getenv("KIRCHHOFF_SHEET_CURRENTS"); v != "" {
		cfg.Report.CurrentsSheet = v
	}

	if v := os.Getenv("KIRCHHOFF_TOLERANCE_MA"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("KIRCHHOFF_TOLERANCE_MA: %w", err)
		}
		cfg.Grading.ToleranceMilliamps = f
	}
	if v := os.Getenv("KIRCHHOFF_ALMOST_MULT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("KIRCHHOFF_ALMOST_MULT: %w", err)
		}
		cfg.Grading.AlmostMultiplier = f
	}

	return cfg, nil
}

// Validate checks that the configuration can run.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address is required")
	}
	if c.Report.Timeout <= 0 {
		return fmt.Errorf("report timeout must be positive, got %s", c.Report.Timeout)
	}
	return c.Tolerance().Validate()
}

// Tolerance converts the grading section into the engine's bands.
func (c Config) Tolerance() grading.Tolerance {
	return grading.Tolerance{
		CorrectMilliamps: c.Grading.ToleranceMilliamps,
		AlmostMultiplier: c.Grading.AlmostMultiplier,
	}
}

// Routes converts the sheet overrides into the reporter's routing map.
func (c Config) Routes() map[report.Sheet]string {
	routes := make(map[report.Sheet]string)
	if c.Report.EquationsSheet != "" {
		routes[report.SheetEquations] = c.Report.EquationsSheet
	}
	if c.Report.CurrentsSheet != "" {
		routes[report.SheetCurrents] = c.Report.CurrentsSheet
	}
	return routes
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Defaults applied when neither a config file nor flags provide a value.
// A bare invocation volleys the builtin suite at a local development server.
const (
	DefaultTarget  = "http://localhost:5000"
	DefaultTimeout = 5 * time.Second
	DefaultStagger = 100 * time.Millisecond
)

type Config struct {
	Target     string            `mapstructure:"target"`
	Timeout    time.Duration     `mapstructure:"timeout"`
	Stagger    time.Duration     `mapstructure:"stagger"`
	Repeat     int               `mapstructure:"repeat"`
	Headers    map[string]string `mapstructure:"headers"`
	CasesFile  string            `mapstructure:"cases"`
	Dataset    DatasetConfig     `mapstructure:"dataset"`
	RequestID  bool              `mapstructure:"request_id"`
	ConfigFile string            `mapstructure:"-"`
	Tracing    TracingConfig     `mapstructure:"tracing"`
}

type DatasetConfig struct {
	Path string `mapstructure:"path"`
	Type string `mapstructure:"type"` // "csv" or "json"
}

// TracingConfig controls OpenTelemetry span export for each call.
// Tracing is disabled unless Enabled is set in the config file.
type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"`
	Protocol    string  `mapstructure:"protocol"` // "grpc" or "http"
	ServiceName string  `mapstructure:"service_name"`
	Insecure    bool    `mapstructure:"insecure"`
	SampleRate  float64 `mapstructure:"sample_rate"`
	Propagate   bool    `mapstructure:"propagate"`
}

// ShouldPropagate reports whether W3C trace headers should be injected into
// outgoing requests. Propagation is implied whenever tracing is enabled.
func (t TracingConfig) ShouldPropagate() bool {
	return t.Enabled && (t.Propagate || t.Endpoint != "")
}

type ValidationError struct {
	issues []string
}

func (e ValidationError) Error() string {
	if len(e.issues) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.issues, "; "))
}

func (e ValidationError) Issues() []string {
	return append([]string(nil), e.issues...)
}

func (c Config) Validate() error {
	var issues []string

	if strings.TrimSpace(c.Target) == "" {
		issues = append(issues, "target is required (use --help for usage information)")
	}

	// Security warning for high repeat counts
	if c.Repeat > 500 {
		fmt.Fprintf(os.Stderr, "WARNING: High repeat count configured (%d). Ensure you have authorization to test the target system.\n", c.Repeat)
	}

	if c.Timeout <= 0 {
		issues = append(issues, "timeout must be > 0")
	}
	if c.Stagger < 0 {
		issues = append(issues, "stagger must be >= 0")
	}
	if c.Repeat < 1 {
		issues = append(issues, "repeat must be >= 1")
	}

	datasetIssues := validateDatasetConfig(c.Dataset, c.CasesFile)
	if len(datasetIssues) > 0 {
		issues = append(issues, datasetIssues...)
	}

	tracingIssues := validateTracingConfig(c.Tracing)
	if len(tracingIssues) > 0 {
		issues = append(issues, tracingIssues...)
	}

	if len(issues) > 0 {
		return ValidationError{issues: issues}
	}

	return nil
}

func validateDatasetConfig(dataset DatasetConfig, casesFile string) []string {
	var issues []string
	if strings.TrimSpace(dataset.Path) == "" {
		return nil // No dataset configured
	}

	if strings.TrimSpace(dataset.Type) == "" {
		issues = append(issues, "dataset: type is required when path is specified")
	} else if dataset.Type != "csv" && dataset.Type != "json" {
		issues = append(issues, fmt.Sprintf("dataset: type must be 'csv' or 'json', got %q", dataset.Type))
	}

	// The builtin suite carries no placeholders, so a dataset only makes
	// sense together with a cases file.
	if strings.TrimSpace(casesFile) == "" {
		issues = append(issues, "dataset: cases file is required when a dataset is configured")
	}

	return issues
}

func validateTracingConfig(tracing TracingConfig) []string {
	var issues []string
	if !tracing.Enabled {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(tracing.Protocol)) {
	case "", "grpc", "http":
	default:
		issues = append(issues, fmt.Sprintf("tracing: protocol must be 'grpc' or 'http', got %q", tracing.Protocol))
	}

	if tracing.SampleRate < 0 || tracing.SampleRate > 1.0 {
		issues = append(issues, fmt.Sprintf("tracing: sample_rate must be between 0.0 and 1.0, got %g", tracing.SampleRate))
	}

	return issues
}

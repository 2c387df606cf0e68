package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newFlagCommand creates a cobra command with all flags configured.
func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "postvolley",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(os.Stdout)
	configureFlags(cmd.Flags())
	return cmd
}

// configureFlags sets up all CLI flags on the provided flag set.
func configureFlags(flags *pflag.FlagSet) {
	// Target flags
	flags.StringP("target", "t", DefaultTarget, "Base URL of the API under test")
	flags.Duration("timeout", DefaultTimeout, "Per-request timeout")
	flags.StringSlice("header", nil, "Additional request header in key=value form (repeatable)")

	// Scheduling flags
	flags.Duration("stagger", DefaultStagger, "Delay between consecutive launches (0 launches all at once)")
	flags.IntP("repeat", "n", 1, "Number of times to run the case list")

	// Case source flags
	flags.String("cases", "", "Path to a YAML or JSON case file (omit to run the builtin suite)")
	flags.String("dataset-path", "", "Path to CSV or JSON records for placeholder expansion")
	flags.String("dataset-type", "", "Type of dataset file: 'csv' or 'json'")

	// Misc flags
	flags.Bool("request-id", true, "Attach a unique X-Request-Id header to each call")
	flags.String("config", "", "Path to configuration file (JSON or YAML)")
}

// displayHelp prints the help message for a command.
func displayHelp(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Usage: %s\n\nFlags:\n", cmd.UseLine())
	fs := cmd.Flags()
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// applyFlagOverrides applies command-line flag values to the config, overriding
// values from the config file.
func applyFlagOverrides(cfg *Config, fs *pflag.FlagSet) error {
	if fs.Changed("target") {
		val, err := fs.GetString("target")
		if err != nil {
			return err
		}
		cfg.Target = strings.TrimSpace(val)
	}
	if fs.Changed("timeout") {
		val, err := fs.GetDuration("timeout")
		if err != nil {
			return err
		}
		cfg.Timeout = val
	}
	if fs.Changed("stagger") {
		val, err := fs.GetDuration("stagger")
		if err != nil {
			return err
		}
		cfg.Stagger = val
	}
	if fs.Changed("repeat") {
		val, err := fs.GetInt("repeat")
		if err != nil {
			return err
		}
		cfg.Repeat = val
	}
	if fs.Changed("cases") {
		val, err := fs.GetString("cases")
		if err != nil {
			return err
		}
		cfg.CasesFile = strings.TrimSpace(val)
	}
	if fs.Changed("dataset-path") {
		val, err := fs.GetString("dataset-path")
		if err != nil {
			return err
		}
		cfg.Dataset.Path = strings.TrimSpace(val)
	}
	if fs.Changed("dataset-type") {
		val, err := fs.GetString("dataset-type")
		if err != nil {
			return err
		}
		cfg.Dataset.Type = strings.ToLower(strings.TrimSpace(val))
	}
	if fs.Changed("request-id") {
		val, err := fs.GetBool("request-id")
		if err != nil {
			return err
		}
		cfg.RequestID = val
	}

	vals, err := fs.GetStringSlice("header")
	if err != nil {
		return err
	}
	if len(vals) > 0 {
		if cfg.Headers == nil {
			cfg.Headers = map[string]string{}
		}
		for _, entry := range vals {
			parts := strings.SplitN(entry, "=", 2)
			if len(parts) != 2 {
				return fmt.Errorf("header must be in key=value format: %s", entry)
			}
			key := http.CanonicalHeaderKey(strings.TrimSpace(parts[0]))
			if key == "" {
				return fmt.Errorf("header key cannot be empty")
			}
			cfg.Headers[key] = strings.TrimSpace(parts[1])
		}
	}

	return nil
}

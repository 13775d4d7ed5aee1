package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/herdsim/internal/breakeven"
	"github.com/rgehrsitz/herdsim/internal/calculation"
	"github.com/rgehrsitz/herdsim/internal/config"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/internal/output"
	"github.com/rgehrsitz/herdsim/pkg/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "herdsim %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "herdsim",
	Short: "Buffalo herd investment projection CLI",
	Long: `Projects the revenue, costs, herd growth and break-even point of a buffalo
herd investment. Each unit is two founder buffaloes; offspring are born on a
fixed cycle and join the herd as they mature.

Without a configuration file the default simulation is used: one unit,
starting 1 January 2026, over 120 months.`,
}

var projectCmd = &cobra.Command{
	Use:   "project [input-file]",
	Short: "Project a herd and print the report",
	Long: `Project a herd and print the report.

Examples:
  herdsim project
  herdsim project herd.yaml --scenario "four units" --format csv
  herdsim project --units 3 --start 2026-06-15 --months 96 --cgf
  herdsim project herd.yaml --format pdf --output report.pdf`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runProject(cmd, args); err != nil {
			log.Fatal(err)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid (%d scenario%s)\n",
			args[0], len(cfg.Scenarios), plural(len(cfg.Scenarios)))
	},
}

var breakEvenCmd = &cobra.Command{
	Use:   "break-even [input-file]",
	Short: "Report when the investment is recovered",
	Long: `Report the revenue-only and total-value break-even months of a projection.

With --extend, a break-even point not reached inside the horizon is searched for
by projecting the same parameters out to the longest allowed horizon.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBreakEven(cmd, args); err != nil {
			log.Fatal(err)
		}
	},
}

// projection flags shared by every command that runs the engine
func addProjectionFlags(cmd *cobra.Command) {
	cmd.Flags().String("scenario", "", "Named scenario from the input file (default: the base simulation)")
	cmd.Flags().String("rules", "", "YAML file overriding the rules table")
	cmd.Flags().Int("units", 0, "Override the number of units")
	cmd.Flags().String("start", "", "Override the start date (YYYY-MM-DD)")
	cmd.Flags().Int("months", 0, "Override the horizon in months")
	cmd.Flags().Bool("cgf", false, "Deduct Cattle Growing Fund charges")
	cmd.Flags().Bool("debug", false, "Log engine details to stderr")
}

func init() {
	addProjectionFlags(projectCmd)
	projectCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv, csv-monthly, html, pdf)")
	projectCmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")

	addProjectionFlags(breakEvenCmd)
	breakEvenCmd.Flags().Bool("extend", false, "Search past the horizon for break-even points not yet reached")
	breakEvenCmd.Flags().String("format", "table", "Output format (table, json)")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(breakEvenCmd)
	rootCmd.AddCommand(versionCmd())
}

// loadConfiguration reads the input file, or returns the defaults when there is none
func loadConfiguration(args []string, rulesFile string) (*domain.Configuration, error) {
	parser := config.NewInputParser()

	var cfg *domain.Configuration
	if len(args) == 0 {
		def := domain.DefaultConfiguration()
		cfg = &def
	} else {
		loaded, err := parser.LoadFromFile(args[0])
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if rulesFile != "" {
		rules, err := parser.LoadRules(rulesFile)
		if err != nil {
			return nil, err
		}
		cfg.Rules = rules
	}
	return cfg, nil
}

// selectParameters picks the base simulation or a named scenario and applies flag overrides
func selectParameters(cmd *cobra.Command, cfg *domain.Configuration) (string, domain.SimulationParameters, error) {
	name := cfg.Name
	if name == "" {
		name = "base"
	}
	params := cfg.Simulation

	if scenario, _ := cmd.Flags().GetString("scenario"); scenario != "" {
		s, ok := cfg.FindScenario(scenario)
		if !ok {
			return "", params, fmt.Errorf("scenario %q not found in configuration", scenario)
		}
		name, params = s.Name, s.Parameters
	}

	params, err := applyOverrides(cmd, params)
	return name, params, err
}

// applyOverrides replaces parameters with the flags the user actually set
func applyOverrides(cmd *cobra.Command, params domain.SimulationParameters) (domain.SimulationParameters, error) {
	flags := cmd.Flags()
	if flags.Changed("units") {
		params.UnitCount, _ = flags.GetInt("units")
	}
	if flags.Changed("months") {
		params.DurationMonths, _ = flags.GetInt("months")
	}
	if flags.Changed("cgf") {
		params.CGFEnabled, _ = flags.GetBool("cgf")
	}
	if flags.Changed("start") {
		start, _ := flags.GetString("start")
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return params, fmt.Errorf("invalid --start %q: expected YYYY-MM-DD", start)
		}
		params.StartYear = t.Year()
		params.StartMonth = int(t.Month()) - 1
		params.StartDay = t.Day()
	}
	return params, nil
}

// newEngine builds an engine for the rules, logging to stderr when --debug is set
func newEngine(cmd *cobra.Command, rules domain.Rules) *calculation.Engine {
	engine := calculation.NewEngineWithRules(rules)
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		zl := logger.Must(logger.NewConsole("debug"))
		engine.SetLogger(logger.Named(zl, "engine").Sugar())
	}
	return engine
}

// projectFromFlags loads the configuration and runs one projection
func projectFromFlags(cmd *cobra.Command, args []string) (*calculation.Engine, *domain.ProjectionResult, error) {
	rulesFile, _ := cmd.Flags().GetString("rules")
	cfg, err := loadConfiguration(args, rulesFile)
	if err != nil {
		return nil, nil, err
	}

	_, params, err := selectParameters(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}

	engine := newEngine(cmd, cfg.Rules)
	result, err := engine.Project(params)
	if err != nil {
		return nil, nil, err
	}
	return engine, result, nil
}

func runProject(cmd *cobra.Command, args []string) error {
	_, result, err := projectFromFlags(cmd, args)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unknown format %q (available: %v)", format, output.FormatterNames())
	}

	outputFile, _ := cmd.Flags().GetString("output")
	switch {
	case outputFile != "":
		data, err := f.Format(result)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outputFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", outputFile)
	case format == "pdf":
		// binary output does not go to a terminal
		filename, err := output.WriteFormatted(f, result, output.Extension(format))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", filename)
	default:
		data, err := f.Format(result)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return nil
}

func runBreakEven(cmd *cobra.Command, args []string) error {
	engine, result, err := projectFromFlags(cmd, args)
	if err != nil {
		return err
	}

	extend, _ := cmd.Flags().GetBool("extend")
	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()

	if !extend {
		if format == "json" {
			return writeString(out)((&breakeven.JSONFormatter{Pretty: true}).Format(result.BreakEven))
		}
		_, err := io.WriteString(out, (&breakeven.TableFormatter{}).Format(result))
		return err
	}

	ext, err := breakeven.Extend(engine, result)
	if err != nil {
		return err
	}
	if format == "json" {
		return writeString(out)((&breakeven.JSONFormatter{Pretty: true}).FormatExtension(ext))
	}
	_, err = io.WriteString(out, (&breakeven.TableFormatter{}).FormatExtension(ext))
	return err
}

// writeString adapts a formatter's (string, error) result to a write
func writeString(w io.Writer) func(string, error) error {
	return func(s string, err error) error {
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s+"\n")
		return err
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

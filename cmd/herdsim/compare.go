package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/herdsim/internal/calculation"
	"github.com/rgehrsitz/herdsim/internal/compare"
	"github.com/rgehrsitz/herdsim/internal/transform"
)

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare what-if templates or saved scenarios",
	Long: `Compare the base simulation against what-if templates, or against the
named scenarios of the input file.

Examples:
  herdsim compare --with add_unit,with_cgf
  herdsim compare herd.yaml --scenario "four units" --with horizon_5yr --format csv
  herdsim compare herd.yaml --scenarios all
  herdsim compare --list-templates  # Show all available templates
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
			fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
			return
		}
		if err := runCompare(cmd, args); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	addProjectionFlags(compareCmd)
	compareCmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	compareCmd.Flags().String("scenarios", "", `Comma-separated scenario names from the input file, or "all"`)
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	compareCmd.Flags().Bool("list-templates", false, "List all available scenario templates")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	templatesStr, _ := cmd.Flags().GetString("with")
	scenariosStr, _ := cmd.Flags().GetString("scenarios")
	if templatesStr == "" && scenariosStr == "" {
		return errors.New("--with or --scenarios is required (use --list-templates to see available templates)")
	}
	if scenariosStr != "" && len(args) == 0 {
		return errors.New("--scenarios needs an input file")
	}

	rulesFile, _ := cmd.Flags().GetString("rules")
	cfg, err := loadConfiguration(args, rulesFile)
	if err != nil {
		return err
	}

	projector, err := calculation.NewCachedEngine(newEngine(cmd, cfg.Rules), calculation.DefaultCacheSize)
	if err != nil {
		return err
	}
	engine := compare.NewCompareEngine(projector)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var compSet *compare.ComparisonSet
	if scenariosStr != "" {
		var names []string
		if scenariosStr != "all" {
			names = transform.ParseTemplateList(scenariosStr)
		}
		compSet, err = engine.CompareScenarios(ctx, cfg, names)
	} else {
		templateNames := transform.ParseTemplateList(templatesStr)
		if len(templateNames) == 0 {
			return errors.New("no valid templates specified in --with flag")
		}

		name, params, perr := selectParameters(cmd, cfg)
		if perr != nil {
			return perr
		}
		compSet, err = engine.Compare(ctx, params, compare.CompareOptions{
			BaseScenarioName: name,
			Templates:        templateNames,
		})
	}
	if err != nil {
		return err
	}
	if len(args) > 0 {
		compSet.ConfigPath = args[0]
	}

	format, _ := cmd.Flags().GetString("format")
	var out string
	switch strings.ToLower(format) {
	case "table":
		out = (&compare.TableFormatter{}).Format(compSet)
	case "compact":
		out = (&compare.TableFormatter{}).FormatCompact(compSet)
	case "csv":
		out, err = (&compare.CSVFormatter{}).Format(compSet)
	case "json":
		out, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
	default:
		return fmt.Errorf("unsupported format %q (table, compact, csv, json)", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

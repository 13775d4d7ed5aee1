package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/herdsim/internal/output"
)

var rosterCmd = &cobra.Command{
	Use:   "roster [input-file]",
	Short: "Print the herd's family tree at the end of the horizon",
	Long: `Print every founder and calf of the representative unit as a family tree,
with age and value at the end of the horizon. Use --all to list every unit.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, result, err := projectFromFlags(cmd, args)
		if err != nil {
			log.Fatal(err)
		}
		all, _ := cmd.Flags().GetBool("all")
		fmt.Fprint(cmd.OutOrStdout(), output.FormatRoster(result, all))
	},
}

func init() {
	addProjectionFlags(rosterCmd)
	rosterCmd.Flags().Bool("all", false, "List every unit instead of the representative one")

	rootCmd.AddCommand(rosterCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pdiddy/biogenerator/internal/world"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Work with scenario files",
}

var scenarioValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a scenario file for errors",
	Long: `Validate parses a scenario file and checks field constraints and
cross references (reagents, produce solutions, container contents).
Defaults to the configured scenario path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appConfig.Scenario.Path
		if len(args) > 0 {
			path = args[0]
		}
		w, err := world.Load(path)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("%s: %d entities", path, len(w.Scenario().Entities))
		return nil
	},
}

func init() {
	scenarioCmd.AddCommand(scenarioValidateCmd)
	rootCmd.AddCommand(scenarioCmd)
}

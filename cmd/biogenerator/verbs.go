// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/biogenerator/pkg/types"
)

var verbsCmd = &cobra.Command{
	Use:   "verbs <extractor>",
	Short: "List the actions an extractor currently offers",
	Long: `Verbs prints the localized dump verb of an extractor. Unpowered
extractors offer no dump verb.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(appConfig)
		if err != nil {
			return err
		}
		defer sess.Close()

		key, vargs, ok := sess.system.DumpVerb(types.EntityID(args[0]))
		if !ok {
			fmt.Println("No verbs available.")
			return nil
		}
		fmt.Printf("dump: %s\n", sess.sink.Text(key, vargs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verbsCmd)
}

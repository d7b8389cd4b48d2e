// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pdiddy/biogenerator/internal/feedback"
	"github.com/pdiddy/biogenerator/pkg/types"
)

// --- interact subcommand ---

var interactCmd = &cobra.Command{
	Use:   "interact <extractor> <item>",
	Short: "Use an item (or a bag of produce) on an extractor",
	Long: `Interact puts one item into a produce extractor. If the item is a
container, every stored item is tried first; the item itself is tried
afterwards. Each item with a positive yield is credited to the
extractor's material storage and removed from the world.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		actor, _ := cmd.Flags().GetString("actor")
		return runTrigger(cmd, types.Trigger{
			Kind:      types.TriggerInteract,
			Extractor: types.EntityID(args[0]),
			Actor:     types.EntityID(actor),
			Used:      types.EntityID(args[1]),
		})
	},
}

// --- dump subcommand ---

var dumpCmd = &cobra.Command{
	Use:   "dump <extractor> <container>",
	Short: "Dump every item from a container into an extractor",
	Long: `Dump empties a container into a produce extractor. Stored items are
queued in storage order and extracted one at a time; nested containers
are not opened.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		actor, _ := cmd.Flags().GetString("actor")

		sess, err := openSession(appConfig)
		if err != nil {
			return err
		}
		defer sess.Close()

		queue, err := sess.world.DumpQueue(types.EntityID(args[1]))
		if err != nil {
			return err
		}
		return fireAndReport(cmd, sess, types.Trigger{
			Kind:      types.TriggerDump,
			Extractor: types.EntityID(args[0]),
			Actor:     types.EntityID(actor),
			Queue:     queue,
		})
	},
}

func runTrigger(cmd *cobra.Command, t types.Trigger) error {
	sess, err := openSession(appConfig)
	if err != nil {
		return err
	}
	defer sess.Close()
	return fireAndReport(cmd, sess, t)
}

// triggerReport is the JSON form of a handled trigger.
type triggerReport struct {
	Result types.TriggerResult `json:"result"`
	Popups []feedback.Popup    `json:"popups"`
	Sounds []feedback.Sound    `json:"sounds"`
}

func fireAndReport(cmd *cobra.Command, sess *session, t types.Trigger) error {
	res, err := sess.fire(context.Background(), t, appConfig.Scenario)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(triggerReport{Result: res, Popups: sess.sink.Popups, Sounds: sess.sink.Sounds})
	}

	for _, p := range sess.sink.Popups {
		pterm.Warning.Printfln("[%s] %s", p.Recipient, p.Text)
	}
	for _, s := range sess.sink.Sounds {
		pterm.Info.Printfln("sound %s at %s", s.Sound, s.At)
	}
	if !res.Handled {
		pterm.Info.Printfln("%s: nothing extracted", t.Extractor)
		return nil
	}
	pterm.Success.Printfln("%s: extracted %d material from %d item(s)", t.Extractor, res.Credited, len(res.Consumed))
	return nil
}

func init() {
	for _, c := range []*cobra.Command{interactCmd, dumpCmd} {
		c.Flags().String("actor", "player", "entity performing the action")
		c.Flags().Bool("json", false, "output the result as JSON")
		rootCmd.AddCommand(c)
	}
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Generate a structured summary with weighted concept tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		engine, cleanup, err := newEngine(ctx, cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		id, err := ingestArg(cmd, engine, args[0])
		if err != nil {
			return err
		}

		summary, err := engine.Summarize(ctx, id)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(os.Stdout).Encode(summary)
		}

		fmt.Println(summary.Title)
		fmt.Println(strings.Repeat("=", len(summary.Title)))
		fmt.Println()
		fmt.Println(summary.Summary)
		fmt.Println()
		fmt.Println("Key points:")
		for _, p := range summary.KeyPoints {
			fmt.Printf("  - %s\n", p)
		}
		fmt.Println()
		fmt.Println("Concepts:")

		for _, tag := range summary.TagsByImportance() {
			entry := summary.ConceptHeatmap[tag.Name]
			fmt.Printf("  %-40s %2d  (weight %.3f)\n", tag.Name, tag.Importance, entry.Weight)
		}
		return nil
	},
}

func init() {
	summarizeCmd.Flags().Bool("json", false, "Print the summary as JSON")
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <file>",
	Short: "Generate a multiple-choice question set",
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

		if quick, _ := cmd.Flags().GetBool("quick"); quick {
			set, err := engine.QuickMCQs(ctx, id)
			if err != nil {
				return err
			}
			return json.NewEncoder(os.Stdout).Encode(set)
		}

		set, err := engine.MCQs(ctx, id)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(os.Stdout).Encode(set)
		}

		labels := []string{"A", "B", "C", "D"}
		for i, mcq := range set.MCQs {
			fmt.Printf("%d. [%s] %s\n", i+1, mcq.Difficulty, mcq.Question)
			for j, opt := range mcq.Options {
				marker := " "
				if opt.IsCorrect {
					marker = "*"
				}
				fmt.Printf("   %s %s) %s\n", marker, labels[j], opt.Option)
			}
			fmt.Printf("   > %s\n\n", mcq.Explanation)
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().Bool("quick", false, "Generate the strict five-question plain set (always JSON)")
	quizCmd.Flags().Bool("json", false, "Print the question set as JSON")
}

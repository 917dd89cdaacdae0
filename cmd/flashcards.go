package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flashcardsCmd = &cobra.Command{
	Use:   "flashcards <file>",
	Short: "Generate revision flashcards",
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

		cards, err := engine.Flashcards(ctx, id)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(os.Stdout).Encode(cards)
		}

		for i, card := range cards {
			fmt.Printf("%d. Q: %s\n   A: %s\n\n", i+1, card.Question, card.Answer)
		}
		return nil
	},
}

func init() {
	flashcardsCmd.Flags().Bool("json", false, "Print flashcards as JSON")
}

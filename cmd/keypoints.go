package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var keypointsCmd = &cobra.Command{
	Use:   "keypoints <file>",
	Short: "Extract key points for revision",
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

		points, err := engine.KeyPoints(ctx, id)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(os.Stdout).Encode(points)
		}

		for _, p := range points {
			fmt.Printf("- %s\n", p)
		}
		return nil
	},
}

func init() {
	keypointsCmd.Flags().Bool("json", false, "Print key points as JSON")
}

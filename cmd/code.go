package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Harshith-vm/ai-learning-platform/internal/codelab"
	"github.com/Harshith-vm/ai-learning-platform/internal/journal"
	"github.com/Harshith-vm/ai-learning-platform/internal/llm"
)

var codeCmd = &cobra.Command{
	Use:   "code",
	Short: "Analyze a source file (explain, complexity, quality, refactor)",
}

var codeExplainCmd = &cobra.Command{
	Use:   "explain <file>",
	Short: "Explain what the code does",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCodeText(cmd, args[0], func(ctx context.Context, a *codelab.Analyzer, code, lang string) (string, error) {
			if stepwise, _ := cmd.Flags().GetBool("steps"); stepwise {
				return a.ExplainStepwise(ctx, code, lang)
			}
			return a.Explain(ctx, code, lang)
		})
	},
}

var codeImproveCmd = &cobra.Command{
	Use:   "improve <file>",
	Short: "Suggest concrete improvements without rewriting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCodeText(cmd, args[0], func(ctx context.Context, a *codelab.Analyzer, code, lang string) (string, error) {
			return a.Improvements(ctx, code, lang)
		})
	},
}

var codeRefactorCmd = &cobra.Command{
	Use:   "refactor <file>",
	Short: "Print a refactored rendition with the same behavior",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCodeText(cmd, args[0], func(ctx context.Context, a *codelab.Analyzer, code, lang string) (string, error) {
			return a.Refactor(ctx, code, lang)
		})
	},
}

var codeComplexityCmd = &cobra.Command{
	Use:   "complexity <file>",
	Short: "Report Big-O time and space complexity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, code, lang, cleanup, err := codeSetup(cmd, args[0])
		if err != nil {
			return err
		}
		defer cleanup()

		report, err := a.Complexity(cmd.Context(), code, lang)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(os.Stdout).Encode(report)
		}
		fmt.Printf("Time:  %s\n", report.TimeComplexity)
		fmt.Printf("Space: %s\n", report.SpaceComplexity)
		fmt.Printf("\n%s\n", report.Justification)
		return nil
	},
}

var codeQualityCmd = &cobra.Command{
	Use:   "quality <file>",
	Short: "Score the code 0-10 on readability, efficiency, maintainability",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, code, lang, cleanup, err := codeSetup(cmd, args[0])
		if err != nil {
			return err
		}
		defer cleanup()

		score, err := a.Quality(cmd.Context(), code, lang)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return json.NewEncoder(os.Stdout).Encode(score)
		}
		fmt.Printf("Readability:     %2d/10\n", score.Readability)
		fmt.Printf("Efficiency:      %2d/10\n", score.Efficiency)
		fmt.Printf("Maintainability: %2d/10\n", score.Maintainability)
		fmt.Printf("Overall:         %2d/10\n", score.Overall)
		fmt.Printf("\n%s\n", score.Summary)
		return nil
	},
}

// codeSetup loads the file, detects the language (unless --lang overrides
// it), and wires an Analyzer with the journal-backed provider.
func codeSetup(cmd *cobra.Command, path string) (*codelab.Analyzer, string, string, func(), error) {
	log := newLogger()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", "", nil, fmt.Errorf("read %s: %w", path, err)
	}

	lang, _ := cmd.Flags().GetString("lang")
	if lang == "" {
		lang = codelab.DetectLanguage(path)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, "", "", nil, fmt.Errorf("resolve journal path: %w", err)
	}
	j, err := journal.Open(dbPath)
	if err != nil {
		return nil, "", "", nil, fmt.Errorf("open journal: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), j, log)
	if err != nil {
		j.Close()
		return nil, "", "", nil, err
	}

	cleanup := func() {
		j.Close()
		_ = log.Sync()
	}
	return codelab.NewAnalyzer(provider, log), string(data), lang, cleanup, nil
}

func runCodeText(cmd *cobra.Command, path string, fn func(context.Context, *codelab.Analyzer, string, string) (string, error)) error {
	a, code, lang, cleanup, err := codeSetup(cmd, path)
	if err != nil {
		return err
	}
	defer cleanup()

	text, err := fn(cmd.Context(), a, code, lang)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

func init() {
	codeCmd.PersistentFlags().String("lang", "", "Override the language detected from the file extension")
	codeExplainCmd.Flags().Bool("steps", false, "Explain step by step")
	codeComplexityCmd.Flags().Bool("json", false, "Print the report as JSON")
	codeQualityCmd.Flags().Bool("json", false, "Print the score as JSON")

	codeCmd.AddCommand(codeExplainCmd)
	codeCmd.AddCommand(codeImproveCmd)
	codeCmd.AddCommand(codeRefactorCmd)
	codeCmd.AddCommand(codeComplexityCmd)
	codeCmd.AddCommand(codeQualityCmd)
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Harshith-vm/ai-learning-platform/internal/document"
	"github.com/Harshith-vm/ai-learning-platform/internal/journal"
	"github.com/Harshith-vm/ai-learning-platform/internal/learning"
	"github.com/Harshith-vm/ai-learning-platform/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "learnforge",
	Short: "Turn documents into assessments",
	Long:  "Learnforge — terminal learning pipeline that summarizes documents, generates quizzes and study aids, and measures learning gain with adaptive pre/post tests.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the oracle journal SQLite file (overrides LEARNFORGE_DB env var)")
	rootCmd.PersistentFlags().Int("chunk-size", document.DefaultChunkSize, "Maximum chunk size in characters")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(flashcardsCmd)
	rootCmd.AddCommand(keypointsCmd)
	rootCmd.AddCommand(codeCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the journal path using --db (highest priority),
// then LEARNFORGE_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, journal.EnsureDir(p)
	}
	return journal.DefaultPath()
}

// newLogger builds the CLI logger: warnings and errors on stderr, debug
// detail when LEARNFORGE_DEBUG is set.
func newLogger() *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if os.Getenv("LEARNFORGE_DEBUG") != "" {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// newEngine wires store, journal, provider, and engine for one command
// run. The returned cleanup closes the journal.
func newEngine(ctx context.Context, cmd *cobra.Command) (*learning.Engine, func(), error) {
	log := newLogger()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve journal path: %w", err)
	}
	j, err := journal.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open journal: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, j, log)
	if err != nil {
		j.Close()
		return nil, nil, err
	}

	engine := learning.NewEngine(document.NewMemoryStore(), provider, log)
	cleanup := func() {
		j.Close()
		_ = log.Sync()
	}
	return engine, cleanup, nil
}

// ingestArg loads the file argument into the engine and returns the
// document id.
func ingestArg(cmd *cobra.Command, engine *learning.Engine, path string) (string, error) {
	chunkSize, _ := cmd.Flags().GetInt("chunk-size")
	return engine.Ingest(path, chunkSize)
}

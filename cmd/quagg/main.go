// Package main provides the CLI entry point for quagg.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"quagg/pkg/quagg"
	"quagg/pkg/quagg/output"
	"quagg/pkg/quagg/parser"
	"quagg/pkg/quagg/source"
)

var (
	mode       string
	basePath   string
	outputPath string
	comments   string
	strict     bool
	verbose    bool
	siteURL    string
	folderPath string

	logger *zap.Logger
)

func main() {
	// Optional .env next to the working directory; flags override.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "quagg",
		Short: "Aggregate Excel questionnaires into a single spreadsheet",
		Long: `quagg scans folders of fixed-layout Excel questionnaires, on the local
filesystem or in a SharePoint document library, and aggregates every
file's data into one flat spreadsheet with a stable column schema.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: run,
	}

	rootCmd.Flags().StringVar(&mode, "mode", envOr("MODE", "local"), "Source mode: local, sharepoint")
	rootCmd.Flags().StringVar(&basePath, "base-path", os.Getenv("BASE_PATH"), "Base directory to scan in local mode (default: working directory)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", envOr("OUTPUT_FILE", "aggregated_questionnaires.xlsx"), "Output xlsx path")
	rootCmd.Flags().StringVar(&comments, "comments", envOr("COMMENT_MODE", string(parser.CommentColumn)), "Column D mapping: comment, fallback")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Skip files whose question block is entirely empty")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&siteURL, "site-url", os.Getenv("SHAREPOINT_SITE_URL"), "SharePoint site URL (sharepoint mode)")
	rootCmd.Flags().StringVar(&folderPath, "folder-path", os.Getenv("QUESTIONNAIRE_FOLDER_PATH"), "Server-relative questionnaire folder (sharepoint mode)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := parser.Options{StrictLayout: strict}
	switch comments {
	case string(parser.CommentColumn):
		opts.Comments = parser.CommentColumn
	case string(parser.CommentFallback):
		opts.Comments = parser.CommentFallback
	default:
		return fmt.Errorf("invalid comments mode: %s (must be comment or fallback)", comments)
	}

	src, err := buildSource()
	if err != nil {
		return err
	}

	table, err := quagg.Run(cmd.Context(), src, opts, logger)
	if err != nil {
		return fmt.Errorf("aggregation failed: %w", err)
	}

	if err := output.WriteTable(table, outputPath); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("Aggregated data written to: %s\n", outputPath)
	fmt.Printf("Files discovered: %d, records added: %d, skipped: %d\n",
		table.Summary.FilesDiscovered, table.Summary.RecordsAdded, len(table.Summary.Skips))
	for _, skip := range table.Summary.Skips {
		fmt.Printf("  skipped %s (%s)\n", skip.Source, skip.Reason)
	}
	return nil
}

func buildSource() (source.Source, error) {
	switch mode {
	case "local":
		base := basePath
		if base == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("resolve working directory: %w", err)
			}
			base = wd
		}
		return source.NewLocal(base), nil
	case "sharepoint":
		if siteURL == "" || folderPath == "" {
			return nil, fmt.Errorf("sharepoint mode requires --site-url and --folder-path " +
				"(or SHAREPOINT_SITE_URL and QUESTIONNAIRE_FOLDER_PATH)")
		}
		token := os.Getenv("SHAREPOINT_AUTH_TOKEN")
		return source.NewSharePoint(siteURL, folderPath, token, nil), nil
	default:
		return nil, fmt.Errorf("invalid mode: %s (must be local or sharepoint)", mode)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Package quagg orchestrates the questionnaire aggregation pipeline:
// enumerate folders and files from a source, extract a record per file,
// and collect everything into one flat table.
package quagg

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"quagg/pkg/quagg/aggregate"
	"quagg/pkg/quagg/models"
	"quagg/pkg/quagg/parser"
	"quagg/pkg/quagg/source"
)

// Run processes every spreadsheet under every folder of src, sequentially
// and in enumeration order, and returns the aggregate table. Per-file and
// per-folder failures are logged, counted in the summary, and skipped; the
// run fails only if the top-level folder listing cannot be obtained.
func Run(ctx context.Context, src source.Source, opts parser.Options, logger *zap.Logger) (*models.Table, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	folders, err := src.Folders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	logger.Info("folders discovered", zap.Int("count", len(folders)))

	agg := aggregate.New()
	for _, folder := range folders {
		files, err := src.Files(ctx, folder)
		if err != nil {
			logger.Warn("folder listing failed",
				zap.String("folder", folder.Name), zap.Error(err))
			agg.Skip(folder.Name, models.SkipSourceUnavailable)
			continue
		}
		logger.Debug("processing folder",
			zap.String("folder", folder.Name), zap.Int("files", len(files)))

		for _, file := range files {
			agg.Discovered()
			label := folder.Name
			if len(files) > 1 {
				label = folder.Name + "/" + file.Name
			}

			rec, err := extractOne(ctx, src, file, label, opts)
			if err != nil {
				reason := classify(err)
				logger.Warn("skipping file",
					zap.String("source", label),
					zap.String("reason", string(reason)),
					zap.Error(err))
				agg.Skip(label, reason)
				continue
			}
			agg.Add(rec)
			logger.Debug("record added",
				zap.String("source", label),
				zap.String("application", rec.Application))
		}
	}

	table := agg.Finalize()
	logger.Info("aggregation complete",
		zap.Int("files_discovered", table.Summary.FilesDiscovered),
		zap.Int("records_added", table.Summary.RecordsAdded),
		zap.Int("files_skipped", len(table.Summary.Skips)))
	return table, nil
}

func extractOne(ctx context.Context, src source.Source, file source.File, label string, opts parser.Options) (*models.Record, error) {
	grid, err := src.Open(ctx, file)
	if err != nil {
		return nil, err
	}
	defer grid.Close()
	return parser.Extract(grid, label, opts)
}

func classify(err error) models.SkipReason {
	switch {
	case errors.Is(err, source.ErrUnavailable):
		return models.SkipSourceUnavailable
	case errors.Is(err, parser.ErrMalformedLayout):
		return models.SkipMalformedLayout
	default:
		return models.SkipUnreadable
	}
}

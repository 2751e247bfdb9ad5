package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"lottotrack/config"

	log "github.com/sirupsen/logrus"
)

// Import loads draw history from CSV files and optionally refreshes the
// number statistics afterwards. Every file is imported in its own
// transaction, so one bad file does not undo the others.
func Import(ctx context.Context, paths []string, refresh bool) error {
	cfg := config.Get()
	if err := ConfigureLogging(cfg); err != nil {
		return err
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	var failed int
	for _, path := range paths {
		if err := importFile(ctx, a, path); err != nil {
			failed++
			log.WithError(err).WithField("path", path).Error("Draw import failed")
		}
	}

	if refresh && ctx.Err() == nil {
		summary, err := a.statService.RefreshStatistics(ctx, "import")
		if err != nil {
			return fmt.Errorf("failed to refresh statistics: %w", err)
		}
		log.WithFields(log.Fields{
			"draws":        summary.DrawCount,
			"latestDrawNo": summary.LatestDrawNo,
		}).Info("Statistics refreshed")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to import", failed, len(paths))
	}
	return nil
}

func importFile(ctx context.Context, a *app, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	report, err := a.importService.ImportCSV(ctx, filepath.Base(path), f)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d rows, %d new, %d duplicates, %d invalid (latest draw #%d)\n",
		path, report.Read, report.Inserted, report.Duplicates, report.Invalid, report.LatestDrawNo)
	return nil
}

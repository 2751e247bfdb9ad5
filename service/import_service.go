package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"lottotrack/events"
	"lottotrack/models"

	log "github.com/sirupsen/logrus"
)

// drawDateLayouts are the accepted draw date formats, tried in order
var drawDateLayouts = []string{"2006-01-02", "2006.01.02", "2006/01/02"}

// drawColumnAliases maps header names to draw fields. Both the English
// names and the headers of the official result export are accepted.
var drawColumnAliases = map[string]string{
	"draw_no":   "draw_no",
	"회차":        "draw_no",
	"draw_date": "draw_date",
	"추첨일":       "draw_date",
	"n1":        "n1",
	"1":         "n1",
	"n2":        "n2",
	"2":         "n2",
	"n3":        "n3",
	"3":         "n3",
	"n4":        "n4",
	"4":         "n4",
	"n5":        "n5",
	"5":         "n5",
	"n6":        "n6",
	"6":         "n6",
	"bonus":     "bonus",
	"보너스":       "bonus",
}

var requiredDrawColumns = []string{"draw_no", "draw_date", "n1", "n2", "n3", "n4", "n5", "n6", "bonus"}

// importService implements the ImportService interface
type importService struct {
	uowFactory UnitOfWorkFactory
}

// NewImportService creates a new import service
func NewImportService(uowFactory UnitOfWorkFactory) ImportService {
	return &importService{uowFactory: uowFactory}
}

// ImportCSV parses historical draws from CSV and inserts the ones not yet
// stored. Rows that do not form a complete draw are logged and skipped.
func (s *importService) ImportCSV(ctx context.Context, source string, r io.Reader) (*models.ImportReport, error) {
	draws, report, err := parseDrawCSV(source, r)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", ErrStorageFailure, err)
	}
	defer uow.Rollback()

	inserted, err := uow.DrawRepository().InsertIgnoringDuplicates(ctx, draws)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	report.Inserted = inserted
	report.Duplicates = len(draws) - inserted

	latest, err := uow.DrawRepository().LatestDrawNo(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	report.LatestDrawNo = latest

	uow.EventBus().Publish(events.DrawsImportedEvent{
		Source:       source,
		Inserted:     report.Inserted,
		Skipped:      report.Invalid + report.Duplicates,
		LatestDrawNo: latest,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit draw import: %w", ErrStorageFailure, err)
	}

	log.WithFields(log.Fields{
		"source":     source,
		"read":       report.Read,
		"inserted":   report.Inserted,
		"invalid":    report.Invalid,
		"duplicates": report.Duplicates,
	}).Info("Imported draws")

	return report, nil
}

func parseDrawCSV(source string, r io.Reader) ([]models.Draw, *models.ImportReport, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to read header of %s: %w", ErrInvalidImport, source, err)
	}

	columns, err := drawColumnIndex(header)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrInvalidImport, source, err)
	}

	report := &models.ImportReport{Source: source}
	var draws []models.Draw
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			report.Invalid++
			log.WithError(err).WithFields(log.Fields{"source": source, "line": line}).Warn("Skipping unreadable row")
			continue
		}
		report.Read++

		draw, err := parseDrawRecord(record, columns)
		if err != nil {
			report.Invalid++
			log.WithError(err).WithFields(log.Fields{"source": source, "line": line}).Warn("Skipping invalid draw row")
			continue
		}
		draws = append(draws, draw)
	}

	return draws, report, nil
}

func drawColumnIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(requiredDrawColumns))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if field, ok := drawColumnAliases[strings.ToLower(name)]; ok {
			columns[field] = i
		}
	}

	var missing []string
	for _, field := range requiredDrawColumns {
		if _, ok := columns[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns %s", strings.Join(missing, ", "))
	}
	return columns, nil
}

func parseDrawRecord(record []string, columns map[string]int) (models.Draw, error) {
	var d models.Draw

	field := func(name string) (string, error) {
		idx := columns[name]
		if idx >= len(record) {
			return "", fmt.Errorf("missing %s", name)
		}
		return strings.TrimSpace(record[idx]), nil
	}
	number := func(name string) (int, error) {
		raw, err := field(name)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q", name, raw)
		}
		return n, nil
	}

	var err error
	if d.DrawNo, err = number("draw_no"); err != nil {
		return d, err
	}
	if d.DrawNo < 1 {
		return d, fmt.Errorf("invalid draw_no %d", d.DrawNo)
	}

	rawDate, err := field("draw_date")
	if err != nil {
		return d, err
	}
	if d.DrawDate, err = parseDrawDate(rawDate); err != nil {
		return d, err
	}

	for i, name := range []string{"n1", "n2", "n3", "n4", "n5", "n6"} {
		if d.Numbers[i], err = number(name); err != nil {
			return d, err
		}
	}
	if d.Bonus, err = number("bonus"); err != nil {
		return d, err
	}

	if !d.IsComplete() {
		return d, fmt.Errorf("draw %d is not six distinct numbers plus a distinct bonus in %d..%d",
			d.DrawNo, models.MinNumber, models.MaxNumber)
	}
	return d, nil
}

func parseDrawDate(raw string) (time.Time, error) {
	for _, layout := range drawDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid draw_date %q", raw)
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"slovanglik/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// wordRow is one spreadsheet row for the canonical words table
type wordRow struct {
	Word        string `db:"word"`
	Translation string `db:"translation"`
	Category    string `db:"category"`
	Level       int    `db:"level"`
}

const insertWord = `
	INSERT INTO words (word, translation, category, level)
	VALUES (:word, :translation, :category, :level)
	ON CONFLICT (word, translation, category, level) DO NOTHING
`

// Imports canonical words from a spreadsheet with columns
// word | translation | category | level, one header row.
func main() {
	filePath := flag.String("file", "", "path to the .xlsx file")
	sheet := flag.String("sheet", "Sheet1", "sheet to read")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *filePath == "" {
		logger.Fatal("Flag -file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	imported, skipped, err := importWords(db, *filePath, *sheet)
	if err != nil {
		logger.Fatal("Import failed", zap.Error(err))
	}

	logger.Info("Import finished",
		zap.String("file", *filePath),
		zap.Int("imported", imported),
		zap.Int("skipped", skipped),
	)
}

// importWords reads the sheet and inserts each valid row, skipping rows
// already present and rows it cannot parse
func importWords(db *sqlx.DB, filePath, sheet string) (imported, skipped int, err error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	for i, row := range rows {
		if i == 0 {
			// Header row
			continue
		}

		record, ok := parseRow(row)
		if !ok {
			skipped++
			continue
		}

		res, err := db.NamedExec(insertWord, record)
		if err != nil {
			return imported, skipped, fmt.Errorf("row %d: %w", i+1, err)
		}

		if n, _ := res.RowsAffected(); n == 0 {
			skipped++
		} else {
			imported++
		}
	}

	return imported, skipped, nil
}

// parseRow normalizes one spreadsheet row
func parseRow(row []string) (wordRow, bool) {
	if len(row) < 4 {
		return wordRow{}, false
	}

	record := wordRow{
		Word:        strings.ToLower(strings.TrimSpace(row[0])),
		Translation: strings.ToLower(strings.TrimSpace(row[1])),
		Category:    strings.ToLower(strings.TrimSpace(row[2])),
	}

	level, err := strconv.Atoi(strings.TrimSpace(row[3]))
	if err != nil || level < 1 {
		return wordRow{}, false
	}
	record.Level = level

	if record.Word == "" || record.Translation == "" || record.Category == "" {
		return wordRow{}, false
	}
	return record, true
}

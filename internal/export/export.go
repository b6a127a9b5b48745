package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lensware/framesdirect-scraper/internal/models"
)

// WriteCSV writes one row per record under the fixed header, creating parent
// directories as needed. An empty record set writes nothing and reports
// false. Output is deterministic: identical input produces identical bytes.
func WriteCSV(records []models.ProductRecord, path string) (bool, error) {
	logger := slog.Default().With("component", "export")

	if len(records) == 0 {
		logger.Info("no records to export, CSV not written", "path", path)
		return false, nil
	}

	if err := ensureParentDir(path); err != nil {
		return false, err
	}

	file, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(models.CSVHeader); err != nil {
		return false, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		if err := writer.Write(record.CSVRow()); err != nil {
			return false, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return false, fmt.Errorf("failed to flush CSV file %s: %w", path, err)
	}

	logger.Info("exported records to CSV", "path", path, "count", len(records))
	return true, nil
}

// WriteJSON serializes the full record sequence as a 4-space-indented JSON
// array, absent fields as null. Unlike WriteCSV it writes even when the
// record set is empty, producing an empty array document.
func WriteJSON(records []models.ProductRecord, path string) error {
	logger := slog.Default().With("component", "export")

	if records == nil {
		records = []models.ProductRecord{}
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal records to JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file %s: %w", path, err)
	}

	logger.Info("exported records to JSON", "path", path, "count", len(records))
	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

package persistence

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nutrireco/go-reco-engine/model"
)

// utf8BOM makes exported files open correctly in spreadsheet software that
// guesses the encoding of Korean text.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FeaturesFileName and MetaFileName are the export file names, one row per
// item, header row first, no index column.
const (
	FeaturesFileName = "features_reco.csv"
	MetaFileName     = "meta_reco.csv"
)

// ExportCSV writes the feature and meta tables to outDir as UTF-8 CSV files
// with a byte-order marker, creating the directory as needed.
func ExportCSV(outDir string, features model.FeatureTable, meta model.MetaTable) error {
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", outDir, err)
	}

	if err := writeFeaturesCSV(filepath.Join(outDir, FeaturesFileName), features); err != nil {
		return err
	}
	return writeMetaCSV(filepath.Join(outDir, MetaFileName), meta)
}

func writeFeaturesCSV(path string, features model.FeatureTable) error {
	header := make([]string, 0, len(features.KeywordKeys)+len(features.NumericColumns))
	header = append(header, features.KeywordKeys...)
	header = append(header, features.NumericColumns...)

	records := make([][]string, 0, features.Len())
	for _, row := range features.Rows {
		record := make([]string, 0, len(header))
		for _, key := range features.KeywordKeys {
			record = append(record, strconv.Itoa(row.Indicators[key]))
		}
		for _, col := range features.NumericColumns {
			if row.Numerics == nil || row.Numerics[col] == nil {
				record = append(record, "")
			} else {
				record = append(record, strconv.FormatFloat(*row.Numerics[col], 'f', -1, 64))
			}
		}
		records = append(records, record)
	}

	return writeCSV(path, header, records)
}

func writeMetaCSV(path string, meta model.MetaTable) error {
	records := make([][]string, 0, meta.Len())
	for _, row := range meta.Rows {
		record := make([]string, 0, len(meta.Columns))
		for _, col := range meta.Columns {
			record = append(record, cellString(row[col]))
		}
		records = append(records, record)
	}

	return writeCSV(path, meta.Columns, records)
}

// cellString renders a meta cell without normalization: display values keep
// their original casing and spacing.
func cellString(value interface{}) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	if f, ok := value.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", value)
}

func writeCSV(path string, header []string, records [][]string) error {
	file, err := os.Create(path) // #nosec G304 -- path is controlled by application, not user input
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", path, closeErr)
		}
	}()

	if _, err := file.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM to %s: %w", path, err)
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write records to %s: %w", path, err)
	}
	writer.Flush()
	return writer.Error()
}

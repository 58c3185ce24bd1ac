// Package common provides the shared CSV I/O used by the CLI commands.
package common

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"gestionale/estrazioni/internal/logging"
	"gestionale/estrazioni/internal/models"
	"gestionale/estrazioni/internal/parsererror"
)

var log = logging.GetLogger()

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string) ([]TCSVRow, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: filePath})
		}
	}()

	var rows []TCSVRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, &parsererror.InvalidFormatError{
			Source:         filePath,
			ExpectedFormat: "CSV",
			Msg:            err.Error(),
		}
	}

	log.Debug("Read CSV data",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// ReadMovements loads bank movements from a CSV export of the ledger module.
func ReadMovements(filePath string) ([]models.BankMovement, error) {
	return ReadCSVFile[models.BankMovement](filePath)
}

// WriteTransactionsToCSV writes extracted transactions to a CSV file, creating
// the parent directory when needed.
func WriteTransactionsToCSV(transactions []models.ExtractedTransaction, csvFile string) error {
	if transactions == nil {
		transactions = []models.ExtractedTransaction{}
	}

	if dir := filepath.Dir(csvFile); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: csvFile})
		}
	}()

	if err := gocsv.MarshalFile(&transactions, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	log.Info("Wrote transactions to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return nil
}

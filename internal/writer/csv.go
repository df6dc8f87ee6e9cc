package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/insightdelivered/camt-statement-converter/internal/models"
)

const dateFormat = "2006-01-02"

// CSVWriter writes statement lines to CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes the statement to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, st *models.Statement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, st)
}

// Write writes the statement in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, st *models.Statement) error {
	writer := csv.NewWriter(out)

	// Metadata rows
	if w.IncludeHeader {
		meta := [][]string{
			{"# Account", st.AccountID},
			{"# Bank", st.BankID},
			{"# Currency", st.Currency},
			{"# Opening Balance", st.StartBalance.StringFixed(2), formatDate(st.StartDate)},
			{"# Closing Balance", st.EndBalance.StringFixed(2), formatDate(st.EndDate)},
		}
		for _, row := range meta {
			if row[1] == "" {
				continue
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV metadata: %w", err)
			}
		}
	}

	header := []string{"Date", "Booking Date", "Payee", "Memo", "Reference", "Amount"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, line := range st.Lines {
		row := []string{
			formatDate(line.Date),
			formatDate(line.DateUser),
			line.Payee,
			line.Memo,
			line.Refnum,
			line.Amount.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(dateFormat)
	}
	return t.Format("2006-01-02 15:04:05")
}

package writer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/camt-statement-converter/internal/models"
)

func testStatement() *models.Statement {
	return &models.Statement{
		BankID:       "AGBLLT2XXXX",
		AccountID:    "LT000000000000000000",
		Currency:     "EUR",
		StartBalance: decimal.RequireFromString("306.53"),
		StartDate:    time.Date(2015, 12, 1, 0, 0, 0, 0, time.UTC),
		EndBalance:   decimal.RequireFromString("125.52"),
		EndDate:      time.Date(2015, 12, 31, 0, 0, 0, 0, time.UTC),
		Lines: []models.StatementLine{
			{
				Amount:   decimal.RequireFromString("-0.29"),
				Payee:    "AB DNB Bankas",
				Date:     time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
				DateUser: time.Date(2015, 12, 31, 0, 0, 0, 0, time.UTC),
				Refnum:   "FC1261858984",
				Memo:     "Sąskaitos aptarnavimo mokestis",
			},
			{
				Amount:   decimal.RequireFromString("150"),
				Payee:    "Jonas, Jonaitis",
				Date:     time.Date(2015, 12, 10, 0, 0, 0, 0, time.UTC),
				DateUser: time.Date(2015, 12, 10, 9, 30, 0, 0, time.UTC),
				Refnum:   "FC1261858985",
			},
		},
	}
}

func TestCSVWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: true}
	if err := w.Write(&buf, testStatement()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"# Account,LT000000000000000000",
		"# Bank,AGBLLT2XXXX",
		"# Currency,EUR",
		"# Opening Balance,306.53,2015-12-01",
		"# Closing Balance,125.52,2015-12-31",
		"Date,Booking Date,Payee,Memo,Reference,Amount",
		"2016-01-01,2015-12-31,AB DNB Bankas,Sąskaitos aptarnavimo mokestis,FC1261858984,-0.29",
		`2015-12-10,2015-12-10 09:30:00,"Jonas, Jonaitis",,FC1261858985,150.00`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q\n%s", want, output)
		}
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	// 5 metadata lines + 1 header + 2 lines = 8
	if len(lines) != 8 {
		t.Errorf("expected 8 lines, got %d", len(lines))
	}
}

func TestCSVWriter_WriteNoHeader(t *testing.T) {
	var buf bytes.Buffer
	w := &CSVWriter{IncludeHeader: false}
	if err := w.Write(&buf, testStatement()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()

	if strings.Contains(output, "# Account") {
		t.Error("should not have account metadata when header=false")
	}
	if !strings.HasPrefix(output, "Date,Booking Date,Payee,Memo,Reference,Amount") {
		t.Error("expected column headers first")
	}
}

func TestCSVWriter_SkipsEmptyBank(t *testing.T) {
	st := testStatement()
	st.BankID = ""

	var buf bytes.Buffer
	if err := (&CSVWriter{IncludeHeader: true}).Write(&buf, st); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "# Bank") {
		t.Error("expected no bank row for an empty bank id")
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		input    time.Time
		expected string
	}{
		{time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), "2016-01-01"},
		{time.Date(2016, 4, 23, 13, 45, 1, 0, time.UTC), "2016-04-23 13:45:01"},
		{time.Time{}, ""},
	}

	for _, tt := range tests {
		got := formatDate(tt.input)
		if got != tt.expected {
			t.Errorf("formatDate(%v): got %q, want %q", tt.input, got, tt.expected)
		}
	}
}

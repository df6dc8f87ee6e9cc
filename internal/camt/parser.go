// Package camt translates ISO 20022 camt.053 bank-to-customer statements into
// models.Statement records.
package camt

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/insightdelivered/camt-statement-converter/internal/models"
)

// Parser converts camt.053 documents. It holds no per-document state and is
// safe for concurrent use.
type Parser struct {
	// Currency is the reporting currency used when the statement does not
	// carry an account currency.
	Currency string
	Logger   *zap.Logger
}

// NewParser returns a Parser falling back to currency. A nil logger
// disables logging.
func NewParser(currency string, logger *zap.Logger) *Parser {
	return &Parser{Currency: currency, Logger: logger}
}

// parseContext carries the state of a single Parse call.
type parseContext struct {
	ns       string
	currency string
	log      *zap.Logger
}

// ParseFile opens path and parses it.
func (p *Parser) ParseFile(path string) (*models.Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statement %q: %w", path, err)
	}
	defer f.Close()

	return p.Parse(f)
}

// Parse reads a whole camt.053 document from r. Entries whose amount is not
// in the statement currency are left out; any other defect fails the call.
func (p *Parser) Parse(r io.Reader) (*models.Statement, error) {
	root, err := decode(r)
	if err != nil {
		return nil, err
	}

	ns := namespaceOf(root)
	if err := checkNamespace(ns); err != nil {
		return nil, err
	}

	log := p.Logger
	if log == nil {
		log = zap.NewNop()
	}
	c := &parseContext{ns: ns, currency: p.Currency, log: log.With(zap.String("namespace", ns))}

	stmt := c.find(root, "BkToCstmrStmt/Stmt")
	if stmt == nil {
		return nil, formatErrorf("document has no BkToCstmrStmt/Stmt element")
	}

	st := &models.Statement{Lines: []models.StatementLine{}}
	if err := c.parseStatementProperties(stmt, st); err != nil {
		return nil, err
	}

	for i, ntry := range c.findAll(stmt, "Ntry") {
		line, skip, err := c.parseLine(ntry)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		if line == nil {
			c.log.Debug("skipping entry", zap.Int("index", i+1), zap.String("reason", skip))
			st.DebugLines = append(st.DebugLines, models.DebugLine{Index: i + 1, Result: "skipped", Reason: skip})
			continue
		}
		st.Lines = append(st.Lines, *line)
		st.DebugLines = append(st.DebugLines, models.DebugLine{Index: i + 1, Result: "parsed"})
	}

	return st, nil
}

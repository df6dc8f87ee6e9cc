package camt

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/insightdelivered/camt-statement-converter/internal/models"
)

// Credit/debit indicator values.
const (
	creditIndicator = "CRDT"
	debitIndicator  = "DBIT"
)

// parseLine converts one Ntry element. A nil line with a non-empty skip
// reason means the entry does not belong to this statement's currency.
func (c *parseContext) parseLine(ntry *node) (line *models.StatementLine, skip string, err error) {
	ind := c.find(ntry, "CdtDbtInd")
	if ind == nil {
		return nil, "", formatErrorf("entry has no credit/debit indicator")
	}
	indicator := ind.text()
	if indicator != creditIndicator && indicator != debitIndicator {
		return nil, "", formatErrorf("unknown credit/debit indicator %q", indicator)
	}

	amt := c.find(ntry, "Amt")
	if amt == nil {
		return nil, "", formatErrorf("entry has no amount")
	}
	if !c.inCurrency(amt) {
		return nil, fmt.Sprintf("currency %q does not match statement currency %q", amountCurrency(amt), c.currency), nil
	}
	amount, err := parseAmount(amt)
	if err != nil {
		return nil, "", err
	}

	sline := &models.StatementLine{}

	// The payee is always the other party.
	var payeePath string
	if indicator == debitIndicator {
		amount = amount.Neg()
		payeePath = "NtryDtls/TxDtls/RltdPties/Cdtr/Nm"
	} else {
		payeePath = "NtryDtls/TxDtls/RltdPties/Dbtr/Nm"
	}
	sline.Amount = amount
	sline.Payee, _ = c.firstText(ntry, payeePath)

	if sline.Date, err = c.parseDate(c.find(ntry, "ValDt")); err != nil {
		return nil, "", err
	}
	if sline.DateUser, err = c.parseDate(c.find(ntry, "BookgDt")); err != nil {
		return nil, "", err
	}

	refnum, ok := c.firstText(ntry, "NtryDtls/TxDtls/Refs/AcctSvcrRef", "AcctSvcrRef")
	if !ok {
		return nil, "", formatErrorf("entry has no account servicer reference")
	}
	sline.Refnum = refnum

	sline.Memo, _ = c.firstText(ntry, "NtryDtls/TxDtls/RmtInf/Ustrd", "AddtlNtryInf")

	c.log.Debug("parsed entry",
		zap.String("refnum", sline.Refnum), zap.String("amount", sline.Amount.String()))
	return sline, "", nil
}

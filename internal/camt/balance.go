package camt

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/insightdelivered/camt-statement-converter/internal/models"
)

// Balance type codes.
const (
	openingBooked = "OPBD"
	closingBooked = "CLBD"
)

type balance struct {
	amount decimal.Decimal
	date   time.Time
}

// parseStatementProperties fills account identity, currency and the
// opening/closing balances of st from the Stmt element.
func (c *parseContext) parseStatementProperties(stmt *node, st *models.Statement) error {
	bank, _ := c.firstText(stmt,
		"Acct/Svcr/FinInstnId/BIC",
		"Acct/Svcr/FinInstnId/BICFI",
		"Acct/Svcr/FinInstnId/Nm",
	)
	account, ok := c.firstText(stmt, "Acct/Id/IBAN", "Acct/Id/Othr/Id")
	if !ok {
		return formatErrorf("statement has no account identifier")
	}

	if ccy, _ := c.firstText(stmt, "Acct/Ccy"); ccy != "" {
		c.currency = ccy
	}
	if c.currency == "" {
		return configErrorf("no account currency provided in statement; specify a default currency (e.g. EUR)")
	}

	balances := make(map[string]balance)
	for _, bal := range c.findAll(stmt, "Bal") {
		cd := c.find(bal, "Tp/CdOrPrtry/Cd")
		if cd == nil {
			continue
		}
		code := cd.text()
		if code != openingBooked && code != closingBooked {
			continue
		}
		amt := c.find(bal, "Amt")
		if amt == nil {
			return formatErrorf("balance %s has no amount", code)
		}
		if !c.inCurrency(amt) {
			c.log.Debug("skipping balance in foreign currency",
				zap.String("code", code), zap.String("ccy", amountCurrency(amt)))
			continue
		}
		value, err := parseAmount(amt)
		if err != nil {
			return err
		}
		date, err := c.parseDate(c.find(bal, "Dt"))
		if err != nil {
			return err
		}
		balances[code] = balance{amount: value, date: date}
	}

	opening, hasOpening := balances[openingBooked]
	closing, hasClosing := balances[closingBooked]
	if !hasOpening || !hasClosing {
		return reconciliationErrorf("no opening and closing balance found for currency %q; check the currency of the statement file", c.currency)
	}

	st.BankID = bank
	st.AccountID = account
	st.Currency = c.currency
	st.StartBalance = opening.amount
	st.StartDate = opening.date
	st.EndBalance = closing.amount
	st.EndDate = closing.date
	return nil
}

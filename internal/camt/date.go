package camt

import (
	"strings"
	"time"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// stripTimezone drops a "+HH:MM" suffix. Banks send offsets such as
// "2017-04-01+02:00" on plain dates; the offset is discarded, not applied.
func stripTimezone(s string) string {
	if i := strings.IndexByte(s, '+'); i >= 0 {
		return s[:i]
	}
	return s
}

// parseDate reads a DateAndDateTimeChoice element (Dt or DtTm child).
// A nil node yields the zero time and no error.
func (c *parseContext) parseDate(n *node) (time.Time, error) {
	if n == nil {
		return time.Time{}, nil
	}
	if dt := c.find(n, "Dt"); dt != nil {
		return parseTimestamp(dateLayout, dt.text())
	}
	if dttm := c.find(n, "DtTm"); dttm != nil {
		return parseTimestamp(dateTimeLayout, dttm.text())
	}
	return time.Time{}, formatErrorf("%s has neither Dt nor DtTm", n.XMLName.Local)
}

func parseTimestamp(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, stripTimezone(value))
	if err != nil {
		return time.Time{}, formatErrorf("date %q: %v", value, err)
	}
	return t, nil
}

package billing

import (
	"fmt"
	"strconv"
	"strings"

	"garage_manager/internal/domain/entities"
)

const (
	gstInvoiceWidth    = 3
	nonGSTInvoiceWidth = 2
)

// InvoiceWidth is the zero-padding width of a series: GST bills are "001",
// non-GST bills "01".
func InvoiceWidth(t entities.BillType) int {
	if t == entities.BillTypeGST {
		return gstInvoiceWidth
	}
	return nonGSTInvoiceWidth
}

// FormatInvoiceNumber renders n padded to the series width. Numbers wider
// than the width are not truncated.
func FormatInvoiceNumber(t entities.BillType, n int64) string {
	return fmt.Sprintf("%0*d", InvoiceWidth(t), n)
}

// ParseInvoiceNumber strips every non-digit character ("INV-007" -> 7).
// ok is false when nothing numeric is left.
func ParseInvoiceNumber(s string) (int64, bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextInvoiceNumber derives the successor of the last stored invoice number
// in a series. An empty or unparsable last number restarts at 1.
func NextInvoiceNumber(t entities.BillType, last string) string {
	n, ok := ParseInvoiceNumber(last)
	if !ok {
		return FormatInvoiceNumber(t, 1)
	}
	return FormatInvoiceNumber(t, n+1)
}

// DisplayInvoiceNumber prefixes stored digits with "INV-".
func DisplayInvoiceNumber(digits string) string {
	return entities.InvoicePrefix + digits
}

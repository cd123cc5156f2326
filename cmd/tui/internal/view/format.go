package view

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const dbTimeout = 5 * time.Second

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders cents as a grouped dollar amount, "$1,234.56".
func FormatAmount(cents int64) string {
	return printer.Sprintf("$%.2f", float64(cents)/100.0)
}

// PlainAmount renders cents as an unadorned decimal string suitable
// for resubmission through the form pipeline.
func PlainAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

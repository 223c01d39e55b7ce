package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"reconstruction/internal/models"
)

// DayTotals is the spend on one calendar day.
type DayTotals struct {
	Date         models.Date
	Spent        decimal.Decimal
	Invoices     InvoiceSplit
	Transactions []models.CostTransaction
}

// WeekTotals is the spend over a Monday..Sunday week.
type WeekTotals struct {
	Start        models.Date
	End          models.Date
	Spent        decimal.Decimal
	Invoices     InvoiceSplit
	Days         []DayTotals
	Transactions []models.CostTransaction
}

// WeekOf returns the Monday and Sunday of the ISO week containing day.
func WeekOf(day models.Date) (start, end models.Date) {
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start = day.AddDays(-offset)
	return start, start.AddDays(6)
}

// Day totals the transactions dated day.
func Day(s Snapshot, day models.Date) DayTotals {
	return dayTotals(day, On(s.Transactions, day))
}

// Week totals the transactions of the week containing day, with a rollup
// for each of its seven days.
func Week(s Snapshot, day models.Date) WeekTotals {
	start, end := WeekOf(day)
	txns := Between(s.Transactions, start, end)

	wt := WeekTotals{
		Start:        start,
		End:          end,
		Spent:        Sum(txns),
		Invoices:     SplitInvoices(txns),
		Days:         make([]DayTotals, 0, 7),
		Transactions: txns,
	}
	for d := start; !d.After(end); d = d.AddDays(1) {
		wt.Days = append(wt.Days, dayTotals(d, On(txns, d)))
	}
	return wt
}

func dayTotals(day models.Date, txns []models.CostTransaction) DayTotals {
	return DayTotals{
		Date:         day,
		Spent:        Sum(txns),
		Invoices:     SplitInvoices(txns),
		Transactions: txns,
	}
}

// Today returns the calendar day of now in loc.
func Today(now time.Time, loc *time.Location) models.Date {
	return models.DateOf(now.In(loc))
}
